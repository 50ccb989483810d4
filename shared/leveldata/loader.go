package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from TMX files.
const (
	TileLayer        = "wg-tiles"
	ColliderGroup    = "Colliders"
	LegacySpawnGroup = "PlayerSpawn"
	MobileWallGroup  = "MobileWalls"
)

// Options controls defaults for properties a level leaves unset.
type Options struct {
	XSticky bool
	YSticky bool
}

// LoadCollisionData parses a TMX file and returns collision data (solid tiles,
// collider spawns and mobile walls). It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadCollisionData(fsys fs.FS, tmxPath string, opts Options) (*CollisionData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &CollisionData{
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	// Parse solid tiles from wg-tiles layer
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != TileLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				rect := SolidRect{
					X:       float64(x) * tileW,
					Y:       float64(y) * tileH,
					W:       tileW,
					H:       tileH,
					XSticky: opts.XSticky,
					YSticky: opts.YSticky,
				}
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					rect.SlopeType = tilesetTile.Properties.GetString("slope")
					rect.XSticky = boolProperty(tilesetTile.Properties, "xsticky", opts.XSticky)
					rect.YSticky = boolProperty(tilesetTile.Properties, "ysticky", opts.YSticky)
				}
				data.SolidRects = append(data.SolidRects, rect)
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case ColliderGroup, LegacySpawnGroup:
			for _, o := range og.Objects {
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
					X:      o.X,
					Y:      o.Y,
					W:      o.Width,
					H:      o.Height,
					SpeedX: o.Properties.GetFloat("speedX"),
					Index:  o.Properties.GetInt("spawnIndex"),
					Name:   o.Name,
				})
			}
		case MobileWallGroup:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					return nil, fmt.Errorf("mobile wall %q in %s has no size", o.Name, tmxPath)
				}
				data.MobileWalls = append(data.MobileWalls, MobileWallRect{
					X:         o.X,
					Y:         o.Y,
					W:         o.Width,
					H:         o.Height,
					DX:        o.Properties.GetFloat("dx"),
					DY:        o.Properties.GetFloat("dy"),
					Duration:  o.Properties.GetFloat("duration"),
					Carry:     o.Properties.GetString("carry"),
					SlopeType: o.Properties.GetString("slope"),
					Collider:  o.Properties.GetBool("collider"),
					Name:      o.Name,
				})
			}
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.SliceStable(data.SpawnPoints, func(i, j int) bool {
		return data.SpawnPoints[i].X < data.SpawnPoints[j].X
	})

	return data, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads collision
// data for each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string, opts Options) (map[string]*CollisionData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*CollisionData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadCollisionData(fsys, path, opts)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		levels[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}

// boolProperty reads a "true"/"false" property, falling back to def when the
// property is absent or malformed.
func boolProperty(props tiled.Properties, name string, def bool) bool {
	v, err := strconv.ParseBool(props.GetString(name))
	if err != nil {
		return def
	}
	return v
}
