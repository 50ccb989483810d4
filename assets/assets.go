package assets

import (
	"embed"
	"fmt"
	"io/fs"

	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/automoto/doomerang-physics/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelLoader loads the levels embedded in the binary.
type LevelLoader struct {
	fs  fs.FS
	dir string
}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fs: assetFS, dir: "levels"}
}

// options returns the slope defaults levels fall back to.
func options() leveldata.Options {
	return leveldata.Options{
		XSticky: cfg.World.SlopeXSticky,
		YSticky: cfg.World.SlopeYSticky,
	}
}

// Names returns the embedded level names in sorted order.
func (l *LevelLoader) Names() ([]string, error) {
	_, names, err := leveldata.LoadAllLevels(l.fs, l.dir, options())
	return names, err
}

// LoadLevel loads one embedded level by name, without the .tmx extension.
func (l *LevelLoader) LoadLevel(name string) (*leveldata.CollisionData, error) {
	path := l.dir + "/" + name + ".tmx"
	if _, err := fs.Stat(l.fs, path); err != nil {
		return nil, fmt.Errorf("unknown level %q: %w", name, err)
	}
	return leveldata.LoadCollisionData(l.fs, path, options())
}
