package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/doomerang-physics/assets"
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/automoto/doomerang-physics/shared/leveldata"
)

// loadLevel resolves a level by .tmx path or by embedded level name and
// returns its name and collision data.
func loadLevel(level string) (string, *leveldata.CollisionData, error) {
	if !strings.HasSuffix(level, ".tmx") {
		data, err := assets.NewLevelLoader().LoadLevel(level)
		return level, data, err
	}

	opts := leveldata.Options{
		XSticky: cfg.World.SlopeXSticky,
		YSticky: cfg.World.SlopeYSticky,
	}
	data, err := leveldata.LoadCollisionData(os.DirFS(filepath.Dir(level)), filepath.Base(level), opts)
	if err != nil {
		return "", nil, err
	}
	return strings.TrimSuffix(filepath.Base(level), ".tmx"), data, nil
}
