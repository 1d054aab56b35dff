package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/config"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/level"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/render"
)

// preview generates one level with the given seed and writes its map,
// and optionally the level itself, to outDir. An empty outDir prints
// to stdout instead.
func preview(f *level.Flow, cfg *config.Config, flowName string, seed int64, outDir string, legend, keepLevels bool) error {
	run := *f
	run.Seed = seed

	ctx := level.ContextFromFlow(&run, cfg)
	lvl, err := level.Generate(ctx, flowName)
	if err != nil {
		return err
	}

	text := render.RenderLevel(lvl, legend)

	if outDir == "" {
		fmt.Print(text)
		return nil
	}

	mapPath := filepath.Join(outDir, fmt.Sprintf("%s_%d.txt", flowName, seed))
	if err := os.WriteFile(mapPath, []byte(text), 0644); err != nil {
		return err
	}
	fmt.Printf("seed %d: %d rooms, %d doors -> %s\n",
		seed, lvl.Stats.NumRooms, lvl.Stats.DoorCount, mapPath)

	if keepLevels {
		payload, err := lvl.EncodeYAML()
		if err != nil {
			return err
		}
		lvlPath := filepath.Join(outDir, fmt.Sprintf("%s_%d.yaml", flowName, seed))
		if err := os.WriteFile(lvlPath, payload, 0644); err != nil {
			return err
		}
	}
	return nil
}
