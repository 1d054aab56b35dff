package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/level"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/render"
)

var (
	renderLegend  bool
	renderNoColor bool
)

var renderCmd = &cobra.Command{
	Use:   "render <level-file>",
	Short: "Draw a level file as a colored text map",
	Long:  `Reads a level file (YAML, or JSON by extension) and draws its grid, room details and spawn markers to stdout.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		var lvl *level.Level
		if strings.HasSuffix(args[0], ".json") {
			lvl, err = level.DecodeJSON(data)
		} else {
			lvl, err = level.DecodeYAML(data)
		}
		if err != nil {
			return err
		}

		if renderNoColor {
			color.Disable()
		}
		fmt.Print(render.RenderLevel(lvl, renderLegend))
		return nil
	},
}

func init() {
	renderCmd.Flags().BoolVar(&renderLegend, "legend", false, "append a tile legend")
	renderCmd.Flags().BoolVar(&renderNoColor, "no-color", false, "disable ANSI colors")
	rootCmd.AddCommand(renderCmd)
}
