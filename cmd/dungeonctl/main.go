// dungeonctl generates, inspects, stores and serves dungeon levels.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/config"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/logger"
)

var (
	cfgPath    string
	logCfgPath string
	genCfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "dungeonctl",
	Short: "Generate, inspect and serve dungeon levels",
	Long: `dungeonctl builds dungeon levels from flow definitions: partitioned
rooms with typed content, corridors, walls, doors and spawn markers.
Levels can be written to files, kept in a store, or served over HTTP
and WebSocket.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logCfg, _ := logger.LoadConfig(logCfgPath)
		if err := logger.Initialize(logCfg); err != nil {
			return err
		}

		var err error
		genCfg, err = config.LoadConfig(cfgPath)
		if err != nil {
			return fmt.Errorf("loading generation config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "data/config.yaml", "path to generation config YAML file")
	rootCmd.PersistentFlags().StringVar(&logCfgPath, "logging", "data/config.yaml", "path to the YAML file holding the logging block")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
