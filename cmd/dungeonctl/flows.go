package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/level"
)

var flowsDir string

var flowsCmd = &cobra.Command{
	Use:   "flows",
	Short: "List the available flow definitions",
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := level.ListFlows(flowsDir)
		if err != nil {
			return fmt.Errorf("reading flow directory: %w", err)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	flowsCmd.Flags().StringVar(&flowsDir, "flows", "data/dungeon_flows", "path to flow directory")
	rootCmd.AddCommand(flowsCmd)
}
