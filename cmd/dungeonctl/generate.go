package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/level"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/levelstore"
)

var (
	generateFlow      string
	generateFlowDir   string
	generateSeed      int64
	generateDungeonID int
	generateLobby     bool
	generateFormat    string
	generateOutput    string
	generateDB        string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one level",
	Long: `Generates a level from a flow definition and writes it to a file or
stdout. With --db the level is also saved to a SQLite level store.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flows := level.NewFlowLoader(generateFlowDir)
		flow, err := flows.Load(generateFlow)
		if err != nil {
			return fmt.Errorf("loading flow %q: %w", generateFlow, err)
		}

		// Cached flows are shared, so overrides go on a copy
		f := *flow
		if generateSeed != 0 {
			f.Seed = generateSeed
		}
		if generateDungeonID != 0 {
			f.DungeonID = generateDungeonID
		}

		ctx := level.ContextFromFlow(&f, genCfg)

		var lvl *level.Level
		if generateLobby {
			lvl, err = level.BuildLobby(ctx)
		} else {
			lvl, err = level.Generate(ctx, generateFlow)
		}
		if err != nil {
			return err
		}

		if generateDB != "" {
			store, err := levelstore.Open(levelstore.DefaultConfig(generateDB))
			if err != nil {
				return fmt.Errorf("opening level store: %w", err)
			}
			defer store.Close()
			if err := store.Save(lvl); err != nil {
				return fmt.Errorf("saving level: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Level %s saved to %s\n", lvl.ID, generateDB)
		}

		var payload []byte
		switch generateFormat {
		case "yaml":
			payload, err = lvl.EncodeYAML()
		case "json":
			payload, err = lvl.EncodeJSON()
		default:
			return fmt.Errorf("unknown format: %s (supported: yaml, json)", generateFormat)
		}
		if err != nil {
			return err
		}

		if generateOutput == "" || generateOutput == "-" {
			_, err := os.Stdout.Write(payload)
			return err
		}
		if err := os.WriteFile(generateOutput, payload, 0644); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Level %s written to %s\n", lvl.ID, generateOutput)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateFlow, "flow", "default", "flow to generate")
	generateCmd.Flags().StringVar(&generateFlowDir, "flows", "data/dungeon_flows", "path to flow directory")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "generation seed (default: the flow's, or random)")
	generateCmd.Flags().IntVar(&generateDungeonID, "dungeon-id", 0, "dungeon identifier mixed into the seed")
	generateCmd.Flags().BoolVar(&generateLobby, "lobby", false, "build the fixed lobby level instead of a flow")
	generateCmd.Flags().StringVar(&generateFormat, "format", "yaml", "output format: yaml or json")
	generateCmd.Flags().StringVar(&generateOutput, "output", "-", "output file path (- for stdout)")
	generateCmd.Flags().StringVar(&generateDB, "db", "", "also save the level to this SQLite store")
	rootCmd.AddCommand(generateCmd)
}
