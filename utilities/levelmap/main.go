// levelmap sweeps seeds for one flow and writes a text map per seed,
// for eyeballing layout quality across many runs.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gookit/color"

	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/config"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/level"
)

func main() {
	flow := flag.String("flow", "default", "Flow to preview")
	flowDir := flag.String("flows", "data/dungeon_flows", "Path to flow directory")
	configFile := flag.String("config", "data/config.yaml", "Path to generation config YAML file")
	seeds := flag.String("seeds", "1", "Seed range to sweep (e.g., 1-10 or 42)")
	outDir := flag.String("out", "", "Output directory (empty for stdout)")
	legend := flag.Bool("legend", false, "Append a tile legend to each map")
	keepLevels := flag.Bool("levels", false, "Also write the level YAML next to each map")
	flag.Parse()

	startSeed, endSeed, err := parseSeedRange(*seeds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid seed range: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	flows := level.NewFlowLoader(*flowDir)
	f, err := flows.Load(*flow)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load flow: %v\n", err)
		os.Exit(1)
	}

	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to create output directory: %v\n", err)
			os.Exit(1)
		}
		// Files get plain text
		color.Disable()
	}

	fmt.Fprintf(os.Stderr, "Previewing flow '%s', seeds %d-%d\n", *flow, startSeed, endSeed)

	for seed := startSeed; seed <= endSeed; seed++ {
		if err := preview(f, cfg, *flow, seed, *outDir, *legend, *keepLevels); err != nil {
			fmt.Fprintf(os.Stderr, "Error: seed %d: %v\n", seed, err)
			os.Exit(1)
		}
	}
}

// parseSeedRange parses "42" or "1-10" into inclusive bounds.
func parseSeedRange(s string) (int64, int64, error) {
	if start, end, ok := strings.Cut(s, "-"); ok {
		lo, err := strconv.ParseInt(start, 10, 64)
		if err != nil {
			return 0, 0, err
		}
		hi, err := strconv.ParseInt(end, 10, 64)
		if err != nil {
			return 0, 0, err
		}
		if hi < lo {
			return 0, 0, fmt.Errorf("end %d below start %d", hi, lo)
		}
		return lo, hi, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, 0, err
	}
	return v, v, nil
}
