// huehunt is a color perception game for the terminal: find the one tile
// whose shade differs from the rest before the clock runs out.
//
// Usage:
//
//	huehunt play      - Play in this terminal
//	huehunt serve     - Start SSH server for remote play
//	huehunt levels    - Show the difficulty curve
//
// Global flags:
//
//	--config <path>     - Config YAML (default: search ~/.huehunt, ./configs, embedded)
//	--seed <value>      - Set RNG seed for reproducible levels
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write play logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/huehunt/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string

	// Loaded once before any subcommand runs
	appConfig config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "huehunt",
	Short: "Hue Hunt - Spot the odd shade in your terminal",
	Long: `Hue Hunt shows a grid of colored tiles. All of them share one color
except a single tile that is slightly lighter or darker. Click it (or move
the cursor onto it and press Enter) before the clock runs out.

A correct pick adds a second and moves to the next level, where the grid
may grow and the difference gets smaller. A miss costs five seconds.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  levels   - Show the difficulty curve

Examples:
  huehunt play
  huehunt play --seed 42
  huehunt serve --ssh :2222
  huehunt levels --max 30 --sample`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write play logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(levelsCmd)
}

// loadConfig resolves the configuration: file, then .env and HUEHUNT_*
// variables, then command line flags.
func loadConfig(_ *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return err
	}

	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	appConfig = cfg
	return nil
}
