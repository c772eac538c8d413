// snake is a real-time grid snake game for the terminal.
//
// Usage:
//
//	snake                    - Play a game (same as "snake play")
//	snake play               - Play a game
//	snake serve              - Start SSH server for remote play
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>  - Path to a config YAML (default: search path)
//	--seed <value>   - Set RNG seed for reproducible food placement
//	--preset <name>  - Starting speed preset: easy, normal, hard
//	--side <cells>   - Override the grid side length
//	--wrap           - Start with wrap-around edges
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
	flagPreset string
	flagSide   int
	flagWrap   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake is a real-time grid game: steer the snake to the food, grow
longer, and avoid running into yourself. Every few points the snake gets
faster.

Available commands:
  play     - Play a game (default)
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  snake
  snake play --preset hard
  snake play --wrap --seed 42
  snake serve --ssh :2222 --metrics :9100
  snake config --side 20`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (default: ~/.snake/config.yaml, ./configs/snake.yaml)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Speed preset: easy, normal, hard")
	rootCmd.PersistentFlags().IntVar(&flagSide, "side", 0, "Grid side length in cells (0 = from config)")
	rootCmd.PersistentFlags().BoolVar(&flagWrap, "wrap", false, "Start with wrap-around edges instead of walls")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the effective configuration from the search path and
// the global flags.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagSide != 0 {
		cfg.Grid.Side = flagSide
	}
	if flagWrap {
		cfg.Boundary.Wrapping = true
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
