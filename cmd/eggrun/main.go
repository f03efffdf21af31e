// eggrun is a side-scrolling platformer for the terminal: run, jump, pick
// up eggs and reach the house.
//
// Usage:
//
//	eggrun play              - Play in the terminal
//	eggrun level             - Print the generated level for a seed
//	eggrun simulate          - Run headless with scripted input
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible levels
//	--config <path>     - Use a custom gameplay config YAML
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/egg-run/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "eggrun",
	Short: "Egg Run - a terminal platformer",
	Long: `Egg Run is a small side-scrolling platformer played in the terminal.
Collect eggs, dodge the chickens and spikes, and reach the house.

Available commands:
  play      - Play the game
  level     - Print the level generated for a seed
  simulate  - Run the simulation headless with scripted input

Examples:
  eggrun play
  eggrun play --seed 42 --mute
  eggrun level --seed 42 --format yaml
  eggrun simulate --seed 42 --hold right --jump-every 40`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLogger creates the command logger writing to w at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "eggrun",
	})
	logger.SetLevel(level)
	return logger, nil
}

// resolveSeed returns the --seed value, or a time-based seed when it is 0.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// loadConfig loads the gameplay config from --config or the default
// search path. Invalid files are an error.
func loadConfig() (config.EggRunConfig, error) {
	cfg, err := config.LoadEggRun(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
