package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/egg-run/internal/core"
	"github.com/vovakirdan/egg-run/internal/games/eggrun"
	"github.com/vovakirdan/egg-run/internal/platform/audio"
	"github.com/vovakirdan/egg-run/internal/platform/tui"
)

var (
	flagMute    bool
	flagVolume  float64
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Egg Run",
	Long: `Start the game in the terminal.

Controls:
  Left/Right, A/D     - Run
  Up, W, Space        - Jump
  P/Enter             - Start a run
  R                   - Restart (after game over)
  Ctrl+S              - Save a screenshot to ~/.eggrun/screenshots
  Q/Ctrl+C            - Quit

Pick up two eggs before reaching the house to see an ending, five to win.

Examples:
  eggrun play
  eggrun play --seed 42
  eggrun play --mute --log-file eggrun.log --log-level debug
  eggrun play --config ./my-eggrun.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects and music")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume between 0 and 1 (music plays at half of it)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal is used by the game)")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play does the work of the play command. The log file and the audio
// device are released before it returns.
func play() error {
	// The terminal belongs to the game, so logs only go to a file.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	gameCfg, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := resolveSeed()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	var sink audio.Sink = audio.NopSink{}
	if !flagMute {
		oto, audioErr := audio.NewOtoSink(flagVolume)
		if audioErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", audioErr)
			logger.Warn("sound disabled", "err", audioErr)
			// Continue without sound - game still works
		} else {
			defer func() {
				if err := oto.Close(); err != nil {
					logger.Warn("closing audio", "err", err)
				}
			}()
			sink = oto
		}
	}

	logger.Info("starting", "seed", seed, "fps", cfg.TickRate, "size", fmt.Sprintf("%dx%d", width, height))

	game := eggrun.New(gameCfg, eggrun.NewRand(seed))
	return tui.Run(game, sink, logger, cfg)
}
