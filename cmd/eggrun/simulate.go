package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/egg-run/internal/core"
	"github.com/vovakirdan/egg-run/internal/games/eggrun"
	"github.com/vovakirdan/egg-run/internal/layout"
)

var (
	flagFrames    int
	flagHold      string
	flagJumpEvery int
	flagTrace     string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the simulation headless with scripted input",
	Long: `Run one game without a terminal UI, feeding the same input every frame.

The run is started with a Start press on the first frame. After that the
chosen direction is held and, with --jump-every, a jump is pressed every N
frames. The simulation stops when the run ends or after --frames frames.

Examples:
  eggrun simulate --seed 42 --hold right
  eggrun simulate --seed 42 --hold right --jump-every 40 --frames 3600
  eggrun simulate --seed 7 --trace run.csv --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 1800, "Maximum number of frames to simulate")
	simulateCmd.Flags().StringVar(&flagHold, "hold", "right", "Direction to hold: right, left or none")
	simulateCmd.Flags().IntVar(&flagJumpEvery, "jump-every", 0, "Press jump every N frames (0 = never)")
	simulateCmd.Flags().StringVar(&flagTrace, "trace", "", "Write a per-frame CSV trace to this file")
}

func runSimulate(_ *cobra.Command, _ []string) {
	if err := simulateRun(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// simulateRun does the work of the simulate command. The trace file is
// closed before it returns.
func simulateRun() error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sc, err := newScript(flagHold, flagJumpEvery)
	if err != nil {
		return err
	}

	var trace *layout.TraceWriter
	if flagTrace != "" {
		f, err := os.Create(flagTrace)
		if err != nil {
			return err
		}
		defer f.Close()
		trace = layout.NewTraceWriter(f)
	}

	seed := resolveSeed()
	rc := core.RuntimeConfig{TickRate: flagFPS, Seed: seed}
	game := eggrun.New(cfg, eggrun.NewRand(seed))

	logger.Info("simulating", "seed", seed, "frames", flagFrames, "hold", flagHold, "jump_every", flagJumpEvery)

	frames, err := simulate(game, sc, flagFrames, rc.FrameTime(), trace, logger)
	if err != nil {
		return err
	}

	snap := game.Snapshot()
	fmt.Printf("Seed:    %d\n", seed)
	fmt.Printf("Frames:  %d\n", frames)
	fmt.Printf("State:   %s\n", snap.State)
	if snap.Reason != "" {
		fmt.Printf("Outcome: %s\n", snap.Reason)
	} else {
		fmt.Printf("Score:   %d\n", snap.Score)
	}
	return nil
}

// script is a fixed input pattern for a headless run.
type script struct {
	hold      core.Key // KeyNone holds nothing
	jumpEvery int      // 0 never jumps
}

func newScript(hold string, jumpEvery int) (script, error) {
	if jumpEvery < 0 {
		return script{}, fmt.Errorf("--jump-every must not be negative, got %d", jumpEvery)
	}

	sc := script{jumpEvery: jumpEvery}
	switch hold {
	case "right":
		sc.hold = core.KeyRight
	case "left":
		sc.hold = core.KeyLeft
	case "none", "":
		sc.hold = core.KeyNone
	default:
		return script{}, fmt.Errorf("unknown --hold %q (want right, left or none)", hold)
	}
	return sc, nil
}

// frame returns the input for frame i. Frame 0 starts the run.
func (s script) frame(i int) core.InputFrame {
	f := core.NewInputFrame()
	if i == 0 {
		f.Press(core.KeyStart)
		return f
	}
	if s.hold != core.KeyNone {
		f.Hold(s.hold)
	}
	if s.jumpEvery > 0 && i%s.jumpEvery == 0 {
		f.Press(core.KeyUp)
	}
	return f
}

// simulate steps game with the scripted input until the run ends or
// maxFrames frames have run, and returns the number of frames run.
// Every frame is appended to trace when it is not nil.
func simulate(game *eggrun.Game, sc script, maxFrames int, dt float64, trace *layout.TraceWriter, logger *log.Logger) (int, error) {
	for i := 0; i < maxFrames; i++ {
		events := game.ProcessInput(sc.frame(i))
		events = append(events, game.Update(dt)...)

		for _, ev := range events {
			logger.Debug("event", "frame", i, "event", ev.String())
		}

		snap := game.Snapshot()
		if trace != nil {
			if err := trace.Write(layout.TraceFrom(i, snap, events)); err != nil {
				return i, err
			}
		}

		if over, ok := game.State().(eggrun.GameOverState); ok {
			logger.Info("run over", "frame", i, "reason", over.Reason.String())
			return i + 1, nil
		}
	}
	return maxFrames, nil
}
