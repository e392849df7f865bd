package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var (
	flagSimFrames int
	flagSimOffset float64
	flagSimEvents bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless autopilot game",
	Long: `Play a game without a terminal, steering the paddle with the
autopilot, and print a summary. The same --seed and --config always
produce the same game and the same state hash.

Examples:
  breakout sim --seed 7
  breakout sim --seed 7 --frames 2000 --events
  breakout sim --offset 20 --config ./fast.toml`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimFrames, "frames", 100000, "Maximum ticks to simulate")
	simCmd.Flags().Float64Var(&flagSimOffset, "offset", 10, "Autopilot aim offset from the paddle center")
	simCmd.Flags().BoolVar(&flagSimEvents, "events", false, "Print every event")
}

var eventKinds = []core.EventKind{
	core.EventWallHit,
	core.EventPaddleHit,
	core.EventBrickHit,
	core.EventLifeLost,
	core.EventLevelUp,
	core.EventGameWon,
	core.EventGameLost,
}

func runSim(_ *cobra.Command, _ []string) error {
	if flagSimFrames <= 0 {
		return fmt.Errorf("--frames must be positive, got %d", flagSimFrames)
	}

	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rng := breakout.NewSimpleRNG(seed)
	start := breakout.NewState(cfg, rng)
	pilot := breakout.Autopilot{Offset: flagSimOffset}
	final, events := pilot.Run(start, rng, flagSimFrames)

	if flagSimEvents {
		for _, ev := range events {
			if ev.Kind == core.EventBrickHit {
				fmt.Printf("%8d  %-9s  row=%d col=%d +%d\n", ev.Frame, ev.Kind, ev.Row, ev.Col, ev.Points)
				continue
			}
			fmt.Printf("%8d  %s\n", ev.Frame, ev.Kind)
		}
		fmt.Println()
	}

	p := final.Progress
	snap := final.Snapshot()
	outcome := p.Outcome.String()
	if !p.Over {
		outcome = "running"
	}

	fmt.Printf("Seed:    %d\n", seed)
	fmt.Printf("Frames:  %d (%s at %d fps)\n", final.Frame,
		time.Duration(final.Frame)*time.Second/time.Duration(flagFPS), flagFPS)
	fmt.Printf("Outcome: %s\n", outcome)
	fmt.Printf("Score:   %d\n", p.Score)
	fmt.Printf("Lives:   %d\n", p.Lives)
	fmt.Printf("Level:   %d/%d\n", core.Min(p.Level, cfg.Gameplay.MaxLevel), cfg.Gameplay.MaxLevel)
	fmt.Printf("Bricks:  %d left\n", snap.BricksRemaining())
	fmt.Println()

	byKind := make(map[core.EventKind]int, len(eventKinds))
	for _, ev := range events {
		byKind[ev.Kind]++
	}
	for _, k := range eventKinds {
		fmt.Printf("  %-9s %d\n", k, byKind[k])
	}
	fmt.Println()
	fmt.Printf("Hash:    %016x\n", snap.Hash())
	return nil
}
