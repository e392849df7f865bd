package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/platform/spectate"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

const soundVolume = 0.3

var flagSpectate string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing straight away, skipping the menu.

Controls:
  Left/A/H   - Move paddle left
  Right/D/L  - Move paddle right
  Mouse      - Paddle follows the pointer
  P/Space    - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a screenshot to ~/.breakout/screenshots
  Q/Ctrl+C   - Quit

Spectators can watch the game as a stream of JSON frames:
  breakout play --spectate :8080
  websocat ws://localhost:8080/ws

Examples:
  breakout play
  breakout play --seed 42 --mute
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve spectator frames over websocket on this address")
}

func runPlay(_ *cobra.Command, args []string) error {
	var gameID string
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if errors.Is(err, registry.ErrUnknownGame) {
		return fmt.Errorf("%w (run 'breakout list' to see available games)", err)
	}
	if err != nil {
		return err
	}

	logger, closeLog := newSessionLogger()
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	sounds, cleanup := newSounds(logger, flagMute)
	defer cleanup()

	opts := tui.Options{
		Sounds:     sounds,
		Player:     localPlayer(),
		LatchTicks: flagLatch,
		Logger:     logger,
	}

	if flagSpectate != "" {
		hub := spectate.NewHub(logger.WithPrefix("spectate"), 16)
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			defer close(done)
			if err := hub.ListenAndServe(ctx, flagSpectate); err != nil {
				logger.Error("spectator server stopped", "err", err)
			}
		}()
		defer func() {
			cancel()
			<-done
		}()
		opts.Spectators = hub
	}

	return tui.Run(game, store, runtimeConfig(), opts)
}

// newSounds opens the speaker unless muted. Without an audio device the
// game plays silently. The cleanup func is never nil.
func newSounds(logger *log.Logger, mute bool) (audio.Player, func()) {
	if mute {
		return audio.Nop{}, func() {}
	}

	sm := audio.NewSoundManager(soundVolume)
	if err := sm.Initialize(); err != nil {
		logger.Warn("sound disabled", "err", err)
		return audio.Nop{}, func() {}
	}
	return sm, sm.Cleanup
}
