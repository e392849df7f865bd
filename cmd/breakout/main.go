// breakout is a terminal Breakout game with high scores, remote play over
// SSH and a headless simulator.
//
// Usage:
//
//	breakout                   - Start the menu
//	breakout play              - Play straight away
//	breakout serve             - Start SSH server for remote play
//	breakout scores            - Show high scores
//	breakout sim               - Run a headless autopilot game
//	breakout config            - Print the effective configuration
//	breakout list              - List available games
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.breakout/scores.db)
//	--config <path>     - Load a YAML or TOML game configuration
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagMute     bool
	flagLatch    int

	logLevel = log.InfoLevel
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - bounce a ball, break the bricks",
	Long: `Breakout in your terminal. Steer the paddle with the arrow keys,
A/D, H/L or the mouse and clear five levels of bricks before your
three lives run out.

Available commands:
  play     - Play straight away
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Run a headless autopilot game
  config   - Print the effective configuration
  list     - Show all available games

Examples:
  breakout
  breakout play --seed 42
  breakout play --config ./breakout.toml
  breakout serve --ssh :2222
  breakout sim --seed 7`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.breakout/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML game config")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().IntVar(&flagLatch, "latch", tui.DefaultLatchTicks, "Ticks a direction key keeps the paddle moving")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// setup validates the global flags and checks the game configuration
// once, so a bad --config fails before the terminal is taken over.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q", flagLogLevel)
	}
	logLevel = level

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	if _, err := config.LoadBreakout(flagConfig); err != nil {
		return err
	}
	breakout.SetConfigPath(flagConfig)
	return nil
}

// newLogger creates a stderr logger for commands that keep the terminal.
func newLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           logLevel,
	})
}

// newSessionLogger writes to ~/.breakout/breakout.log, since stderr
// would draw over the game screen.
func newSessionLogger() (*log.Logger, func()) {
	var w io.Writer = io.Discard
	closeLog := func() {}

	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".breakout")
		if err := os.MkdirAll(dir, 0o755); err == nil {
			f, err := os.OpenFile(filepath.Join(dir, "breakout.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
			if err == nil {
				w = f
				closeLog = func() { f.Close() }
			}
		}
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
		Level:           logLevel,
	}), closeLog
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. Games still work without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "err", err)
		return nil
	}
	return store
}

// runMenu starts the local menu: play, high scores or quit.
func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog := newSessionLogger()
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	sounds, cleanup := newSounds(logger, flagMute)
	defer cleanup()

	return tui.RunSession(store, runtimeConfig(), tui.Options{
		Sounds:     sounds,
		Player:     localPlayer(),
		LatchTicks: flagLatch,
		Logger:     logger,
	})
}

// localPlayer is the name stored with local results.
func localPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
