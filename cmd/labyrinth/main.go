// labyrinth is a terminal maze game: escape randomly generated mazes at
// your own pace, race the clock or play an endless run.
//
// Usage:
//
//	labyrinth play [mode]     - Play standard, race or infinite
//	labyrinth menu            - Pick mode and difficulty interactively
//	labyrinth list            - List modes and difficulty tiers
//	labyrinth serve           - Start SSH server for remote play
//	labyrinth print           - Print a maze as ASCII art
//	labyrinth export          - Save a maze as a PNG image
//	labyrinth history         - Show archived rounds
//	labyrinth replay <id>     - Replay an archived round
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible mazes
//	--db <path>         - Set database path (default: ~/.labyrinth/labyrinth.db)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/labyrinth/internal/config"
	"github.com/vovakirdan/labyrinth/internal/core"
	"github.com/vovakirdan/labyrinth/internal/games/labyrinth"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagConfig   string
	flagSprites  string
)

// Shared state prepared before every command runs.
var (
	logger  *log.Logger
	gameCfg config.Config
	sprites labyrinth.SpriteSet
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "labyrinth",
	Short: "Labyrinth - Escape randomly generated mazes in your terminal",
	Long: `Labyrinth is a terminal maze game. Every maze is a perfect maze: exactly
one path connects any two cells, so the exit is always reachable.

Modes:
  standard  - One maze of the chosen difficulty, timed from your first move
  race      - Clear as many mazes as you can before the countdown ends
  infinite  - Endless mazes, each of a random difficulty

Examples:
  labyrinth play
  labyrinth play race
  labyrinth play --difficulty hard --seed 42
  labyrinth menu
  labyrinth print --difficulty medium --seed 7 --solution
  labyrinth serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.labyrinth/labyrinth.db", "Path to round archive database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSprites, "sprites", "", "Path to player sprite YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(replayCmd)
}

// setup applies .env overrides, builds the logger and loads the game config.
func setup(cmd *cobra.Command, _ []string) error {
	env, envErr := config.LoadEnv()
	applyEnv(cmd, env)

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "labyrinth",
		Level:           level,
	})
	if envErr != nil {
		logger.Warn("could not load .env", "error", envErr)
	}

	gameCfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}

	spritePath := flagSprites
	if spritePath == "" {
		spritePath = gameCfg.Sprites.Path
	}
	sprites = labyrinth.LoadSprites(spritePath, logger)
	return nil
}

// applyEnv copies environment overrides into flags the user did not set.
func applyEnv(cmd *cobra.Command, env config.Env) {
	flags := cmd.Flags()
	if env.DBPath != "" && !flags.Changed("db") {
		flagDBPath = env.DBPath
	}
	if env.FPS > 0 && !flags.Changed("fps") {
		flagFPS = env.FPS
	}
	if env.Seed != 0 && !flags.Changed("seed") {
		flagSeed = env.Seed
	}
	if env.LogLevel != "" && !flags.Changed("log-level") {
		flagLogLevel = env.LogLevel
	}
	if env.ConfigPath != "" && !flags.Changed("config") {
		flagConfig = env.ConfigPath
	}
}

// runtimeConfig returns the runtime config for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seedOrNow(),
	}
}

// seedOrNow returns --seed, or a time-based seed when unset.
func seedOrNow() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
