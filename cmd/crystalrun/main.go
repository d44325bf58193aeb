// crystalrun is an endless runner through a crystal cave, played in the terminal.
//
// Usage:
//
//	crystalrun list              - List available modes
//	crystalrun play <mode>       - Play a mode
//	crystalrun menu              - Start menu to pick a mode interactively
//	crystalrun serve             - Start SSH server for remote play
//	crystalrun scores <mode>     - Show the best runs for a mode
//	crystalrun sim               - Run a scripted session without a terminal
//
// Global flags:
//
//	--fps <rate>         - Frame tick rate (default: 60)
//	--fixed-rate <rate>  - Fixed simulation tick rate (default: 64)
//	--seed <value>       - RNG seed for reproducible gameplay
//	--db <path>          - Database path (default: ~/.crystalrun/runs.db)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/crystal-run/internal/core"
	"github.com/vovakirdan/crystal-run/internal/registry"

	// Import games to register them
	_ "github.com/vovakirdan/crystal-run/internal/games/crystal"
)

var (
	// Global flags
	flagFPS       int
	flagFixedRate int
	flagSeed      int64
	flagDBPath    string
	flagDebug     bool
	flagLogFile   string
	flagConfig    string
	flagPreset    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crystalrun",
	Short: "Crystal Run - an endless runner in your terminal",
	Long: `Crystal Run is an endless runner through a crystal cave.
Jump over the hexagonal blocks; hold jump to float a little longer.

Available commands:
  list     - Show all available modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View the best runs
  sim      - Run a scripted session without a terminal

Examples:
  crystalrun list
  crystalrun play crystal
  crystalrun play crystal-survival --preset hard
  crystalrun serve --ssh :2222
  crystalrun sim --seconds 30 --jump-every 1.1`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Frame tick rate (frames per second)")
	pf.IntVar(&flagFixedRate, "fixed-rate", 64, "Fixed simulation tick rate (ticks per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.crystalrun/runs.db", "Path to run history database")
	pf.BoolVar(&flagDebug, "debug", false, "Debug logging; ordering faults panic")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	pf.StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger builds the process logger. Terminal commands discard logs
// unless --log-file is set so they do not corrupt the screen; fallback is
// where logs go otherwise.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}

	if flagLogFile != "" {
		path := expandHome(flagLogFile)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("log file: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "crystalrun",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// gameOptions are the registry options derived from global flags.
func gameOptions(logger *log.Logger) registry.Options {
	return registry.Options{
		ConfigPath: flagConfig,
		Preset:     flagPreset,
		Logger:     logger,
	}
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.FrameRate = flagFPS
	cfg.FixedRate = flagFixedRate
	cfg.Seed = flagSeed
	cfg.Debug = flagDebug
	return cfg
}

func expandHome(path string) string {
	if len(path) > 1 && path[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
