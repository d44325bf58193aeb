package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crystal-run/internal/platform/tui"
	"github.com/vovakirdan/crystal-run/internal/registry"
	"github.com/vovakirdan/crystal-run/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  Space/Up   - Jump (hold to float a little longer)
  P          - Pause
  R          - Restart (after game over)
  Esc/B      - Leave (when paused or over)
  Q/Ctrl+C   - Quit

Terminals send no key release, so a jump key counts as held for about half
a second after its last press or auto-repeat. A quick tap therefore floats
as long as a short hold; keep the key down past the repeat delay to float
longer.

Difficulty presets (used when difficulty is enabled, as in survival):
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  crystalrun play crystal
  crystalrun play crystal-survival --preset hard
  crystalrun play crystal --config ./my-runner.yaml
  crystalrun play crystal --seed 42 --log-file ./run.log --debug`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'crystalrun list' to see available modes", gameID)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID, gameOptions(logger))
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		logger.Warn("could not open runs database", "err", err)
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not open runs database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
