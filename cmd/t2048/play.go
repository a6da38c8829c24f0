package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of 2048.

Controls:
  Arrows/WASD/hjkl - Slide tiles
  P/Esc            - Pause
  R                - New game
  X                - Share score (after the game ends)
  Q/Ctrl+C         - Quit

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 play --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	opts, err := sessionOptions()
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(store, terminalConfig(), opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// sessionOptions builds options for a local session.
func sessionOptions() (tui.Options, error) {
	opts, err := tui.NewOptions(appConfig)
	if err != nil {
		return tui.Options{}, err
	}
	// Logger left unset while the alt screen owns the terminal
	opts.Sharer = tui.NewClipboardSharer(os.Stdout)
	return opts, nil
}
