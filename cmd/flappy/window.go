package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play with the original sprites.

Controls:
  Space/Up   - Flap (restarts after game over)
  R          - Restart (after game over)
  H          - Toggle hitboxes
  Esc/Q      - Quit

Examples:
  flappy window
  flappy window --scale 1.5`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the 400x600 playfield")
}

func runWindow(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	g, _, closeSounds, err := newGame(cmd, logger)
	if err != nil {
		return err
	}
	defer closeSounds()

	return window.Run(g, window.Options{Scale: flagScale, Logger: logger})
}
