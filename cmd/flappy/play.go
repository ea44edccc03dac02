package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the current terminal.

Controls:
  Space/Up   - Flap (restarts after game over)
  R          - Restart (after game over)
  H          - Toggle hitboxes
  Ctrl+S     - Save a screenshot to ~/.flappy/screenshots
  Q/Ctrl+C   - Quit

The terminal owns stdout while playing, so logs are discarded unless
--log-file is given.

Examples:
  flappy play
  flappy play --seed 42 --mute
  flappy play --config ./my-flappy.yaml --log-file flappy.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	g, cfg, closeSounds, err := newGame(cmd, logger)
	if err != nil {
		return err
	}
	defer closeSounds()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Timing.TickRate,
		Seed:     flagSeed,
	}

	if err := tui.Run(g, rc, tui.WithLogger(logger)); err != nil {
		logger.Error("terminal frontend failed", "error", err)
		return err
	}
	logger.Info("bye", "score", g.Status().Display)
	return nil
}
