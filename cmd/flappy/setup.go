package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/game"
)

// newLogger builds the process logger. Logs go to the --log-file if set,
// otherwise to out.
func newLogger(out io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "flappy",
	})
	return logger, closer, nil
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (config.FlappyConfig, error) {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return config.FlappyConfig{}, err
	}
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}
	if cmd.Flags().Changed("reset-spawn-timer") {
		cfg.Timing.ResetSpawnTimerOnRestart = flagResetSpawnTimer
	}
	if err := cfg.Validate(); err != nil {
		return config.FlappyConfig{}, err
	}
	return cfg, nil
}

// seed returns the --seed value, or a time-based seed when unset.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// checkAssets makes sure every configured asset resolves, so a missing file
// stops the program before any frontend starts.
func checkAssets(res *assets.Resolver, cfg config.FlappyConfig) error {
	var errs []error
	for _, name := range []string{cfg.Bird.Sprite, cfg.Pipes.Sprite, cfg.Ground.Sprite, cfg.Background.Sprite} {
		if _, _, err := res.Open(assets.KindImages, name); err != nil {
			errs = append(errs, err)
		}
	}
	for _, name := range []string{cfg.Sounds.Flap, cfg.Sounds.Point} {
		if _, _, err := res.Open(assets.KindSounds, name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// providers sets up image and sound loading for local play.
func providers(res *assets.Resolver, cfg config.FlappyConfig, logger *log.Logger, mute bool) (assets.ImageProvider, assets.SoundProvider, func()) {
	images := assets.NewImages(res)
	if mute {
		return images, assets.SilentSounds{}, func() {}
	}
	sounds := audio.Open(res, cfg.Sounds.Volume, logger)
	return images, sounds, sounds.Close
}

// newGame loads config and assets and builds a game for local play.
// Any failure here is fatal.
func newGame(cmd *cobra.Command, logger *log.Logger) (*game.Game, config.FlappyConfig, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, cfg, nil, err
	}

	res := assets.NewResolver(flagAssets, logger)
	if err := checkAssets(res, cfg); err != nil {
		return nil, cfg, nil, err
	}

	images, sounds, closeSounds := providers(res, cfg, logger, flagMute)
	s := seed()
	g, err := game.New(cfg, images, sounds, s)
	if err != nil {
		closeSounds()
		return nil, cfg, nil, err
	}
	logger.Info("game ready", "seed", s, "tick_rate", cfg.Timing.TickRate, "assets", res.Dir())
	return g, cfg, closeSounds, nil
}

// reportError prints a command error, with a hint for missing assets.
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	if errors.Is(err, assets.ErrAssetNotFound) {
		fmt.Fprintln(w, "Run 'flappy assets' to see where assets are looked up.")
	}
}
