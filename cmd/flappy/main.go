// flappy is a Flappy Bird clone for the terminal, a desktop window and SSH.
//
// Usage:
//
//	flappy [play]          - Play in the terminal (default)
//	flappy window          - Play in a desktop window
//	flappy serve           - Start SSH server for remote play
//	flappy assets          - Show where every asset resolves from
//	flappy config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>           - Override the tick rate (default: from config, 60)
//	--seed <value>         - Set RNG seed for reproducible pipes
//	--config <path>        - Use a custom config YAML
//	--assets <dir>         - Development asset directory (default: ./assets)
//	--mute                 - Disable sounds
//	--log-level <level>    - debug, info, warn or error
//	--log-file <path>      - Write logs to a file
//	--reset-spawn-timer    - Restart the pipe timer on every restart
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var (
	// Global flags
	flagFPS             int
	flagSeed            int64
	flagConfig          string
	flagAssets          string
	flagMute            bool
	flagLogLevel        string
	flagLogFile         string
	flagResetSpawnTimer bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Flap through an endless row of pipes. Each pipe pair passed is worth
one point; touching a pipe or the ground ends the round.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  assets   - List or export the game assets
  config   - Print the default configuration

Examples:
  flappy
  flappy play --seed 42
  flappy window --scale 1.5
  flappy serve --ssh :2222
  flappy config > ~/.flappy/configs/flappy.yaml`,
	RunE:          runPlay,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	flags.StringVar(&flagAssets, "assets", config.GetEnv("FLAPPY_ASSETS", "assets"), "Development asset directory, checked before the bundled assets")
	flags.BoolVar(&flagMute, "mute", false, "Disable sounds")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	flags.BoolVar(&flagResetSpawnTimer, "reset-spawn-timer", false, "Start a fresh pipe interval on every restart")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(configCmd)
}
