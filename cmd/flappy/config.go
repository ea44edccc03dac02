package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the default configuration as YAML.

Config files are looked up in this order:
  1. --config <path>
  2. ~/.flappy/configs/flappy.yaml
  3. ./configs/flappy.yaml
  4. built-in defaults

Example:
  flappy config > ~/.flappy/configs/flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
