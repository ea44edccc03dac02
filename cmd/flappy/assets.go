package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/assets"
)

var (
	flagExport    string
	flagOverwrite bool
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "List or export the game assets",
	Long: `Show every asset and whether it is loaded from the development
directory (--assets, FLAPPY_ASSETS, default ./assets) or from the bundle
built into the binary.

With --export, write the bundled assets to a directory so they can be
edited and used as a development directory.

Examples:
  flappy assets
  flappy assets --assets ./my-assets
  flappy assets --export ./assets`,
	Args: cobra.NoArgs,
	RunE: runAssets,
}

func init() {
	assetsCmd.Flags().StringVar(&flagExport, "export", "", "Write the bundled assets into this directory")
	assetsCmd.Flags().BoolVar(&flagOverwrite, "overwrite", false, "Replace existing files when exporting")
}

func runAssets(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	res := assets.NewResolver(flagAssets, logger)

	if flagExport != "" {
		written, err := res.Export(flagExport, flagOverwrite)
		if err != nil {
			return err
		}
		for _, p := range written {
			fmt.Println(p)
		}
		fmt.Printf("Exported %d files to %s\n", len(written), flagExport)
		return nil
	}

	entries, err := res.List()
	if err != nil {
		return err
	}
	printAssets(os.Stdout, res.Dir(), entries)
	return nil
}

// printAssets writes the asset table.
func printAssets(w io.Writer, dir string, entries []assets.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No assets bundled.")
		return
	}

	fmt.Fprintf(w, "Development directory: %s\n\n", dir)

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, e := range entries {
		if n := len(e.Kind) + 1 + len(e.Name); n > maxNameLen {
			maxNameLen = n
		}
	}

	fmt.Fprintf(w, "  %-*s  %-6s  %s\n", maxNameLen, "Name", "Origin", "Size")
	fmt.Fprintf(w, "  %-*s  %-6s  %s\n", maxNameLen, "----", "------", "----")
	for _, e := range entries {
		fmt.Fprintf(w, "  %-*s  %-6s  %d\n", maxNameLen, e.Kind+"/"+e.Name, e.Origin, e.Size)
	}
}
