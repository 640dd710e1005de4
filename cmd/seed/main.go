// Command seed writes the default catalog document.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jojongai/portfolio/internal/logging"
	"github.com/jojongai/portfolio/internal/store"
)

func main() {
	var (
		out   string
		force bool
	)
	cmd := &cobra.Command{
		Use:           "seed",
		Short:         "Write the default catalog document",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(out, force)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "data/playlists.json", "output file")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}

func run(out string, force bool) error {
	log := logging.Console("info")

	if _, err := os.Stat(out); err == nil && !force {
		return fmt.Errorf("%s exists; use -f to overwrite", out)
	}

	playlists := store.Seed()
	data, err := store.EncodeDocument(playlists)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := store.WriteFileAtomic(out, data); err != nil {
		return err
	}
	log.Info().Str("path", out).Int("playlists", len(playlists)).Msg("catalog written")
	return nil
}
