package main

import (
	"github.com/spf13/cobra"

	"codeberg.org/snonux/quotecast/internal/archive"
	"codeberg.org/snonux/quotecast/internal/cli"
	"codeberg.org/snonux/quotecast/internal/processor"
)

func newLibraryCommand(flags *cli.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "List processed episodes",
		Long: `Library lists all episodes recorded in the catalog with their quote
counts. With --archive the episode output directory is moved to a
timestamped archive directory instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.Archive {
				return archive.ArchiveEpisodes(flags.OutputDir)
			}

			proc := processor.NewProcessor(flags)
			return proc.ListEpisodes()
		},
	}

	cmd.Flags().StringVar(&flags.OutputDir, "output-dir", "output", "Base output directory")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Archive the output directory and exit")

	return cmd
}
