package main

import (
	"github.com/spf13/cobra"

	"codeberg.org/snonux/quotecast/internal/cli"
	"codeberg.org/snonux/quotecast/internal/processor"
)

func newExtractCommand(flags *cli.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <transcript-file>",
		Short: "Extract notable quotes from a transcript",
		Long: `Extract sends a transcript to the configured LLM and saves the scored
quotes as a JSON array. A .json transcript keeps segment timestamps, any
other file is read as plain text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proc := processor.NewProcessor(flags)
			return proc.RunExtract(cmd.Context(), args[0])
		},
	}

	cmd.Flags().StringVarP(&flags.OutputPath, "output", "o", "", "Quotes output path (default quotes.json next to the transcript)")
	cmd.Flags().IntVarP(&flags.NumQuotes, "num", "n", flags.NumQuotes, "Number of quotes to request")
	cmd.Flags().Float64Var(&flags.MinScore, "min-score", 0, "Drop quotes scoring below this")
	cmd.Flags().IntVar(&flags.MaxCount, "max-count", 0, "Keep at most this many quotes, 0 for all")

	return cmd
}
