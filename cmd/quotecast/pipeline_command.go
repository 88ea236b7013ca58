package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/quotecast/internal/cli"
	"codeberg.org/snonux/quotecast/internal/processor"
)

func newPipelineCommand(flags *cli.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pipeline [audio-file]",
		Short: "Run the full pipeline: transcribe, extract, render",
		Long: `Pipeline runs all three stages for an episode and records the result
in the episode library. With --batch it processes every episode listed
in the batch file, skipping episodes that are already complete.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proc := processor.NewProcessor(flags)

			if flags.BatchFile != "" {
				return proc.ProcessBatch(cmd.Context())
			}
			if len(args) == 0 {
				return fmt.Errorf("an audio file or --batch is required")
			}
			return proc.RunPipeline(cmd.Context(), args[0], flags.Title)
		},
	}

	cmd.Flags().StringVarP(&flags.BatchFile, "batch", "b", "", "Batch file listing episodes, one per line")
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", "output", "Base output directory")
	cmd.Flags().StringVar(&flags.SpeechModel, "speech-model", flags.SpeechModel, "Speech-to-text model")
	cmd.Flags().StringVarP(&flags.Language, "language", "l", "", "ISO language hint, empty for auto-detect")
	cmd.Flags().IntVarP(&flags.NumQuotes, "num", "n", flags.NumQuotes, "Number of quotes to request")
	cmd.Flags().Float64Var(&flags.MinScore, "min-score", 7.0, "Render only quotes scoring at least this")
	cmd.Flags().IntVar(&flags.MaxCount, "max-count", 0, "Render at most this many cards, 0 for all")
	cmd.Flags().StringVarP(&flags.Style, "style", "s", flags.Style, "Card style")
	cmd.Flags().StringVarP(&flags.Title, "title", "t", flags.Title, "Card title text")

	return cmd
}
