package main

import (
	"github.com/spf13/cobra"

	"codeberg.org/snonux/quotecast/internal/cli"
	"codeberg.org/snonux/quotecast/internal/processor"
)

func newTranscribeCommand(flags *cli.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transcribe <audio-file>",
		Short: "Transcribe a podcast episode to text",
		Long: `Transcribe converts an audio file to text using a hosted speech model.
The transcript is written both as plain text and as JSON with segment
timestamps.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proc := processor.NewProcessor(flags)
			return proc.RunTranscribe(cmd.Context(), args[0])
		},
	}

	cmd.Flags().StringVarP(&flags.OutputPath, "output", "o", "", "Transcript output path (default <output-dir>/<episode>/transcript.txt)")
	cmd.Flags().StringVar(&flags.OutputDir, "output-dir", "output", "Base output directory")
	cmd.Flags().StringVarP(&flags.SpeechModel, "model", "m", flags.SpeechModel, "Speech-to-text model")
	cmd.Flags().StringVarP(&flags.Language, "language", "l", "", "ISO language hint, empty for auto-detect")

	return cmd
}
