package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/quotecast/internal/card"
	"codeberg.org/snonux/quotecast/internal/cli"
	"codeberg.org/snonux/quotecast/internal/processor"
)

func newCardsCommand(flags *cli.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards <quotes-file>",
		Short: "Render quote cards from a quotes file",
		Long: fmt.Sprintf(`Cards renders one PNG per quote from a quotes JSON file.

Available styles: %s`, strings.Join(card.Styles(), ", ")),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proc := processor.NewProcessor(flags)
			return proc.RunCards(args[0])
		},
	}

	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", "", "Card output directory (default cards/ next to the quotes file)")
	cmd.Flags().StringVarP(&flags.Style, "style", "s", flags.Style, "Card style")
	cmd.Flags().StringVarP(&flags.Title, "title", "t", flags.Title, "Card title text")
	cmd.Flags().Float64Var(&flags.MinScore, "min-score", 0, "Drop quotes scoring below this")
	cmd.Flags().IntVar(&flags.MaxCount, "max-count", 0, "Render at most this many cards, 0 for all")

	return cmd
}
