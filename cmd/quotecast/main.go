package main

import (
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/quotecast/internal/cli"
	"codeberg.org/snonux/quotecast/internal/models"
)

func main() {
	flags := cli.NewFlags()

	rootCmd := cli.CreateRootCommand(flags)

	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if flags.ListModels {
			lister := models.NewLister(cli.GetOpenAIKey())
			return lister.ListAvailableModels()
		}
		return cmd.Help()
	}

	rootCmd.AddCommand(newTranscribeCommand(flags))
	rootCmd.AddCommand(newExtractCommand(flags))
	rootCmd.AddCommand(newCardsCommand(flags))
	rootCmd.AddCommand(newPipelineCommand(flags))
	rootCmd.AddCommand(newLibraryCommand(flags))
	rootCmd.AddCommand(newConfigCommand(flags))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
