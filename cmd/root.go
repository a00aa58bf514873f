package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "zclarity",
		Short:         "zClarity: structured meeting facilitation from the terminal",
		Long:          "zclarity guides a single-user facilitation session: declare an intent, discuss topics with open questions, record an outcome, and close with a summary. Everything is stored locally.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newNewCmd(app),
		newListCmd(app),
		newSelectCmd(app),
		newDeleteCmd(app),
		newShowCmd(app),
		newIntentCmd(app),
		newStartCmd(app),
		newTopicCmd(app),
		newQuestionCmd(app),
		newOutcomeCmd(app),
		newClosingCmd(app),
		newPendingCmd(app),
		newCloseCmd(app),
		newReopenCmd(app),
		newConfigCmd(app),
	)

	return rootCmd
}
