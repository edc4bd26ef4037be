package cmd

import "github.com/spf13/cobra"

func Execute() error {
	rootCmd, cleanup := newRootCmd()
	defer cleanup()

	return rootCmd.Execute()
}

// newRootCmd returns the command tree and a cleanup that releases the store
// connections it opened, whether or not the command succeeded.
func newRootCmd() (*cobra.Command, func()) {
	rootCmd := &cobra.Command{
		Use:           "neon",
		Short:         "Neon boards panel: browse per-account boards",
		Long:          "neon loads the accounts you can see, picks the first one, and shows the boards stored for it. Run `neon panel` for the interactive view or use the boards subcommands from scripts.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd, func() {}
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newAccountCmd(app),
		newWhoamiCmd(app),
		newBoardsCmd(app),
		newPanelCmd(app),
	)

	return rootCmd, app.close
}
