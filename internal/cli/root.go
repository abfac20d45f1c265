package cli

import (
	"github.com/azoth/docgen/internal/app"
	"github.com/spf13/cobra"
)

var appInstance *app.App

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "docgen",
	Short: "A document generator for Azoth Agence",
	Long: `Docgen creates quotes, purchase orders and invoices and exports them
as styled PDFs.

By default, running docgen without arguments launches the interactive TUI.
Use the generate subcommand for scripted use.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose && appInstance != nil {
			appInstance.SetVerbose()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior: launch TUI
		launchTUI(cmd, args)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetApp sets the app instance for commands to use
func SetApp(a *app.App) {
	appInstance = a
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(generateCmd)
}
