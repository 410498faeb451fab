// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cms-api",
	Short: "cms-api is the backend web service for the CMS",
	Long: `cms-api is the backend web service for the CMS.
It reads its settings from the process environment (optionally overlaid
by a local env file) and serves the public HTTP API.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
