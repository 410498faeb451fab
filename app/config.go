package app

import (
	"github.com/spf13/cobra"

	"github.com/cms-api/cms-api/internal/config"
)

func init() { //nolint: gochecknoinits
	configCmd.Flags().StringVar(
		&envFile,
		"env-file",
		config.DefaultEnvFile,
		"Path to an optional env file overlaying the process environment",
	)

	configCmd.Flags().BoolVar(
		&dumpJSON,
		"json",
		false,
		"Print the settings as JSON instead of TOML",
	)

	rootCmd.AddCommand(configCmd)
}

var (
	dumpJSON bool

	// configCmd prints the effective settings after merging all sources.
	// The secret key is redacted in the output.
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Print the effective cms-api settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.Load(envFile)
			if err != nil {
				return err
			}

			dump := config.Dump
			if dumpJSON {
				dump = config.DumpJSON
			}

			out, err := dump(settings)
			if err != nil {
				return err
			}

			cmd.Println(out)

			return nil
		},
	}
)
