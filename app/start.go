package app

import (
	"github.com/spf13/cobra"

	"github.com/cms-api/cms-api/internal/config"
	"github.com/cms-api/cms-api/internal/daemon"
	"github.com/cms-api/cms-api/internal/logger"
)

func init() { //nolint: gochecknoinits
	startCmd.Flags().StringVar(
		&envFile,
		"env-file",
		config.DefaultEnvFile,
		"Path to an optional env file overlaying the process environment",
	)

	rootCmd.AddCommand(startCmd)
}

var (
	envFile string // Path to the optional env file

	cfg config.Settings

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the cms-api web service",
		PreRunE: func(_ *cobra.Command, _ []string) error {
			var err error

			if cfg, err = config.Load(envFile); err != nil {
				return err
			}

			return logger.Init(cfg.LoggerConfig())
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			daemon := daemon.New(&cfg)
			if err := daemon.Start(); err != nil {
				return err
			}

			return nil
		},
	}
)
