package main

import (
	"github.com/spf13/cobra"

	"fstruct/internal/app"
	"fstruct/internal/config"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:           "fstruct",
		Short:         "Create VFX shot folder trees (in/mid/out) with a live preview",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	overrides := config.BindFlags(rootCmd.PersistentFlags())
	ctx := newCommandContext(&configFlag, overrides)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if shouldSkipConfig(cmd) {
			return nil
		}
		_, err := ctx.ensureConfig()
		return err
	}
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := ctx.ensureConfig()
		if err != nil {
			return err
		}
		logger, closeLogger, err := ctx.logger(logDiscard)
		if err != nil {
			return err
		}
		defer closeLogger()
		return app.Run(cfg, ctx.configPath, logger)
	}

	rootCmd.AddCommand(newCreateCommand(ctx))
	rootCmd.AddCommand(newPreviewCommand(ctx))
	rootCmd.AddCommand(newVersionsCommand(ctx))
	rootCmd.AddCommand(newDoctorCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
