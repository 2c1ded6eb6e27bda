package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fstruct/internal/app"
	"fstruct/internal/config"
	"fstruct/internal/preflight"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the base path and lock directory before creating trees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			base, err := config.ExpandPath(cfg.BasePath)
			if err != nil {
				return err
			}
			var lockDir string
			if cfg.Lock.Enabled {
				if lockDir, err = app.LockDir(cfg); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintln(out, sectionHeader("Preflight", colorize))
			configState := "defaults (no file)"
			if ctx.configFound {
				configState = ctx.configPath
			}
			fmt.Fprintln(out, infoLine("Config", configState, colorize))

			results := preflight.RunAll(base, lockDir)
			failed := 0
			for _, result := range results {
				if !result.Passed {
					failed++
				}
				fmt.Fprintln(out, checkLine(result.Name, result.Passed, result.Detail, colorize))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d checks failed", failed, len(results))
			}
			return nil
		},
	}
}
