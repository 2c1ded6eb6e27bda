package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"fstruct/internal/app"
	"fstruct/internal/config"
	"fstruct/internal/services"
)

type createOutput struct {
	ShotRoot    string   `json:"shot_root"`
	OutputRoot  string   `json:"output_root"`
	Version     string   `json:"version"`
	VersionPath string   `json:"version_path"`
	Created     []string `json:"created"`
	DurationMS  int64    `json:"duration_ms"`
}

func newCreateCommand(ctx *commandContext) *cobra.Command {
	var show, shot string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create the shot tree and the next roto version folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			req := services.NewCreateRequest(cfg.BasePath, show, shot, cfg.Artist)
			if err := req.Validate(); err != nil {
				return err
			}
			base, err := config.ExpandPath(req.BasePath)
			if err != nil {
				return err
			}
			req.BasePath = base

			logger, closeLogger, err := ctx.logger(logStderr)
			if err != nil {
				return err
			}
			defer closeLogger()

			builder, err := app.NewBuilder(cfg)
			if err != nil {
				return err
			}
			result, err := builder.CreateShotTree(cmd.Context(), req)
			if err != nil {
				logger.Error("create failed",
					slog.String("base", req.BasePath),
					slog.String("show", req.Identity.Show),
					slog.String("shot", req.Identity.Shot),
					slog.Any("error", err),
				)
				return fmt.Errorf("failed to create folders: %w", err)
			}
			logger.Debug("shot tree created",
				slog.String("version_path", result.VersionPath),
				slog.Int("created", len(result.Created)),
				slog.Duration("duration", result.Duration),
			)

			if jsonOut {
				created := result.Created
				if created == nil {
					created = []string{}
				}
				return writeJSON(cmd, createOutput{
					ShotRoot:    result.ShotRoot,
					OutputRoot:  result.OutputRoot,
					Version:     result.Version.String(),
					VersionPath: result.VersionPath,
					Created:     created,
					DurationMS:  result.Duration.Milliseconds(),
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Project created: %s\n", filepath.Dir(result.VersionPath))
			fmt.Fprintf(out, "OUT: %s\n", result.VersionName())
			return nil
		},
	}
	cmd.Flags().StringVarP(&show, "show", "s", "", "Show name")
	cmd.Flags().StringVar(&shot, "shot", "", "Shot name")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
