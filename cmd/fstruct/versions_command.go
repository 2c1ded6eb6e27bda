package main

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"fstruct/internal/config"
	"fstruct/internal/domain"
	"fstruct/internal/services"
)

type versionsOutput struct {
	OutputRoot string               `json:"output_root"`
	Next       string               `json:"next"`
	Versions   []versionOutputEntry `json:"versions"`
}

type versionOutputEntry struct {
	Version      string `json:"version"`
	Path         string `json:"path"`
	Deliverables int    `json:"deliverables"`
	Complete     bool   `json:"complete"`
	Directory    bool   `json:"directory"`
}

func newVersionsCommand(ctx *commandContext) *cobra.Command {
	var show, shot string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "versions",
		Short: "List existing roto versions for a shot and the next free one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			req := services.NewCreateRequest(cfg.BasePath, show, shot, cfg.Artist)
			if missing := versionsMissing(req); len(missing) > 0 {
				return &domain.ValidationError{Fields: missing}
			}
			base, err := config.ExpandPath(req.BasePath)
			if err != nil {
				return err
			}
			outputRoot := domain.OutputRoot(domain.ShotRoot(base, req.Identity))

			entries, err := services.ListVersions(outputRoot, req.Identity.Shot)
			if err != nil {
				return err
			}
			next, err := services.NewFSResolver(cfg.MaxVersion).ResolveNextVersion(outputRoot, req.Identity.Shot)
			nextLabel := next.String()
			if err != nil {
				nextLabel = err.Error()
			}

			if jsonOut {
				payload := versionsOutput{OutputRoot: outputRoot, Next: nextLabel, Versions: []versionOutputEntry{}}
				for _, entry := range entries {
					payload.Versions = append(payload.Versions, versionOutputEntry{
						Version:      entry.Version.String(),
						Path:         entry.Path,
						Deliverables: entry.Deliverables,
						Complete:     entry.Complete(),
						Directory:    entry.Directory,
					})
				}
				return writeJSON(cmd, payload)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintf(out, "No versions under %s\n", outputRoot)
			} else {
				rows := make([][]string, 0, len(entries))
				for _, entry := range entries {
					modified := "-"
					if !entry.ModTime.IsZero() {
						modified = humanize.Time(entry.ModTime)
					}
					folder := entry.Name
					if !entry.Directory {
						folder += " (not a directory)"
					}
					rows = append(rows, []string{
						entry.Version.String(),
						folder,
						strconv.Itoa(entry.Deliverables),
						modified,
					})
				}
				headers := []string{"Version", "Folder", "Deliverables", "Modified"}
				fmt.Fprintln(out, renderTable(headers, rows, 3))
			}
			fmt.Fprintf(out, "Next version: %s\n", nextLabel)
			return nil
		},
	}
	cmd.Flags().StringVarP(&show, "show", "s", "", "Show name")
	cmd.Flags().StringVar(&shot, "shot", "", "Shot name")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

// versionsMissing is the create check without the artist, which the output
// tree does not depend on.
func versionsMissing(req services.CreateRequest) []string {
	var missing []string
	for _, field := range req.Missing() {
		if field != domain.FieldArtist {
			missing = append(missing, field)
		}
	}
	return missing
}
