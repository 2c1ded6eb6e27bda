package services

import (
	"path/filepath"
	"time"

	"fstruct/internal/domain"
)

type CreateResult struct {
	ShotRoot    string
	OutputRoot  string
	VersionPath string
	Version     domain.Version
	Created     []string
	Duration    time.Duration
}

// VersionName is the basename of VersionPath, e.g. SHOT_010_roto_v002.
func (result CreateResult) VersionName() string {
	if result.VersionPath == "" {
		return ""
	}
	return filepath.Base(result.VersionPath)
}

type VersionEntry struct {
	Version      domain.Version
	Name         string
	Path         string
	ModTime      time.Time
	Deliverables int
	// Directory is false for a file or dangling link holding the name.
	Directory    bool
}

// Complete reports whether all deliverable folders are present.
func (entry VersionEntry) Complete() bool {
	return entry.Deliverables == deliverableCount
}
