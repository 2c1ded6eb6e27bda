package services

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"fstruct/internal/domain"
)

const deliverableCount = 4

// ListVersions reports every <shot>_roto_vNNN entry under outputRoot, ordered
// by version. Entries that are not directories (or links to one) are listed
// with Directory unset since they still occupy the version. A missing
// outputRoot yields no entries.
func ListVersions(outputRoot, shot string) ([]VersionEntry, error) {
	entries, err := os.ReadDir(outputRoot)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &domain.FilesystemError{Op: "list", Path: outputRoot, Err: err}
	}

	prefix := shot + "_roto_v"
	versions := []VersionEntry{}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		version, ok := parseVersionSuffix(strings.TrimPrefix(name, prefix))
		if !ok || domain.VersionDirName(shot, version) != name {
			continue
		}
		path := filepath.Join(outputRoot, name)
		item := VersionEntry{
			Version: version,
			Name:    name,
			Path:    path,
		}
		if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
			item.Directory = true
			item.ModTime = info.ModTime()
			item.Deliverables = countDeliverables(path, shot, version)
		} else if info, infoErr := entry.Info(); infoErr == nil {
			item.ModTime = info.ModTime()
		}
		versions = append(versions, item)
	}
	sort.Slice(versions, func(i, j int) bool {
		return versions[i].Version < versions[j].Version
	})
	return versions, nil
}

func parseVersionSuffix(suffix string) (domain.Version, bool) {
	if len(suffix) < 3 {
		return 0, false
	}
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	version, err := domain.ParseVersion(suffix)
	if err != nil {
		return 0, false
	}
	return version, true
}

func countDeliverables(versionPath, shot string, version domain.Version) int {
	count := 0
	for _, name := range domain.DeliverableNames(shot, version) {
		info, err := os.Stat(filepath.Join(versionPath, name))
		if err == nil && info.IsDir() {
			count++
		}
	}
	return count
}
