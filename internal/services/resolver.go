package services

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"fstruct/internal/domain"
)

var ErrVersionLimit = errors.New("version limit reached")

// FSResolver probes the live filesystem on every call; nothing is cached so
// versions created by other processes are always observed.
type FSResolver struct {
	maxVersion int
	lstat      func(string) (fs.FileInfo, error)
}

func NewFSResolver(maxVersion int) *FSResolver {
	if maxVersion < 0 {
		maxVersion = 0
	}
	return &FSResolver{maxVersion: maxVersion, lstat: os.Lstat}
}

// ResolveNextVersion uses an unbounded resolver.
func ResolveNextVersion(outputRoot, shot string) (domain.Version, error) {
	return NewFSResolver(0).ResolveNextVersion(outputRoot, shot)
}

// ResolveNextVersion returns the smallest v such that <shot>_roto_v<v> does
// not exist under outputRoot. A missing outputRoot resolves to v001. Any
// entry with the candidate name counts as taken, directory or not.
func (resolver *FSResolver) ResolveNextVersion(outputRoot, shot string) (domain.Version, error) {
	version := domain.FirstVersion
	for {
		if resolver.maxVersion > 0 && int(version) > resolver.maxVersion {
			return 0, fmt.Errorf("%w: %s already has %d versions", ErrVersionLimit, shot, resolver.maxVersion)
		}
		candidate := filepath.Join(outputRoot, domain.VersionDirName(shot, version))
		taken, err := resolver.exists(candidate)
		if err != nil {
			return 0, err
		}
		if !taken {
			return version, nil
		}
		version++
	}
}

func (resolver *FSResolver) exists(path string) (bool, error) {
	_, err := resolver.lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, &domain.FilesystemError{Op: "check", Path: path, Err: err}
}
