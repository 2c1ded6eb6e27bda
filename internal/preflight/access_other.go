//go:build !(linux || darwin || freebsd)

package preflight

import (
	"errors"
	"os"
	"path/filepath"
)

var errFreeSpaceUnsupported = errors.New("not supported on this platform")

// accessible probes writability by creating and removing a temp directory.
func accessible(path string) error {
	probe, err := os.MkdirTemp(path, ".fstruct-probe-")
	if err != nil {
		return err
	}
	return os.Remove(filepath.Clean(probe))
}

func freeBytes(string) (uint64, error) {
	return 0, errFreeSpaceUnsupported
}
