package preflight

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

// MinFreeBytes is the free space below which the disk check fails.
const MinFreeBytes uint64 = 64 * 1024 * 1024

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll checks the base path and, when non-empty, the lock directory.
func RunAll(basePath, lockDir string) []Result {
	var results []Result
	if strings.TrimSpace(basePath) == "" {
		results = append(results, Result{Name: "Base path", Detail: "not set (use --base or base_path in config)"})
	} else {
		access := CheckDirectoryAccess("Base path", basePath)
		results = append(results, access)
		if access.Passed {
			results = append(results, CheckFreeSpace("Free space", basePath))
		}
	}
	if strings.TrimSpace(lockDir) != "" {
		results = append(results, CheckLockDir("Lock directory", lockDir))
	}
	return results
}

// AllPassed reports whether every result passed.
func AllPassed(results []Result) bool {
	for _, result := range results {
		if !result.Passed {
			return false
		}
	}
	return true
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := accessible(path); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckFreeSpace reports available bytes on the filesystem holding path.
func CheckFreeSpace(name, path string) Result {
	free, err := freeBytes(path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("unavailable (%v)", err)}
	}
	detail := fmt.Sprintf("%s available", humanize.IBytes(free))
	if free < MinFreeBytes {
		return Result{Name: name, Detail: detail + fmt.Sprintf(" (below %s)", humanize.IBytes(MinFreeBytes))}
	}
	return Result{Name: name, Passed: true, Detail: detail}
}

// CheckLockDir passes when dir is a writable directory, or when it is missing
// and its nearest existing ancestor is writable. It never creates anything.
func CheckLockDir(name, dir string) Result {
	dir = filepath.Clean(dir)
	existing := nearestExisting(dir)
	if existing == dir {
		return CheckDirectoryAccess(name, dir)
	}
	ancestor := CheckDirectoryAccess(name, existing)
	if !ancestor.Passed {
		ancestor.Detail = fmt.Sprintf("%s: cannot be created: %s", dir, ancestor.Detail)
		return ancestor
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (created on first use under %s)", dir, existing)}
}

func nearestExisting(path string) string {
	current := path
	for {
		if _, err := os.Lstat(current); err == nil {
			return current
		}
		parent := filepath.Dir(current)
		if parent == current {
			return current
		}
		current = parent
	}
}
