package preflight

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckDirectoryAccess(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		path   string
		passed bool
		detail string
	}{
		{name: "ok", path: dir, passed: true, detail: "read/write ok"},
		{name: "missing", path: filepath.Join(dir, "nope"), detail: "does not exist"},
		{name: "file", path: file, detail: "is not a directory"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckDirectoryAccess("Base path", tt.path)
			if result.Passed != tt.passed {
				t.Fatalf("Passed = %v, want %v (%s)", result.Passed, tt.passed, result.Detail)
			}
			if !strings.Contains(result.Detail, tt.detail) {
				t.Fatalf("detail %q does not mention %q", result.Detail, tt.detail)
			}
		})
	}
}

func TestRunAllWithoutBasePath(t *testing.T) {
	results := RunAll("", "")
	if len(results) != 1 || results[0].Passed {
		t.Fatalf("expected a single failing base path result, got %+v", results)
	}
	if AllPassed(results) {
		t.Fatal("AllPassed should be false")
	}
}

func TestRunAllLeavesMissingLockDirAlone(t *testing.T) {
	base := t.TempDir()
	lockDir := filepath.Join(t.TempDir(), "locks")

	results := RunAll(base, lockDir)
	names := []string{}
	for _, result := range results {
		names = append(names, result.Name)
	}
	if len(results) != 3 {
		t.Fatalf("expected base, free space and lock checks, got %v", names)
	}
	if !results[0].Passed || !results[2].Passed {
		t.Fatalf("expected access checks to pass: %+v", results)
	}
	if _, err := os.Stat(lockDir); !os.IsNotExist(err) {
		t.Fatalf("doctor must not create the lock dir, stat err = %v", err)
	}
	if !strings.Contains(results[2].Detail, "created on first use") {
		t.Fatalf("unexpected lock detail %q", results[2].Detail)
	}
}

func TestCheckLockDirUnderFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain.txt")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	result := CheckLockDir("Lock directory", filepath.Join(file, "locks"))
	if result.Passed {
		t.Fatalf("expected failure when the ancestor is a file: %+v", result)
	}
}

func TestCheckLockDirExisting(t *testing.T) {
	dir := t.TempDir()
	if result := CheckLockDir("Lock directory", dir); !result.Passed {
		t.Fatalf("expected existing dir to pass: %+v", result)
	}
}
