package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fstruct/internal/domain"
	"fstruct/internal/services"
)

type cliTestEnv struct {
	base       string
	configPath string
}

func setupCLITestEnv(t *testing.T) cliTestEnv {
	t.Helper()
	root := t.TempDir()
	base := filepath.Join(root, "projects")
	if err := os.MkdirAll(base, 0o755); err != nil {
		t.Fatalf("mkdir base: %v", err)
	}
	configPath := filepath.Join(root, "config.toml")
	content := fmt.Sprintf("base_path = %q\nartist = \"jane\"\n\n[lock]\nenabled = true\ndir = %q\n\n[logging]\nlevel = \"error\"\n",
		base, filepath.Join(root, "locks"))
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return cliTestEnv{base: base, configPath: configPath}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q\noutput:\n%s", needle, haystack)
	}
}

func TestCreateCommandAllocatesSequentialVersions(t *testing.T) {
	env := setupCLITestEnv(t)
	outDir := filepath.Join(env.base, "ShowA", "SHOT_010", "out")

	stdout, _, err := runCLI(t, []string{"create", "--show", "ShowA", "--shot", "SHOT_010"}, env.configPath)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	requireContains(t, stdout, "Project created: "+outDir)
	requireContains(t, stdout, "OUT: SHOT_010_roto_v001")

	for _, rel := range []string{
		filepath.Join("in", "plates"),
		filepath.Join("mid", "jane", "nuke", "scripts"),
		filepath.Join("out", "SHOT_010_roto_v001", "SHOT_010_roto_v001_nuke_script"),
	} {
		info, err := os.Stat(filepath.Join(env.base, "ShowA", "SHOT_010", rel))
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s: %v", rel, err)
		}
	}

	stdout, _, err = runCLI(t, []string{"create", "--show", "ShowA", "--shot", "SHOT_010"}, env.configPath)
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	requireContains(t, stdout, "OUT: SHOT_010_roto_v002")
}

func TestCreateCommandFlagOverridesConfigArtist(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"create", "--show", "S", "--shot", "X", "--artist", "bob"}, env.configPath); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := os.Stat(filepath.Join(env.base, "S", "X", "mid", "bob")); err != nil {
		t.Fatalf("expected artist override directory: %v", err)
	}
	if _, err := os.Stat(filepath.Join(env.base, "S", "X", "mid", "jane")); !os.IsNotExist(err) {
		t.Fatalf("config artist should not be used, stat err = %v", err)
	}
}

func TestCreateCommandReportsMissingFields(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"create", "--shot", "  "}, env.configPath)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %T: %v", err, err)
	}
	requireContains(t, err.Error(), "missing info: please fill Show and Shot")

	entries, readErr := os.ReadDir(env.base)
	if readErr != nil {
		t.Fatalf("read base: %v", readErr)
	}
	if len(entries) != 0 {
		t.Fatalf("expected nothing created, found %d entries", len(entries))
	}
}

func TestCreateCommandJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, err := runCLI(t, []string{"create", "--show", "ShowA", "--shot", "SHOT_010", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("create --json: %v", err)
	}
	var payload createOutput
	if err := json.Unmarshal([]byte(stdout), &payload); err != nil {
		t.Fatalf("decode: %v\n%s", err, stdout)
	}
	if payload.Version != "v001" {
		t.Fatalf("version = %q, want v001", payload.Version)
	}
	if filepath.Base(payload.VersionPath) != "SHOT_010_roto_v001" {
		t.Fatalf("version path = %q", payload.VersionPath)
	}
	if len(payload.Created) != 14 {
		t.Fatalf("created %d directories, want 14", len(payload.Created))
	}
}

func TestPreviewCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, err := runCLI(t, []string{"preview"}, env.configPath)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	requireContains(t, stdout, services.EmptyPreviewMessage)

	stdout, _, err = runCLI(t, []string{"preview", "--shot", "SHOT_010", "--artist", ""}, env.configPath)
	if err != nil {
		t.Fatalf("preview with shot: %v", err)
	}
	requireContains(t, stdout, services.PlaceholderShow)
	requireContains(t, stdout, services.PlaceholderArtist)
	requireContains(t, stdout, "SHOT_010_roto_v001_matte_02")

	entries, err := os.ReadDir(env.base)
	if err != nil {
		t.Fatalf("read base: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("preview must not touch disk, found %d entries", len(entries))
	}
}

func TestVersionsCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, err := runCLI(t, []string{"versions", "--show", "ShowA", "--shot", "SHOT_010"}, env.configPath)
	if err != nil {
		t.Fatalf("versions: %v", err)
	}
	requireContains(t, stdout, "No versions under")
	requireContains(t, stdout, "Next version: v001")

	for i := 0; i < 2; i++ {
		if _, _, err := runCLI(t, []string{"create", "--show", "ShowA", "--shot", "SHOT_010"}, env.configPath); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	stdout, _, err = runCLI(t, []string{"versions", "--show", "ShowA", "--shot", "SHOT_010"}, env.configPath)
	if err != nil {
		t.Fatalf("versions: %v", err)
	}
	requireContains(t, stdout, "SHOT_010_roto_v001")
	requireContains(t, stdout, "SHOT_010_roto_v002")
	requireContains(t, stdout, "Next version: v003")
}

func TestVersionsCommandHonorsMaxVersion(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"create", "--show", "S", "--shot", "X"}, env.configPath); err != nil {
		t.Fatalf("create: %v", err)
	}
	stdout, _, err := runCLI(t, []string{"versions", "--show", "S", "--shot", "X", "--max-version", "1"}, env.configPath)
	if err != nil {
		t.Fatalf("versions: %v", err)
	}
	requireContains(t, stdout, services.ErrVersionLimit.Error())

	_, _, err = runCLI(t, []string{"create", "--show", "S", "--shot", "X", "--max-version", "1"}, env.configPath)
	if err == nil {
		t.Fatal("expected version limit error")
	}
	requireContains(t, err.Error(), "failed to create folders")
}

func TestDoctorCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, _ := runCLI(t, []string{"doctor"}, env.configPath)
	requireContains(t, stdout, "== Preflight ==")
	requireContains(t, stdout, env.configPath)
	var baseLine string
	for _, line := range strings.Split(stdout, "\n") {
		if strings.Contains(line, "Base path:") {
			baseLine = line
		}
	}
	requireContains(t, baseLine, "[OK]")

	stdout, _, err := runCLI(t, []string{"doctor", "--base", filepath.Join(env.base, "missing")}, env.configPath)
	if err == nil {
		t.Fatal("expected doctor to fail for a missing base path")
	}
	requireContains(t, stdout, "[FAIL]")
}

func TestConfigInitPathAndShow(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "nested", "config.toml")

	stdout, _, err := runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, stdout, target)
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file: %v", err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected error when config exists without --overwrite")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	stdout, _, err = runCLI(t, []string{"config", "path"}, target)
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	requireContains(t, stdout, target+" (exists: yes)")

	stdout, _, err = runCLI(t, []string{"config", "show", "--theme", "light"}, target)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, stdout, "light")
}

func TestInvalidConfigIsRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("theme = \"sepia\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, _, err := runCLI(t, []string{"preview"}, path)
	if err == nil {
		t.Fatal("expected invalid theme to be rejected")
	}
	requireContains(t, err.Error(), "theme")
}

func TestVersionsCommandListsNonDirectoryEntries(t *testing.T) {
	env := setupCLITestEnv(t)
	outDir := filepath.Join(env.base, "S", "SH", "out")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "SH_roto_v001"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := runCLI(t, []string{"versions", "--show", "S", "--shot", "SH"}, env.configPath)
	if err != nil {
		t.Fatalf("versions: %v", err)
	}
	requireContains(t, stdout, "SH_roto_v001 (not a directory)")
	requireContains(t, stdout, "Next version: v002")
}
