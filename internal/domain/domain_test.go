package domain

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestVersionString(t *testing.T) {
	tests := map[Version]string{
		1:    "v001",
		42:   "v042",
		999:  "v999",
		1000: "v1000",
	}
	for version, want := range tests {
		if got := version.String(); got != want {
			t.Fatalf("Version(%d).String() = %q, want %q", int(version), got, want)
		}
	}
}

func TestParseVersion(t *testing.T) {
	for input, want := range map[string]Version{"v001": 1, "V12": 12, " 7 ": 7} {
		got, err := ParseVersion(input)
		if err != nil {
			t.Fatalf("ParseVersion(%q) returned error: %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseVersion(%q) = %d, want %d", input, got, want)
		}
	}
	for _, input := range []string{"", "v0", "vx", "-3"} {
		if _, err := ParseVersion(input); err == nil {
			t.Fatalf("expected error for %q", input)
		}
	}
}

func TestNamesEncodeShotAndVersion(t *testing.T) {
	if got := VersionDirName("SHOT_010", 3); got != "SHOT_010_roto_v003" {
		t.Fatalf("unexpected version dir %q", got)
	}
	want := []string{
		"SHOT_010_roto_matte_01_v003",
		"SHOT_010_roto_matte_02_v003",
		"SHOT_010_roto_sfx_v003",
		"SHOT_010_roto_nuke_script_v003",
	}
	got := DeliverableNames("SHOT_010", 3)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("deliverable %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFullSpecOrder(t *testing.T) {
	spec := FullSpec(ShotIdentity{Show: "S", Shot: "SH", Artist: "A"}, 1)
	if len(spec) != 14 {
		t.Fatalf("expected 14 entries, got %d", len(spec))
	}
	if spec[8] != DirOut {
		t.Fatalf("out/ must precede the versioned entries, got %q", spec[8])
	}
	if spec[9] != filepath.Join("out", "SH_roto_v001") {
		t.Fatalf("unexpected version entry %q", spec[9])
	}
	under := spec.Under("/base")
	if under[0] != filepath.Join("/base", "in", "feedback") {
		t.Fatalf("unexpected joined path %q", under[0])
	}
}

func TestIdentityValidation(t *testing.T) {
	identity := NewShotIdentity("  SHOW ", "", "\t")
	if identity.Show != "SHOW" {
		t.Fatalf("expected trimmed show, got %q", identity.Show)
	}
	err := identity.Validate()
	if !IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if err.Error() != "missing info: please fill Shot and Artist" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if err := NewShotIdentity("a", "b", "c").Validate(); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestFilesystemErrorUnwraps(t *testing.T) {
	cause := errors.New("no space left on device")
	err := error(&FilesystemError{Op: "create directory", Path: "/x", Err: cause})
	if !errors.Is(err, cause) || !IsFilesystem(err) {
		t.Fatal("expected FilesystemError to wrap its cause")
	}
}

func TestNodeFlattenAndLeaves(t *testing.T) {
	root := NewNode("a", NewNode("b", NewNode("c")), NewNode("d"))
	flat := root.Flatten()
	if len(flat) != 4 || flat[2].Node.Name != "c" || flat[2].Depth != 2 {
		t.Fatalf("unexpected flatten result %+v", flat)
	}
	leaves := root.LeafPaths()
	if len(leaves) != 2 || leaves[0] != "a/b/c" || leaves[1] != "a/d" {
		t.Fatalf("unexpected leaves %v", leaves)
	}
}
