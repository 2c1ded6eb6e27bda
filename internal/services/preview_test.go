package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPreviewTreeEmptyShowAndShot(t *testing.T) {
	tree := PreviewTree("", "  ", "anything")
	if tree.Name != EmptyPreviewMessage {
		t.Fatalf("expected placeholder node, got %q", tree.Name)
	}
	if len(tree.Children) != 0 {
		t.Fatalf("expected no children, got %d", len(tree.Children))
	}
}

func TestPreviewTreeShape(t *testing.T) {
	tree := PreviewTree("SHOW01", "SHOT_010", "Karthick")

	got := tree.LeafPaths()
	want := []string{
		"SHOW01/SHOT_010/in/feedback",
		"SHOW01/SHOT_010/in/plate",
		"SHOW01/SHOT_010/in/ref",
		"SHOW01/SHOT_010/mid/Karthick/sfx",
		"SHOW01/SHOT_010/mid/Karthick/nuke/shapes",
		"SHOW01/SHOT_010/mid/Karthick/nuke/scripts",
		"SHOW01/SHOT_010/mid/Karthick/silhouette/shapes",
		"SHOW01/SHOT_010/mid/Karthick/pre_render",
		"SHOW01/SHOT_010/out/SHOT_010_roto_v001/SHOT_010_roto_matte_01_v001",
		"SHOW01/SHOT_010/out/SHOT_010_roto_v001/SHOT_010_roto_matte_02_v001",
		"SHOW01/SHOT_010/out/SHOT_010_roto_v001/SHOT_010_roto_sfx_v001",
		"SHOW01/SHOT_010/out/SHOT_010_roto_v001/SHOT_010_roto_nuke_script_v001",
	}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("unexpected preview:\n%s", strings.Join(got, "\n"))
	}
}

func TestPreviewTreePlaceholders(t *testing.T) {
	tests := []struct {
		name                string
		show, shot, artist  string
		wantRoot, wantShot  string
		wantArtist, wantOut string
	}{
		{"missing shot", "SHOW01", "", "Ann", "SHOW01", "<SHOT>", "Ann", "<SHOT>_roto_v001"},
		{"missing show", "", "SH", "Ann", "<SHOW>", "SH", "Ann", "SH_roto_v001"},
		{"missing artist", "SHOW01", "SH", "", "SHOW01", "SH", "<ARTIST>", "SH_roto_v001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := PreviewTree(tt.show, tt.shot, tt.artist)
			if tree.Name != tt.wantRoot {
				t.Fatalf("root = %q, want %q", tree.Name, tt.wantRoot)
			}
			shot := tree.Children[0]
			if shot.Name != tt.wantShot {
				t.Fatalf("shot = %q, want %q", shot.Name, tt.wantShot)
			}
			mid := shot.Children[1]
			if mid.Name != "mid" || mid.Children[0].Name != tt.wantArtist {
				t.Fatalf("artist node = %q, want %q", mid.Children[0].Name, tt.wantArtist)
			}
			out := shot.Children[2]
			if out.Name != "out" || out.Children[0].Name != tt.wantOut {
				t.Fatalf("version node = %q, want %q", out.Children[0].Name, tt.wantOut)
			}
		})
	}
}

func TestPreviewTreeIgnoresDiskState(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "SHOW", "SH", "out", "SH_roto_v001"), 0o755); err != nil {
		t.Fatal(err)
	}
	prevDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prevDir) })

	tree := PreviewTree("SHOW", "SH", "A")
	out := tree.Children[0].Children[2]
	if out.Children[0].Name != "SH_roto_v001" {
		t.Fatalf("preview must always show v001, got %q", out.Children[0].Name)
	}
}
