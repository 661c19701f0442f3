package install

import (
	"path/filepath"
	"testing"
)

func TestDefaultManifestOrderAndKinds(t *testing.T) {
	manifest := DefaultManifest()
	want := []struct {
		name string
		kind AssetKind
	}{
		{".agents", KindDir},
		{"agents", KindDir},
		{".claude", KindDir},
		{".codex", KindDir},
		{"MAW-AGENTS.md", KindFile},
	}
	if len(manifest) != len(want) {
		t.Fatalf("manifest len = %d, want %d", len(manifest), len(want))
	}
	for i, entry := range want {
		if manifest[i].Name != entry.name || manifest[i].Kind != entry.kind {
			t.Fatalf("manifest[%d] = %+v, want %s/%s", i, manifest[i], entry.name, entry.kind)
		}
	}
}

func TestManifestNames(t *testing.T) {
	names := DefaultManifest().Names()
	for _, name := range names {
		if name == "agents/.gitignore" || filepath.Base(name) == ".gitignore" {
			t.Fatalf("ignore file must not be part of the manifest: %v", names)
		}
	}
	if got := Manifest(nil).Names(); len(got) != 0 {
		t.Fatalf("expected no names for empty manifest, got %v", got)
	}
}

func TestManifestLookup(t *testing.T) {
	asset, ok := DefaultManifest().lookup("MAW-AGENTS.md")
	if !ok || asset.Kind != KindFile {
		t.Fatalf("lookup MAW-AGENTS.md = %+v, %v", asset, ok)
	}
	if _, ok := DefaultManifest().lookup("missing"); ok {
		t.Fatal("expected lookup miss")
	}
}

func TestDisplayPath(t *testing.T) {
	root := filepath.Join("/", "work", "repo")
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "nested", path: filepath.Join(root, "agents", "planner.md"), want: "agents/planner.md"},
		{name: "outside target", path: filepath.Join("/", "elsewhere", "x.md"), want: "/elsewhere/x.md"},
		{name: "nfd input", path: filepath.Join(root, "cafe\u0301.md"), want: "caf\u00e9.md"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayPath(root, tt.path); got != tt.want {
				t.Fatalf("DisplayPath() = %q, want %q", got, tt.want)
			}
		})
	}
}
