package templates

import (
	"io/fs"
	"strings"
	"testing"
)

func TestReadSentinel(t *testing.T) {
	data, err := Read(Sentinel)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if !strings.Contains(string(data), "Multi-Agent Workflow") {
		t.Fatalf("unexpected sentinel content: %q", string(data))
	}
}

func TestReadTemplateMissing(t *testing.T) {
	_, err := Read("missing.txt")
	if err == nil {
		t.Fatalf("expected error for missing template")
	}
}

func TestReadAgentsGitignoreTemplate(t *testing.T) {
	data, err := Read(AgentsGitignore)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected gitignore template content")
	}
}

func TestStatBundledDirectories(t *testing.T) {
	for _, name := range []string{".agents", "agents", ".claude", ".codex"} {
		info, err := Stat(name)
		if err != nil {
			t.Fatalf("Stat(%s) error: %v", name, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %s to be a directory", name)
		}
	}
}

func TestAgentsTemplateHasNoGitignore(t *testing.T) {
	if _, err := Stat("agents/.gitignore"); err == nil {
		t.Fatal("agents/.gitignore must not be bundled inside the agents tree")
	}
}

func TestWalkTemplates(t *testing.T) {
	var seen int
	err := Walk("agents", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".md") {
			seen++
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk error: %v", err)
	}
	if seen == 0 {
		t.Fatalf("expected to see at least one role template")
	}
}
