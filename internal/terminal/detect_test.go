package terminal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsTerminalNilFile(t *testing.T) {
	if IsTerminal(nil) {
		t.Fatal("expected nil file to be non-interactive")
	}
}

func TestIsTerminalRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer func() { _ = f.Close() }()
	if IsTerminal(f) {
		t.Fatal("expected regular file to be non-interactive")
	}
}

func TestIsInteractiveUsesBothStreams(t *testing.T) {
	orig := isTerminalFn
	t.Cleanup(func() { isTerminalFn = orig })

	stdin := int(os.Stdin.Fd())
	isTerminalFn = func(fd int) bool { return fd == stdin }
	if IsInteractive() {
		t.Fatal("expected non-interactive when stdout is not a terminal")
	}

	isTerminalFn = func(int) bool { return true }
	if !IsInteractive() {
		t.Fatal("expected interactive when both streams are terminals")
	}
}
