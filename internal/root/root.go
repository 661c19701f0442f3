// Package root locates the project directory maw installs into.
package root

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/conn-castle/multi-agent-kit/internal/messages"
)

// installMarker is the top-level file a completed install always has.
const installMarker = "MAW-AGENTS.md"

// FindInstallRoot walks up from start and returns the nearest directory that
// already contains MAW-AGENTS.md.
func FindInstallRoot(start string) (string, bool, error) {
	if start == "" {
		return "", false, errors.New(messages.RootStartRequired)
	}
	dir := filepath.Clean(start)
	for {
		path := filepath.Join(dir, installMarker)
		info, err := os.Stat(path)
		if err == nil {
			if !info.Mode().IsRegular() {
				return "", false, fmt.Errorf(messages.RootMarkerNotFileFmt, path)
			}
			return dir, true, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf(messages.RootStatFmt, path, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// FindRepoRoot returns the best install target for start: an existing install
// root, then the nearest git root (.git directory or worktree file), then start.
func FindRepoRoot(start string) (string, error) {
	installRoot, found, err := FindInstallRoot(start)
	if err != nil {
		return "", err
	}
	if found {
		return installRoot, nil
	}
	dir := filepath.Clean(start)
	for {
		path := filepath.Join(dir, ".git")
		info, err := os.Stat(path)
		if err == nil {
			if info.IsDir() || info.Mode().IsRegular() {
				return dir, nil
			}
			return "", fmt.Errorf(messages.RootGitInvalidFmt, path)
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf(messages.RootStatFmt, path, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return filepath.Clean(start), nil
		}
		dir = parent
	}
}
