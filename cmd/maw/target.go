package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/multi-agent-kit/internal/messages"
	"github.com/conn-castle/multi-agent-kit/internal/root"
)

var getwd = os.Getwd

// resolveTarget returns the absolute target directory for a --target value.
// An empty value means the project root around the current directory; a
// leading ~ is expanded. The target may not exist yet, but must not be an
// existing non-directory.
func resolveTarget(flagValue string) (string, error) {
	raw := strings.TrimSpace(flagValue)
	if raw == "" {
		cwd, err := getwd()
		if err != nil {
			return "", err
		}
		return root.FindRepoRoot(cwd)
	}
	expanded, err := homedir.Expand(raw)
	if err != nil {
		return "", fmt.Errorf(messages.TargetExpandFmt, raw, err)
	}
	target := expanded
	if !filepath.IsAbs(target) {
		cwd, err := getwd()
		if err != nil {
			return "", err
		}
		target = filepath.Join(cwd, target)
	}
	target = filepath.Clean(target)
	info, err := os.Stat(target)
	if err == nil && !info.IsDir() {
		return "", fmt.Errorf(messages.TargetNotDirFmt, target)
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", err
	}
	return target, nil
}
