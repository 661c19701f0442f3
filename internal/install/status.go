package install

import (
	"errors"
	"fmt"
	"os"

	"github.com/conn-castle/multi-agent-kit/internal/messages"
)

// Report summarizes what is installed in a target.
type Report struct {
	Target          string
	Missing         []string
	AgentsGitignore bool
}

// Complete reports whether every manifest entry is present. The agents
// ignore file is policy, not manifest, and does not count.
func (r Report) Complete() bool {
	return len(r.Missing) == 0
}

// Status inspects target against the default manifest.
func Status(target string) (Report, error) {
	return StatusWith(RealSystem{}, target, DefaultManifest())
}

// StatusWith is Status with an explicit filesystem and manifest.
func StatusWith(sys System, target string, manifest Manifest) (Report, error) {
	missing, err := MissingAssetsWith(sys, target, manifest)
	if err != nil {
		return Report{}, err
	}
	path := AgentsGitignorePath(target)
	present := false
	info, err := sys.Stat(path)
	switch {
	case err == nil:
		present = info.Mode().IsRegular()
	case errors.Is(err, os.ErrNotExist):
	default:
		return Report{}, fmt.Errorf(messages.InstallFailedStatFmt, path, err)
	}
	return Report{Target: target, Missing: missing, AgentsGitignore: present}, nil
}
