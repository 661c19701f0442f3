package install

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/conn-castle/multi-agent-kit/internal/messages"
	"github.com/conn-castle/multi-agent-kit/internal/templates"
)

// AgentsGitignorePath returns the path of the optional ignore file for target.
func AgentsGitignorePath(target string) string {
	return filepath.Join(target, AssetAgents, agentsGitignoreName)
}

// syncAgentsGitignore creates agents/.gitignore when enabled and missing, or
// removes it when disabled. It returns the path only when the file was created.
func (inst *Installer) syncAgentsGitignore(source templates.Traversable) (string, error) {
	path := AgentsGitignorePath(inst.target)
	if !inst.createAgentsGitignore {
		if err := inst.sys.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf(messages.InstallFailedRemoveFmt, path, err)
		}
		return "", nil
	}

	if _, err := inst.sys.Stat(path); err == nil {
		return "", nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf(messages.InstallFailedStatFmt, path, err)
	}
	data, err := fs.ReadFile(source, templates.AgentsGitignore)
	if err != nil {
		return "", fmt.Errorf(messages.InstallFailedReadTemplateFmt, templates.AgentsGitignore, err)
	}
	if err := inst.sys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf(messages.InstallFailedCreateDirForFmt, path, err)
	}
	if err := inst.sys.WriteFileAtomic(path, data, 0o644); err != nil {
		return "", fmt.Errorf(messages.InstallFailedWriteFmt, path, err)
	}
	return path, nil
}
