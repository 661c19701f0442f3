package install

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusEmptyTarget(t *testing.T) {
	root := t.TempDir()
	report, err := Status(root)
	require.NoError(t, err)
	assert.Equal(t, root, report.Target)
	assert.Equal(t, allAssetNames(), report.Missing)
	assert.False(t, report.AgentsGitignore)
	assert.False(t, report.Complete())
}

func TestStatusAfterInstall(t *testing.T) {
	root := t.TempDir()
	_, err := New(root, Options{CreateAgentsGitignore: true}).EnsureAssets()
	require.NoError(t, err)

	report, err := Status(root)
	require.NoError(t, err)
	assert.True(t, report.Complete())
	assert.True(t, report.AgentsGitignore)
}

func TestStatusGitignoreStatError(t *testing.T) {
	root := t.TempDir()
	sys := newFaultSystem(RealSystem{})
	sys.statErrs[AgentsGitignorePath(root)] = errors.New("stat boom")

	_, err := StatusWith(sys, root, DefaultManifest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stat boom")
}

func TestStatusGitignoreDirectoryIsNotPresent(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "agents", ".gitignore"), 0o755))

	report, err := Status(root)
	require.NoError(t, err)
	assert.False(t, report.AgentsGitignore)
}
