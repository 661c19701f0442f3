package install

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/multi-agent-kit/internal/templates"
)

func TestAgentsGitignoreOptIn(t *testing.T) {
	root := t.TempDir()
	gitignorePath := filepath.Join(root, "agents", ".gitignore")

	written, err := New(root, Options{CreateAgentsGitignore: true}).EnsureAssets()
	require.NoError(t, err)
	info, err := os.Stat(gitignorePath)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())
	require.NotEmpty(t, written)
	assert.Equal(t, gitignorePath, written[len(written)-1])

	want, err := templates.Read(templates.AgentsGitignore)
	require.NoError(t, err)
	got, err := os.ReadFile(gitignorePath)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))

	missing, err := MissingAssets(root)
	require.NoError(t, err)
	assert.Empty(t, missing)

	// Running again without the option removes the file.
	written, err = New(root, Options{}).EnsureAssets()
	require.NoError(t, err)
	assert.Empty(t, written)
	_, err = os.Stat(gitignorePath)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	missing, err = MissingAssets(root)
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestAgentsGitignoreNotRecreatedWhenPresent(t *testing.T) {
	root := t.TempDir()
	_, err := New(root, Options{CreateAgentsGitignore: true}).EnsureAssets()
	require.NoError(t, err)

	gitignorePath := AgentsGitignorePath(root)
	require.NoError(t, os.WriteFile(gitignorePath, []byte("custom\n"), 0o644))

	written, err := New(root, Options{CreateAgentsGitignore: true}).EnsureAssets()
	require.NoError(t, err)
	assert.Empty(t, written)

	written, err = New(root, Options{CreateAgentsGitignore: true, Force: true}).EnsureAssets()
	require.NoError(t, err)
	assert.NotContains(t, written, gitignorePath)

	data, err := os.ReadFile(gitignorePath)
	require.NoError(t, err)
	assert.Equal(t, "custom\n", string(data))
}

func TestAgentsGitignoreRemovedAfterForcedCopy(t *testing.T) {
	root := t.TempDir()
	gitignorePath := AgentsGitignorePath(root)
	require.NoError(t, os.MkdirAll(filepath.Dir(gitignorePath), 0o755))
	require.NoError(t, os.WriteFile(gitignorePath, []byte("stale\n"), 0o644))

	written, err := New(root, Options{Force: true}).EnsureAssets()
	require.NoError(t, err)
	assert.NotContains(t, written, gitignorePath)
	_, err = os.Stat(gitignorePath)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestAgentsGitignoreRemoveError(t *testing.T) {
	root := t.TempDir()
	_, err := New(root, Options{}).EnsureAssets()
	require.NoError(t, err)

	sys := newFaultSystem(RealSystem{})
	sys.removeErrs[AgentsGitignorePath(root)] = errors.New("read-only filesystem")

	_, err = New(root, Options{System: sys}).EnsureAssets()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to remove")
}

func TestAgentsGitignoreStatError(t *testing.T) {
	root := t.TempDir()
	_, err := New(root, Options{}).EnsureAssets()
	require.NoError(t, err)

	sys := newFaultSystem(RealSystem{})
	sys.statErrs[AgentsGitignorePath(root)] = errors.New("io error")

	_, err = New(root, Options{System: sys, CreateAgentsGitignore: true}).EnsureAssets()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "io error")
}

func TestAgentsGitignoreWriteError(t *testing.T) {
	root := t.TempDir()
	sys := newFaultSystem(RealSystem{})
	sys.writeErrs[AgentsGitignorePath(root)] = errors.New("quota exceeded")

	written, err := New(root, Options{System: sys, CreateAgentsGitignore: true}).EnsureAssets()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
	// Manifest entries were already written before the ignore file.
	assert.Contains(t, written, filepath.Join(root, "MAW-AGENTS.md"))
}
