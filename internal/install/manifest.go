package install

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/conn-castle/multi-agent-kit/internal/messages"
	"github.com/conn-castle/multi-agent-kit/internal/templates"
)

// AssetKind says how an asset is stored.
type AssetKind string

const (
	// KindDir is a directory tree copied recursively.
	KindDir AssetKind = "dir"
	// KindFile is a single regular file.
	KindFile AssetKind = "file"
)

// Top-level asset names installed into a target.
const (
	AssetDotAgents = ".agents"
	AssetAgents    = "agents"
	AssetClaude    = ".claude"
	AssetCodex     = ".codex"
	AssetMAWAgents = "MAW-AGENTS.md"
)

// agentsGitignoreName is the conditional ignore file nested in AssetAgents.
// It is governed by Options.CreateAgentsGitignore and never part of a Manifest.
const agentsGitignoreName = ".gitignore"

// Asset describes one manifest entry.
// Name is the path under the target; Source is the path inside the bundled assets.
type Asset struct {
	Name   string
	Kind   AssetKind
	Source string
}

// Manifest is the ordered list of assets an installer manages.
// Order only affects reporting.
type Manifest []Asset

// DefaultManifest returns the fixed manifest of bundled workflow assets.
func DefaultManifest() Manifest {
	return Manifest{
		{Name: AssetDotAgents, Kind: KindDir, Source: ".agents"},
		{Name: AssetAgents, Kind: KindDir, Source: "agents"},
		{Name: AssetClaude, Kind: KindDir, Source: ".claude"},
		{Name: AssetCodex, Kind: KindDir, Source: ".codex"},
		{Name: AssetMAWAgents, Kind: KindFile, Source: templates.Sentinel},
	}
}

// Names returns the asset names in manifest order.
func (m Manifest) Names() []string {
	names := make([]string, 0, len(m))
	for _, asset := range m {
		names = append(names, asset.Name)
	}
	return names
}

// lookup returns the asset with the given name.
func (m Manifest) lookup(name string) (Asset, bool) {
	for _, asset := range m {
		if asset.Name == name {
			return asset, true
		}
	}
	return Asset{}, false
}

// MissingAssets returns the default manifest entries absent from target, in
// manifest order. target does not need to exist.
func MissingAssets(target string) ([]string, error) {
	return MissingAssetsWith(RealSystem{}, target, DefaultManifest())
}

// MissingAssetsWith is MissingAssets with an explicit filesystem and manifest.
// A directory asset is present only as a directory and a file asset only as a
// regular file; anything else at that path counts as missing.
func MissingAssetsWith(sys System, target string, manifest Manifest) ([]string, error) {
	missing := make([]string, 0, len(manifest))
	for _, asset := range manifest {
		present, err := assetPresent(sys, filepath.Join(target, asset.Name), asset)
		if err != nil {
			return nil, err
		}
		if !present {
			missing = append(missing, asset.Name)
		}
	}
	return missing, nil
}

func assetPresent(sys System, path string, asset Asset) (bool, error) {
	info, err := sys.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf(messages.InstallFailedStatFmt, path, err)
	}
	switch asset.Kind {
	case KindDir:
		return info.IsDir(), nil
	case KindFile:
		return info.Mode().IsRegular(), nil
	default:
		return false, fmt.Errorf(messages.InstallUnknownAssetKindFmt, asset.Name, asset.Kind)
	}
}

// DisplayPath returns path relative to target in slash form with NFC-normalized
// names, falling back to path when it is not under target.
func DisplayPath(target string, path string) string {
	rel := path
	if target != "" {
		if candidate, err := filepath.Rel(target, path); err == nil && !strings.HasPrefix(candidate, "..") {
			rel = candidate
		}
	}
	return norm.NFC.String(filepath.ToSlash(rel))
}
