// Package install copies the bundled workflow assets into a target directory.
package install

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/conn-castle/multi-agent-kit/internal/messages"
	"github.com/conn-castle/multi-agent-kit/internal/templates"
)

// Options controls installer behavior.
type Options struct {
	// Force rewrites every manifest entry even when it is already present.
	Force bool
	// CreateAgentsGitignore creates agents/.gitignore when set and removes it otherwise.
	CreateAgentsGitignore bool
	// System defaults to RealSystem.
	System System
	// Source defaults to the process-wide templates.Root binding.
	Source templates.Traversable
	// Manifest defaults to DefaultManifest.
	Manifest Manifest
}

// Installer installs a manifest of bundled assets into one target directory.
// Its configuration is fixed at construction; every EnsureAssets call
// re-reads the filesystem.
type Installer struct {
	target                string
	force                 bool
	createAgentsGitignore bool
	sys                   System
	source                templates.Traversable
	manifest              Manifest
}

// New returns an installer for target. target does not need to exist.
func New(target string, opts Options) *Installer {
	sys := opts.System
	if sys == nil {
		sys = RealSystem{}
	}
	manifest := opts.Manifest
	if manifest == nil {
		manifest = DefaultManifest()
	}
	return &Installer{
		target:                target,
		force:                 opts.Force,
		createAgentsGitignore: opts.CreateAgentsGitignore,
		sys:                   sys,
		source:                opts.Source,
		manifest:              manifest,
	}
}

// Target returns the directory the installer writes to.
func (inst *Installer) Target() string {
	return inst.target
}

// MissingAssets returns the manifest entries absent from the target.
func (inst *Installer) MissingAssets() ([]string, error) {
	return MissingAssetsWith(inst.sys, inst.target, inst.manifest)
}

// EnsureAssets copies every missing manifest entry (every entry when Force is
// set) into the target and then creates or removes agents/.gitignore.
// It returns the paths written, in processing order; an empty result means
// nothing changed. On failure the paths written so far are returned with the
// error and are left in place.
func (inst *Installer) EnsureAssets() ([]string, error) {
	written := []string{}
	if strings.TrimSpace(inst.target) == "" {
		return written, fmt.Errorf(messages.InstallTargetRequired)
	}
	source, err := inst.assetSource()
	if err != nil {
		return written, err
	}
	working, err := inst.workingSet()
	if err != nil {
		return written, err
	}
	for _, asset := range working {
		switch asset.Kind {
		case KindDir:
			err = inst.copyDir(source, asset, &written)
		case KindFile:
			err = inst.copyFile(source, asset, &written)
		default:
			err = fmt.Errorf(messages.InstallUnknownAssetKindFmt, asset.Name, asset.Kind)
		}
		if err != nil {
			return written, err
		}
	}
	created, err := inst.syncAgentsGitignore(source)
	if err != nil {
		return written, err
	}
	if created != "" {
		written = append(written, created)
	}
	return written, nil
}

func (inst *Installer) assetSource() (templates.Traversable, error) {
	if inst.source != nil {
		return inst.source, nil
	}
	binding, err := templates.Root()
	if err != nil {
		return nil, fmt.Errorf(messages.InstallFailedResolveFmt, err)
	}
	return binding.FS, nil
}

// workingSet returns the whole manifest when forced, else only missing entries.
func (inst *Installer) workingSet() (Manifest, error) {
	if inst.force {
		return inst.manifest, nil
	}
	missing, err := inst.MissingAssets()
	if err != nil {
		return nil, err
	}
	working := make(Manifest, 0, len(missing))
	for _, name := range missing {
		if asset, ok := inst.manifest.lookup(name); ok {
			working = append(working, asset)
		}
	}
	return working, nil
}

// copyDir recursively copies a bundled directory into the target, recording
// every file it writes whether or not the content changed.
func (inst *Installer) copyDir(source templates.Traversable, asset Asset, written *[]string) error {
	info, err := fs.Stat(source, asset.Source)
	if err != nil {
		return fmt.Errorf(messages.InstallFailedReadTemplateFmt, asset.Source, err)
	}
	if !info.IsDir() {
		return fmt.Errorf(messages.InstallTemplateNotDirFmt, asset.Source)
	}
	destRoot := filepath.Join(inst.target, asset.Name)
	walkErr := fs.WalkDir(source, asset.Source, func(templatePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf(messages.InstallFailedWalkTemplateFmt, templatePath, err)
		}
		dest := filepath.Join(destRoot, filepath.FromSlash(relTemplatePath(asset.Source, templatePath)))
		if d.IsDir() {
			if err := inst.sys.MkdirAll(dest, 0o755); err != nil {
				return fmt.Errorf(messages.InstallFailedCreateDirFmt, dest, err)
			}
			return nil
		}
		perm, err := templatePerm(d)
		if err != nil {
			return fmt.Errorf(messages.InstallFailedReadTemplateFmt, templatePath, err)
		}
		if err := inst.writeTemplate(source, templatePath, dest, perm); err != nil {
			return err
		}
		*written = append(*written, dest)
		return nil
	})
	return walkErr
}

// copyFile copies a single bundled file into the target, replacing any
// existing file.
func (inst *Installer) copyFile(source templates.Traversable, asset Asset, written *[]string) error {
	info, err := fs.Stat(source, asset.Source)
	if err != nil {
		return fmt.Errorf(messages.InstallFailedReadTemplateFmt, asset.Source, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf(messages.InstallTemplateNotFileFmt, asset.Source)
	}
	dest := filepath.Join(inst.target, asset.Name)
	if err := inst.writeTemplate(source, asset.Source, dest, permFor(info.Mode())); err != nil {
		return err
	}
	*written = append(*written, dest)
	return nil
}

func (inst *Installer) writeTemplate(source templates.Traversable, templatePath string, dest string, perm fs.FileMode) error {
	data, err := fs.ReadFile(source, templatePath)
	if err != nil {
		return fmt.Errorf(messages.InstallFailedReadTemplateFmt, templatePath, err)
	}
	if err := inst.sys.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf(messages.InstallFailedCreateDirForFmt, dest, err)
	}
	if err := inst.sys.WriteFileAtomic(dest, data, perm); err != nil {
		return fmt.Errorf(messages.InstallFailedWriteFmt, dest, err)
	}
	return nil
}

// relTemplatePath returns templatePath relative to root using slash paths.
func relTemplatePath(root string, templatePath string) string {
	if templatePath == root {
		return "."
	}
	return strings.TrimPrefix(templatePath, path.Clean(root)+"/")
}

func templatePerm(d fs.DirEntry) (fs.FileMode, error) {
	info, err := d.Info()
	if err != nil {
		return 0, err
	}
	return permFor(info.Mode()), nil
}

// permFor keeps the executable bit of a template and nothing else.
// Embedded files always report read-only modes.
func permFor(mode fs.FileMode) fs.FileMode {
	if mode.Perm()&0o111 != 0 {
		return 0o755
	}
	return 0o644
}
