// Package templates exposes the bundled multi-agent workflow assets.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed all:assets
var bundle embed.FS

// bundleRoot is the directory inside bundle that holds the asset tree.
const bundleRoot = "assets"

// Sentinel is the bundled file every usable asset source must provide.
const Sentinel = "MAW-AGENTS.md"

// AgentsGitignore is the template for the optional agents/.gitignore file.
const AgentsGitignore = "agents.gitignore"

// Read returns the content of a bundled asset from the resolved source.
func Read(name string) ([]byte, error) {
	binding, err := Root()
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(binding.FS, name)
}

// Stat returns file info for a bundled asset from the resolved source.
func Stat(name string) (fs.FileInfo, error) {
	binding, err := Root()
	if err != nil {
		return nil, err
	}
	return fs.Stat(binding.FS, name)
}

// Walk walks the bundled asset tree rooted at root.
func Walk(root string, fn fs.WalkDirFunc) error {
	binding, err := Root()
	if err != nil {
		return err
	}
	return fs.WalkDir(binding.FS, root, fn)
}
