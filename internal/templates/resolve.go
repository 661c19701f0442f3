package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/conn-castle/multi-agent-kit/internal/messages"
)

// EnvAssetsDir names a directory of unbundled assets used when the embedded
// bundle does not provide them.
const EnvAssetsDir = "MAW_ASSETS_DIR"

// Source names for the default resolution order.
const (
	SourceEmbedded  = "embedded"
	SourceDirectory = "directory"
)

// Traversable is a path-like handle into bundled asset resources.
type Traversable = fs.FS

// ErrTraversableUnavailable reports that no source could provide the asset tree.
var ErrTraversableUnavailable = errors.New(messages.TemplatesNoSource)

// Source is one provider of the asset tree.
type Source struct {
	Name string
	Open func() (Traversable, error)
}

// Binding is the result of a successful resolution.
type Binding struct {
	Source string
	FS     Traversable
}

var (
	bindingMu sync.Mutex
	binding   *Binding
)

// EmbeddedSource provides the asset tree compiled into the binary.
func EmbeddedSource() Source {
	return Source{
		Name: SourceEmbedded,
		Open: func() (Traversable, error) {
			return fs.Sub(bundle, bundleRoot)
		},
	}
}

// DirSource provides an asset tree from a directory on disk.
// An empty dir makes the source unavailable.
func DirSource(dir string) Source {
	return Source{
		Name: SourceDirectory,
		Open: func() (Traversable, error) {
			path := strings.TrimSpace(dir)
			if path == "" {
				return nil, fmt.Errorf(messages.TemplatesDirUnsetFmt, EnvAssetsDir)
			}
			info, err := os.Stat(path)
			if err != nil {
				return nil, err
			}
			if !info.IsDir() {
				return nil, fmt.Errorf(messages.TemplatesDirNotDirFmt, path)
			}
			return os.DirFS(path), nil
		},
	}
}

// DefaultSources returns the sources in preference order: the embedded bundle
// first, then the directory named by MAW_ASSETS_DIR.
func DefaultSources() []Source {
	return []Source{
		EmbeddedSource(),
		DirSource(os.Getenv(EnvAssetsDir)),
	}
}

// Resolve returns the first source that opens and provides the Sentinel asset.
// When every source fails, the error wraps ErrTraversableUnavailable and each
// per-source failure.
func Resolve(sources ...Source) (Binding, error) {
	errs := make([]error, 0, len(sources))
	for _, src := range sources {
		fsys, err := openSource(src)
		if err != nil {
			errs = append(errs, fmt.Errorf(messages.TemplatesSourceFailedFmt, src.Name, err))
			continue
		}
		return Binding{Source: src.Name, FS: fsys}, nil
	}
	return Binding{}, errors.Join(ErrTraversableUnavailable, errors.Join(errs...))
}

func openSource(src Source) (Traversable, error) {
	if src.Open == nil {
		return nil, errors.New(messages.TemplatesSourceNoOpen)
	}
	fsys, err := src.Open()
	if err != nil {
		return nil, err
	}
	if fsys == nil {
		return nil, errors.New(messages.TemplatesSourceNilFS)
	}
	info, err := fs.Stat(fsys, Sentinel)
	if err != nil {
		return nil, fmt.Errorf(messages.TemplatesSentinelMissingFmt, Sentinel, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf(messages.TemplatesSentinelNotFileFmt, Sentinel)
	}
	return fsys, nil
}

// Root returns the process-wide binding, resolving it with DefaultSources on
// first use. Concurrent first use from multiple goroutines is not supported.
func Root() (Binding, error) {
	bindingMu.Lock()
	defer bindingMu.Unlock()
	if binding != nil {
		return *binding, nil
	}
	resolved, err := Resolve(DefaultSources()...)
	if err != nil {
		return Binding{}, err
	}
	binding = &resolved
	return resolved, nil
}

// Reload drops the cached binding and resolves again. With no sources it uses
// DefaultSources. A failed reload leaves nothing cached.
func Reload(sources ...Source) (Binding, error) {
	bindingMu.Lock()
	defer bindingMu.Unlock()
	binding = nil
	if len(sources) == 0 {
		sources = DefaultSources()
	}
	resolved, err := Resolve(sources...)
	if err != nil {
		return Binding{}, err
	}
	binding = &resolved
	return resolved, nil
}
