package resolve

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/spf13/afero"

	"github.com/platformkit/platformkit/internal/platform"
)

// ErrNotFound is returned when no candidate for an import resolves.
var ErrNotFound = errors.New("import not found")

// FallbackFunc resolves an unmodified specifier relative to baseDir. It is
// the only place a stylesheet resolution failure surfaces.
type FallbackFunc func(specifier, baseDir string) (string, error)

// StyleResolver resolves stylesheet import specifiers, preferring a
// platform-qualified sibling (theme.ios.css) over the generic file.
type StyleResolver struct {
	FS       afero.Fs
	Platform platform.Platform
	Registry *platform.Registry
	// AppDir roots "~/" specifiers.
	AppDir string
	// Fallback handles the unmodified specifier. Nil means DefaultFallback.
	Fallback FallbackFunc
}

// NewStyleResolver returns a resolver using the default fallback.
func NewStyleResolver(fsys afero.Fs, active platform.Platform, r *platform.Registry, appDir string) *StyleResolver {
	return &StyleResolver{
		FS:       fsys,
		Platform: active,
		Registry: r,
		AppDir:   appDir,
	}
}

// Candidates returns the platform-qualified paths tried before the
// fallback, in order: the active platform, then each alias target.
// Package specifiers and specifiers without an extension have none.
func (s *StyleResolver) Candidates(specifier, baseDir string) []string {
	target, ok := s.localPath(specifier, baseDir)
	if !ok {
		return nil
	}
	ext := path.Ext(target)
	if ext == "" {
		return nil
	}
	stem := strings.TrimSuffix(target, ext)

	family := []platform.Platform{s.Platform}
	if s.Registry != nil {
		family = s.Registry.Family(s.Platform)
	}
	candidates := make([]string, 0, len(family))
	for _, p := range family {
		candidates = append(candidates, stem+"."+string(p)+ext)
	}
	return candidates
}

// Resolve returns the file an import specifier refers to. Missing
// platform-qualified candidates fall through silently; only the
// fallback's error is returned.
func (s *StyleResolver) Resolve(specifier, baseDir string) (string, error) {
	for _, candidate := range s.Candidates(specifier, baseDir) {
		if s.isFile(candidate) {
			return candidate, nil
		}
	}

	fallback := s.Fallback
	if fallback == nil {
		fallback = s.DefaultFallback
	}
	resolved, err := fallback(specifier, baseDir)
	if err != nil {
		return "", fmt.Errorf("resolving stylesheet import %q from %s: %w", specifier, baseDir, err)
	}
	return resolved, nil
}

// DefaultFallback resolves local specifiers against baseDir (or AppDir for
// "~/") and package specifiers against the nearest node_modules directory.
func (s *StyleResolver) DefaultFallback(specifier, baseDir string) (string, error) {
	if target, ok := s.localPath(specifier, baseDir); ok {
		if s.isFile(target) {
			return target, nil
		}
		return "", fmt.Errorf("%s: %w", target, ErrNotFound)
	}

	dir := path.Clean(toSlash(baseDir))
	for {
		candidate := path.Join(dir, "node_modules", specifier)
		if s.isFile(candidate) {
			return candidate, nil
		}
		parent := path.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("package %s: %w", specifier, ErrNotFound)
}

// localPath maps relative, absolute and "~/" specifiers to a path. It
// returns false for package specifiers.
func (s *StyleResolver) localPath(specifier, baseDir string) (string, bool) {
	spec := toSlash(specifier)
	switch {
	case strings.HasPrefix(spec, "~/"):
		return path.Join(toSlash(s.AppDir), strings.TrimPrefix(spec, "~/")), true
	case strings.HasPrefix(spec, "/"):
		return path.Clean(spec), true
	case strings.HasPrefix(spec, "./"), strings.HasPrefix(spec, "../"):
		return path.Join(toSlash(baseDir), spec), true
	default:
		return "", false
	}
}

func (s *StyleResolver) isFile(p string) bool {
	info, err := s.FS.Stat(p)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() || info.Mode()&os.ModeSymlink != 0
}
