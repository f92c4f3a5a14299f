package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/platformkit/platformkit/internal/branding"
	"github.com/platformkit/platformkit/internal/platform"
)

// ErrInvalid is returned by Load when the project file fails schema
// validation.
var ErrInvalid = errors.New("invalid project file")

// ErrNotFound is returned by Find when no project file exists in the
// directory or any of its parents.
var ErrNotFound = errors.New("project file not found")

// Parse decodes project YAML and applies defaults. It does not validate
// against the schema; use Load for files on disk.
func Parse(data []byte) (*Project, error) {
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing project: %w", err)
	}
	p.withDefaults()
	return &p, nil
}

// Load reads, validates and parses the project file at path.
func Load(path string) (*Project, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("%s: %w", path, result.Err())
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	abs, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}
	p.Root = abs
	return p, nil
}

// Find walks up from dir looking for the project file and returns its path.
func Find(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}
	name := branding.ProjectFile()
	for cur := abs; ; {
		candidate := filepath.Join(cur, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return "", fmt.Errorf("%w: no %s in %s or any parent directory", ErrNotFound, name, abs)
		}
		cur = parent
	}
}

// Registry extends base with the platforms the project declares. base is
// not modified.
func (p *Project) Registry(base *platform.Registry) (*platform.Registry, error) {
	r := base.Clone()
	for _, decl := range p.Platforms {
		if err := r.Register(platform.Platform(decl.Name)); err != nil {
			return nil, fmt.Errorf("declaring platform: %w", err)
		}
	}
	for _, decl := range p.Platforms {
		name := platform.Platform(decl.Name)
		if decl.Alias != "" {
			if err := r.Alias(name, platform.Platform(decl.Alias)); err != nil {
				return nil, fmt.Errorf("declaring alias for %s: %w", name, err)
			}
		}
		if decl.Requires != "" {
			if err := r.Require(name, decl.Requires); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

// AppDir returns the absolute app directory.
func (p *Project) AppDir() string {
	return p.abs(p.AppPath)
}

// ResourcesDir returns the absolute platform resource directory.
func (p *Project) ResourcesDir() string {
	return p.abs(p.ResourcesPath)
}

// TSConfigPath returns the absolute tsconfig path, or "" if none is set.
func (p *Project) TSConfigPath() string {
	if p.TSConfig == "" {
		return ""
	}
	return p.abs(p.TSConfig)
}

func (p *Project) abs(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(p.Root, rel)
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
