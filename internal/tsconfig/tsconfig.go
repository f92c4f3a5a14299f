package tsconfig

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
)

// maxExtendsDepth bounds "extends" chains.
const maxExtendsDepth = 8

// TSConfig holds the resolution-related compiler options.
type TSConfig struct {
	CompilerOptions CompilerOptions `json:"compilerOptions"`
	Extends         string          `json:"extends,omitempty"`

	// Dir is the directory containing the file baseUrl is relative to.
	Dir string `json:"-"`
}

// CompilerOptions is the subset of compilerOptions platformkit reads.
type CompilerOptions struct {
	BaseURL string              `json:"baseUrl,omitempty"`
	Paths   map[string][]string `json:"paths,omitempty"`
}

// Parse strips JSONC comments and trailing commas, then decodes data.
func Parse(data []byte) (*TSConfig, error) {
	var cfg TSConfig
	if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
		return nil, fmt.Errorf("parsing tsconfig: %w", err)
	}
	return &cfg, nil
}

// Load reads path from fsys and merges relative "extends" parents. Options
// in the child override the parent's; paths replace rather than merge, as
// the TypeScript compiler does.
func Load(fsys afero.Fs, path string) (*TSConfig, error) {
	return load(fsys, path, 0)
}

func load(fsys afero.Fs, path string, depth int) (*TSConfig, error) {
	if depth > maxExtendsDepth {
		return nil, fmt.Errorf("tsconfig extends chain deeper than %d at %s", maxExtendsDepth, path)
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Dir = filepath.Dir(path)

	// Package-based extends (e.g. "@tsconfig/node18") are not followed.
	if !strings.HasPrefix(cfg.Extends, ".") {
		return cfg, nil
	}

	parentPath := filepath.Join(cfg.Dir, cfg.Extends)
	if filepath.Ext(parentPath) == "" {
		parentPath += ".json"
	}
	parent, err := load(fsys, parentPath, depth+1)
	if err != nil {
		return nil, err
	}

	merged := *parent
	merged.Extends = cfg.Extends
	if cfg.CompilerOptions.BaseURL != "" {
		merged.CompilerOptions.BaseURL = cfg.CompilerOptions.BaseURL
		merged.Dir = cfg.Dir
	}
	if cfg.CompilerOptions.Paths != nil {
		merged.CompilerOptions.Paths = cfg.CompilerOptions.Paths
		if cfg.CompilerOptions.BaseURL == "" && parent.CompilerOptions.BaseURL == "" {
			merged.Dir = cfg.Dir
		}
	}
	return &merged, nil
}

// Aliases converts compilerOptions.paths into bundler aliases. Wildcard
// keys ("~/*") become prefix aliases ("~"), the first target of each key
// wins, and targets are made absolute against baseUrl.
func (c *TSConfig) Aliases() map[string]string {
	if len(c.CompilerOptions.Paths) == 0 {
		return nil
	}
	base := filepath.Join(c.Dir, c.CompilerOptions.BaseURL)

	keys := make([]string, 0, len(c.CompilerOptions.Paths))
	for k := range c.CompilerOptions.Paths {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	aliases := make(map[string]string, len(keys))
	for _, key := range keys {
		targets := c.CompilerOptions.Paths[key]
		if len(targets) == 0 {
			continue
		}
		alias := strings.TrimSuffix(strings.TrimSuffix(key, "*"), "/")
		target := strings.TrimSuffix(strings.TrimSuffix(targets[0], "*"), "/")
		if alias == "" {
			continue
		}
		if _, exists := aliases[alias]; exists {
			continue
		}
		aliases[alias] = filepath.ToSlash(filepath.Join(base, target))
	}
	return aliases
}
