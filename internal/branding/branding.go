// Package branding provides compile-time identity values for the CLI.
//
// Values come from branding.yaml, embedded at build time. Hard defaults
// cover a missing or partial file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	ProjectFile string `yaml:"project_file"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:     "platformkit",
			DisplayName: "PlatformKit",
			Description: "Per-platform bundler configuration for cross-platform mobile apps",
			HomeDir:     ".platformkit",
			EnvPrefix:   "PLATFORMKIT",
			ProjectFile: "platformkit.yaml",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "platformkit").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".platformkit").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "PLATFORMKIT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ProjectFile returns the build description filename looked up at the
// project root (e.g., "platformkit.yaml").
func ProjectFile() string { load(); return defaults.ProjectFile }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HMR") → "PLATFORMKIT_HMR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
