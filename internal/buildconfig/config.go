package buildconfig

import (
	"maps"
	"slices"

	"github.com/platformkit/platformkit/internal/platform"
	"github.com/platformkit/platformkit/internal/resolve"
)

// Config is a finalized bundler configuration for one platform.
type Config struct {
	Name     string              `json:"name" yaml:"name"`
	Mode     string              `json:"mode" yaml:"mode"`
	Platform platform.Platform   `json:"platform" yaml:"platform"`
	Context  string              `json:"context" yaml:"context"`
	Entry    map[string][]string `json:"entry" yaml:"entry"`
	Output   Output              `json:"output" yaml:"output"`
	Resolve  Resolve             `json:"resolve" yaml:"resolve"`
	Defines  map[string]string   `json:"defines" yaml:"defines"`
	Rules    []Rule              `json:"rules" yaml:"rules"`
	Copy     []CopyRule          `json:"copy,omitempty" yaml:"copy,omitempty"`
	// Externals are left to the runtime instead of being bundled.
	Externals []string  `json:"externals,omitempty" yaml:"externals,omitempty"`
	Devtool   string    `json:"devtool,omitempty" yaml:"devtool,omitempty"`
	HMR       bool      `json:"hmr" yaml:"hmr"`
	Analysis  *Analysis `json:"analysis,omitempty" yaml:"analysis,omitempty"`
}

// Output describes where the bundler writes its artifacts.
type Output struct {
	Path     string `json:"path" yaml:"path"`
	Filename string `json:"filename" yaml:"filename"`
}

// Resolve carries the module resolution hints.
type Resolve struct {
	Extensions resolve.ExtensionList `json:"extensions" yaml:"extensions"`
	Alias      map[string]string     `json:"alias,omitempty" yaml:"alias,omitempty"`
	Exclude    resolve.ExclusionSet  `json:"exclude" yaml:"exclude"`
}

// Rule routes files matching Test through the loaders in Use, applied
// last to first as bundlers do.
type Rule struct {
	Name    string   `json:"name" yaml:"name"`
	Test    string   `json:"test" yaml:"test"`
	Use     []string `json:"use" yaml:"use"`
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`
}

// CopyRule copies matching files verbatim into the output directory.
type CopyRule struct {
	From    string   `json:"from" yaml:"from"`
	To      string   `json:"to,omitempty" yaml:"to,omitempty"`
	Context string   `json:"context" yaml:"context"`
	Ignore  []string `json:"ignore,omitempty" yaml:"ignore,omitempty"`
}

// Analysis enables the bundle report.
type Analysis struct {
	ReportPath string `json:"report_path" yaml:"report_path"`
	StatsPath  string `json:"stats_path" yaml:"stats_path"`
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	out := c
	if c.Entry != nil {
		out.Entry = make(map[string][]string, len(c.Entry))
		for k, v := range c.Entry {
			out.Entry[k] = slices.Clone(v)
		}
	}
	out.Resolve.Extensions = slices.Clone(c.Resolve.Extensions)
	out.Resolve.Alias = maps.Clone(c.Resolve.Alias)
	out.Resolve.Exclude = slices.Clone(c.Resolve.Exclude)
	out.Defines = maps.Clone(c.Defines)
	if c.Rules != nil {
		out.Rules = make([]Rule, len(c.Rules))
		for i, r := range c.Rules {
			r.Use = slices.Clone(r.Use)
			r.Exclude = slices.Clone(r.Exclude)
			out.Rules[i] = r
		}
	}
	if c.Copy != nil {
		out.Copy = make([]CopyRule, len(c.Copy))
		for i, r := range c.Copy {
			r.Ignore = slices.Clone(r.Ignore)
			out.Copy[i] = r
		}
	}
	out.Externals = slices.Clone(c.Externals)
	if c.Analysis != nil {
		a := *c.Analysis
		out.Analysis = &a
	}
	return out
}
