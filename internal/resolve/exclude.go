package resolve

import (
	"encoding/json"
	"regexp"
	"slices"
	"strings"

	"github.com/platformkit/platformkit/internal/platform"
)

// DefaultResourceDir is the native resource tree kept out of the module
// graph on every platform.
const DefaultResourceDir = "App_Resources"

// Pattern names reported by Match.
const (
	PatternOtherPlatforms = "other-platforms"
	PatternResources      = "platform-resources"
)

// ExclusionPattern is a named regular expression matched against
// slash-separated module paths.
type ExclusionPattern struct {
	Name string
	Expr *regexp.Regexp
}

func (p ExclusionPattern) String() string { return p.Expr.String() }

// MarshalJSON encodes the pattern as its source expression.
func (p ExclusionPattern) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Expr.String())
}

// MarshalYAML encodes the pattern as its source expression.
func (p ExclusionPattern) MarshalYAML() (interface{}, error) {
	return p.Expr.String(), nil
}

// ExclusionSet is the union of patterns a build applies.
type ExclusionSet []ExclusionPattern

// BuildExclusionPatterns returns one pattern matching files suffixed for
// any known platform other than active, and one matching the platform
// resource directory as a path segment. An empty resourceDir means
// DefaultResourceDir.
//
// The patterns govern dynamically resolved module paths only. Alias
// targets are excluded like any other platform; their files stay
// reachable through the extension list.
func BuildExclusionPatterns(active platform.Platform, r *platform.Registry, resourceDir string) ExclusionSet {
	var set ExclusionSet

	others := r.Others(active)
	if len(others) > 0 {
		names := make([]string, len(others))
		for i, p := range others {
			names[i] = regexp.QuoteMeta(string(p))
		}
		slices.Sort(names)
		set = append(set, ExclusionPattern{
			Name: PatternOtherPlatforms,
			Expr: regexp.MustCompile(`\.(` + strings.Join(names, "|") + `)\.(\w+)$`),
		})
	}

	if resourceDir == "" {
		resourceDir = DefaultResourceDir
	}
	resourceDir = strings.Trim(toSlash(resourceDir), "/")
	set = append(set, ExclusionPattern{
		Name: PatternResources,
		Expr: regexp.MustCompile(`(^|/)` + regexp.QuoteMeta(resourceDir) + `(/|$)`),
	})

	return set
}

// Match returns the first pattern matching path.
func (s ExclusionSet) Match(path string) (ExclusionPattern, bool) {
	path = toSlash(path)
	for _, p := range s {
		if p.Expr.MatchString(path) {
			return p, true
		}
	}
	return ExclusionPattern{}, false
}

// Excludes reports whether any pattern matches path.
func (s ExclusionSet) Excludes(path string) bool {
	_, ok := s.Match(path)
	return ok
}

// Strings returns the source expression of every pattern.
func (s ExclusionSet) Strings() []string {
	out := make([]string, len(s))
	for i, p := range s {
		out[i] = p.Expr.String()
	}
	return out
}

// toSlash normalizes Windows separators regardless of the host OS.
func toSlash(path string) string {
	return strings.ReplaceAll(path, `\`, "/")
}
