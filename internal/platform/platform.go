package platform

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/platformkit/platformkit/internal/version"
)

// Platform identifies the target operating system family of one build.
type Platform string

// Built-in platform identifiers.
const (
	IOS      Platform = "ios"
	Android  Platform = "android"
	VisionOS Platform = "visionos"
)

// ErrUnknownPlatform is returned when a platform name is not registered.
var ErrUnknownPlatform = errors.New("unknown platform")

// UnknownError reports a platform name that is not in the registry.
type UnknownError struct {
	Name  string
	Known []Platform
}

func (e *UnknownError) Error() string {
	names := make([]string, len(e.Known))
	for i, p := range e.Known {
		names[i] = string(p)
	}
	return fmt.Sprintf("unknown platform %q (known: %s)", e.Name, strings.Join(names, ", "))
}

func (e *UnknownError) Unwrap() error { return ErrUnknownPlatform }

// Names must be usable both as a filename infix and inside a pattern.
var namePattern = regexp.MustCompile(`^[a-z][a-z0-9]*$`)

// Registry is the set of platforms a build may target, in declaration
// order, together with the alias table and runtime requirements.
// The zero value is not usable; call NewRegistry or DefaultRegistry.
type Registry struct {
	order    []Platform
	aliases  map[Platform]Platform
	requires map[Platform]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		aliases:  make(map[Platform]Platform),
		requires: make(map[Platform]string),
	}
}

// DefaultRegistry returns ios, android and visionos, with visionos
// aliasing ios and requiring runtime 8.5.0 or newer.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, p := range []Platform{IOS, Android, VisionOS} {
		_ = r.Register(p)
	}
	_ = r.Alias(VisionOS, IOS)
	_ = r.Require(VisionOS, ">= 8.5.0")
	return r
}

// Register adds a platform. Registering a known platform is a no-op.
func (r *Registry) Register(p Platform) error {
	if !namePattern.MatchString(string(p)) {
		return fmt.Errorf("invalid platform name %q: must match %s", p, namePattern)
	}
	if DefineKey(p) == AppleDefine {
		return fmt.Errorf("invalid platform name %q: its define would collide with %s", p, AppleDefine)
	}
	if r.IsKnown(p) {
		return nil
	}
	r.order = append(r.order, p)
	return nil
}

// Alias declares that p additionally resolves target's suffixed files.
// Both platforms must be registered and the alias table must stay acyclic.
func (r *Registry) Alias(p, target Platform) error {
	if !r.IsKnown(p) {
		return r.unknown(string(p))
	}
	if !r.IsKnown(target) {
		return r.unknown(string(target))
	}
	if p == target {
		return fmt.Errorf("platform %q cannot alias itself", p)
	}
	for cur, ok := target, true; ok; cur, ok = r.aliases[cur] {
		if cur == p {
			return fmt.Errorf("alias %s -> %s would create a cycle", p, target)
		}
	}
	r.aliases[p] = target
	return nil
}

// Require attaches a runtime version constraint to a platform.
func (r *Registry) Require(p Platform, constraint string) error {
	if !r.IsKnown(p) {
		return r.unknown(string(p))
	}
	if err := version.ValidConstraint(constraint); err != nil {
		return fmt.Errorf("platform %s: %w", p, err)
	}
	r.requires[p] = constraint
	return nil
}

// Known returns all registered platforms in declaration order.
func (r *Registry) Known() []Platform {
	return append([]Platform(nil), r.order...)
}

// IsKnown reports whether p is registered.
func (r *Registry) IsKnown(p Platform) bool {
	for _, k := range r.order {
		if k == p {
			return true
		}
	}
	return false
}

// Parse validates a user-supplied platform name. Matching is
// case-insensitive; unknown names are rejected rather than guessed.
func (r *Registry) Parse(name string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(name)))
	if p == "" || !r.IsKnown(p) {
		return "", r.unknown(name)
	}
	return p, nil
}

// AliasOf returns the platform p falls back to, if any.
func (r *Registry) AliasOf(p Platform) (Platform, bool) {
	t, ok := r.aliases[p]
	return t, ok
}

// Family returns p followed by its alias chain.
func (r *Registry) Family(p Platform) []Platform {
	family := []Platform{p}
	for cur, ok := r.aliases[p]; ok; cur, ok = r.aliases[cur] {
		family = append(family, cur)
	}
	return family
}

// InFamily reports whether member is p or one of its alias targets.
func (r *Registry) InFamily(p, member Platform) bool {
	for _, f := range r.Family(p) {
		if f == member {
			return true
		}
	}
	return false
}

// Others returns every registered platform except p, in declaration
// order. Alias targets of p are included.
func (r *Registry) Others(p Platform) []Platform {
	var others []Platform
	for _, k := range r.order {
		if k != p {
			others = append(others, k)
		}
	}
	return others
}

// Requirement returns the runtime constraint for p, or "".
func (r *Registry) Requirement(p Platform) string {
	return r.requires[p]
}

// CheckRuntime returns an error if runtimeVersion does not satisfy p's
// requirement. An empty runtime version skips the check.
func (r *Registry) CheckRuntime(p Platform, runtimeVersion string) error {
	constraint := r.requires[p]
	if constraint == "" || runtimeVersion == "" {
		return nil
	}
	ok, err := version.Satisfies(runtimeVersion, constraint)
	if err != nil {
		return fmt.Errorf("checking runtime for %s: %w", p, err)
	}
	if !ok {
		return fmt.Errorf("platform %s requires runtime %s, project declares %s", p, constraint, runtimeVersion)
	}
	return nil
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	c := NewRegistry()
	c.order = r.Known()
	for k, v := range r.aliases {
		c.aliases[k] = v
	}
	for k, v := range r.requires {
		c.requires[k] = v
	}
	return c
}

func (r *Registry) unknown(name string) error {
	return &UnknownError{Name: name, Known: r.Known()}
}
