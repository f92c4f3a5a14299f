package resolve

import (
	"strings"

	"github.com/platformkit/platformkit/internal/platform"
)

// ExtensionList is an ordered list of file suffixes tried during module
// lookup. The first match wins.
type ExtensionList []string

// BaseExtensions are the generic extensions every build resolves.
var BaseExtensions = []string{"ts", "js", "mjs", "css", "scss", "json"}

// DefaultExtensions returns BaseExtensions, with tsx appended when the
// UI-component extension mode is enabled.
func DefaultExtensions(jsx bool) []string {
	exts := append([]string(nil), BaseExtensions...)
	if jsx {
		exts = append(exts, "tsx")
	}
	return exts
}

// BuildExtensionList emits, for each generic extension e in caller order,
// ".<active>.<e>" followed by ".<e>", so platform files shadow generic ones.
// For each alias target of active (in alias-chain order) the
// platform-qualified entries are then appended again with the target's
// suffix. Entries are never duplicated.
func BuildExtensionList(active platform.Platform, r *platform.Registry, base []string) ExtensionList {
	exts := normalizeExtensions(base)

	list := make(ExtensionList, 0, len(exts)*2)
	seen := make(map[string]bool, len(exts)*2)
	add := func(entry string) {
		if !seen[entry] {
			seen[entry] = true
			list = append(list, entry)
		}
	}

	for _, e := range exts {
		add(qualified(active, e))
		add("." + e)
	}

	if r == nil {
		return list
	}
	for _, target := range r.Family(active)[1:] {
		for _, e := range exts {
			add(qualified(target, e))
		}
	}
	return list
}

// Index returns the position of entry in the list, or -1.
func (l ExtensionList) Index(entry string) int {
	for i, e := range l {
		if e == entry {
			return i
		}
	}
	return -1
}

// Contains reports whether entry is in the list.
func (l ExtensionList) Contains(entry string) bool {
	return l.Index(entry) >= 0
}

func qualified(p platform.Platform, ext string) string {
	return "." + string(p) + "." + ext
}

// normalizeExtensions strips leading dots and drops empty and repeated
// entries while keeping caller order.
func normalizeExtensions(base []string) []string {
	out := make([]string, 0, len(base))
	seen := make(map[string]bool, len(base))
	for _, e := range base {
		e = strings.TrimLeft(strings.TrimSpace(e), ".")
		if e == "" || seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return out
}
