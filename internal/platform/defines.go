package platform

import "strings"

// AppleDefine is true for any build whose family contains ios.
const AppleDefine = "__APPLE__"

// DefineKey returns the constant name for p, e.g. "__ANDROID__".
func DefineKey(p Platform) string {
	return "__" + strings.ToUpper(string(p)) + "__"
}

// Defines returns the platform-conditioned constants for a build targeting
// active. Every registered platform gets a flag that is "true" only for
// active itself. AppleDefine covers the ios family, so a visionos build
// sees __VISIONOS__ and __APPLE__ but not __IOS__.
func Defines(active Platform, r *Registry) map[string]string {
	defs := make(map[string]string, len(r.order)+1)
	for _, p := range r.order {
		defs[DefineKey(p)] = boolString(p == active)
	}
	defs[AppleDefine] = boolString(r.InFamily(active, IOS))
	return defs
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
