// Package resolve computes the platform-aware module resolution hints a
// bundler consumes: the ordered extension list tried during lookup, the
// exclusion patterns that keep other platforms' files out of the
// dependency graph, and stylesheet import resolution that prefers
// platform-qualified siblings.
//
// Everything here is derived once per build from the active platform and
// never mutated afterwards. The extension and exclusion builders are pure;
// the stylesheet resolver and Scan only read from an afero filesystem.
package resolve
