// Package watch re-runs a callback when any of a fixed set of files
// changes on disk. Editors often save through a rename or a burst of
// writes, so events are coalesced within a short debounce window and the
// parent directories are watched rather than the files themselves.
package watch
