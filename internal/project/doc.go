// Package project handles parsing and validation of the build description
// (platformkit.yaml) that every per-platform specialization starts from.
// Files are validated against an embedded JSON Schema before they are
// decoded, and defaults are applied after decoding.
package project
