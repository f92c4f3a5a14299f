// Package cli defines the Cobra command tree for the platformkit CLI. Each
// file in this package registers one top-level command (render, resolve,
// style, etc.) with the root command. Command implementations delegate to
// internal packages for the specialization logic and only handle flag
// parsing, I/O formatting, and logging.
package cli
