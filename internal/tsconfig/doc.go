// Package tsconfig reads the subset of a TypeScript project file that
// affects module resolution: baseUrl and paths. Files are JSONC (comments
// and trailing commas allowed) and may extend one another.
package tsconfig
