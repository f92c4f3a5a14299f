// Package scaffold generates a starter project from embedded templates. It
// powers the "init" command, writing the build description, a tsconfig
// whose paths become bundler aliases, and the app and per-platform
// resource directories the exclusion rules expect.
package scaffold
