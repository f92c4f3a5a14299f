// Package config manages user-level settings stored at
// ~/.platformkit/config.yaml and the build feature flags (hot reload,
// bundle report, source maps, ...). Flags are resolved once, with the
// precedence command-line flag > PLATFORMKIT_* environment > config file >
// default, into an explicit Features value that is passed to the build
// pipeline.
package config
