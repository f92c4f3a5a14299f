// Package logging builds the logrus logger used by the CLI. Logs go to
// stderr by default so rendered configurations on stdout stay
// machine-readable.
package logging
