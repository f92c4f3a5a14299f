// Package version compares runtime version strings and checks them against
// semver constraints. Platforms use it to gate builds on the minimum
// runtime version they require.
package version
