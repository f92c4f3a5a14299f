// Package buildconfig specializes a project's base build description for
// one target platform.
//
// A Config is a plain value. The Pipeline applies an ordered list of Steps,
// each receiving its own copy of the previous result together with the
// explicit Inputs (platform registry, feature flags, project, filesystem)
// and returning a new Config. Nothing is read from ambient state, so the
// same inputs always produce a deep-equal Config and the same Fingerprint.
//
// The finished Config is handed to an external bundler as JSON or YAML;
// module graph construction and output emission happen there.
package buildconfig
