// Package platform defines the closed-but-extensible set of target
// platforms a build can be specialized for, the declarative alias table
// (visionOS resolves iOS variants as a fallback), per-platform runtime
// requirements, and the platform-conditioned constants injected into
// every build.
package platform
