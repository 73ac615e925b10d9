// Package version holds bumpver's own release version.
// Format: major.minor.patch[-prerelease]
package version

// BumpverVersion holds the current bumpver CLI version.
const BumpverVersion = "0.1.0-dev"
