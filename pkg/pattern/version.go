package pattern

import "github.com/blang/semver/v4"

// Version is the engine's semantic version, parsed eagerly at package
// init so a malformed literal panics at program start rather than at
// first use.
var Version = semver.MustParse("0.1.0")

// GetVersion returns the current version string.
func GetVersion() string {
	return Version.String()
}

// SupportsVersion reports whether this build is compatible with a
// caller-supplied minimum version requirement, per semver precedence
// rules (major.minor.patch, then pre-release: a pre-release version
// orders below the release of the same major.minor.patch).
func SupportsVersion(min semver.Version) bool {
	return Version.GE(min)
}
