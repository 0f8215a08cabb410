// Package version reports the build version of carbonmeter.
package version

import "runtime/debug"

// Set with -ldflags "-X github.com/rshade/carbonmeter/pkg/version.version=v1.2.3".
//
//nolint:gochecknoglobals // Populated by the linker
var (
	version   = ""
	gitCommit = ""
	buildDate = ""
)

// GetVersion returns the release version, the module version recorded in
// the build info, or "dev".
func GetVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}

// GetGitCommit returns the commit the binary was built from, if known.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp, if known.
func GetBuildDate() string {
	return buildDate
}
