// Package version exposes the build version of cch.
package version

import "runtime/debug"

// Version can be set at build time:
// -ldflags="-X github.com/cch-dev/cch/internal/version.Version=v1.0.0"
var Version = ""

// Get returns the version string, falling back to module build info.
func Get() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}
