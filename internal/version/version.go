// Package version records the build metadata stamped into the solscope
// binary.
package version

import (
	"strings"

	"github.com/fatih/color"
)

// Build metadata, overridable at build time:
//
//	go build -ldflags "\
//	  -X solscope/internal/version.Version=0.2.0 \
//	  -X solscope/internal/version.GitCommit=$(git rev-parse HEAD) \
//	  -X solscope/internal/version.BuildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var componentColors = []*color.Color{
	color.New(color.FgYellow, color.Bold),
	color.New(color.FgGreen, color.Bold),
	color.New(color.FgBlue, color.Bold),
}

// Colored renders Version with each semver component highlighted.
// Strings that are not major.minor.patch come back unchanged.
func Colored() string {
	parts := strings.SplitN(Version, ".", 3)
	if len(parts) != len(componentColors) {
		return Version
	}
	for i, p := range parts {
		parts[i] = componentColors[i].Sprint(p)
	}
	return strings.Join(parts, ".")
}
