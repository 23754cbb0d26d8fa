package version

import (
	"strings"

	"github.com/fatih/color"
)

// Build metadata for the scriptir CLI, overridable with
// -ldflags "-X scriptir/internal/version.Version=...".
var (
	// Version is the semantic version.
	Version = "0.1.0-dev"

	GitCommit = ""

	// BuildDate is ISO-8601 when set.
	BuildDate = ""
)

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)
)

// Colored renders Version with each numeric component highlighted.
// Colors follow color.NoColor.
func Colored() string {
	core, suffix, _ := strings.Cut(Version, "-")
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return Version
	}
	out := majorColor.Sprint(parts[0]) + "." + minorColor.Sprint(parts[1]) + "." + patchColor.Sprint(parts[2])
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}
