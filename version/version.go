package version

import "strings"

var buildVersion = "v0.1.0"

// String returns the semantic version of the SDK. Override via ldflags, e.g.:
// go build -ldflags "-X github.com/romgrk/globus-go/version.buildVersion=v0.2.0".
func String() string {
	return strings.TrimSpace(buildVersion)
}
