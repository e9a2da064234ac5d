// Package version reports the version of the danad tools.
package version

import (
	"fmt"
	"strings"
)

// validCharacters is a list of characters valid in the appBuild string
const validCharacters = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-"

const (
	appMajor uint = 0
	appMinor uint = 1
	appPatch uint = 0
)

// appBuild can be set at build time with
// '-ldflags "-X github.com/dana-network/danad/version.appBuild=foo"'.
// It MUST only contain characters from validCharacters.
var appBuild string

// Version returns the application version as a properly formed string,
// e.g. "0.1.0" or "0.1.0-foo" when built with an appBuild.
func Version() string {
	return formatVersion(appBuild)
}

func formatVersion(build string) string {
	version := fmt.Sprintf("%d.%d.%d", appMajor, appMinor, appPatch)
	if isValidBuild(build) {
		version = fmt.Sprintf("%s-%s", version, build)
	}
	return version
}

// isValidBuild returns whether build is non-empty and only holds characters
// from validCharacters.
func isValidBuild(build string) bool {
	if build == "" {
		return false
	}
	for _, r := range build {
		if !strings.ContainsRune(validCharacters, r) {
			return false
		}
	}
	return true
}
