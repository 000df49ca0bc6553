// Package tokenfield builds ordered token lists in the terminal: tags,
// recipients, labels. Package tokens holds the field state and interaction
// rules, package draft the text being typed, package measure text widths and
// package editor the Bubble Tea component.
//
// This package exposes the release number recorded in the VERSION file.
package tokenfield

import (
	_ "embed"
	"regexp"
	"strings"
)

//go:embed VERSION
var versionFile string

// major.minor.patch, then optional -prerelease and +build parts.
var semverPattern = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(-[0-9A-Za-z-]+(\.[0-9A-Za-z-]+)*)?(\+[0-9A-Za-z-]+(\.[0-9A-Za-z-]+)*)?$`)

const devVersion = "0.0.0-dev"

// Version is the release from VERSION, or 0.0.0-dev when the file does not
// hold a SemVer string.
func Version() string {
	v := strings.TrimSpace(versionFile)
	if !IsSemver(v) {
		return devVersion
	}
	return v
}

// VersionTag is Version prefixed with "v", as used by git tags and the
// demo's --version output.
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v is a SemVer 2.0.0 version without the "v".
func IsSemver(v string) bool {
	return semverPattern.MatchString(strings.TrimSpace(v))
}
