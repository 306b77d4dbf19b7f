// Package version reports the module version embedded by the Go toolchain.
package version

import (
	"runtime/debug"
	"strings"
)

// String returns the release version, or "(devel)" for local, dirty, and
// pseudo-version builds.
func String() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "(devel)"
	}

	v := info.Main.Version
	if v == "" || v == "(devel)" || strings.Contains(v, "+dirty") || isPseudoVersion(v) {
		return "(devel)"
	}
	return v
}

// isPseudoVersion detects vX.Y.Z-<...>-20060102150405-abcdef012345 versions.
func isPseudoVersion(v string) bool {
	v, _, _ = strings.Cut(v, "+")

	parts := strings.Split(v, "-")
	if len(parts) < 3 {
		return false
	}

	ts := parts[len(parts)-2]
	hash := parts[len(parts)-1]
	if len(ts) != 14 || !digitsOnly(ts) {
		return false
	}
	return len(hash) >= 12 && hexOnly(hash)
}

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func hexOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
		case s[i] >= 'a' && s[i] <= 'f':
		case s[i] >= 'A' && s[i] <= 'F':
		default:
			return false
		}
	}
	return true
}
