package common

import (
	"path"
	"regexp"
)

var majorVersion = regexp.MustCompile(`^v[2-9][0-9]*$`)

// PkgAlias returns the name a package is conventionally imported under: the
// last path element, skipping a trailing major version element such as /v2.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	base := path.Base(pkgPath)
	if majorVersion.MatchString(base) {
		if dir := path.Dir(pkgPath); dir != "." {
			return path.Base(dir)
		}
	}

	return base
}
