// pkg/version/version.go

// Package version parses pacman version strings of the form
// epoch:version-release, e.g. "1:2.3.4-5". The epoch, when present,
// takes precedence over every other component; the release counts
// package rebuilds of the same upstream version.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a parsed pacman version. Missing components are zero; a
// zero epoch is not rendered.
type Version struct {
	Epoch   int
	Major   int
	Minor   int
	Patch   int
	Release int
}

// Parse parses "epoch:major.minor.patch-release". Parsing is lenient:
// absent or non-numeric components default to zero, matching how
// pacman version strings degrade (e.g. "2.4" or "7-1").
func Parse(s string) Version {
	var v Version
	if idx := strings.IndexByte(s, ':'); idx != -1 {
		v.Epoch = atoi(s[:idx])
		s = s[idx+1:]
	}
	if idx := strings.LastIndexByte(s, '-'); idx != -1 {
		v.Release = atoi(s[idx+1:])
		s = s[:idx]
	}
	parts := strings.SplitN(s, ".", 3)
	v.Major = atoi(parts[0])
	if len(parts) > 1 {
		v.Minor = atoi(parts[1])
	}
	if len(parts) > 2 {
		v.Patch = atoi(parts[2])
	}
	return v
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// String renders epoch:major.minor.patch-release, omitting a zero
// epoch.
func (v Version) String() string {
	if v.Epoch > 0 {
		return fmt.Sprintf("%d:%d.%d.%d-%d", v.Epoch, v.Major, v.Minor, v.Patch, v.Release)
	}
	return fmt.Sprintf("%d.%d.%d-%d", v.Major, v.Minor, v.Patch, v.Release)
}

// Compare returns -1, 0 or 1 ordering a against b. The epoch always
// wins: 2:1.0-1 is newer than 1:3.6-1.
func Compare(a, b Version) int {
	for _, d := range [5]int{
		a.Epoch - b.Epoch,
		a.Major - b.Major,
		a.Minor - b.Minor,
		a.Patch - b.Patch,
		a.Release - b.Release,
	} {
		if d < 0 {
			return -1
		}
		if d > 0 {
			return 1
		}
	}
	return 0
}

// Equal reports whether two raw version strings denote the same
// pacman version.
func Equal(a, b string) bool {
	return Compare(Parse(a), Parse(b)) == 0
}
