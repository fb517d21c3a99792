// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package floors

import (
	"github.com/maloquacious/semver"
)

var (
	version = semver.Version{
		Major: 1,
		Minor: 0,
		Patch: 0,
		Build: semver.Commit(),
	}
)

// Version returns the version of the floors tool, with the commit as build metadata.
func Version() semver.Version {
	return version
}
