package semcommit

import "fmt"

// Increment applies a severity to the current version.
//
// A SNAPSHOT version is promoted to its release: the marker is dropped and
// the numbers are kept, whatever the severity. Any other pre-release suffix
// is dropped by the bump.
func Increment(current Version, s Severity) (Version, error) {
	next := Version{Major: current.Major, Minor: current.Minor, Patch: current.Patch}
	if current.Snapshot() {
		return next, nil
	}

	switch s {
	case Major:
		next.Major++
		next.Minor = 0
		next.Patch = 0
	case Minor:
		next.Minor++
		next.Patch = 0
	case Patch:
		next.Patch++
	default:
		return Version{}, fmt.Errorf("unknown severity: %d", int(s))
	}
	return next, nil
}
