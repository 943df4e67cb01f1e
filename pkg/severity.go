package semcommit

import "fmt"

// Severity is the release impact signalled by a commit. Values are ordered:
// Patch < Minor < Major.
type Severity int

const (
	NoSeverity Severity = iota
	Patch
	Minor
	Major
)

func (s Severity) String() string {
	switch s {
	case Major:
		return "major"
	case Minor:
		return "minor"
	case Patch:
		return "patch"
	default:
		return "none"
	}
}

// ParseSeverity is the inverse of Severity.String.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "major":
		return Major, nil
	case "minor":
		return Minor, nil
	case "patch":
		return Patch, nil
	}
	return NoSeverity, fmt.Errorf("unknown severity: %s", s)
}

// Resolve returns the highest severity present. Only presence matters, not
// count or position. ok is false for an empty list.
func Resolve(severities []Severity) (s Severity, ok bool) {
	for _, cur := range severities {
		if cur > s {
			s = cur
		}
	}
	return s, s != NoSeverity
}
