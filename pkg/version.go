package semcommit

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// versionShape only anchors the start; trailing text is checked per component.
	versionShape = regexp.MustCompile(`^[0-9]+\.[0-9]+\.[0-9]+`)
	patchShape   = regexp.MustCompile(`^([0-9]+)(?:-(.+))?$`)
)

const snapshotToken = "SNAPSHOT"

// Version is a parsed major.minor.patch triple with an optional pre-release
// suffix that followed the patch number.
type Version struct {
	Major      int
	Minor      int
	Patch      int
	PreRelease string
}

// Parse validates text against N.N.N and splits it into its components.
// A "-suffix" after the patch number is kept in PreRelease.
func Parse(text string) (Version, error) {
	if !versionShape.MatchString(text) {
		return Version{}, &ValidationError{Value: text}
	}

	parts := strings.SplitN(text, ".", 3)
	m := patchShape.FindStringSubmatch(parts[2])
	if m == nil {
		return Version{}, &ValidationError{Value: text, Reason: fmt.Sprintf("unexpected patch component %q", parts[2])}
	}

	var v Version
	var err error
	if v.Major, err = strconv.Atoi(parts[0]); err != nil {
		return Version{}, &ValidationError{Value: text, Reason: "major", Cause: err}
	}
	if v.Minor, err = strconv.Atoi(parts[1]); err != nil {
		return Version{}, &ValidationError{Value: text, Reason: "minor", Cause: err}
	}
	if v.Patch, err = strconv.Atoi(m[1]); err != nil {
		return Version{}, &ValidationError{Value: text, Reason: "patch", Cause: err}
	}
	v.PreRelease = m[2]
	return v, nil
}

// ParseField parses a version read from a descriptor field. A nil value means
// the field is absent and yields a FormatError.
func ParseField(text *string) (Version, error) {
	if text == nil {
		return Version{}, &FormatError{Reason: "no version value found"}
	}
	return Parse(*text)
}

// Snapshot reports whether the pre-release suffix carries the SNAPSHOT marker.
func (v Version) Snapshot() bool {
	for _, tok := range strings.Split(v.PreRelease, "-") {
		if strings.EqualFold(tok, snapshotToken) {
			return true
		}
	}
	return false
}

// Core renders the numeric part only.
func (v Version) Core() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// String renders the version including any pre-release suffix.
func (v Version) String() string {
	if v.PreRelease != "" {
		return v.Core() + "-" + v.PreRelease
	}
	return v.Core()
}

// canonical returns the "v"-prefixed form understood by golang.org/x/mod/semver.
func (v Version) canonical() string {
	return "v" + v.String()
}
