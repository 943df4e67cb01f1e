package semcommit

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// versionRef is a place in a file where a version string may appear. The
// version itself is always capture group 1.
type versionRef struct {
	Name    string
	Pattern *regexp.Regexp
}

const versionExpr = `v?(\d+\.\d+\.\d+(?:-[0-9A-Za-z.-]+)?)`

// mainVersionRefs match the declaration that usually is the file's own
// version, as opposed to a dependency's.
var mainVersionRefs = []versionRef{
	{Name: "root JSON version field", Pattern: regexp.MustCompile(`(?m)^\s{0,2}"version"\s*:\s*"` + versionExpr + `"`)},
	{Name: "TOML version field", Pattern: regexp.MustCompile(`(?m)^version\s*=\s*"` + versionExpr + `"`)},
	{Name: "VERSION assignment", Pattern: regexp.MustCompile(`(?m)^\s*VERSION\s*[:=]{1,2}\s*["']?` + versionExpr)},
}

// fallbackVersionRefs match any recognisable version reference.
var fallbackVersionRefs = []versionRef{
	{Name: "version assignment", Pattern: regexp.MustCompile(`(?i)version\s*[:=]{1,2}\s*["']?` + versionExpr)},
	{Name: "XML version tag", Pattern: regexp.MustCompile(`<version>` + versionExpr + `</version>`)},
	{Name: "doc comment version", Pattern: regexp.MustCompile(`@version\s+` + versionExpr)},
	{Name: "markdown version header", Pattern: regexp.MustCompile(`(?i)#\s*version\s+` + versionExpr)},
}

// VersionMatch is a version found in a file.
type VersionMatch struct {
	Ref     string // Name of the reference kind that matched.
	Version string // Version without any "v" prefix.
	Start   int    // Byte offsets of the version within the file.
	End     int
}

// FindMainVersion returns the most likely primary version of the content,
// or nil when nothing looks like a version.
func FindMainVersion(content []byte) *VersionMatch {
	for _, refs := range [][]versionRef{mainVersionRefs, fallbackVersionRefs} {
		var best *VersionMatch
		for _, ref := range refs {
			loc := ref.Pattern.FindSubmatchIndex(content)
			if loc == nil {
				continue
			}
			if best == nil || loc[2] < best.Start {
				best = &VersionMatch{
					Ref:     ref.Name,
					Version: string(content[loc[2]:loc[3]]),
					Start:   loc[2],
					End:     loc[3],
				}
			}
		}
		if best != nil {
			return best
		}
	}
	return nil
}

// BumpVersionInFile replaces the main version of the file with newVersion.
// A "v" prefix in front of the old version is kept. It reports false when the
// file holds no version.
func BumpVersionInFile(path, newVersion string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading file %s: %w", path, err)
	}

	m := FindMainVersion(data)
	if m == nil {
		return false, nil
	}
	if m.Version == newVersion {
		return true, nil
	}

	var b strings.Builder
	b.Write(data[:m.Start])
	b.WriteString(newVersion)
	b.Write(data[m.End:])
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return false, fmt.Errorf("writing file %s: %w", path, err)
	}
	return true, nil
}
