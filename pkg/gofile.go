package semcommit

import (
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	goVersionAssign = regexp.MustCompile(`(Version\s*=\s*")([^"]*)(")`)
	goPackageClause = regexp.MustCompile(`(?m)^package\s+(\w+)`)
)

// GoFileStore keeps the version in a Go source file declaring
// Version = "x.y.z".
//
// Run needs an existing declaration to read, so it fails on a missing file.
// Calling WriteVersion directly on a missing file creates it instead, which
// seeds a new project's version.go.
type GoFileStore struct {
	Path string
}

func (g GoFileStore) Location() string {
	return g.Path
}

// ReadVersion returns the first Version assignment in the file, or nil when
// the file declares none or the string is empty.
func (g GoFileStore) ReadVersion() (*string, error) {
	data, err := os.ReadFile(g.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read version file: %w", err)
	}
	m := goVersionAssign.FindSubmatch(data)
	if m == nil || len(m[2]) == 0 {
		return nil, nil
	}
	v := string(m[2])
	return &v, nil
}

// WriteVersion rewrites the Version assignment in place. A missing file is
// created with a package clause taken from its neighbours.
func (g GoFileStore) WriteVersion(version string) error {
	data, err := os.ReadFile(g.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return writeVersionFile(g.Path, version)
		}
		return fmt.Errorf("failed to read version file: %w", err)
	}

	loc := goVersionAssign.FindSubmatchIndex(data)
	if loc == nil {
		return fmt.Errorf("%s: no Version assignment found", g.Path)
	}
	out := make([]byte, 0, len(data)+len(version))
	out = append(out, data[:loc[4]]...)
	out = append(out, version...)
	out = append(out, data[loc[5]:]...)
	return os.WriteFile(g.Path, out, 0644)
}

// determinePackageName returns the package clause of path, or of any
// non-test Go file next to it, defaulting to "version".
func determinePackageName(path string) string {
	if data, err := os.ReadFile(path); err == nil {
		if m := goPackageClause.FindSubmatch(data); m != nil {
			return string(m[1])
		}
	}

	dir := filepath.Dir(path)
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, dir, func(fi os.FileInfo) bool {
		return strings.HasSuffix(fi.Name(), ".go") && !strings.HasSuffix(fi.Name(), "_test.go")
	}, parser.PackageClauseOnly)
	if err != nil {
		return "version"
	}
	for name := range pkgs {
		return name
	}
	return "version"
}

func writeVersionFile(path, version string) error {
	content := fmt.Sprintf(`package %s

var (
	Version = "%s"
)
`, determinePackageName(path), version)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %q: %v", dir, err)
	}
	return os.WriteFile(path, []byte(content), 0644)
}
