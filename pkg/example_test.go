package semcommit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ExampleRun bumps a version held in memory from the commits since the last
// automated release.
func ExampleRun() {
	store := NewMemoryStore("1.0.0")
	commits := []string{"fix(x): a", "minor(y): b"}

	meta, err := Run(commits, store, Options{})
	if err != nil {
		fmt.Println("error bumping version:", err)
		return
	}

	fmt.Println(meta.OldVersion, "->", meta.NewVersion, meta.Severity)

	// Output:
	// 1.0.0 -> 1.1.0 minor
}

// ExampleRun_snapshot shows that a SNAPSHOT version is released as-is.
func ExampleRun_snapshot() {
	store := NewMemoryStore("3.23.454-SNAPSHOT")

	meta, err := Run([]string{"major(api): drop v1"}, store, Options{})
	if err != nil {
		fmt.Println("error bumping version:", err)
		return
	}
	fmt.Println(meta.NewVersion)

	// Output:
	// 3.23.454
}

// ExampleRun_missingSignal shows that unannotated commits never trigger a release.
func ExampleRun_missingSignal() {
	store := NewMemoryStore("1.0.0")

	_, err := Run([]string{"update readme"}, store, Options{})
	var missing *MissingSignalError
	fmt.Println(errors.As(err, &missing), store.Writes)

	// Output:
	// true 0
}

// ExamplePomStore bumps the project version of a pom.xml.
func ExamplePomStore() {
	tmpDir, err := os.MkdirTemp("", "semcommit_pom_example")
	if err != nil {
		fmt.Println("failed to create temporary directory:", err)
		return
	}
	defer os.RemoveAll(tmpDir)

	pomPath := filepath.Join(tmpDir, "pom.xml")
	pom := "<project>\n  <artifactId>demo</artifactId>\n  <version>1.4.2</version>\n</project>\n"
	if err := os.WriteFile(pomPath, []byte(pom), 0644); err != nil {
		fmt.Println("failed to write pom.xml:", err)
		return
	}

	if _, err := Run([]string{"fix(io): close file"}, PomStore{Path: pomPath}, Options{}); err != nil {
		fmt.Println("error bumping version:", err)
		return
	}

	v, err := PomStore{Path: pomPath}.ReadVersion()
	if err != nil {
		fmt.Println("failed to read pom.xml:", err)
		return
	}
	fmt.Println(*v)

	// Output:
	// 1.4.3
}
