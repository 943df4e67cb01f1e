// Package semcommit computes the next semantic version of a project from its
// commit messages.
//
// It provides functionalities for:
//   - Classifying commit messages by release keyword. A signal has the shape
//     keyword(scope): description, with the keywords major, minor and fix by default.
//   - Resolving the highest severity among the signals (major > minor > patch).
//   - Incrementing a version accordingly. A SNAPSHOT version is promoted to its
//     release instead of being bumped.
//   - Reading commit history from git up to the last automated bump commit,
//     which is marked with "[skip semVer]".
//   - Storing the version in a Maven pom.xml, a Go source file, or in memory,
//     and mirroring it into further files.
//
// A run never assumes a default bump: when no commit carries a keyword, Run
// fails with a *MissingSignalError and nothing is written.
//
// Usage Example:
//
//	import (
//	    "log"
//	    "github.com/bcomnes/semcommit/pkg"
//	)
//
//	func main() {
//	    msgs, err := semcommit.History{SkipMarker: semcommit.DefaultSkipMarker}.Messages()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    meta, err := semcommit.Run(msgs, semcommit.PomStore{Path: "pom.xml"}, semcommit.Options{})
//	    if err != nil {
//	        log.Fatalf("version bump failed: %v", err)
//	    }
//	    log.Printf("%s -> %s", meta.OldVersion, meta.NewVersion)
//	}
package semcommit
