// Package main implements the semcommit CLI tool.
//
// The semcommit tool derives the next semantic version of a project from the
// commit messages in its git repository and writes it to the project
// descriptor (a Maven pom.xml by default, or a Go file holding a
// Version = "x.y.z" declaration).
//
// Commits are scanned newest first and scanning stops at the first commit
// whose message contains the skip marker ("[skip semVer]" by default), which
// flags the commit of a previous automated bump. Every occurrence of
// keyword(scope): description in a scanned message is a release signal:
//
//	major(api): drop the v1 endpoints   -> major bump (1.2.3 -> 2.0.0)
//	minor(api): add paging              -> minor bump (1.2.3 -> 1.3.0)
//	fix(db): close rows on error        -> patch bump (1.2.3 -> 1.2.4)
//
// The highest signal wins. A version whose patch component carries SNAPSHOT
// (1.0.0-SNAPSHOT) is promoted to its release (1.0.0) regardless of the
// signal. When no signal is found nothing is written and the tool exits
// with status 2.
//
// Command Usage:
//
//	semcommit [flags]
//
// Flags:
//
//	--repo, -C:        Path to the git repository (default ".").
//	--config:          YAML configuration file (default <repo>/.semcommit.yaml, optional).
//	--descriptor:      Version descriptor relative to the repository (default pom.xml).
//	                   A .go extension selects the Go source descriptor.
//	--ref:             Revision whose history is scanned (default HEAD).
//	--max-commits:     Upper bound on the number of scanned commits.
//	--skip-marker:     Text marking the last automated bump.
//	--major-keyword, --minor-keyword, --patch-keyword:
//	                   Replace the default keywords major, minor and fix.
//	--bump-file:       Additional file whose main version field is set to the new version.
//	                   May be repeated.
//	--dry:             Compute the new version without modifying any file.
//	--verbose, -v:     Print every matched release signal as a table.
//	--log-level:       debug, info, warn or error (default $LOG_LEVEL, then warn).
//	--version:         Displays the version of the semcommit CLI tool and exits.
//
// Examples:
//
//	# Bump pom.xml in the current repository
//	semcommit
//
//	# Preview the bump and the signals behind it
//	semcommit --dry --verbose
//
//	# Keep package.json in step with the pom
//	semcommit --bump-file package.json
//
//	# Version a Go module through its version.go file
//	semcommit --descriptor version.go
//
// The configuration file accepts the same settings:
//
//	keywords:
//	  major: breaking
//	  minor: feature
//	  patch: fix
//	skip_marker: "[skip semVer]"
//	ref: main
//	max_commits: 500
//	descriptor: pom.xml
//	bump_files:
//	  - package.json
//
// For more detailed API documentation, please see the documentation in the "pkg" package.
package main
