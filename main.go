// Package main implements a CLI tool that derives the next semantic version of
// a project from its commit history and writes it to the project descriptor.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/pflag"

	"github.com/bcomnes/semcommit/internal/config"
	"github.com/bcomnes/semcommit/internal/logging"
	semcommit "github.com/bcomnes/semcommit/pkg"
)

const (
	exitOK        = 0
	exitError     = 1
	exitNoSignals = 2
)

func usage(w io.Writer, fs *pflag.FlagSet) {
	msg := `Usage:
  semcommit [options]

Scans the commit messages of a git repository, newest first, back to the last commit carrying the
skip marker (default "[skip semVer]"). Every keyword(scope): description occurrence is a release
signal; the highest one decides whether the major, minor or patch component of the project version
is bumped. A -SNAPSHOT version is promoted to its release instead. The new version is written to the
descriptor (default: pom.xml; a .go file holds a Version = "x.y.z" declaration).

Examples:
  semcommit
  semcommit --dry --verbose
  semcommit --repo ../service --descriptor version.go
  semcommit --bump-file package.json --bump-file Cargo.toml
  semcommit --patch-keyword bugfix --max-commits 200

Configuration is read from .semcommit.yaml in the repository unless --config is given.
Flags override the configuration file.

Exit status is 0 on success, 2 when no release keyword was found and 1 on any other error.

Options:
`
	fmt.Fprint(w, msg)
	fmt.Fprint(w, fs.FlagUsages())
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("semcommit", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr, fs) }

	repo := fs.StringP("repo", "C", ".", "Path to the git repository")
	configPath := fs.String("config", "", "Path to a YAML configuration file (default <repo>/.semcommit.yaml)")
	descriptor := fs.String("descriptor", "", "Path to the version descriptor, relative to the repository (default pom.xml)")
	ref := fs.String("ref", "", "Revision whose history is scanned (default HEAD)")
	maxCommits := fs.Int("max-commits", 0, "Maximum number of commits to scan (0 scans the whole history)")
	skipMarker := fs.String("skip-marker", "", `Text marking the last automated bump (default "[skip semVer]")`)
	majorKeyword := fs.String("major-keyword", "", `Keyword that requests a major bump (default "major")`)
	minorKeyword := fs.String("minor-keyword", "", `Keyword that requests a minor bump (default "minor")`)
	patchKeyword := fs.String("patch-keyword", "", `Keyword that requests a patch bump (default "fix")`)
	bumpFiles := fs.StringArray("bump-file", nil, "Additional file whose version is set to the new version. May be repeated.")
	dryRun := fs.Bool("dry", false, "Compute the new version without modifying any file")
	verbose := fs.BoolP("verbose", "v", false, "Print every matched release signal")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn or error (default $LOG_LEVEL, then warn)")
	showVersion := fs.Bool("version", false, "Show CLI version and exit")
	help := fs.BoolP("help", "h", false, "Show help message and exit")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		fs.Usage()
		return exitError
	}

	if *help {
		fs.Usage()
		return exitOK
	}
	if *showVersion {
		fmt.Fprintln(stdout, "semcommit CLI version", Version)
		return exitOK
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Error: unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return exitError
	}

	logging.SetDefaultStructuredLoggerWithLevel("semcommit", Version, *logLevel)

	cfg, err := config.Load(*repo, *configPath)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitError
	}
	cfg.Merge(&config.Config{
		Keywords: config.KeywordsConfig{
			Major: *majorKeyword,
			Minor: *minorKeyword,
			Patch: *patchKeyword,
		},
		SkipMarker: *skipMarker,
		Ref:        *ref,
		MaxCommits: *maxCommits,
		Descriptor: *descriptor,
		BumpFiles:  *bumpFiles,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "Error: invalid configuration:", err)
		return exitError
	}

	history := semcommit.History{
		Dir:        *repo,
		Ref:        cfg.Ref,
		SkipMarker: cfg.SkipMarker,
		MaxCount:   cfg.MaxCommits,
	}
	messages, err := history.Messages()
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitError
	}

	store := newStore(inRepo(*repo, cfg.Descriptor))
	opts := semcommit.Options{Keywords: cfg.SemcommitKeywords()}
	for _, f := range cfg.BumpFiles {
		opts.BumpFiles = append(opts.BumpFiles, inRepo(*repo, f))
	}

	var meta semcommit.ReleaseMeta
	if *dryRun {
		meta, err = semcommit.DryRun(messages, store, opts)
	} else {
		meta, err = semcommit.Run(messages, store, opts)
	}
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		var missing *semcommit.MissingSignalError
		if errors.As(err, &missing) {
			return exitNoSignals
		}
		return exitError
	}

	printSummary(stdout, meta, *dryRun)
	if *verbose {
		printSignals(stdout, meta.Signals)
	}
	return exitOK
}

// newStore picks the descriptor kind from the file extension.
func newStore(path string) semcommit.VersionStore {
	if strings.EqualFold(filepath.Ext(path), ".go") {
		return semcommit.GoFileStore{Path: path}
	}
	return semcommit.PomStore{Path: path}
}

// inRepo resolves a relative path against the repository directory.
func inRepo(repo, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(repo, path)
}

func printSummary(w io.Writer, meta semcommit.ReleaseMeta, dryRun bool) {
	if dryRun {
		fmt.Fprintln(w, "Dry run complete, no files were modified.")
	} else {
		fmt.Fprintln(w, "Version bump successful!")
	}
	fmt.Fprintf(w, "Old Version: %s\n", meta.OldVersion)
	fmt.Fprintf(w, "New Version: %s\n", meta.NewVersion)
	fmt.Fprintf(w, "Bump Type:   %s\n", meta.Severity)

	if len(meta.UpdatedFiles) > 0 {
		if dryRun {
			fmt.Fprintln(w, "Files that would be updated:")
		} else {
			fmt.Fprintln(w, "Files updated:")
		}
		for _, f := range meta.UpdatedFiles {
			fmt.Fprintf(w, "  %s\n", f)
		}
	}
}

// printSignals renders the matched release signals, newest commit first.
func printSignals(w io.Writer, signals []semcommit.Signal) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Commit", "Severity", "Keyword", "Scope", "Description"})
	for _, s := range signals {
		t.AppendRow(table.Row{
			s.Commit,
			s.Severity.String(),
			s.Keyword,
			s.Scope,
			s.Description,
		})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}
