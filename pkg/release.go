package semcommit

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/mod/semver"
)

// ReleaseMeta holds metadata about the version bump operation.
type ReleaseMeta struct {
	OldVersion   string   // The version before bumping.
	NewVersion   string   // The new version after bumping.
	Severity     Severity // Highest severity found in the commits.
	Signals      []Signal // Every keyword occurrence that was matched.
	UpdatedFiles []string // Paths of all files written (descriptor, bump files).
}

// Options configures a release run.
type Options struct {
	Keywords  Keywords
	BumpFiles []string // Extra files that mirror the new version.
}

func (o Options) keywords() Keywords {
	if o.Keywords == (Keywords{}) {
		return DefaultKeywords()
	}
	return o.Keywords
}

// plan computes the next version without touching the store's backing data.
func plan(messages []string, store VersionStore, opts Options) (ReleaseMeta, error) {
	var meta ReleaseMeta

	// 1. Classify and resolve
	c, err := NewClassifier(opts.keywords())
	if err != nil {
		return meta, err
	}
	meta.Signals = c.Signals(messages)
	severities := make([]Severity, 0, len(meta.Signals))
	for _, s := range meta.Signals {
		severities = append(severities, s.Severity)
	}
	slog.Debug("classified commits", "commits", len(messages), "signals", len(meta.Signals))

	sev, ok := Resolve(severities)
	if !ok {
		return meta, &MissingSignalError{Keywords: c.Keywords(), Scanned: len(messages)}
	}
	meta.Severity = sev

	// 2. Read and validate the current version
	raw, err := store.ReadVersion()
	if err != nil {
		return meta, fmt.Errorf("reading current version: %w", err)
	}
	current, err := ParseField(raw)
	if err != nil {
		return meta, err
	}
	meta.OldVersion = *raw

	// 3. Increment
	next, err := Increment(current, sev)
	if err != nil {
		return meta, err
	}
	meta.NewVersion = next.String()

	// A pre-release suffix semver rejects (rc_1) leaves nothing to compare against; skip the guard then.
	if semver.IsValid(current.canonical()) && semver.Compare(next.canonical(), current.canonical()) <= 0 {
		return meta, fmt.Errorf("new version (%s) does not sort after the current version (%s)", meta.NewVersion, meta.OldVersion)
	}
	return meta, nil
}

// Run computes the next version from the commit messages, writes it to the
// store and mirrors it into the bump files. Messages are expected newest
// first and already truncated at the skip marker.
//
// Every failure happens before the store is written, and the store is
// written exactly once on success.
func Run(messages []string, store VersionStore, opts Options) (ReleaseMeta, error) {
	meta, err := plan(messages, store, opts)
	if err != nil {
		return meta, err
	}

	if err := store.WriteVersion(meta.NewVersion); err != nil {
		return meta, fmt.Errorf("writing new version: %w", err)
	}
	if d, ok := store.(Describer); ok {
		meta.UpdatedFiles = append(meta.UpdatedFiles, d.Location())
	}
	slog.Info("version updated", "old", meta.OldVersion, "new", meta.NewVersion, "severity", meta.Severity.String())

	for _, bf := range opts.BumpFiles {
		bumped, err := BumpVersionInFile(bf, meta.NewVersion)
		if err != nil {
			// The descriptor is already written; a bump file never fails the run.
			slog.Warn("failed to bump version in file", "file", bf, "error", err)
			continue
		}
		if !bumped {
			slog.Warn("no version found in file", "file", bf)
			continue
		}
		meta.UpdatedFiles = append(meta.UpdatedFiles, bf)
	}

	return meta, nil
}

// DryRun performs the same computation as Run without writing anything and
// reports the files that would be updated. A bump file is listed only when
// Run would find a version in it.
func DryRun(messages []string, store VersionStore, opts Options) (ReleaseMeta, error) {
	meta, err := plan(messages, store, opts)
	if err != nil {
		return meta, err
	}

	if d, ok := store.(Describer); ok {
		meta.UpdatedFiles = append(meta.UpdatedFiles, d.Location())
	}
	for _, bf := range opts.BumpFiles {
		data, err := os.ReadFile(bf)
		if err != nil || FindMainVersion(data) == nil {
			continue
		}
		meta.UpdatedFiles = append(meta.UpdatedFiles, bf)
	}
	return meta, nil
}
