package semcommit

import (
	"errors"
	"fmt"
	"regexp"
)

// Keywords are the literal tokens that mark a commit's release impact.
type Keywords struct {
	Major string
	Minor string
	Patch string
}

// DefaultKeywords returns major, minor and fix.
func DefaultKeywords() Keywords {
	return Keywords{Major: "major", Minor: "minor", Patch: "fix"}
}

// Validate requires three non-empty, distinct keywords.
func (k Keywords) Validate() error {
	if k.Major == "" || k.Minor == "" || k.Patch == "" {
		return errors.New("major, minor and patch keywords must not be empty")
	}
	if k.Major == k.Minor || k.Major == k.Patch || k.Minor == k.Patch {
		return fmt.Errorf("keywords must be distinct: major=%q minor=%q patch=%q", k.Major, k.Minor, k.Patch)
	}
	return nil
}

// severityOf maps a matched keyword back to its severity.
func (k Keywords) severityOf(keyword string) Severity {
	switch keyword {
	case k.Major:
		return Major
	case k.Minor:
		return Minor
	case k.Patch:
		return Patch
	}
	return NoSeverity
}

// Signal is one keyword(scope): description occurrence in a commit message.
type Signal struct {
	Commit      int // index of the message in the scanned list
	Severity    Severity
	Keyword     string
	Scope       string
	Description string
}

// Classifier finds release signals in commit messages.
type Classifier struct {
	keywords Keywords
	pattern  *regexp.Regexp
}

// NewClassifier compiles the signal pattern for the given keywords.
func NewClassifier(k Keywords) (*Classifier, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	// The scope is greedy up to the last "):" on the line, so keyword-shaped
	// text nested inside a scope never matches on its own.
	expr := `(` + regexp.QuoteMeta(k.Patch) + `|` + regexp.QuoteMeta(k.Minor) + `|` +
		regexp.QuoteMeta(k.Major) + `)\((.+)\):(.+)`
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compiling keyword pattern: %w", err)
	}
	return &Classifier{keywords: k, pattern: re}, nil
}

// Keywords returns the keywords the classifier was built with.
func (c *Classifier) Keywords() Keywords {
	return c.keywords
}

// Signals returns every non-overlapping match, message by message in input
// order and top to bottom within a message.
func (c *Classifier) Signals(messages []string) []Signal {
	signals := []Signal{}
	for i, msg := range messages {
		for _, m := range c.pattern.FindAllStringSubmatch(msg, -1) {
			signals = append(signals, Signal{
				Commit:      i,
				Severity:    c.keywords.severityOf(m[1]),
				Keyword:     m[1],
				Scope:       m[2],
				Description: m[3],
			})
		}
	}
	return signals
}

// Classify returns the severity of every signal in the messages.
func (c *Classifier) Classify(messages []string) []Severity {
	signals := c.Signals(messages)
	out := make([]Severity, 0, len(signals))
	for _, s := range signals {
		out = append(out, s.Severity)
	}
	return out
}

// Classify is a convenience wrapper around NewClassifier and Classifier.Classify.
func Classify(messages []string, k Keywords) ([]Severity, error) {
	c, err := NewClassifier(k)
	if err != nil {
		return nil, err
	}
	return c.Classify(messages), nil
}
