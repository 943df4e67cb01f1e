package semcommit

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
)

// DefaultSkipMarker flags the commit of a previous automated version bump.
const DefaultSkipMarker = "[skip semVer]"

// History reads commit messages from a git repository.
type History struct {
	Dir        string // Repository directory; empty means the working directory.
	Ref        string // Revision to walk from; empty means HEAD.
	SkipMarker string // Scanning stops at the first message containing it; empty means DefaultSkipMarker.
	MaxCount   int    // Upper bound on the number of commits read; 0 means no bound.
}

// CheckGit verifies that git is available on the system.
func CheckGit() error {
	cmd := exec.Command("git", "--version")
	if err := cmd.Run(); err != nil {
		return errors.New("git is not available on the system")
	}
	return nil
}

// Messages returns the commit messages reachable from Ref, newest first,
// stopping before the first message that carries the skip marker.
func (h History) Messages() ([]string, error) {
	ref := h.Ref
	if ref == "" {
		ref = "HEAD"
	}
	marker := h.SkipMarker
	if marker == "" {
		marker = DefaultSkipMarker
	}

	args := []string{"log", "-z", "--format=%B"}
	if h.Dir != "" {
		args = append([]string{"-C", h.Dir}, args...)
	}
	if h.MaxCount > 0 {
		args = append(args, "--max-count="+strconv.Itoa(h.MaxCount))
	}
	args = append(args, ref, "--")

	cmd := exec.Command("git", args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git log %s failed: %v, detail: %s", ref, err, strings.TrimSpace(stderr.String()))
	}

	var messages []string
	for _, raw := range strings.Split(string(out), "\x00") {
		msg := strings.TrimRight(raw, "\n")
		if msg == "" {
			continue
		}
		messages = append(messages, msg)
	}

	scanned := TruncateAtMarker(messages, marker)
	for i, msg := range scanned {
		slog.Debug("scanning commit", "index", i, "message", msg)
	}
	return scanned, nil
}

// TruncateAtMarker keeps the messages that precede the first one containing
// marker. The marked message itself is excluded.
func TruncateAtMarker(messages []string, marker string) []string {
	if marker == "" {
		return messages
	}
	for i, msg := range messages {
		if strings.Contains(msg, marker) {
			return messages[:i]
		}
	}
	return messages
}
