package gitops

import (
	"fmt"
	"os/exec"
	"strings"
)

const (
	// DirtySuffix marks an identifier whose working tree had uncommitted
	// changes to tracked files at resolution time.
	DirtySuffix = "-dirty"

	// UnknownID is the identifier used when the repository state cannot
	// be determined (not a repository, git missing, etc.).
	UnknownID = "unknown"
)

// Sha returns the full commit hash of the named revision.
func Sha(dir, ref string) (string, error) {
	cmd := exec.Command("git", "log", "-1", "--format=%H", ref)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git log %s: %w", ref, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// WorkingTreeID resolves the cache identifier for the current working tree:
// the full HEAD hash, suffixed with DirtySuffix when tracked files have
// uncommitted modifications. Untracked files do not count as dirty. Any git
// failure degrades to UnknownID so measurement can still proceed, just
// under a key that cannot be distinguished across runs.
func WorkingTreeID(dir string) string {
	id, err := Sha(dir, "HEAD")
	if err != nil {
		return UnknownID
	}
	cmd := exec.Command("git", "status", "--porcelain", "-uno")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return UnknownID
	}
	if strings.TrimSpace(string(out)) != "" {
		id += DirtySuffix
	}
	return id
}

// Describe returns a long-form human-readable description of the working
// tree (nearest tag, commit offset, hash, dirty marker). Unlike
// WorkingTreeID it is display-only and fails loudly.
func Describe(dir string) (string, error) {
	cmd := exec.Command("git", "describe", "--abbrev=40", "--dirty")
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git describe: %s: %w", strings.TrimSpace(string(out)), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// WorkingTree is the live repository state rooted at Dir. The identifier
// resolves on first use and is then pinned for the rest of the invocation,
// so one run measures and records under a single key.
type WorkingTree struct {
	Dir string
	id  string
}

func (w *WorkingTree) ID() string {
	if w.id == "" {
		w.id = WorkingTreeID(w.Dir)
	}
	return w.id
}

func (w *WorkingTree) Describe() (string, error) {
	return Describe(w.Dir)
}

// IsDirty reports whether an identifier carries the dirty suffix.
func IsDirty(id string) bool {
	return strings.HasSuffix(id, DirtySuffix)
}

// ShortID abbreviates a full identifier for display, preserving the dirty
// suffix and the unknown sentinel.
func ShortID(id string) string {
	dirty := IsDirty(id)
	hash := strings.TrimSuffix(id, DirtySuffix)
	if len(hash) > 8 {
		hash = hash[:8]
	}
	if dirty {
		return hash + DirtySuffix
	}
	return hash
}
