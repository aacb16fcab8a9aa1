package domain

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// SnapshotVersion is the persisted snapshot format version. Bumping it
// invalidates every existing cache file, forcing a rescan instead of
// misinterpreting old records.
const SnapshotVersion = 1

// Snapshot is one fully-formed result of a resolution pass over the
// configured host library search path. Entry order follows the
// configured directory order; search-path precedence is semantically
// meaningful and preserved end-to-end. A snapshot is never patched
// incrementally: on any staleness it is discarded and rebuilt by a
// full scan.
type Snapshot struct {
	Version int `json:"version"`
	// SearchPathDigest fingerprints the ordered directory sequence the
	// snapshot was scanned from. A digest mismatch is the cheapest
	// possible staleness signal.
	SearchPathDigest string            `json:"search_path_digest"`
	Entries          []HostLibraryPath `json:"entries"`
}

// NewSnapshot builds a snapshot for the given configured directories
// and their per-directory scan results. Entries must be in the same
// order as dirs.
func NewSnapshot(dirs []string, entries []HostLibraryPath) *Snapshot {
	return &Snapshot{
		Version:          SnapshotVersion,
		SearchPathDigest: DigestSearchPath(dirs),
		Entries:          entries,
	}
}

// Directories returns the scanned directory sequence in configured
// order.
func (s *Snapshot) Directories() []string {
	dirs := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		dirs[i] = e.Fullpath
	}
	return dirs
}

// HasCategory reports whether any scanned directory holds at least one
// library of the given category.
func (s *Snapshot) HasCategory(cat Category) bool {
	for _, e := range s.Entries {
		if e.HasCategory(cat) {
			return true
		}
	}
	return false
}

// DigestSearchPath computes a deterministic fingerprint of an ordered
// directory sequence.
func DigestSearchPath(dirs []string) string {
	h := xxhash.New()
	for _, dir := range dirs {
		_, _ = h.WriteString(dir)
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
