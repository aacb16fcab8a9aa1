// Package cache implements the persistent resolution snapshot store.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.nixgl.dev/glhost/internal/core/domain"
	"go.nixgl.dev/glhost/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SnapshotStore = (*Store)(nil)

// Store implements ports.SnapshotStore using a flat JSON file.
//
// The file layout is an implementation-private optimization, not a
// compatibility surface; domain.SnapshotVersion guards against reading
// records written by a different engine version.
type Store struct {
	path   string
	logger ports.Logger
}

// NewStore creates a snapshot store backed by the file at the given
// path.
func NewStore(path string, logger ports.Logger) *Store {
	return &Store{
		path:   filepath.Clean(path),
		logger: logger,
	}
}

// Load reads the persisted snapshot. Any failure - missing file,
// truncated or malformed JSON, version mismatch - yields nil so the
// caller falls back to a full rescan. A half-written cache file must
// never be treated as valid.
func (s *Store) Load() *domain.Snapshot {
	data, err := os.ReadFile(s.path) //nolint:gosec // Path is cleaned and provided by trusted caller
	if err != nil {
		return nil
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.logger.Debug(fmt.Sprintf("discarding corrupt cache file %s: %v", s.path, err))
		return nil
	}
	if snap.Version != domain.SnapshotVersion {
		s.logger.Debug(fmt.Sprintf("discarding cache file %s: version %d, want %d", s.path, snap.Version, domain.SnapshotVersion))
		return nil
	}
	return &snap
}

// Save atomically replaces the persisted snapshot: the content is
// written to a temporary file in the same directory and renamed into
// place, so a crashed writer leaves either the old file or the new
// one, never a mix.
func (s *Store) Save(snap *domain.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal snapshot")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create cache directory")
	}

	tmp, err := os.CreateTemp(dir, "cache-*.json")
	if err != nil {
		return zerr.Wrap(err, "failed to create temporary cache file")
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, "failed to write temporary cache file")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, "failed to close temporary cache file")
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, "failed to replace cache file")
	}
	return nil
}
