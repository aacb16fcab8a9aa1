// Package resolver implements the host library resolution engine: it
// decides between reusing a cached snapshot and performing a full
// rescan of the configured search path.
package resolver

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"go.nixgl.dev/glhost/internal/core/domain"
	"go.nixgl.dev/glhost/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver orchestrates the snapshot store, the revalidation prober,
// and the scanner.
type Resolver struct {
	scanner ports.Scanner
	prober  ports.Prober
	store   ports.SnapshotStore
	logger  ports.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(
	scanner ports.Scanner,
	prober ports.Prober,
	store ports.SnapshotStore,
	logger ports.Logger,
) *Resolver {
	return &Resolver{
		scanner: scanner,
		prober:  prober,
		store:   store,
		logger:  logger,
	}
}

// Resolve returns a snapshot of the given directories, reusing the
// cached one when it is still fresh. On any staleness the cached
// snapshot is discarded wholesale and a full scan runs; the engine
// never patches a snapshot incrementally. A failure to persist the
// fresh snapshot is degraded to a warning: the resolution itself is
// still valid for this invocation.
func (r *Resolver) Resolve(ctx context.Context, dirs []string, force bool) (*domain.Snapshot, error) {
	if !force {
		if cached := r.store.Load(); cached != nil && r.validate(cached, dirs) {
			r.logger.Debug("the cache is up to date, re-using it")
			return cached, nil
		}
		r.logger.Debug("the cache is not up to date, rescanning")
	}

	snap, err := r.scanner.Scan(ctx, dirs)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to scan host directories")
	}
	if err := r.store.Save(snap); err != nil {
		r.logger.Warn(fmt.Sprintf("failed to persist resolution cache: %v", err))
	}
	return snap, nil
}

// validate reports whether the cached snapshot still describes the
// host. Fresh means: the configured directory sequence is unchanged,
// every recorded library still metadata-matches on disk, and no
// directory gained a classifiable file the snapshot does not know
// about. Removals are caught by the metadata re-probe, additions by
// the re-listing; both are needed because a driver upgrade can add,
// remove, or modify libraries.
func (r *Resolver) validate(snap *domain.Snapshot, dirs []string) bool {
	if snap.SearchPathDigest != domain.DigestSearchPath(dirs) {
		return false
	}
	if !slices.Equal(snap.Directories(), dirs) {
		return false
	}

	known := make(map[string]bool)
	for _, entry := range snap.Entries {
		for _, lib := range entry.Libraries {
			current, err := r.prober.Identify(lib.Fullpath)
			if err != nil || !current.SameRevision(lib.LibraryIdentity) {
				return false
			}
			known[lib.Fullpath] = true
		}
	}

	for _, entry := range snap.Entries {
		names, err := r.prober.ListDir(entry.Fullpath)
		if err != nil {
			// The directory was empty or unreadable at scan time too,
			// otherwise the identity re-probe above would have failed.
			if len(entry.Libraries) > 0 {
				return false
			}
			continue
		}
		for _, name := range names {
			if _, ok := domain.Classify(name); !ok {
				continue
			}
			if !known[filepath.Join(entry.Fullpath, name)] {
				return false
			}
		}
	}
	return true
}
