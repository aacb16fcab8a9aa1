package ports

import "go.nixgl.dev/glhost/internal/core/domain"

// SnapshotStore persists resolution snapshots across invocations.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SnapshotStore interface {
	// Load returns the persisted snapshot, or nil when the store is
	// absent, unreadable, malformed, partially written, or from a
	// different format version. Loading fails closed: a corrupt store
	// is indistinguishable from a missing one.
	Load() *domain.Snapshot

	// Save atomically replaces the persisted snapshot. Concurrent
	// writers race benignly: a snapshot is a pure function of host
	// state, so the last writer wins and readers see either the old or
	// the fully-formed new content, never a mix.
	Save(s *domain.Snapshot) error
}
