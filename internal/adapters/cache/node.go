package cache

import (
	"context"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.nixgl.dev/glhost/internal/adapters/config"
	"go.nixgl.dev/glhost/internal/adapters/logger"
	"go.nixgl.dev/glhost/internal/core/domain"
	"go.nixgl.dev/glhost/internal/core/ports"
)

// NodeID is the unique identifier for the snapshot store Graft node.
const NodeID graft.ID = "adapter.snapshot_store"

// FileName is the cache file name inside the configured cache
// directory.
const FileName = "cache.json"

func init() {
	graft.Register(graft.Node[ports.SnapshotStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.SnapshotStore, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(filepath.Join(cfg.CacheDir, FileName), log), nil
		},
	})
}
