package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.nixgl.dev/glhost/internal/adapters/cache"  //nolint:depguard // Wired in engine wiring
	"go.nixgl.dev/glhost/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.nixgl.dev/glhost/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.nixgl.dev/glhost/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ScannerNodeID,
			fs.ProberNodeID,
			cache.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			scanner, err := graft.Dep[ports.Scanner](ctx)
			if err != nil {
				return nil, err
			}

			prober, err := graft.Dep[ports.Prober](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.SnapshotStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewResolver(scanner, prober, store, log), nil
		},
	})
}
