package ldpath

import (
	"context"

	"github.com/grindlemire/graft"
	"go.nixgl.dev/glhost/internal/adapters/logger"
	"go.nixgl.dev/glhost/internal/core/ports"
)

// NodeID is the unique identifier for the search path provider Graft
// node.
const NodeID graft.ID = "adapter.search_path_provider"

func init() {
	graft.Register(graft.Node[ports.SearchPathProvider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.SearchPathProvider, error) {
			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewProvider(log), nil
		},
	})
}
