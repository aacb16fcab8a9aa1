package glvnd

import (
	"context"

	"github.com/grindlemire/graft"
	"go.nixgl.dev/glhost/internal/adapters/logger"
	"go.nixgl.dev/glhost/internal/core/ports"
)

// NodeID is the unique identifier for the EGL config writer Graft
// node.
const NodeID graft.ID = "adapter.glvnd_writer"

func init() {
	graft.Register(graft.Node[ports.EGLConfigWriter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.EGLConfigWriter, error) {
			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWriter(log), nil
		},
	})
}
