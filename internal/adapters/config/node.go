package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.nixgl.dev/glhost/internal/adapters/logger"
	"go.nixgl.dev/glhost/internal/core/domain"
)

// NodeID is the unique identifier for the resolved config Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[*domain.Config]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*domain.Config, error) {
			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := NewLoader(log).Load()
			if err != nil {
				return nil, err
			}
			if cfg.Debug {
				log.SetDebug(true)
			}
			return cfg, nil
		},
	})
}
