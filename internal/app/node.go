package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.nixgl.dev/glhost/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.nixgl.dev/glhost/internal/adapters/glvnd"  //nolint:depguard // Wired in app layer
	"go.nixgl.dev/glhost/internal/adapters/ldpath" //nolint:depguard // Wired in app layer
	"go.nixgl.dev/glhost/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.nixgl.dev/glhost/internal/adapters/shell"  //nolint:depguard // Wired in app layer
	"go.nixgl.dev/glhost/internal/core/domain"
	"go.nixgl.dev/glhost/internal/core/ports"
	"go.nixgl.dev/glhost/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			ldpath.NodeID,
			resolver.NodeID,
			glvnd.NodeID,
			shell.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			searchPath, err := graft.Dep[ports.SearchPathProvider](ctx)
			if err != nil {
				return nil, err
			}

			res, err := graft.Dep[*resolver.Resolver](ctx)
			if err != nil {
				return nil, err
			}

			eglWriter, err := graft.Dep[ports.EGLConfigWriter](ctx)
			if err != nil {
				return nil, err
			}

			launcher, err := graft.Dep[ports.Launcher](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(cfg, searchPath, res, eglWriter, launcher, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}
