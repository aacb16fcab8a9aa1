package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.nixgl.dev/glhost/internal/adapters/logger"
	"go.nixgl.dev/glhost/internal/core/ports"
)

const (
	// ScannerNodeID is the unique identifier for the scanner Graft node.
	ScannerNodeID graft.ID = "adapter.fs.scanner"
	// ProberNodeID is the unique identifier for the prober Graft node.
	ProberNodeID graft.ID = "adapter.fs.prober"
)

func init() {
	graft.Register(graft.Node[ports.Scanner]{
		ID:        ScannerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Scanner, error) {
			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewScanner(log), nil
		},
	})

	graft.Register(graft.Node[ports.Prober]{
		ID:        ProberNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Prober, error) {
			return NewProber(), nil
		},
	})
}
