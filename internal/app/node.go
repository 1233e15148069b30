package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pace/internal/adapters/config"
	"go.trai.ch/pace/internal/adapters/generator"
	"go.trai.ch/pace/internal/adapters/logger"
	"go.trai.ch/pace/internal/core/ports"
)

// Components contains all the initialized application components. It
// provides controlled access to what the CLI layer needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NodeID is the unique identifier for the components Graft node.
const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, config.NodeID, generator.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			gen, err := graft.Dep[ports.TaskGenerator](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{
				App:    New(loader, gen, log),
				Logger: log,
			}, nil
		},
	})
}
