package generator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pace/internal/core/ports"
)

// NodeID is the unique identifier for the sample generator Graft node.
const NodeID graft.ID = "adapter.generator"

func init() {
	graft.Register(graft.Node[ports.TaskGenerator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TaskGenerator, error) {
			return New(), nil
		},
	})
}
