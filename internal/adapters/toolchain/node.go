package toolchain

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crab/internal/core/ports"
)

const NodeID graft.ID = "adapter.locator"

func init() {
	graft.Register(graft.Node[ports.Locator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Locator, error) {
			return NewEnvLocator(), nil
		},
	})
}
