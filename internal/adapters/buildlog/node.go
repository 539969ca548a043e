package buildlog

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crab/internal/core/ports"
)

const NodeID graft.ID = "adapter.buildlog"

func init() {
	graft.Register(graft.Node[ports.LogSink]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.LogSink, error) {
			return NewSink(), nil
		},
	})
}
