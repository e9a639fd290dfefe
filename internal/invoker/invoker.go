// Package invoker provides coordinator.Invoker implementations: an
// in-process agent registry, a subprocess command invoker, and an
// event-emitting decorator.
package invoker

import (
	"context"

	"github.com/philjestin/agentmux/internal/coordinator"
)

// Func adapts a plain function to the coordinator.Invoker interface.
type Func func(ctx context.Context, agentID string, input coordinator.Payload) (coordinator.Outcome, error)

// Invoke calls f.
func (f Func) Invoke(ctx context.Context, agentID string, input coordinator.Payload) (coordinator.Outcome, error) {
	return f(ctx, agentID, input)
}
