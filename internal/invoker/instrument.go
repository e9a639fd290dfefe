package invoker

import (
	"context"
	"time"

	"github.com/philjestin/agentmux/internal/coordinator"
	"github.com/philjestin/agentmux/internal/events"
)

// Instrumented wraps an Invoker and emits activation lifecycle events
// around every invocation.
type Instrumented struct {
	next coordinator.Invoker
}

// Instrument decorates an invoker with event emission.
func Instrument(next coordinator.Invoker) *Instrumented {
	return &Instrumented{next: next}
}

// Invoke emits agent_started before and agent_completed or agent_failed
// after the inner invoker runs. The outcome passes through unchanged.
func (i *Instrumented) Invoke(ctx context.Context, agentID string, input coordinator.Payload) (coordinator.Outcome, error) {
	events.AgentStarted(agentID)
	start := time.Now()

	out, err := i.next.Invoke(ctx, agentID, input)
	elapsed := time.Since(start)

	switch {
	case err != nil:
		events.AgentFailed(agentID, err.Error(), elapsed)
	case out.Status == coordinator.StatusCompleted:
		events.AgentCompleted(agentID, elapsed)
	default:
		events.AgentFailed(agentID, out.Error, elapsed)
	}

	return out, err
}
