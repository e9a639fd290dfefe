package invoker

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/philjestin/agentmux/internal/coordinator"
)

// AgentFunc is an in-process agent: it receives the merged input and
// returns its structured output.
type AgentFunc func(ctx context.Context, input coordinator.Payload) (coordinator.Payload, error)

// Registry resolves agent ids to in-process agent functions and invokes
// them. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	agents map[string]AgentFunc
}

// NewRegistry creates an empty agent registry.
func NewRegistry() *Registry {
	return &Registry{
		agents: make(map[string]AgentFunc),
	}
}

// Register adds an agent under the given id, replacing any existing one.
func (r *Registry) Register(agentID string, fn AgentFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.agents[agentID] = fn
}

// Deregister removes an agent from the registry.
func (r *Registry) Deregister(agentID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.agents, agentID)
}

// List returns the registered agent ids in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.agents))
	for id := range r.agents {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Invoke runs the registered agent. An unknown id is an invocation error;
// the coordinator records it as a failed outcome without disturbing the
// rest of the run.
func (r *Registry) Invoke(ctx context.Context, agentID string, input coordinator.Payload) (coordinator.Outcome, error) {
	r.mu.RLock()
	fn, ok := r.agents[agentID]
	r.mu.RUnlock()

	if !ok {
		return coordinator.Outcome{}, fmt.Errorf("agent %q is not registered", agentID)
	}

	output, err := fn(ctx, input)
	if err != nil {
		return coordinator.Outcome{}, fmt.Errorf("agent %q: %w", agentID, err)
	}

	return coordinator.Outcome{
		Status: coordinator.StatusCompleted,
		Output: output,
	}, nil
}
