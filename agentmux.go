// Package agentmux provides a public API for using agentmux as a library.
// This is a wrapper around the internal packages to provide a stable public
// API: register in-process agents on a Mux and activate them under a
// coordination mode.
package agentmux

import (
	"context"

	"github.com/philjestin/agentmux/internal/coordinator"
	"github.com/philjestin/agentmux/internal/invoker"
)

// Payload is a JSON-shaped document passed into and out of agent
// activations.
type Payload = coordinator.Payload

// Mode selects how a list of agents is activated.
type Mode = coordinator.Mode

const (
	// ModeSequential activates agents one after another; failures never
	// stop the agents that follow.
	ModeSequential = coordinator.ModeSequential
	// ModeParallel activates all agents concurrently with the same input.
	ModeParallel = coordinator.ModeParallel
	// ModeChain feeds each completed agent's output forward and stops at
	// the first failure.
	ModeChain = coordinator.ModeChain
	// ModeConversation activates agents as turns of a shared conversation.
	ModeConversation = coordinator.ModeConversation
)

// Status reports how a single agent activation ended.
type Status = coordinator.Status

const (
	StatusCompleted = coordinator.StatusCompleted
	StatusFailed    = coordinator.StatusFailed
)

// Outcome is the result of one agent activation.
type Outcome = coordinator.Outcome

// Result aggregates the outcomes of one coordination run.
type Result = coordinator.Result

// AgentFunc is an in-process agent: it receives the merged input and
// returns its structured output.
type AgentFunc = invoker.AgentFunc

// ParseMode converts a string into a Mode.
func ParseMode(s string) (Mode, error) {
	return coordinator.ParseMode(s)
}

// Options configures a Mux.
type Options struct {
	// MaxParallel caps concurrent activations in parallel mode
	// (0 = no limit).
	MaxParallel int
}

// Mux registers in-process agents and activates them under a coordination
// mode. It is safe for concurrent use.
type Mux struct {
	registry *invoker.Registry
	options  coordinator.Options
}

// New creates an empty Mux.
func New() *Mux {
	return NewWithOptions(Options{})
}

// NewWithOptions creates an empty Mux with custom options.
func NewWithOptions(opts Options) *Mux {
	return &Mux{
		registry: invoker.NewRegistry(),
		options: coordinator.Options{
			MaxParallel: opts.MaxParallel,
		},
	}
}

// RegisterAgent adds an in-process agent under the given id, replacing any
// existing one.
func (m *Mux) RegisterAgent(agentID string, fn AgentFunc) {
	m.registry.Register(agentID, fn)
}

// Agents returns the registered agent ids in sorted order.
func (m *Mux) Agents() []string {
	return m.registry.List()
}

// Activate runs the listed agents under the given mode and returns the
// aggregated result. Per-agent failures are folded into the result; the
// only hard error is an unrecognized mode.
func (m *Mux) Activate(ctx context.Context, agentIDs []string, mode Mode, input, sharedContext Payload) (*Result, error) {
	c := coordinator.NewWithOptions(m.registry, m.options)
	return c.Run(ctx, coordinator.Request{
		AgentIDs:      agentIDs,
		BaseInput:     input,
		SharedContext: sharedContext,
		Mode:          mode,
	})
}
