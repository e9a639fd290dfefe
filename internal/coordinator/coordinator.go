package coordinator

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Invoker activates a single agent with a merged input payload.
// Implementations must treat the input as read-only: parallel mode hands
// the same payload to every activation.
type Invoker interface {
	Invoke(ctx context.Context, agentID string, input Payload) (Outcome, error)
}

// Request describes one coordination run. AgentIDs order is significant,
// duplicates are permitted and activated independently. The coordinator
// never mutates a request.
type Request struct {
	AgentIDs      []string
	BaseInput     Payload
	SharedContext Payload
	Mode          Mode
}

// TurnExtrasFunc supplies additional conversation-turn input, letting
// callers thread earlier turns' content forward. turn is 1-based and
// previous holds the outcomes of the turns already taken. Returned keys
// take precedence over the built-in turn metadata.
type TurnExtrasFunc func(turn int, previous []Outcome) Payload

// Options configures coordinator behavior.
type Options struct {
	// MaxParallel caps concurrent activations in parallel mode.
	// Zero or negative means no limit.
	MaxParallel int

	// TurnExtras extends conversation-mode input beyond the built-in turn
	// metadata. Nil keeps the metadata-only behavior.
	TurnExtras TurnExtrasFunc
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{}
}

// Coordinator sequences agent activations through an Invoker. It holds no
// state across runs; everything lives in the locals of one Run call, so a
// single Coordinator may serve concurrent runs.
type Coordinator struct {
	invoker     Invoker
	maxParallel int
	turnExtras  TurnExtrasFunc
}

// New creates a Coordinator with default options.
func New(inv Invoker) *Coordinator {
	return NewWithOptions(inv, DefaultOptions())
}

// NewWithOptions creates a Coordinator with custom options.
func NewWithOptions(inv Invoker, opts Options) *Coordinator {
	return &Coordinator{
		invoker:     inv,
		maxParallel: opts.MaxParallel,
		turnExtras:  opts.TurnExtras,
	}
}

// Run activates every agent in the request according to its mode and
// returns the aggregated result. Per-agent failures are folded into the
// result; the only hard error is an unrecognized mode, which fails before
// any agent is activated.
//
// The context is passed through to the invoker untouched. The coordinator
// adds no timeout or cancellation layer of its own.
func (c *Coordinator) Run(ctx context.Context, req Request) (*Result, error) {
	if !req.Mode.valid() {
		return nil, fmt.Errorf("unknown coordination mode %q", req.Mode)
	}

	slog.Debug("starting coordination run",
		"mode", req.Mode,
		"agent_count", len(req.AgentIDs))

	var outcomes []Outcome
	switch req.Mode {
	case ModeSequential:
		outcomes = c.runSequential(ctx, req)
	case ModeParallel:
		outcomes = c.runParallel(ctx, req)
	case ModeChain:
		outcomes = c.runChain(ctx, req)
	case ModeConversation:
		outcomes = c.runConversation(ctx, req)
	}

	result := Aggregate(outcomes)
	slog.Debug("coordination run finished",
		"mode", req.Mode,
		"successful", result.Successful,
		"failed", result.Failed,
		"total", result.Total)
	return result, nil
}

// invoke activates one agent and converts any invoker error into a failed
// outcome, so a single agent can never abort the run.
func (c *Coordinator) invoke(ctx context.Context, agentID string, input Payload) Outcome {
	out, err := c.invoker.Invoke(ctx, agentID, input)
	if err != nil {
		slog.Warn("agent activation failed",
			"agent_id", agentID,
			"error", err.Error())
		return Outcome{
			AgentID: agentID,
			Status:  StatusFailed,
			Error:   err.Error(),
		}
	}

	out.AgentID = agentID
	// Anything short of an explicit completed status counts as a failure.
	if out.Status != StatusCompleted {
		out.Status = StatusFailed
		out.Output = nil
	}
	return out
}

// runSequential activates agents one after another with the same merged
// input. Every agent is activated exactly once; a failure never skips the
// agents that follow.
func (c *Coordinator) runSequential(ctx context.Context, req Request) []Outcome {
	outcomes := make([]Outcome, 0, len(req.AgentIDs))
	for _, agentID := range req.AgentIDs {
		input := Merge(req.BaseInput, req.SharedContext, nil)
		outcomes = append(outcomes, c.invoke(ctx, agentID, input))
	}
	return outcomes
}

// runParallel activates all agents concurrently with one shared merged
// input and waits for every activation to settle. Each outcome is written
// to its agent's slot, so result order matches request order regardless of
// completion order, and the slots need no locking.
func (c *Coordinator) runParallel(ctx context.Context, req Request) []Outcome {
	input := Merge(req.BaseInput, req.SharedContext, nil)
	outcomes := make([]Outcome, len(req.AgentIDs))

	var g errgroup.Group
	if c.maxParallel > 0 {
		g.SetLimit(c.maxParallel)
	}
	for i, agentID := range req.AgentIDs {
		g.Go(func() error {
			outcomes[i] = c.invoke(ctx, agentID, input)
			return nil
		})
	}
	// invoke never returns an error, so Wait is purely a join.
	_ = g.Wait()

	return outcomes
}

// runChain activates agents in order, feeding each completed agent's
// output forward as the next agent's base input. The first failure ends
// the chain: later agents are never activated, and the outcomes are a
// strict prefix of the requested agents.
func (c *Coordinator) runChain(ctx context.Context, req Request) []Outcome {
	outcomes := make([]Outcome, 0, len(req.AgentIDs))
	current := req.BaseInput
	for _, agentID := range req.AgentIDs {
		input := Merge(current, req.SharedContext, nil)
		out := c.invoke(ctx, agentID, input)
		outcomes = append(outcomes, out)

		if out.Status != StatusCompleted {
			slog.Warn("agent activation failed, breaking chain",
				"agent_id", agentID)
			break
		}
		if len(out.Output) > 0 {
			current = out.Output
		}
	}
	return outcomes
}

// runConversation activates each agent as one turn of a shared
// conversation. Only position metadata travels between turns; earlier
// outputs reach later agents only through a TurnExtras hook or the
// caller's shared context. Failures are recorded with their turn and the
// conversation continues.
func (c *Coordinator) runConversation(ctx context.Context, req Request) []Outcome {
	outcomes := make([]Outcome, 0, len(req.AgentIDs))
	for i, agentID := range req.AgentIDs {
		turn := i + 1
		extra := Payload{
			"conversation_turn": turn,
			"previous_agents":   append([]string{}, req.AgentIDs[:i]...),
			"remaining_agents":  append([]string{}, req.AgentIDs[i+1:]...),
		}
		if c.turnExtras != nil {
			for k, v := range c.turnExtras(turn, outcomes) {
				extra[k] = v
			}
		}

		input := Merge(req.BaseInput, req.SharedContext, extra)
		out := c.invoke(ctx, agentID, input)
		out.Turn = turn
		outcomes = append(outcomes, out)
	}
	return outcomes
}
