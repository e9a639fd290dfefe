package invoker

import (
	"context"
	"errors"
	"testing"

	"github.com/philjestin/agentmux/internal/coordinator"
)

func TestRegistryInvoke(t *testing.T) {
	r := NewRegistry()
	r.Register("echo", func(ctx context.Context, input coordinator.Payload) (coordinator.Payload, error) {
		return coordinator.Payload{"got": input["msg"]}, nil
	})

	out, err := r.Invoke(context.Background(), "echo", coordinator.Payload{"msg": "hi"})
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if out.Status != coordinator.StatusCompleted {
		t.Errorf("Expected completed status, got %s", out.Status)
	}
	if out.Output["got"] != "hi" {
		t.Errorf("Expected output got=hi, got %v", out.Output)
	}
}

func TestRegistryUnknownAgent(t *testing.T) {
	r := NewRegistry()

	_, err := r.Invoke(context.Background(), "ghost", nil)
	if err == nil {
		t.Fatal("Expected error for unknown agent")
	}
}

func TestRegistryAgentError(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	r.Register("bad", func(ctx context.Context, input coordinator.Payload) (coordinator.Payload, error) {
		return nil, boom
	})

	_, err := r.Invoke(context.Background(), "bad", nil)
	if err == nil {
		t.Fatal("Expected error from failing agent")
	}
	if !errors.Is(err, boom) {
		t.Errorf("Expected wrapped agent error, got %v", err)
	}
}

func TestRegistryList(t *testing.T) {
	r := NewRegistry()
	noop := func(ctx context.Context, input coordinator.Payload) (coordinator.Payload, error) {
		return nil, nil
	}
	r.Register("b", noop)
	r.Register("a", noop)
	r.Register("c", noop)
	r.Deregister("c")

	ids := r.List()
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("Expected sorted ids [a b], got %v", ids)
	}
}

func TestRegistryDrivesCoordinator(t *testing.T) {
	r := NewRegistry()
	r.Register("double", func(ctx context.Context, input coordinator.Payload) (coordinator.Payload, error) {
		n, _ := input["n"].(int)
		return coordinator.Payload{"n": n * 2}, nil
	})

	c := coordinator.New(r)
	result, err := c.Run(context.Background(), coordinator.Request{
		AgentIDs:  []string{"double", "missing"},
		BaseInput: coordinator.Payload{"n": 2},
		Mode:      coordinator.ModeSequential,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.Successful != 1 || result.Failed != 1 {
		t.Errorf("Expected 1 successful and 1 failed, got %d/%d", result.Successful, result.Failed)
	}
	if result.Outcomes[1].Status != coordinator.StatusFailed {
		t.Error("Unknown agent should fail in isolation, not abort the run")
	}
}

func TestFuncAdapter(t *testing.T) {
	inv := Func(func(ctx context.Context, agentID string, input coordinator.Payload) (coordinator.Outcome, error) {
		return coordinator.Outcome{Status: coordinator.StatusCompleted, Output: coordinator.Payload{"id": agentID}}, nil
	})

	out, err := inv.Invoke(context.Background(), "a", nil)
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if out.Output["id"] != "a" {
		t.Errorf("Expected id=a, got %v", out.Output)
	}
}
