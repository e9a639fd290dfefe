package invoker

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/philjestin/agentmux/internal/coordinator"
	"github.com/philjestin/agentmux/internal/events"
)

func TestInstrumentEmitsLifecycleEvents(t *testing.T) {
	inner := Func(func(ctx context.Context, agentID string, input coordinator.Payload) (coordinator.Outcome, error) {
		if agentID == "bad" {
			return coordinator.Outcome{}, errors.New("boom")
		}
		return coordinator.Outcome{Status: coordinator.StatusCompleted}, nil
	})
	inv := Instrument(inner)

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	if _, err := inv.Invoke(context.Background(), "good", nil); err != nil {
		t.Errorf("Invoke failed: %v", err)
	}
	if _, err := inv.Invoke(context.Background(), "bad", nil); err == nil {
		t.Error("Expected error to pass through the decorator")
	}

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("Failed to read from pipe: %v", err)
	}

	var got []events.Event
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var event events.Event
		if err := json.Unmarshal(scanner.Bytes(), &event); err != nil {
			t.Fatalf("Failed to parse event line %q: %v", scanner.Text(), err)
		}
		got = append(got, event)
	}

	wantTypes := []string{"agent_started", "agent_completed", "agent_started", "agent_failed"}
	if len(got) != len(wantTypes) {
		t.Fatalf("Expected %d events, got %d", len(wantTypes), len(got))
	}
	for i, want := range wantTypes {
		if got[i].Type != want {
			t.Errorf("Event %d: expected type %s, got %s", i, want, got[i].Type)
		}
	}
	if got[3].Error != "boom" {
		t.Errorf("Failure event should carry the error, got %q", got[3].Error)
	}
}
