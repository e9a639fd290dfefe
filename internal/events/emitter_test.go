package events

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"
	"time"
)

// captureStdout runs fn and returns everything it wrote to stdout.
func captureStdout(t *testing.T, fn func()) []byte {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("Failed to read from pipe: %v", err)
	}
	return buf.Bytes()
}

func TestAgentStarted(t *testing.T) {
	out := captureStdout(t, func() {
		AgentStarted("researcher")
	})

	var event Event
	if err := json.Unmarshal(out, &event); err != nil {
		t.Fatalf("Failed to parse event JSON: %v", err)
	}

	if event.Type != "agent_started" {
		t.Errorf("Expected type 'agent_started', got '%s'", event.Type)
	}
	if event.AgentID != "researcher" {
		t.Errorf("Expected agent_id 'researcher', got '%s'", event.AgentID)
	}
}

func TestAgentFailed(t *testing.T) {
	out := captureStdout(t, func() {
		AgentFailed("critic", "timed out", 1500*time.Millisecond)
	})

	var event Event
	if err := json.Unmarshal(out, &event); err != nil {
		t.Fatalf("Failed to parse event JSON: %v", err)
	}

	if event.Type != "agent_failed" {
		t.Errorf("Expected type 'agent_failed', got '%s'", event.Type)
	}
	if event.Status != "failed" {
		t.Errorf("Expected status 'failed', got '%s'", event.Status)
	}
	if event.Error != "timed out" {
		t.Errorf("Expected error 'timed out', got '%s'", event.Error)
	}
	if event.DurationMS != 1500 {
		t.Errorf("Expected duration 1500ms, got %d", event.DurationMS)
	}
}

func TestRunCompleted(t *testing.T) {
	out := captureStdout(t, func() {
		RunCompleted("parallel", 2, 1, 3)
	})

	var event Event
	if err := json.Unmarshal(out, &event); err != nil {
		t.Fatalf("Failed to parse event JSON: %v", err)
	}

	if event.Type != "run_completed" {
		t.Errorf("Expected type 'run_completed', got '%s'", event.Type)
	}
	if event.Mode != "parallel" {
		t.Errorf("Expected mode 'parallel', got '%s'", event.Mode)
	}
	if event.Successful != 2 || event.Failed != 1 || event.Total != 3 {
		t.Errorf("Expected counts 2/1/3, got %d/%d/%d", event.Successful, event.Failed, event.Total)
	}
}
