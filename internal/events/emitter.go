// Package events provides JSON event emission for activation runs.
// Events are written to stdout as newline-delimited JSON so wrapping tools
// can follow a run's progress.
package events

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Event represents a structured event emitted during an activation run.
type Event struct {
	Type       string `json:"type"`
	AgentID    string `json:"agent_id,omitempty"`
	Mode       string `json:"mode,omitempty"`
	Status     string `json:"status,omitempty"`
	Error      string `json:"error,omitempty"`
	DurationMS int64  `json:"duration_ms,omitempty"`
	AgentCount int    `json:"agent_count,omitempty"`
	Successful int    `json:"successful,omitempty"`
	Failed     int    `json:"failed,omitempty"`
	Total      int    `json:"total,omitempty"`
}

// Emit writes a JSON event to stdout.
func Emit(event Event) {
	data, _ := json.Marshal(event)
	fmt.Fprintln(os.Stdout, string(data))
}

// RunStarted emits an event when a coordination run begins.
func RunStarted(mode string, agentCount int) {
	Emit(Event{
		Type:       "run_started",
		Mode:       mode,
		AgentCount: agentCount,
	})
}

// RunCompleted emits an event when a coordination run finishes.
func RunCompleted(mode string, successful, failed, total int) {
	Emit(Event{
		Type:       "run_completed",
		Mode:       mode,
		Successful: successful,
		Failed:     failed,
		Total:      total,
	})
}

// AgentStarted emits an event when an agent activation begins.
func AgentStarted(agentID string) {
	Emit(Event{
		Type:    "agent_started",
		AgentID: agentID,
	})
}

// AgentCompleted emits an event when an agent activation completes.
func AgentCompleted(agentID string, elapsed time.Duration) {
	Emit(Event{
		Type:       "agent_completed",
		AgentID:    agentID,
		Status:     "completed",
		DurationMS: elapsed.Milliseconds(),
	})
}

// AgentFailed emits an event when an agent activation fails.
func AgentFailed(agentID, errMsg string, elapsed time.Duration) {
	Emit(Event{
		Type:       "agent_failed",
		AgentID:    agentID,
		Status:     "failed",
		Error:      errMsg,
		DurationMS: elapsed.Milliseconds(),
	})
}
