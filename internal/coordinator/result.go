package coordinator

// Status reports how a single agent activation ended.
type Status string

const (
	// StatusCompleted indicates the activation produced a result.
	StatusCompleted Status = "completed"
	// StatusFailed indicates the activation returned an error or a
	// non-completed status.
	StatusFailed Status = "failed"
)

// Outcome is the result of one agent activation.
type Outcome struct {
	AgentID string `json:"agent_id"`
	Status  Status `json:"status"`

	// Output is the agent's structured result, set only when the
	// activation completed.
	Output Payload `json:"output,omitempty"`

	// Error describes the failure, set only when the activation failed.
	Error string `json:"error,omitempty"`

	// Turn is the 1-based conversation turn, set only in conversation
	// mode.
	Turn int `json:"turn,omitempty"`
}

// Result aggregates the outcomes of one coordination run.
type Result struct {
	// Outcomes are ordered by invocation order. For parallel mode that is
	// the request order, not completion order.
	Outcomes []Outcome `json:"outcomes"`

	Successful int `json:"successful_count"`
	Failed     int `json:"failed_count"`
	Total      int `json:"total_count"`
}

// Aggregate computes summary counts over the outcomes of a run. It is
// total: any outcome list, including an empty one, produces a result.
func Aggregate(outcomes []Outcome) *Result {
	if outcomes == nil {
		// Keep the JSON shape an array even for an empty run.
		outcomes = make([]Outcome, 0)
	}
	res := &Result{
		Outcomes: outcomes,
		Total:    len(outcomes),
	}
	for _, o := range outcomes {
		if o.Status == StatusCompleted {
			res.Successful++
		} else {
			res.Failed++
		}
	}
	return res
}
