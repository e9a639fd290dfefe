// Package coordinator activates a named list of agents under one of four
// coordination modes: sequential, parallel, chain, and conversation.
// It merges shared input and context per activation, isolates per-agent
// failures, and aggregates outcomes with partial-failure accounting.
package coordinator

import (
	"fmt"
)

// Mode selects how a list of agents is activated.
type Mode string

const (
	// ModeSequential activates agents one after another with the same
	// input. A failure never stops the agents that follow.
	ModeSequential Mode = "sequential"
	// ModeParallel activates all agents concurrently with the same input.
	ModeParallel Mode = "parallel"
	// ModeChain activates agents in order, feeding each completed agent's
	// output forward as the next agent's input. The chain ends at the
	// first failure.
	ModeChain Mode = "chain"
	// ModeConversation activates each agent as one turn of a shared
	// conversation, threading turn metadata into its input.
	ModeConversation Mode = "conversation"
)

// Modes returns every supported coordination mode in documentation order.
func Modes() []Mode {
	return []Mode{ModeSequential, ModeParallel, ModeChain, ModeConversation}
}

// ParseMode converts a string into a Mode. An unrecognized value is a
// configuration error.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.valid() {
		return "", fmt.Errorf("unknown coordination mode %q (valid modes: sequential, parallel, chain, conversation)", s)
	}
	return m, nil
}

func (m Mode) valid() bool {
	switch m {
	case ModeSequential, ModeParallel, ModeChain, ModeConversation:
		return true
	}
	return false
}

func (m Mode) String() string {
	return string(m)
}
