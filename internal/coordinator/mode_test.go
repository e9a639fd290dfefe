package coordinator

import (
	"strings"
	"testing"
)

func TestParseMode(t *testing.T) {
	for _, mode := range Modes() {
		parsed, err := ParseMode(string(mode))
		if err != nil {
			t.Errorf("ParseMode(%q) failed: %v", mode, err)
		}
		if parsed != mode {
			t.Errorf("ParseMode(%q) = %q", mode, parsed)
		}
	}
}

func TestParseModeUnknown(t *testing.T) {
	for _, bad := range []string{"", "Sequential", "round_robin", "chain "} {
		if _, err := ParseMode(bad); err == nil {
			t.Errorf("ParseMode(%q) should fail", bad)
		}
	}

	_, err := ParseMode("broadcast")
	if err == nil {
		t.Fatal("Expected error for unknown mode")
	}
	if !strings.Contains(err.Error(), "broadcast") {
		t.Errorf("Error should name the rejected mode, got: %v", err)
	}
}

func TestModeString(t *testing.T) {
	if ModeConversation.String() != "conversation" {
		t.Errorf("Expected 'conversation', got %q", ModeConversation.String())
	}
}
