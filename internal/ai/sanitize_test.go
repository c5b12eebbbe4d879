package ai

import "testing"

func TestStripReasoning(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no tags", "Hello there", "Hello there"},
		{"leading block", "<think>scratch</think>Hello there", "Hello there"},
		{"block with surrounding space", "  <think>hmm</think>  hi  ", "hi"},
		{"two blocks", "<think>a</think>one<think>b</think> two", "one two"},
		{"unterminated open drops tail", "reply<think>never closed", "reply"},
		{"only a block", "<think>everything</think>", ""},
		{"empty", "", ""},
		{"close without open", "text</think>more", "text</think>more"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripReasoning(tt.in); got != tt.want {
				t.Errorf("StripReasoning(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripReasoningIdempotent(t *testing.T) {
	inputs := []string{
		"Hello there",
		"<think>scratch</think>Hello there",
		"a<think>b</think>c<think>d</think>e",
		"reply<think>unterminated",
	}
	for _, in := range inputs {
		once := StripReasoning(in)
		twice := StripReasoning(once)
		if once != twice {
			t.Errorf("not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
