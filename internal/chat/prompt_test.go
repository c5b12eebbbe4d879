package chat

import (
	"strings"
	"testing"

	"github.com/duetchat/duet/internal/ai"
	"github.com/duetchat/duet/internal/db"
)

func testPersona() db.Persona {
	return db.Persona{
		ID:         "friendly",
		Name:       "Anya",
		Bio:        "28 years old, a barista",
		Style:      "warm, upbeat",
		Boundaries: "no politics",
		Goals:      "keep the other person company",
	}
}

func TestAssembleEmptyHistory(t *testing.T) {
	msgs := Assemble(testPersona(), "", nil)

	if len(msgs) != 2 {
		t.Fatalf("len = %d, want exactly 2 system entries on empty history", len(msgs))
	}
	for i, m := range msgs {
		if m.Role != ai.RoleSystem {
			t.Errorf("msgs[%d].Role = %q, want system", i, m.Role)
		}
	}
	if msgs[1].Content != "Context: nothing yet" {
		t.Errorf("context entry = %q", msgs[1].Content)
	}
}

func TestAssemblePersonaPrompt(t *testing.T) {
	msgs := Assemble(testPersona(), "", nil)
	prompt := msgs[0].Content

	for _, want := range []string{"Anya", "a barista", "warm, upbeat", "no politics", "keep the other person company"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("persona prompt missing %q", want)
		}
	}
	if !strings.Contains(prompt, "Never reveal that you are an AI") {
		t.Error("persona prompt missing the style directives")
	}
}

func TestAssembleSummary(t *testing.T) {
	msgs := Assemble(testPersona(), "they talked about coffee", nil)
	if msgs[1].Content != "Context: they talked about coffee" {
		t.Errorf("context entry = %q", msgs[1].Content)
	}
}

func TestAssembleHistoryOrder(t *testing.T) {
	recent := []db.Message{
		{Role: ai.RoleUser, Content: "hi"},
		{Role: ai.RoleAssistant, Content: "hello"},
		{Role: ai.RoleUser, Content: "how are you?"},
	}
	msgs := Assemble(testPersona(), "", recent)

	if len(msgs) != 5 {
		t.Fatalf("len = %d, want 5", len(msgs))
	}
	for i, m := range recent {
		got := msgs[i+2]
		if got.Role != m.Role || got.Content != m.Content {
			t.Errorf("msgs[%d] = %+v, want %+v", i+2, got, m)
		}
	}
}
