// Package chat is the conversation orchestration engine: it assembles the
// provider-agnostic prompt for a turn, dispatches it to the right adapter,
// paces delivery with a synthetic typing delay and records both sides of
// the exchange in the message store.
package chat

import (
	"fmt"
	"strings"

	"github.com/duetchat/duet/internal/ai"
	"github.com/duetchat/duet/internal/db"
)

// contextPlaceholder stands in for an empty rolling summary so the second
// system entry is always present.
const contextPlaceholder = "nothing yet"

// styleDirectives are appended to every persona prompt. They keep replies
// in a terse, human chat register regardless of persona.
const styleDirectives = "Communication: write like a real person in a private chat. " +
	"Short, lively replies (1-4 sentences), with an occasional clarifying question.\n" +
	"Never use emoji, emoticons, ASCII art, stickers or reactions; " +
	"no Markdown, lists or tables unless explicitly asked; " +
	"do not wrap your own phrases in quotes without need.\n" +
	"Tone: natural and friendly, without forced cheer or stock phrases. " +
	"If you don't know something, say so briefly and offer to clarify. No boilerplate disclaimers.\n" +
	"Stay in first person, keep the persona's character and boundaries. " +
	"Never reveal that you are an AI or a model.\n" +
	"Language: reply in the language the user writes in.\n"

// Assemble builds the ordered message list for one provider call: the
// persona system prompt, a context entry carrying the rolling summary, then
// the recent history in chronological order. Pure; an empty history is fine.
func Assemble(persona db.Persona, summary string, recent []db.Message) []ai.Message {
	if persona.ID == "" {
		panic("chat: assemble called without a persona")
	}

	if summary == "" {
		summary = contextPlaceholder
	}

	out := make([]ai.Message, 0, len(recent)+2)
	out = append(out,
		ai.Message{Role: ai.RoleSystem, Content: personaPrompt(persona)},
		ai.Message{Role: ai.RoleSystem, Content: "Context: " + summary},
	)
	for _, m := range recent {
		out = append(out, ai.Message{Role: m.Role, Content: m.Content})
	}
	return out
}

// personaPrompt renders the persona profile into the system prompt.
func personaPrompt(p db.Persona) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are playing the role of %s.\n", p.Name)
	fmt.Fprintf(&b, "Bio: %s.\n", p.Bio)
	fmt.Fprintf(&b, "Style: %s.\n", p.Style)
	fmt.Fprintf(&b, "Boundaries: %s.\n", p.Boundaries)
	fmt.Fprintf(&b, "Goals: %s.\n", p.Goals)
	b.WriteString(styleDirectives)
	return b.String()
}
