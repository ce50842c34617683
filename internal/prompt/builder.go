// Package prompt renders provider-neutral officer prompts from a template
// and a per-turn request context.
package prompt

import (
	"strconv"
	"strings"

	"github.com/nimblefox/pullover/internal/types"
)

// Render substitutes the request context into the template. Substitution is
// literal: each placeholder is replaced exactly once wherever it appears,
// absent fields become empty strings, and nothing ever fails. When the
// current turn is at or past the limit, the final-decision directive is
// appended after all substitution.
func Render(template string, rc types.AIRequestContext) string {
	replacer := strings.NewReplacer(
		"{PersonalityDescription}", rc.PersonalityDescription,
		"{SpecificBehavior}", rc.SpecificBehavior,
		"{PlayerCharacter}", rc.PlayerCharacter,
		"{RaiseSuspicionTriggers}", rc.RaiseSuspicionTriggers,
		"{LowerSuspicionTriggers}", rc.LowerSuspicionTriggers,
		"{Catchphrases}", rc.Catchphrases,
		"{CurrentTurn}", strconv.Itoa(rc.CurrentTurn),
		"{MaxTurns}", strconv.Itoa(rc.MaxTurns),
		"{History}", Transcript(rc.History),
		"{PlayerInput}", rc.PlayerInput,
	)

	rendered := replacer.Replace(template)
	if rc.CurrentTurn >= rc.MaxTurns {
		rendered += finalTurnDirective
	}
	return rendered
}

// Transcript renders the conversation history one "Speaker: Message" line
// per entry, in order.
func Transcript(history []types.DialogueEntry) string {
	if len(history) == 0 {
		return ""
	}
	lines := make([]string, len(history))
	for i, entry := range history {
		lines[i] = entry.String()
	}
	return strings.Join(lines, "\n")
}

// JoinCatchphrases formats a catchphrase list for the prompt.
func JoinCatchphrases(phrases []string) string {
	return strings.Join(phrases, "\n- ")
}
