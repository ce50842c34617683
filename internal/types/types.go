// Package types holds the shared data model for the negotiation engine.
package types

import "strings"

// Decision is the officer's per-turn verdict.
type Decision string

const (
	// DecisionPending means the conversation continues.
	DecisionPending Decision = "PENDING"
	// DecisionTicket means the player is fined.
	DecisionTicket Decision = "TICKET"
	// DecisionWarning means the player is let go.
	DecisionWarning Decision = "WARNING"
)

// ParseDecision classifies a raw decision string. Matching is
// case-insensitive against the exact tokens; anything else, including an
// empty string, is Pending.
func ParseDecision(raw string) Decision {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(DecisionTicket):
		return DecisionTicket
	case string(DecisionWarning):
		return DecisionWarning
	default:
		return DecisionPending
	}
}

// IsFinal reports whether the decision ends the round.
func (d Decision) IsFinal() bool {
	return d == DecisionTicket || d == DecisionWarning
}

// Speaker tags used in the conversation transcript.
const (
	SpeakerPlayer  = "Player"
	SpeakerOfficer = "Cop"
)

// DialogueEntry is a single line of the conversation. Immutable once
// created; slice order is the conversation order.
type DialogueEntry struct {
	Speaker string
	Message string
}

func (e DialogueEntry) String() string {
	return e.Speaker + ": " + e.Message
}

// PlayerType selects which behavior variant of an officer the player faces.
type PlayerType string

const (
	PlayerTypeDefault PlayerType = "Default"
	PlayerTypeHotGirl PlayerType = "HotGirl"
	PlayerTypeGrandMa PlayerType = "GrandMa"
)

// BehaviorSet holds the per-player-type behavior variants of an officer.
type BehaviorSet struct {
	Default string `yaml:"default"`
	HotGirl string `yaml:"hot_girl"`
	GrandMa string `yaml:"grandma"`
}

// PersonalityProfile is an immutable per-officer configuration. Loaded once,
// never mutated.
type PersonalityProfile struct {
	ID             string      `yaml:"id"`
	OpeningLine    string      `yaml:"opening_line"`
	Personality    string      `yaml:"personality"`
	Behaviors      BehaviorSet `yaml:"behaviors"`
	RaiseSuspicion string      `yaml:"raise_suspicion"`
	LowerSuspicion string      `yaml:"lower_suspicion"`
	Catchphrases   []string    `yaml:"catchphrases"`
	Voice          string      `yaml:"voice"`
}

// BehaviorFor returns the behavior variant matching the player type,
// falling back to the default variant.
func (p *PersonalityProfile) BehaviorFor(t PlayerType) string {
	switch t {
	case PlayerTypeHotGirl:
		if p.Behaviors.HotGirl != "" {
			return p.Behaviors.HotGirl
		}
	case PlayerTypeGrandMa:
		if p.Behaviors.GrandMa != "" {
			return p.Behaviors.GrandMa
		}
	}
	return p.Behaviors.Default
}

// PlayerProfile identifies the driver the officer is dealing with.
type PlayerProfile struct {
	ID   string     `yaml:"id"`
	Type PlayerType `yaml:"type"`
}

// AIRequestContext carries everything the prompt template needs for one
// exchange. Built fresh per turn and never mutated after send.
type AIRequestContext struct {
	PersonalityDescription string
	SpecificBehavior       string
	PlayerCharacter        string
	RaiseSuspicionTriggers string
	LowerSuspicionTriggers string
	Catchphrases           string
	CurrentTurn            int
	MaxTurns               int
	PlayerInput            string
	History                []DialogueEntry
}

// AIResponse is the normalized provider output after decoding.
type AIResponse struct {
	Dialogue      string
	LeniencyScore int
	Decision      Decision
}

// IsFinalDecision reports whether the response carries a round-ending
// verdict.
func (r AIResponse) IsFinalDecision() bool {
	return r.Decision.IsFinal()
}

// ClampLeniency bounds a raw leniency score to 0-100.
func ClampLeniency(score int) int {
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return score
	}
}
