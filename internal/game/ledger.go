// Package game applies round outcomes to the economy and drives the
// round-to-round loop across the roster.
package game

import (
	"errors"

	"github.com/nimblefox/pullover/internal/types"
)

// ScorePolicy selects how score accumulates across rounds.
type ScorePolicy string

const (
	// ScoreWarningBonus grants the bonus only when the player is pardoned.
	ScoreWarningBonus ScorePolicy = "warning_bonus"
	// ScoreEveryRound grants one point per finished round regardless of
	// verdict, the behavior of an earlier revision of the game.
	ScoreEveryRound ScorePolicy = "every_round"
)

// ErrPendingOutcome means a round reached the resolver without a verdict.
// The session is responsible for never letting that happen.
var ErrPendingOutcome = errors.New("pending decision reached the outcome resolver")

// EconomyConfig holds the per-round economic constants.
type EconomyConfig struct {
	StartingMoney int
	TicketPenalty int
	WarningBonus  int
	Policy        ScorePolicy
}

// Outcome reports the economy after a round and whether the game is over.
type Outcome struct {
	Decision types.Decision
	Money    int
	Score    int
	GameOver bool
}

// Ledger is the persistent money/score state for one play session. Single
// writer; lives until an explicit restart.
type Ledger struct {
	cfg   EconomyConfig
	money int
	score int
}

// NewLedger starts a ledger at the configured stake.
func NewLedger(cfg EconomyConfig) *Ledger {
	if cfg.Policy == "" {
		cfg.Policy = ScoreWarningBonus
	}
	return &Ledger{cfg: cfg, money: cfg.StartingMoney}
}

// Money returns the current bankroll. Never negative.
func (l *Ledger) Money() int { return l.money }

// Score returns the accumulated score.
func (l *Ledger) Score() int { return l.score }

// Apply settles a finished round. A Warning pays the score bonus and leaves
// money alone; a Ticket deducts the penalty, floored at zero. Going broke
// on a Ticket ends the game.
func (l *Ledger) Apply(decision types.Decision) (Outcome, error) {
	if !decision.IsFinal() {
		return Outcome{}, ErrPendingOutcome
	}

	if l.cfg.Policy == ScoreEveryRound {
		l.score++
	}

	switch decision {
	case types.DecisionWarning:
		if l.cfg.Policy == ScoreWarningBonus {
			l.score += l.cfg.WarningBonus
		}
	case types.DecisionTicket:
		l.money -= l.cfg.TicketPenalty
		if l.money < 0 {
			l.money = 0
		}
	}

	return Outcome{
		Decision: decision,
		Money:    l.money,
		Score:    l.score,
		GameOver: decision == types.DecisionTicket && l.money == 0,
	}, nil
}

// Reset restores the starting stake. Used on explicit restart only.
func (l *Ledger) Reset() {
	l.money = l.cfg.StartingMoney
	l.score = 0
}
