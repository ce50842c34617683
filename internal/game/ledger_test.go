package game

import (
	"errors"
	"testing"

	"github.com/nimblefox/pullover/internal/types"
)

func testEconomy() EconomyConfig {
	return EconomyConfig{StartingMoney: 2000, TicketPenalty: 500, WarningBonus: 1}
}

func TestApplyWarning(t *testing.T) {
	l := NewLedger(testEconomy())
	out, err := l.Apply(types.DecisionWarning)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Money != 2000 {
		t.Fatalf("warning must not touch money, got %d", out.Money)
	}
	if out.Score != 1 {
		t.Fatalf("warning bonus missing, score %d", out.Score)
	}
	if out.GameOver {
		t.Fatal("warning can never end the game")
	}
}

func TestApplyTicket(t *testing.T) {
	l := NewLedger(testEconomy())
	out, err := l.Apply(types.DecisionTicket)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Money != 1500 {
		t.Fatalf("penalty not deducted, money %d", out.Money)
	}
	if out.Score != 0 {
		t.Fatalf("ticket must not score, got %d", out.Score)
	}
	if out.GameOver {
		t.Fatal("game should continue with money left")
	}
}

func TestMoneyFloorsAtZeroAndEndsGame(t *testing.T) {
	l := NewLedger(EconomyConfig{StartingMoney: 700, TicketPenalty: 500, WarningBonus: 1})
	if out, _ := l.Apply(types.DecisionTicket); out.GameOver {
		t.Fatal("game over too early")
	}
	out, err := l.Apply(types.DecisionTicket)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Money != 0 {
		t.Fatalf("money must floor at 0, got %d", out.Money)
	}
	if !out.GameOver {
		t.Fatal("going broke on a ticket must end the game")
	}
}

func TestApplyRejectsPending(t *testing.T) {
	l := NewLedger(testEconomy())
	if _, err := l.Apply(types.DecisionPending); !errors.Is(err, ErrPendingOutcome) {
		t.Fatalf("expected ErrPendingOutcome, got %v", err)
	}
}

func TestEveryRoundScorePolicy(t *testing.T) {
	cfg := testEconomy()
	cfg.Policy = ScoreEveryRound
	l := NewLedger(cfg)

	if out, _ := l.Apply(types.DecisionTicket); out.Score != 1 {
		t.Fatalf("flat policy must score on tickets too, got %d", out.Score)
	}
	if out, _ := l.Apply(types.DecisionWarning); out.Score != 2 {
		t.Fatalf("flat policy scores once per round, got %d", out.Score)
	}
}

func TestReset(t *testing.T) {
	l := NewLedger(testEconomy())
	_, _ = l.Apply(types.DecisionTicket)
	_, _ = l.Apply(types.DecisionWarning)
	l.Reset()
	if l.Money() != 2000 || l.Score() != 0 {
		t.Fatalf("reset incomplete: money %d score %d", l.Money(), l.Score())
	}
}
