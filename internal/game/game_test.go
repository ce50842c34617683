package game

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/nimblefox/pullover/internal/roster"
	"github.com/nimblefox/pullover/internal/types"
)

// scriptedExchanger replays canned provider output in order.
type scriptedExchanger struct {
	responses []string
	calls     int
}

func (e *scriptedExchanger) Complete(ctx context.Context, prompt string) (string, error) {
	i := e.calls
	e.calls++
	if i >= len(e.responses) {
		return "", errors.New("script exhausted")
	}
	return e.responses[i], nil
}

func finalResponse(decision string) string {
	return fmt.Sprintf(`{"dialogue":"so be it","leniency_score":50,"decision":%q}`, decision)
}

func testRoster(t *testing.T) *roster.Roster {
	t.Helper()
	r, err := roster.New(
		[]types.PersonalityProfile{
			{ID: "a", OpeningLine: "opening A", Behaviors: types.BehaviorSet{Default: "strict"}},
			{ID: "b", OpeningLine: "opening B", Behaviors: types.BehaviorSet{Default: "kind"}},
		},
		[]types.PlayerProfile{{ID: "p", Type: types.PlayerTypeDefault}},
	)
	if err != nil {
		t.Fatalf("roster: %v", err)
	}
	return r
}

func newTestGame(t *testing.T, ex *scriptedExchanger, economy EconomyConfig) *Game {
	t.Helper()
	return New(Config{MaxTurns: 3, Economy: economy}, testRoster(t), ex, nil)
}

func TestStartOpensFirstRound(t *testing.T) {
	g := newTestGame(t, &scriptedExchanger{}, testEconomy())
	opening, err := g.Start()
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if opening != "opening A" {
		t.Fatalf("unexpected opening: %q", opening)
	}
	if g.Money() != 2000 || g.Score() != 0 {
		t.Fatalf("fresh economy expected, money %d score %d", g.Money(), g.Score())
	}
}

func TestWarningRoundRollsIntoNextOfficer(t *testing.T) {
	ex := &scriptedExchanger{responses: []string{finalResponse("WARNING")}}
	g := newTestGame(t, ex, testEconomy())
	_, _ = g.Start()

	report, err := g.Submit(context.Background(), "I'm so sorry, officer")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !report.RoundEnded || report.Outcome == nil {
		t.Fatalf("round should have settled: %+v", report)
	}
	if report.Outcome.Decision != types.DecisionWarning || report.Outcome.Money != 2000 || report.Outcome.Score != 1 {
		t.Fatalf("unexpected outcome: %+v", report.Outcome)
	}
	if report.NextOpening != "opening B" {
		t.Fatalf("next round should face the next officer, got %q", report.NextOpening)
	}
	if g.Session().Turn() != 1 {
		t.Fatalf("new round must start at turn 1, got %d", g.Session().Turn())
	}
}

func TestMidRoundReportCarriesNoOutcome(t *testing.T) {
	ex := &scriptedExchanger{responses: []string{
		`{"dialogue":"go on","leniency_score":60,"decision":"PENDING"}`,
	}}
	g := newTestGame(t, ex, testEconomy())
	_, _ = g.Start()

	report, err := g.Submit(context.Background(), "let me explain")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if report.RoundEnded || report.Outcome != nil || report.NextOpening != "" {
		t.Fatalf("mid-round report must not settle anything: %+v", report)
	}
	if g.Money() != 2000 || g.Score() != 0 {
		t.Fatal("economy must not move mid-round")
	}
}

func TestGameOverFiresOnceAndBlocksPlay(t *testing.T) {
	ex := &scriptedExchanger{responses: []string{finalResponse("TICKET")}}
	g := newTestGame(t, ex, EconomyConfig{StartingMoney: 500, TicketPenalty: 500, WarningBonus: 1})
	_, _ = g.Start()

	report, err := g.Submit(context.Background(), "it wasn't me")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if report.Outcome == nil || !report.Outcome.GameOver {
		t.Fatalf("expected game over, got %+v", report.Outcome)
	}
	if report.NextOpening != "" {
		t.Fatal("no round may start after game over")
	}
	if !g.Over() {
		t.Fatal("game must report over")
	}
	if _, err := g.Submit(context.Background(), "one more chance"); !errors.Is(err, ErrGameOver) {
		t.Fatalf("play after game over must be rejected, got %v", err)
	}
}

func TestRestartResetsEverything(t *testing.T) {
	ex := &scriptedExchanger{responses: []string{
		finalResponse("TICKET"),
		finalResponse("WARNING"),
	}}
	g := newTestGame(t, ex, testEconomy())
	_, _ = g.Start()
	_, _ = g.Submit(context.Background(), "guilty, I guess")

	opening, err := g.Restart()
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if opening != "opening A" {
		t.Fatalf("restart must rewind the roster, got %q", opening)
	}
	if g.Money() != 2000 || g.Score() != 0 {
		t.Fatalf("restart must reset the economy, money %d score %d", g.Money(), g.Score())
	}

	report, err := g.Submit(context.Background(), "fresh start")
	if err != nil {
		t.Fatalf("submit after restart: %v", err)
	}
	if report.Outcome.Decision != types.DecisionWarning {
		t.Fatalf("unexpected outcome after restart: %+v", report.Outcome)
	}
}

func TestFailedExchangeSupportsRetryAndAbandon(t *testing.T) {
	ex := &scriptedExchanger{} // empty script: first call fails
	g := newTestGame(t, ex, testEconomy())
	_, _ = g.Start()

	if _, err := g.Submit(context.Background(), "hello?"); err == nil {
		t.Fatal("expected a pipeline failure")
	}

	// A retry re-drives the same exchange once the script has content.
	ex.responses = append(ex.responses, "", finalResponse("WARNING"))
	report, err := g.Retry(context.Background())
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if report.Outcome == nil || report.Outcome.Decision != types.DecisionWarning {
		t.Fatalf("unexpected retry outcome: %+v", report)
	}
}

func TestAbandonUnlocksSession(t *testing.T) {
	ex := &scriptedExchanger{}
	g := newTestGame(t, ex, testEconomy())
	_, _ = g.Start()

	if _, err := g.Submit(context.Background(), "anyone?"); err == nil {
		t.Fatal("expected a pipeline failure")
	}
	if err := g.Abandon(); err != nil {
		t.Fatalf("abandon: %v", err)
	}
	ex.responses = append(ex.responses, "", finalResponse("WARNING"))
	if _, err := g.Submit(context.Background(), "take two"); err != nil {
		t.Fatalf("submit after abandon: %v", err)
	}
}
