package game

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nimblefox/pullover/internal/roster"
	"github.com/nimblefox/pullover/internal/session"
	"github.com/nimblefox/pullover/internal/types"
)

// ErrGameOver rejects play after the bankroll hits zero; Restart starts a
// fresh run.
var ErrGameOver = errors.New("game is over")

// Config wires a Game.
type Config struct {
	MaxTurns int
	Template string
	Economy  EconomyConfig
}

// Report is everything the front end needs after one submitted line.
type Report struct {
	Turn          int
	Dialogue      string
	LeniencyScore int
	Decision      types.Decision
	RoundEnded    bool

	// Set only when the round ended.
	Outcome *Outcome
	// NextOpening is the next officer's opening line when a new round
	// started immediately after this one.
	NextOpening string
}

// Game owns the ledger, the roster cycle, and the live session. One play
// session per Game instance; no ambient globals.
type Game struct {
	cfg       Config
	roster    *roster.Roster
	ledger    *Ledger
	exchanger session.Exchanger
	logger    *slog.Logger

	current *session.Session
	over    bool
}

// New builds a game over a roster and one provider exchanger.
func New(cfg Config, r *roster.Roster, exchanger session.Exchanger, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	return &Game{
		cfg:       cfg,
		roster:    r,
		ledger:    NewLedger(cfg.Economy),
		exchanger: exchanger,
		logger:    logger,
	}
}

// Start begins the first round and returns its opening line.
func (g *Game) Start() (string, error) {
	g.ledger.Reset()
	g.roster.Reset()
	g.over = false
	return g.newRound()
}

// Restart discards all persistent state and begins a fresh run, dropping
// any exchange still outstanding on the old session.
func (g *Game) Restart() (string, error) {
	if g.current != nil {
		g.current.Invalidate()
		g.current = nil
	}
	return g.Start()
}

// Session exposes the live session, mainly for state inspection.
func (g *Game) Session() *session.Session { return g.current }

// Money returns the current bankroll.
func (g *Game) Money() int { return g.ledger.Money() }

// Score returns the current score.
func (g *Game) Score() int { return g.ledger.Score() }

// Over reports whether the run has ended.
func (g *Game) Over() bool { return g.over }

// Submit plays one line of dialogue. When the exchange ends the round, the
// outcome is settled against the ledger and, unless the game is over, the
// next round starts immediately with the next roster pairing.
func (g *Game) Submit(ctx context.Context, text string) (*Report, error) {
	if g.over {
		return nil, ErrGameOver
	}
	if g.current == nil {
		return nil, session.ErrNotAwaitingInput
	}

	result, err := g.current.SubmitPlayerInput(ctx, text)
	if err != nil {
		return nil, err
	}
	return g.settle(result)
}

// Retry re-runs the failed exchange of the live session.
func (g *Game) Retry(ctx context.Context) (*Report, error) {
	if g.over || g.current == nil {
		return nil, ErrGameOver
	}
	result, err := g.current.Retry(ctx)
	if err != nil {
		return nil, err
	}
	return g.settle(result)
}

// Abandon gives up on a failed exchange, unlocking the live session.
func (g *Game) Abandon() error {
	if g.current == nil {
		return session.ErrNoPendingExchange
	}
	return g.current.Abandon()
}

func (g *Game) settle(result *session.TurnResult) (*Report, error) {
	report := &Report{
		Turn:          result.Turn,
		Dialogue:      result.Dialogue,
		LeniencyScore: result.LeniencyScore,
		Decision:      result.Decision,
		RoundEnded:    result.RoundEnded,
	}
	if !result.RoundEnded {
		return report, nil
	}

	outcome, err := g.ledger.Apply(result.Decision)
	if err != nil {
		return nil, err
	}
	report.Outcome = &outcome
	g.logger.Info("round settled",
		"decision", outcome.Decision, "money", outcome.Money,
		"score", outcome.Score, "game_over", outcome.GameOver)

	if outcome.GameOver {
		g.over = true
		g.current = nil
		return report, nil
	}

	opening, err := g.newRound()
	if err != nil {
		return nil, err
	}
	report.NextOpening = opening
	return report, nil
}

func (g *Game) newRound() (string, error) {
	pairing := g.roster.Next()
	g.current = session.New(pairing.Officer, pairing.Player, g.cfg.MaxTurns, g.cfg.Template, g.exchanger, g.logger)
	return g.current.StartRound()
}
