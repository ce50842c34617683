// Package session drives the per-round negotiation state machine: turn
// counting, ordered history, round-end detection, and the prompt → provider
// → decode pipeline for each exchange.
package session

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/nimblefox/pullover/internal/decode"
	"github.com/nimblefox/pullover/internal/prompt"
	"github.com/nimblefox/pullover/internal/types"
)

// State names the session's position in the round lifecycle.
type State string

const (
	StateAwaitingOpening     State = "AwaitingOpening"
	StateAwaitingPlayerInput State = "AwaitingPlayerInput"
	StateAwaitingAIResponse  State = "AwaitingAIResponse"
	StateRoundEnded          State = "RoundEnded"
)

var (
	// ErrRoundInProgress rejects StartRound while a round is still live.
	ErrRoundInProgress = errors.New("round still in progress")
	// ErrNotAwaitingInput rejects player input outside AwaitingPlayerInput.
	ErrNotAwaitingInput = errors.New("session is not awaiting player input")
	// ErrEmptyInput rejects blank player input.
	ErrEmptyInput = errors.New("player input is empty")
	// ErrExchangeInFlight rejects a submit while a prior exchange is
	// outstanding. Never queued.
	ErrExchangeInFlight = errors.New("an exchange is already in flight")
	// ErrNoPendingExchange rejects Retry/Abandon with nothing to recover.
	ErrNoPendingExchange = errors.New("no failed exchange to recover")
	// ErrStaleExchange marks a response that completed after the session
	// was invalidated or restarted; it is dropped, never applied.
	ErrStaleExchange = errors.New("exchange completed for a stale session generation")
)

// Exchanger performs the single network call of an exchange.
// *provider.Client satisfies it.
type Exchanger interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Presenter is the optional collaborator that plays or displays NPC
// dialogue (speech synthesis, subtitles). The orchestrator awaits it; the
// engine never calls it.
type Presenter interface {
	AwaitPresentation(ctx context.Context, voice, dialogue string) error
}

// TurnResult is the outcome of one completed exchange.
type TurnResult struct {
	Turn          int
	Dialogue      string
	LeniencyScore int
	// Decision is the resolved verdict for this turn. On a round forced
	// closed by the turn limit a lingering Pending resolves to Ticket.
	Decision   types.Decision
	RoundEnded bool
}

// Session owns one negotiation round at a time. It is not safe for
// concurrent use beyond the single-flight rejection of SubmitPlayerInput;
// the game model is one cooperative driver per session.
type Session struct {
	id        string
	officer   *types.PersonalityProfile
	player    *types.PlayerProfile
	template  string
	maxTurns  int
	exchanger Exchanger
	logger    *slog.Logger

	state        State
	turn         int
	history      []types.DialogueEntry
	pendingInput string

	inFlight   atomic.Bool
	generation atomic.Int64
}

// New builds a session for one officer/driver pairing. StartRound must be
// called before input is accepted.
func New(officer *types.PersonalityProfile, player *types.PlayerProfile, maxTurns int, template string, exchanger Exchanger, logger *slog.Logger) *Session {
	if template == "" {
		template = prompt.DefaultTemplate
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		id:        uuid.NewString(),
		officer:   officer,
		player:    player,
		template:  template,
		maxTurns:  maxTurns,
		exchanger: exchanger,
		logger:    logger,
		state:     StateAwaitingOpening,
	}
}

// ID is the session identity, used to attribute late responses.
func (s *Session) ID() string { return s.id }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Turn returns the current turn number, starting at 1.
func (s *Session) Turn() int { return s.turn }

// Officer returns the active personality profile.
func (s *Session) Officer() *types.PersonalityProfile { return s.officer }

// Player returns the active driver profile.
func (s *Session) Player() *types.PlayerProfile { return s.player }

// History returns a copy of the conversation so far, in order.
func (s *Session) History() []types.DialogueEntry {
	out := make([]types.DialogueEntry, len(s.history))
	copy(out, s.history)
	return out
}

// StartRound resets the round state and returns the officer's opening line.
// Only a fresh session or one whose previous round has ended may start.
func (s *Session) StartRound() (string, error) {
	if s.state != StateAwaitingOpening && s.state != StateRoundEnded {
		return "", ErrRoundInProgress
	}
	s.generation.Inc()
	s.history = s.history[:0]
	s.turn = 1
	s.pendingInput = ""
	s.state = StateAwaitingPlayerInput
	s.logger.Info("round started", "session", s.id, "officer", s.officer.ID, "player", s.player.ID)
	return s.officer.OpeningLine, nil
}

// Invalidate marks the session dead. Any exchange still outstanding when
// this is called completes as ErrStaleExchange instead of mutating state.
func (s *Session) Invalidate() {
	s.generation.Inc()
	s.state = StateRoundEnded
}

// SubmitPlayerInput runs one full exchange: render prompt, call the
// provider, decode, append both turns to history, and detect round end.
// Input is rejected outright when the session is not awaiting it, the text
// is empty, or a prior exchange is still in flight.
//
// On a pipeline failure the session stays in AwaitingAIResponse with input
// locked; the caller chooses Retry or Abandon.
func (s *Session) SubmitPlayerInput(ctx context.Context, text string) (*TurnResult, error) {
	if s.state != StateAwaitingPlayerInput {
		return nil, ErrNotAwaitingInput
	}
	if text == "" {
		return nil, ErrEmptyInput
	}
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrExchangeInFlight
	}

	s.state = StateAwaitingAIResponse
	s.pendingInput = text
	return s.exchange(ctx)
}

// Retry re-runs the exchange that previously failed, with the same pending
// input. Valid only while the session is locked awaiting a response.
func (s *Session) Retry(ctx context.Context) (*TurnResult, error) {
	if s.state != StateAwaitingAIResponse || s.pendingInput == "" {
		return nil, ErrNoPendingExchange
	}
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrExchangeInFlight
	}
	return s.exchange(ctx)
}

// Abandon gives up on a failed exchange and unlocks the session for fresh
// input. The pending input is discarded; history is untouched.
func (s *Session) Abandon() error {
	if s.state != StateAwaitingAIResponse || s.pendingInput == "" {
		return ErrNoPendingExchange
	}
	if s.inFlight.Load() {
		return ErrExchangeInFlight
	}
	s.pendingInput = ""
	s.state = StateAwaitingPlayerInput
	return nil
}

func (s *Session) exchange(ctx context.Context) (*TurnResult, error) {
	defer s.inFlight.Store(false)

	gen := s.generation.Load()
	rendered := prompt.Render(s.template, s.buildRequestContext())

	raw, err := s.exchanger.Complete(ctx, rendered)
	if err != nil {
		s.logger.Error("exchange failed", "session", s.id, "turn", s.turn, "error", err)
		return nil, err
	}

	resp, err := decode.Decode(raw)
	if err != nil {
		s.logger.Error("exchange undecodable", "session", s.id, "turn", s.turn, "error", err)
		return nil, err
	}

	if s.generation.Load() != gen {
		s.logger.Warn("dropping stale exchange", "session", s.id, "turn", s.turn)
		return nil, ErrStaleExchange
	}

	s.history = append(s.history,
		types.DialogueEntry{Speaker: types.SpeakerPlayer, Message: s.pendingInput},
		types.DialogueEntry{Speaker: types.SpeakerOfficer, Message: resp.Dialogue},
	)
	s.pendingInput = ""

	result := &TurnResult{
		Turn:          s.turn,
		Dialogue:      resp.Dialogue,
		LeniencyScore: resp.LeniencyScore,
		Decision:      resp.Decision,
	}

	if s.turn >= s.maxTurns || resp.IsFinalDecision() {
		result.RoundEnded = true
		if result.Decision == types.DecisionPending {
			// The model ignored the final-turn directive; the round must
			// still resolve. Only an explicit WARNING pardons the driver.
			result.Decision = types.DecisionTicket
		}
		s.state = StateRoundEnded
	} else {
		s.turn++
		s.state = StateAwaitingPlayerInput
	}

	s.logger.Info("exchange completed",
		"session", s.id, "turn", result.Turn,
		"decision", result.Decision, "leniency", result.LeniencyScore,
		"round_ended", result.RoundEnded)
	return result, nil
}

func (s *Session) buildRequestContext() types.AIRequestContext {
	return types.AIRequestContext{
		PersonalityDescription: s.officer.Personality,
		SpecificBehavior:       s.officer.BehaviorFor(s.player.Type),
		PlayerCharacter:        string(s.player.Type),
		RaiseSuspicionTriggers: s.officer.RaiseSuspicion,
		LowerSuspicionTriggers: s.officer.LowerSuspicion,
		Catchphrases:           prompt.JoinCatchphrases(s.officer.Catchphrases),
		CurrentTurn:            s.turn,
		MaxTurns:               s.maxTurns,
		PlayerInput:            s.pendingInput,
		History:                s.History(),
	}
}
