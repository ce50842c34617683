package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/nimblefox/pullover/internal/config"
	"github.com/nimblefox/pullover/internal/game"
	"github.com/nimblefox/pullover/internal/provider"
	"github.com/nimblefox/pullover/internal/roster"
	"github.com/nimblefox/pullover/internal/session"
	"github.com/nimblefox/pullover/internal/types"
)

// consolePresenter prints officer dialogue. A real front end would hand the
// voice id to a speech service here.
type consolePresenter struct{}

func (consolePresenter) AwaitPresentation(ctx context.Context, voice, dialogue string) error {
	fmt.Printf("\n[officer] %s\n", dialogue)
	return nil
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	// An unknown provider identity must die here, not mid-round.
	adapter, err := provider.New(cfg.ProviderConfig())
	if err != nil {
		log.Fatalf("provider setup failed: %v", err)
	}
	client := provider.NewClient(adapter, cfg.RequestTimeout, logger)

	lineup := roster.Default()
	if cfg.RosterPath != "" {
		lineup, err = roster.Load(cfg.RosterPath)
		if err != nil {
			log.Fatalf("failed to load roster: %v", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\npulling away...")
		cancel()
		os.Exit(0)
	}()

	g := game.New(game.Config{
		MaxTurns: cfg.MaxTurns,
		Economy:  cfg.EconomyConfig(),
	}, lineup, client, logger)

	var presenter session.Presenter = consolePresenter{}

	fmt.Printf("PULLOVER — talk your way out of the ticket. $%d on the line.\n", cfg.StartingMoney)
	fmt.Println("Commands: !retry !skip !restart !quit")

	opening, err := g.Start()
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}
	_ = presenter.AwaitPresentation(ctx, g.Session().Officer().Voice, opening)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("\n[$%d | score %d] you> ", g.Money(), g.Score())
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())

		var report *game.Report
		switch line {
		case "":
			continue
		case "!quit":
			return
		case "!restart":
			opening, err := g.Restart()
			if err != nil {
				log.Fatalf("restart failed: %v", err)
			}
			_ = presenter.AwaitPresentation(ctx, g.Session().Officer().Voice, opening)
			continue
		case "!skip":
			if err := g.Abandon(); err != nil {
				fmt.Println("nothing to skip:", err)
			}
			continue
		case "!retry":
			report, err = g.Retry(ctx)
		default:
			report, err = g.Submit(ctx, line)
		}

		if err != nil {
			printFailure(err)
			continue
		}

		voice := ""
		if g.Session() != nil {
			voice = g.Session().Officer().Voice
		}
		_ = presenter.AwaitPresentation(ctx, voice, report.Dialogue)

		if !report.RoundEnded {
			continue
		}

		printOutcome(report.Outcome, cfg.TicketPenalty)
		if report.Outcome.GameOver {
			fmt.Printf("\nGAME OVER. Final score: %d\n", report.Outcome.Score)
			fmt.Println("Type !restart to play again, or !quit.")
			continue
		}
		_ = presenter.AwaitPresentation(ctx, g.Session().Officer().Voice, report.NextOpening)
	}
}

func printFailure(err error) {
	var transport *provider.TransportError
	var malformed *provider.MalformedEnvelopeError
	switch {
	case errors.As(err, &transport):
		fmt.Println("\n*radio static* — could not reach the officer. !retry to try again, !skip to give up on this line.")
	case errors.As(err, &malformed):
		fmt.Println("\nThe officer mumbled something unintelligible. !retry to ask again.")
	case errors.Is(err, session.ErrNotAwaitingInput):
		fmt.Println("\nThe officer isn't listening right now.")
	case errors.Is(err, game.ErrGameOver):
		fmt.Println("\nThe game is over. !restart to play again.")
	default:
		fmt.Printf("\nSomething went wrong: %v. !retry or !skip.\n", err)
	}
}

func printOutcome(out *game.Outcome, penalty int) {
	switch {
	case out.Decision == types.DecisionWarning:
		fmt.Println("\n>>> You got off with a WARNING!")
	case out.GameOver:
		fmt.Printf("\n>>> TICKET! -$%d. You're broke!\n", penalty)
	default:
		fmt.Printf("\n>>> TICKET! -$%d\n", penalty)
	}
}
