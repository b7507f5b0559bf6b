// internal/game/engine.go
//
// Game loop for a single Wordle session.
// Responsibilities:
//   - Ask the player for guesses, round by round, up to Rounds.
//   - Validate guesses (shape + vocabulary) unless the player opts out.
//   - Score guesses with Evaluate and narrow hint candidates with Filter.
//   - Report win/loss/abort to the player and return the Outcome.
//
// A Game is configuration only; each call to Play owns its own round
// counter and candidate set, so one Game may run many sessions in turn.
package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Game holds the rules and word lists shared by every session.
type Game struct {
	Rounds     int        // Maximum number of guesses (typically 6).
	Length     int        // Letters per word (typically 5).
	Hints      bool       // Report remaining candidate counts.
	Vocabulary Vocabulary // Valid guesses.
	Solutions  []Word     // Candidate solutions for hint counting; read only.
}

// Option configures a Game.
type Option func(*Game)

func WithRounds(n int) Option { return func(g *Game) { g.Rounds = n } }
func WithLength(n int) Option { return func(g *Game) { g.Length = n } }
func WithHints(on bool) Option { return func(g *Game) { g.Hints = on } }

// New constructs a Game with the default 6x5 dimensions.
func New(vocab Vocabulary, solutions []Word, opts ...Option) *Game {
	g := &Game{
		Rounds:     DefaultRounds,
		Length:     DefaultLength,
		Vocabulary: vocab,
		Solutions:  solutions,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Play runs one session against solution.
//
// State transitions:
//   - All tiles CorrectPosition → HandleWin, Outcome{Won, round}.
//   - Else if round == Rounds → HandleLoss, Outcome{Lost, 0}.
//   - Player abort → HandleLoss, Outcome{Aborted, round} and the abort error.
//
// ErrLengthMismatch is returned as-is and never retried.
func (g *Game) Play(ctx context.Context, p Player, solution Word) (Outcome, error) {
	if len(solution) != g.Length {
		return Outcome{}, fmt.Errorf("solution %q: %w: want %d letters", solution, ErrLengthMismatch, g.Length)
	}

	remaining := g.Solutions
	for round := 1; round <= g.Rounds; round++ {
		abort := func(err error) (Outcome, error) {
			log.Info().Int("round", round).Msg("game aborted")
			p.HandleLoss(solution)
			return Outcome{Result: Aborted, Round: round}, err
		}

		guess, err := g.nextGuess(ctx, p, round)
		if err != nil {
			if errors.Is(err, ErrAborted) {
				return abort(err)
			}
			return Outcome{}, err
		}

		response, err := Evaluate(guess, solution)
		if err != nil {
			return Outcome{}, err
		}

		hint := HintsDisabled
		if g.Hints {
			remaining, err = Filter(ctx, guess, response, remaining)
			if err != nil {
				if ctx.Err() != nil {
					return abort(fmt.Errorf("%w: %w", ErrAborted, err))
				}
				return Outcome{}, fmt.Errorf("hint candidates: %w", err)
			}
			hint = len(remaining)
		}
		log.Debug().Int("round", round).Str("guess", string(guess)).Int("hint", hint).Msg("guess scored")
		p.HandleResponse(guess, response, hint)

		if response.Solved() {
			log.Info().Int("round", round).Msg("game won")
			p.HandleWin(round)
			return Outcome{Result: Won, Round: round}, nil
		}
	}

	log.Info().Str("solution", string(solution)).Msg("game lost")
	p.HandleLoss(solution)
	return Outcome{Result: Lost}, nil
}

// nextGuess asks for a guess until one passes validation.
// Invalid guesses are warned about and retried without consuming the round.
func (g *Game) nextGuess(ctx context.Context, p Player, round int) (Word, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("%w: %w", ErrAborted, err)
		}
		raw, err := p.Guess(ctx, round)
		if err != nil {
			return "", err
		}
		if p.AssumeGuessesValid() {
			// Shape is still normalised; length is left to Evaluate.
			return Word(normalize(raw)), nil
		}
		w, err := ParseWord(raw, g.Length)
		if err == nil && (g.Vocabulary == nil || g.Vocabulary.IsAllowed(string(w))) {
			return w, nil
		}
		log.Debug().Int("round", round).Str("guess", raw).Msg("rejected guess")
		p.Warn(fmt.Sprintf("%q is not a valid word", normalize(raw)))
	}
}
