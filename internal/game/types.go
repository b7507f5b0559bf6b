// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Word: a validated, upper-case guess or solution.
//   - LetterState / Response: per-letter result of a guess.
//   - Outcome: terminal result of a single game.
//   - Player / Vocabulary: the collaborators the game loop talks to.

package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultRounds = 6
	DefaultLength = 5

	// HintsDisabled is passed to Player.HandleResponse in place of a hint
	// count when hints are turned off.
	HintsDisabled = -1
)

var (
	ErrInvalidWord    = errors.New("invalid word")
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrAborted is returned by Player.Guess when the player interrupts the
	// game (Ctrl-C, end of input, cancelled context).
	ErrAborted = errors.New("game aborted")
)

// Word is a fixed-length sequence of upper-case letters A–Z.
type Word string

// ParseWord trims and upper-cases s and checks it is exactly length letters.
func ParseWord(s string, length int) (Word, error) {
	w := normalize(s)
	if len(w) != length || !isAlpha(w) {
		return "", fmt.Errorf("%w: %q", ErrInvalidWord, s)
	}
	return Word(w), nil
}

// LetterState represents the evaluation result for a single letter.
// Values are ordered by how much they reveal, so merging the states seen
// for one letter across guesses is a max.
type LetterState int

const (
	NotGuessedYet LetterState = iota
	NotPresent
	IncorrectPosition
	CorrectPosition
)

func (s LetterState) String() string {
	switch s {
	case NotPresent:
		return "not_present"
	case IncorrectPosition:
		return "incorrect_position"
	case CorrectPosition:
		return "correct_position"
	default:
		return "not_guessed_yet"
	}
}

// Response is the per-position feedback for one guess.
type Response []LetterState

// Solved reports whether every position is CorrectPosition.
func (r Response) Solved() bool {
	if len(r) == 0 {
		return false
	}
	for _, s := range r {
		if s != CorrectPosition {
			return false
		}
	}
	return true
}

// Equal compares two responses element-wise.
func (r Response) Equal(o Response) bool {
	if len(r) != len(o) {
		return false
	}
	for i := range r {
		if r[i] != o[i] {
			return false
		}
	}
	return true
}

// Result is the terminal state of a game.
type Result int

const (
	Won Result = iota + 1
	Lost
	Aborted
)

func (r Result) String() string {
	switch r {
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Aborted:
		return "aborted"
	}
	return "playing"
}

// Outcome is produced exactly once per game.
// Round is the 1-based winning round for Won, the interrupted round for
// Aborted, and 0 for Lost.
type Outcome struct {
	Result Result
	Round  int
}

// Player is the interactive side of a game.
type Player interface {
	// Guess returns the raw guess for round. It returns an error wrapping
	// ErrAborted when the player quits.
	Guess(ctx context.Context, round int) (string, error)
	// HandleResponse delivers feedback; hint is HintsDisabled when hints are off.
	HandleResponse(guess Word, response Response, hint int)
	HandleWin(round int)
	// HandleLoss is called on defeat and on abort, always with the real solution.
	HandleLoss(solution Word)
	Warn(msg string)
	// AssumeGuessesValid skips the vocabulary check.
	AssumeGuessesValid() bool
}

// Vocabulary answers whether a word may be guessed.
type Vocabulary interface {
	IsAllowed(w string) bool
}

func normalize(s string) string { return strings.ToUpper(strings.TrimSpace(s)) }

// isAlpha checks that a string consists only of upper-case A–Z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
