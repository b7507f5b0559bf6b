// internal/store/memory.go
//
// In-memory record of finished games for the current session.
//
// Characteristics:
//   - Counts games played and won, plus the current and best win streak.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.
//   - Aborted games are rejected; only finished games count.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// ErrUnfinished is returned when recording a game that did not end in a win or loss.
var ErrUnfinished = errors.New("store: game not finished")

// Stats summarizes the finished games of a session.
type Stats struct {
	Played    int
	Wins      int
	Streak    int // consecutive wins up to the latest game
	MaxStreak int

	// Distribution[r-1] counts wins in round r.
	Distribution []int
}

// WinRate is the percentage of games won, rounded down.
func (s Stats) WinRate() int {
	if s.Played == 0 {
		return 0
	}
	return s.Wins * 100 / s.Played
}

// Store records game outcomes.
type Store interface {
	// Record adds a finished game.
	Record(ctx context.Context, o game.Outcome) error

	// Stats returns a snapshot of everything recorded so far.
	Stats(ctx context.Context) (Stats, error)
}

// memory keeps running totals for one session.
type memory struct {
	mu     sync.RWMutex // guards stats
	rounds int
	stats  Stats
}

// NewMemoryStore constructs an empty in-memory Store for games of the given
// number of rounds.
func NewMemoryStore(rounds int) Store {
	if rounds <= 0 {
		rounds = game.DefaultRounds
	}
	return &memory{rounds: rounds, stats: Stats{Distribution: make([]int, rounds)}}
}

// Record bumps the totals the same way for every finished game: a win
// extends the streak, a loss resets it.
func (m *memory) Record(_ context.Context, o game.Outcome) error {
	if o.Result != game.Won && o.Result != game.Lost {
		return ErrUnfinished
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stats.Played++
	if o.Result == game.Lost {
		m.stats.Streak = 0
		return nil
	}
	m.stats.Wins++
	m.stats.Streak++
	if m.stats.Streak > m.stats.MaxStreak {
		m.stats.MaxStreak = m.stats.Streak
	}
	if o.Round >= 1 && o.Round <= m.rounds {
		m.stats.Distribution[o.Round-1]++
	}
	return nil
}

// Stats returns a copy so callers cannot alter the running totals.
func (m *memory) Stats(_ context.Context) (Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := m.stats
	s.Distribution = append([]int(nil), m.stats.Distribution...)
	return s, nil
}
