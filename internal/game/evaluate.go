// internal/game/evaluate.go
//
// Guess evaluation and the consistency check used for hint counts.
//
// Evaluate implements the standard two-pass Wordle scoring algorithm:
//   Pass 1: mark exact matches (CorrectPosition) and consume those letters.
//   Pass 2: left to right over the rest, mark IncorrectPosition while unused
//           copies of the letter remain, otherwise NotPresent.
//
// Filter narrows a candidate list to the words that would have produced an
// observed response. Large lists are scanned in parallel chunks.

package game

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// parallelThreshold is the candidate count at which Filter fans out.
const parallelThreshold = 4096

// Evaluate scores guess against solution.
// Both words must have the same length.
func Evaluate(guess, solution Word) (Response, error) {
	n := len(solution)
	if len(guess) != n {
		return nil, fmt.Errorf("%w: guess has %d letters, solution has %d", ErrLengthMismatch, len(guess), n)
	}
	res := make(Response, n)

	// Remaining (unconsumed) solution letters, A–Z.
	var counts [26]int
	for i := 0; i < n; i++ {
		if j := idx(solution[i]); j >= 0 && j < 26 {
			counts[j]++
		}
	}

	// First pass: hits.
	for i := 0; i < n; i++ {
		if guess[i] == solution[i] {
			res[i] = CorrectPosition
			if j := idx(guess[i]); j >= 0 && j < 26 {
				counts[j]--
			}
		}
	}

	// Second pass: presents/misses for everything not yet resolved.
	for i := 0; i < n; i++ {
		if res[i] == CorrectPosition {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && j < 26 && counts[j] > 0 {
			res[i] = IncorrectPosition
			counts[j]--
		} else {
			res[i] = NotPresent
		}
	}
	return res, nil
}

// IsConsistent reports whether candidate, had it been the solution, would
// have produced observed for guess.
func IsConsistent(guess, candidate Word, observed Response) (bool, error) {
	r, err := Evaluate(guess, candidate)
	if err != nil {
		return false, err
	}
	return r.Equal(observed), nil
}

// Filter returns the candidates consistent with (guess, observed), in their
// original order. The input slice is not modified.
func Filter(ctx context.Context, guess Word, observed Response, candidates []Word) ([]Word, error) {
	if len(candidates) < parallelThreshold {
		return filterRange(guess, observed, candidates)
	}

	workers := runtime.GOMAXPROCS(0)
	chunk := (len(candidates) + workers - 1) / workers
	parts := make([][]Word, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= len(candidates) {
			break
		}
		hi := min(lo+chunk, len(candidates))
		w := w
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := filterRange(guess, observed, candidates[lo:hi])
			if err != nil {
				return err
			}
			parts[w] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []Word
	for _, p := range parts {
		out = append(out, p...)
	}
	return out, nil
}

func filterRange(guess Word, observed Response, candidates []Word) ([]Word, error) {
	var out []Word
	for _, c := range candidates {
		ok, err := IsConsistent(guess, c, observed)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, c)
		}
	}
	return out, nil
}

// idx maps an upper-case ASCII letter to 0..25.
// Inputs are validated to A–Z by ParseWord; anything else falls outside.
func idx(b byte) int { return int(b) - 'A' }
