package game

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	C = CorrectPosition
	I = IncorrectPosition
	N = NotPresent
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		guess    Word
		solution Word
		want     Response
	}{
		{"exact match", "APPLE", "APPLE", Response{C, C, C, C, C}},
		{"one letter off", "APPLR", "APPLE", Response{C, C, C, C, N}},
		{"duplicates not double credited", "ABCDE", "ACFCB", Response{C, I, I, N, N}},
		{"all rotated", "ABCDE", "EABCD", Response{I, I, I, I, I}},
		{"nothing shared", "ABCDE", "FGHIJ", Response{N, N, N, N, N}},
		{"hit consumes before present", "LLAMA", "HELLO", Response{I, I, N, N, N}},
		{"earlier duplicate wins present", "EERIE", "THEME", Response{I, N, N, N, C}},
		{"extra copy after hit", "SPEED", "ABIDE", Response{N, N, I, N, I}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.guess, tt.solution)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateLengthMismatch(t *testing.T) {
	_, err := Evaluate("ORANGE", "APPLE")
	require.ErrorIs(t, err, ErrLengthMismatch)

	_, err = Evaluate("APPLE", "ORANGE")
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestEvaluateSelfIsSolved(t *testing.T) {
	for _, w := range []Word{"AUDIO", "DWARF", "EERIE", "MAMMA", "Z", "ABCDEFGH"} {
		r, err := Evaluate(w, w)
		require.NoError(t, err)
		assert.True(t, r.Solved(), w)
	}
}

// randomWord draws from a small alphabet so duplicates are common.
func randomWord(rng *rand.Rand, n int) Word {
	b := make([]byte, n)
	for i := range b {
		b[i] = "ABCDE"[rng.Intn(5)]
	}
	return Word(b)
}

func TestEvaluateNeverOvercredits(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for k := 0; k < 2000; k++ {
		g, s := randomWord(rng, 5), randomWord(rng, 5)
		r, err := Evaluate(g, s)
		require.NoError(t, err)

		credited := map[byte]int{}
		for i := range r {
			if r[i] == C || r[i] == I {
				credited[g[i]]++
			}
			if r[i] == C {
				assert.Equal(t, s[i], g[i])
			}
		}
		for letter, n := range credited {
			var inSolution int
			for i := 0; i < len(s); i++ {
				if s[i] == letter {
					inSolution++
				}
			}
			assert.LessOrEqual(t, n, inSolution, "guess %s solution %s letter %c", g, s, letter)
		}
	}
}

func TestEvaluateSwapIndependentPositions(t *testing.T) {
	// X and Y appear nowhere in the solution, so swapping them leaves the
	// other positions untouched.
	a, err := Evaluate("XBCYE", "ABCDE")
	require.NoError(t, err)
	b, err := Evaluate("YBCXE", "ABCDE")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestIsConsistent(t *testing.T) {
	tests := []struct {
		name      string
		guess     Word
		candidate Word
		observed  Response
		want      bool
	}{
		{"solved", "ABCDE", "ABCDE", Response{C, C, C, C, C}, true},
		{"rotated", "ABCDE", "EABCD", Response{I, I, I, I, I}, true},
		{"disjoint", "ABCDE", "FGHIJ", Response{N, N, N, N, N}, true},
		{"mixed", "ABCDE", "ACFDB", Response{C, I, I, C, N}, true},
		{"membership only is not enough", "ABCDE", "ACFCB", Response{C, N, C, N, N}, false},
		{"wrong first state", "ABCDE", "ACFDB", Response{N, I, I, C, N}, false},
		{"wrong last state", "ABCDE", "ACFDB", Response{C, I, I, C, C}, false},
		{"extra letter marked present", "APPLR", "APPLE", Response{C, C, C, C, I}, false},
		{"short response", "APPLE", "APPLE", Response{C, C, C, C}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsConsistent(tt.guess, tt.candidate, tt.observed)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsConsistentWithOwnEvaluation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for k := 0; k < 500; k++ {
		g, s := randomWord(rng, 5), randomWord(rng, 5)
		r, err := Evaluate(g, s)
		require.NoError(t, err)
		ok, err := IsConsistent(g, s, r)
		require.NoError(t, err)
		assert.True(t, ok, "guess %s solution %s", g, s)
	}
}

func TestIsConsistentLengthMismatch(t *testing.T) {
	_, err := IsConsistent("APPLE", "ORANGE", Response{N, N, N, N, N})
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestFilter(t *testing.T) {
	candidates := []Word{"AUDIO", "RADIO", "DWARF", "AUDIT", "STERN"}
	observed, err := Evaluate("AUDIT", "AUDIO")
	require.NoError(t, err)

	got, err := Filter(context.Background(), "AUDIT", observed, candidates)
	require.NoError(t, err)
	assert.Equal(t, []Word{"AUDIO"}, got)
	assert.Len(t, candidates, 5, "input must not be modified")
}

// allWords enumerates every word of length n over alphabet.
func allWords(alphabet string, n int) []Word {
	out := []Word{""}
	for i := 0; i < n; i++ {
		next := make([]Word, 0, len(out)*len(alphabet))
		for _, w := range out {
			for j := 0; j < len(alphabet); j++ {
				next = append(next, w+Word(alphabet[j]))
			}
		}
		out = next
	}
	return out
}

func TestFilterParallelMatchesSequential(t *testing.T) {
	candidates := allWords("ABCDEFG", 5)
	require.GreaterOrEqual(t, len(candidates), parallelThreshold)

	observed, err := Evaluate("CABBE", "BADGE")
	require.NoError(t, err)

	want, err := filterRange("CABBE", observed, candidates)
	require.NoError(t, err)
	got, err := Filter(context.Background(), "CABBE", observed, candidates)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Contains(t, got, Word("BADGE"))
}

func TestFilterLengthMismatch(t *testing.T) {
	_, err := Filter(context.Background(), "AUDIO", Response{C, C, C, C, C}, []Word{"AUDIO", "AUDIOS"})
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestParseWord(t *testing.T) {
	w, err := ParseWord("  audio\n", 5)
	require.NoError(t, err)
	assert.Equal(t, Word("AUDIO"), w)

	for _, bad := range []string{"", "audi", "audios", "aud1o", "au io", "ÄUDIO"} {
		_, err := ParseWord(bad, 5)
		assert.ErrorIs(t, err, ErrInvalidWord, bad)
	}
}
