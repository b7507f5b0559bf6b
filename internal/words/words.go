// internal/words/words.go
//
// Provides word list management for the game.
//
// Responsibilities:
//   - Load answer and allowed guess lists from configured files or fall back to embedded defaults.
//   - Maintain sets for quick lookups (answers only, answers∪guesses).
//   - Supply utility functions like Answer, RandomAnswer, IsAllowed, and Stats.
//
// Word Lists:
//   - "answers": canonical solutions, in official day order.
//   - "allowed": valid guesses (always includes answers).
//
// Load behavior:
//   1. If both paths are set,
//      load answers from the first and allowed guesses from the second.
//   2. If only the allowed path is set,
//      load that file and use it for both answers and allowed guesses.
//   3. If neither is set,
//      fall back to the lists embedded in the assets package.
//
// The embedded answers cover only the first days of the official list; a
// full list in day order can be supplied through the answers file.
//
// Constraints:
//   • Words must be `length` alphabetic letters; anything else is skipped.
//   • Lists are normalized to upper case.
//   • Duplicates are dropped, first occurrence wins.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/assets"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

var (
	ErrEmptyAnswers = errors.New("words: answers list is empty")
	// ErrNoSuchDay is returned by Answer for days outside the answers list.
	ErrNoSuchDay = errors.New("words: no answer for day")
)

// Lists holds the loaded word lists. It is read only after Load.
type Lists struct {
	answers    []game.Word         // canonical answers, file order
	allowedSet map[string]struct{} // answers ∪ guesses
}

// Load reads the word lists for words of the given length.
// Empty paths select the embedded defaults as described above.
func Load(answersPath, allowedPath string, length int) (*Lists, error) {
	var ansList, allowList []game.Word

	switch {
	// Case 1: both lists provided
	case answersPath != "" && allowedPath != "":
		var err error
		if ansList, err = readWordFile(answersPath, length); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(allowedPath, length); err != nil {
			return nil, err
		}

	// Case 2: only allowed file provided → use for both
	case allowedPath != "":
		var err error
		if allowList, err = readWordFile(allowedPath, length); err != nil {
			return nil, err
		}
		ansList = allowList

	case answersPath != "":
		return nil, fmt.Errorf("words: answers file %s given without an allowed file", answersPath)

	// Case 3: fallback to embedded defaults
	default:
		var err error
		if ansList, err = readEmbedded(assets.AnswersFile, length); err != nil {
			return nil, err
		}
		if allowList, err = readEmbedded(assets.AllowedFile, length); err != nil {
			return nil, err
		}
	}

	l := FromLists(ansList, allowList)
	answers, allowed := l.Stats()
	if answers == 0 {
		return nil, ErrEmptyAnswers
	}
	log.Debug().Int("answers", answers).Int("allowed", allowed).Msg("word lists loaded")
	return l, nil
}

// FromLists builds Lists from already-normalized words.
// All answers are also marked as allowed.
func FromLists(answers, allowed []game.Word) *Lists {
	l := &Lists{allowedSet: make(map[string]struct{}, len(answers)+len(allowed))}
	seen := make(map[string]struct{}, len(answers))
	for _, w := range answers {
		if _, dup := seen[string(w)]; dup {
			continue
		}
		seen[string(w)] = struct{}{}
		l.allowedSet[string(w)] = struct{}{}
		l.answers = append(l.answers, w)
	}
	for _, w := range allowed {
		l.allowedSet[string(w)] = struct{}{}
	}
	return l
}

// readWordFile loads one word per line from a file.
func readWordFile(path string, length int) ([]game.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: %w", err)
	}
	defer f.Close()
	out, err := readWords(f, length)
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	return out, nil
}

// readEmbedded loads one of the lists shipped in the assets package.
func readEmbedded(name string, length int) ([]game.Word, error) {
	f, err := assets.Open(name)
	if err != nil {
		return nil, fmt.Errorf("words: embedded %s: %w", name, err)
	}
	defer f.Close()
	out, err := readWords(f, length)
	if err != nil {
		return nil, fmt.Errorf("words: embedded %s: %w", name, err)
	}
	return out, nil
}

// readWords keeps lines that parse as words; blank lines and '#' comments are skipped.
func readWords(r io.Reader, length int) ([]game.Word, error) {
	var out []game.Word
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if w, err := game.ParseWord(line, length); err == nil {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// Answers returns the canonical answer list in file order.
// Callers must not modify the returned slice.
func (l *Lists) Answers() []game.Word { return l.answers }

// Answer returns the official answer for day, counting from day 0.
func (l *Lists) Answer(day int) (game.Word, error) {
	if day < 0 || day >= len(l.answers) {
		return "", fmt.Errorf("%w %d: list has days 0-%d", ErrNoSuchDay, day, len(l.answers)-1)
	}
	return l.answers[day], nil
}

// RandomAnswer returns a cryptographically random answer.
func (l *Lists) RandomAnswer() game.Word {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.answers))))
	if err != nil {
		return l.answers[0]
	}
	return l.answers[nBig.Int64()]
}

// IsAllowed reports whether w is a valid guess (answers ∪ guesses).
func (l *Lists) IsAllowed(w string) bool {
	_, ok := l.allowedSet[strings.ToUpper(w)]
	return ok
}

// Stats returns counts of loaded words: (answers, allowed).
func (l *Lists) Stats() (answersCount int, allowedCount int) {
	return len(l.answers), len(l.allowedSet)
}
