package cli

import (
	"strings"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// palette holds the ANSI sequences used for output. The zero palette prints
// plain text.
type palette struct {
	Reset string
	Win   string
	Lose  string
	Warn  string
	Dim   string

	states map[game.LetterState]string
}

var colorPalette = palette{
	Reset: "\x1b[0m",
	Win:   "\x1b[1;32m",
	Lose:  "\x1b[1;31m",
	Warn:  "\x1b[33m",
	Dim:   "\x1b[90m",
	states: map[game.LetterState]string{
		game.NotGuessedYet:     "",
		game.NotPresent:        "\x1b[40;37m",
		game.IncorrectPosition: "\x1b[43;30m",
		game.CorrectPosition:   "\x1b[42;30m",
	},
}

// winMessages is indexed by winning round; later rounds reuse the last entry.
var winMessages = []string{"", "🤯 GENIUS", "🔥 MAGNIFICENT", "✨ IMPRESSIVE", "🙌 SPLENDID", "👍 GREAT", "😅 PHEW"}

var shareEmoji = map[game.LetterState]string{
	game.NotPresent:        "⬛",
	game.IncorrectPosition: "🟨",
	game.CorrectPosition:   "🟩",
}

// keyboardRows is the QWERTY layout used for the status line.
var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

func winMessage(round int) string {
	if round < 1 {
		round = 1
	}
	if round >= len(winMessages) {
		round = len(winMessages) - 1
	}
	return winMessages[round]
}

// tile renders one letter in the color of its state.
func (c palette) tile(letter byte, s game.LetterState) string {
	code := c.states[s]
	if code == "" {
		return string(letter)
	}
	return code + string(letter) + c.Reset
}

// prettyResponse colors each letter of word by its state.
func (c palette) prettyResponse(word game.Word, states game.Response) string {
	var b strings.Builder
	for i := 0; i < len(word) && i < len(states); i++ {
		b.WriteString(c.tile(word[i], states[i]))
	}
	return b.String()
}

// shareRow renders a response as emoji squares.
func shareRow(states game.Response) string {
	var b strings.Builder
	for _, s := range states {
		b.WriteString(shareEmoji[s])
	}
	return b.String()
}
