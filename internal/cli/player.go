// Package cli implements game.Player for an interactive terminal.
//
// Output goes to a single writer; when colors are on the player also uses
// cursor movement to keep the keyboard status line up to date in place and
// to print each scored guess over its own prompt line.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/store"
)

// Options configures a Player.
type Options struct {
	Rounds int
	// Color enables ANSI colors and cursor movement.
	Color bool
	// GameNumber is the official day shown in the share text; -1 for none.
	GameNumber int
	// AssumeValid skips the vocabulary check in the game loop.
	AssumeValid bool
}

type historyEntry struct {
	guess    game.Word
	response game.Response
}

// Player talks to a human over in/out.
type Player struct {
	out  io.Writer
	in   io.Reader
	opts Options
	c    palette
	num  *message.Printer

	history  []historyEntry
	keyboard map[byte]game.LetterState
	// linesSinceKeyboard counts lines written below the keyboard line;
	// -1 means no keyboard has been drawn yet.
	linesSinceKeyboard int

	readOnce sync.Once
	lines    chan lineResult

	// clipboard is swapped out in tests.
	clipboard func(string) bool
}

type lineResult struct {
	text string
	err  error
}

var _ game.Player = (*Player)(nil)

// New builds a Player reading answers from in and writing to out.
func New(in io.Reader, out io.Writer, opts Options) *Player {
	if opts.Rounds <= 0 {
		opts.Rounds = game.DefaultRounds
	}
	p := &Player{
		out:                out,
		in:                 in,
		opts:               opts,
		num:                message.NewPrinter(language.English),
		linesSinceKeyboard: -1,
		clipboard:          copyToClipboard,
	}
	if opts.Color {
		p.c = colorPalette
	}
	p.resetKeyboard()
	return p
}

// SetGameNumber changes the day shown in the share text; -1 hides it.
func (p *Player) SetGameNumber(n int) { p.opts.GameNumber = n }

// Start resets per-game state and greets the player.
func (p *Player) Start() {
	p.history = nil
	p.resetKeyboard()
	p.linesSinceKeyboard = -1
	p.outln("Let's play a game of Wordle")
	p.updateKeyboard()
}

func (p *Player) resetKeyboard() {
	p.keyboard = make(map[byte]game.LetterState, 26)
	for c := byte('A'); c <= 'Z'; c++ {
		p.keyboard[c] = game.NotGuessedYet
	}
}

// Guess prompts for round and returns the upper-cased input.
func (p *Player) Guess(ctx context.Context, round int) (string, error) {
	prompt := fmt.Sprintf("Guess %d/%d: ", round, p.opts.Rounds)
	fmt.Fprint(p.out, prompt)
	line, err := p.readLine(ctx)
	if err != nil {
		fmt.Fprintln(p.out)
		return "", err
	}
	if p.opts.Color {
		// Move back over the echoed input so the scored guess replaces it.
		fmt.Fprintf(p.out, "\x1b[A\x1b[%dC\x1b[K", len(prompt))
	} else {
		fmt.Fprint(p.out, strings.Repeat(" ", len(prompt)))
	}
	return strings.ToUpper(strings.TrimSpace(line)), nil
}

// HandleResponse records the guess, prints it colored, and refreshes the keyboard.
func (p *Player) HandleResponse(guess game.Word, response game.Response, hint int) {
	p.history = append(p.history, historyEntry{guess: guess, response: response})
	for i := 0; i < len(guess) && i < len(response); i++ {
		if response[i] > p.keyboard[guess[i]] {
			p.keyboard[guess[i]] = response[i]
		}
	}

	line := p.c.prettyResponse(guess, response)
	if hint != game.HintsDisabled {
		line += " " + p.c.Dim + p.num.Sprintf("%d possible", hint)
	}
	p.outln(line)
	p.updateKeyboard()
}

// HandleWin congratulates the player and offers a shareable summary.
func (p *Player) HandleWin(round int) {
	p.outln(fmt.Sprintf("%s%s! Got it in %d/%d rounds", p.c.Win, winMessage(round), round, p.opts.Rounds))

	share := p.ShareText(round)
	if p.clipboard != nil && p.clipboard(share) {
		p.outln("📣 Shareable summary copied to clipboard")
		return
	}
	p.outln("📣 Shareable summary:")
	p.outln(share + "\n")
}

// HandleLoss reveals the solution.
func (p *Player) HandleLoss(solution game.Word) {
	p.outln(fmt.Sprintf("%s🤦 LOSE! The solution was %s", p.c.Lose, solution))
}

// Quit acknowledges an abandoned session.
func (p *Player) Quit() {
	p.outln(p.c.Lose + "QUIT!")
}

// Summary prints session totals; nothing is printed before the first
// finished game.
func (p *Player) Summary(s store.Stats) {
	if s.Played == 0 {
		return
	}
	p.outln(fmt.Sprintf("%sPlayed %d | Win %d%% | Streak %d | Max streak %d",
		p.c.Dim, s.Played, s.WinRate(), s.Streak, s.MaxStreak))
	for i, n := range s.Distribution {
		p.outln(fmt.Sprintf("%s%d: %s%d", p.c.Dim, i+1, strings.Repeat("#", n), n))
	}
}

// Warn prints a highlighted warning.
func (p *Player) Warn(msg string) {
	p.outln(p.c.Warn + msg)
}

func (p *Player) AssumeGuessesValid() bool { return p.opts.AssumeValid }

// Again asks whether to start another game. Any answer, including an empty
// line, means yes; the error wraps game.ErrAborted on Ctrl-C or end of input.
func (p *Player) Again(ctx context.Context) error {
	fmt.Fprintf(p.out, "Play again %s[Enter]%s or exit %s[Ctrl-C]%s? ", p.c.Dim, p.c.Reset, p.c.Dim, p.c.Reset)
	if _, err := p.readLine(ctx); err != nil {
		fmt.Fprintln(p.out)
		return err
	}
	return nil
}

// ShareText is the emoji summary of the current game.
func (p *Player) ShareText(round int) string {
	var b strings.Builder
	b.WriteString("wordle-cli ")
	if p.opts.GameNumber >= 0 {
		fmt.Fprintf(&b, "%d ", p.opts.GameNumber)
	}
	fmt.Fprintf(&b, "%d/%d", round, p.opts.Rounds)
	for _, h := range p.history {
		b.WriteString("\n")
		b.WriteString(shareRow(h.response))
	}
	return b.String()
}

// keyboardLine renders the QWERTY status line.
func (p *Player) keyboardLine() string {
	rows := make([]string, 0, len(keyboardRows))
	for _, row := range keyboardRows {
		var b strings.Builder
		for i := 0; i < len(row); i++ {
			b.WriteString(p.c.tile(row[i], p.keyboard[row[i]]))
		}
		rows = append(rows, b.String())
	}
	return strings.Join(rows, " ")
}

// updateKeyboard redraws the keyboard in place when cursor movement is
// available, or prints a fresh copy otherwise.
func (p *Player) updateKeyboard() {
	if !p.opts.Color || p.linesSinceKeyboard < 0 {
		fmt.Fprintln(p.out, p.keyboardLine()+p.c.Reset)
		p.linesSinceKeyboard = 0
		return
	}
	n := p.linesSinceKeyboard + 1
	fmt.Fprintf(p.out, "\x1b[%dF%s%s\x1b[K\x1b[%dE", n, p.keyboardLine(), p.c.Reset, n)
}

// outln writes one line and resets styling.
func (p *Player) outln(s string) {
	fmt.Fprintln(p.out, s+p.c.Reset)
	if p.linesSinceKeyboard >= 0 {
		p.linesSinceKeyboard += strings.Count(s, "\n") + 1
	}
}

// readLine returns the next input line, or ErrAborted on EOF, read error,
// or cancellation. A single goroutine owns the reader for the Player's life.
func (p *Player) readLine(ctx context.Context) (string, error) {
	p.readOnce.Do(p.startReader)
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %w", game.ErrAborted, ctx.Err())
	case r, ok := <-p.lines:
		if !ok {
			return "", fmt.Errorf("%w: %w", game.ErrAborted, io.EOF)
		}
		if r.err != nil {
			return "", fmt.Errorf("%w: %w", game.ErrAborted, r.err)
		}
		return r.text, nil
	}
}

func (p *Player) startReader() {
	p.lines = make(chan lineResult)
	go func() {
		defer close(p.lines)
		sc := bufio.NewScanner(p.in)
		for sc.Scan() {
			p.lines <- lineResult{text: sc.Text()}
		}
		if err := sc.Err(); err != nil {
			p.lines <- lineResult{err: err}
		}
	}()
}
