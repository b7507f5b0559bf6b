package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/cli"
	"github.com/robalobadob/wordle/apps/go-cli/internal/config"
	"github.com/robalobadob/wordle/apps/go-cli/internal/daily"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/store"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

const usageFormat = `Usage: wordle [-h|--help] [--today|DAY|SOLUTION] [--hints]

Option			Behaviour (* = mutually-exclusive)
------			----------------------------------
none			Use a random solution from the official Wordle dictionary
--today			* Use today's official Wordle solution
DAY (number)		* Use the official solution from this DAY
SOLUTION (string)	* Use a given SOLUTION (must be %d-letter word)
--hints			After each guess, report number of possible words remaining
-h, --help		Print this help text and quit
`

func usage(length int) string { return fmt.Sprintf(usageFormat, length) }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	color := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	code := run(ctx, os.Args[1:], os.Stdin, colorable.NewColorableStdout(), color)
	stop()
	os.Exit(code)
}

// run drives whole sessions and returns the process exit code.
func run(ctx context.Context, args []string, in io.Reader, out io.Writer, color bool) int {
	cfg, err := config.Load()
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return 1
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	lists, err := words.Load(cfg.AnswersFile, cfg.AllowedFile, cfg.Length)
	if err != nil {
		log.Error().Err(err).Msg("failed to load word lists")
		return 1
	}

	player := cli.New(in, out, cli.Options{
		Rounds:     cfg.Rounds,
		Color:      color && !cfg.ColorDisabled(),
		GameNumber: -1,
	})

	a, err := parseArgs(args)
	if err != nil {
		var ae argError
		if errors.As(err, &ae) {
			player.Warn("Invalid argument " + ae.arg)
		}
		fmt.Fprint(out, usage(cfg.Length))
		return 2
	}
	if a.help {
		fmt.Fprint(out, usage(cfg.Length))
		return 0
	}

	day := a.day
	if a.today {
		now := time.Now()
		day = daily.DayNumber(now)
		log.Debug().Str("date", daily.DateKey(now)).Int("day", day).Msg("today's puzzle")
	}

	var solution game.Word
	switch {
	case a.today || day >= 0:
		w, err := lists.Answer(day)
		if err != nil {
			answers, _ := lists.Stats()
			player.Warn(fmt.Sprintf("No official solution for day %d, known days are 0-%d (set WORDS_ANSWERS_FILE for more)", day, answers-1))
			fmt.Fprint(out, usage(cfg.Length))
			return 2
		}
		player.SetGameNumber(day)
		solution = w
	case a.solution != "":
		w, err := game.ParseWord(a.solution, cfg.Length)
		if err != nil || !lists.IsAllowed(string(w)) {
			player.Warn(fmt.Sprintf("Invalid solution %s, must be a valid guess", strings.ToUpper(a.solution)))
			fmt.Fprint(out, usage(cfg.Length))
			return 2
		}
		solution = w
		player.Warn(fmt.Sprintf("Solution will be %s", solution))
	}
	fixed := solution != ""

	g := game.New(lists, lists.Answers(),
		game.WithRounds(cfg.Rounds),
		game.WithLength(cfg.Length),
		game.WithHints(a.hints || cfg.Hints),
	)

	st := store.NewMemoryStore(cfg.Rounds)
	quit := func() int {
		player.Quit()
		if s, err := st.Stats(ctx); err == nil {
			player.Summary(s)
		}
		return 0
	}

	for {
		if !fixed {
			solution = lists.RandomAnswer()
		}
		player.Start()
		outcome, err := g.Play(ctx, player, solution)
		if err != nil {
			if errors.Is(err, game.ErrAborted) {
				return quit()
			}
			log.Error().Err(err).Msg("game failed")
			return 1
		}
		log.Debug().Stringer("result", outcome.Result).Int("round", outcome.Round).Msg("game over")
		if err := st.Record(ctx, outcome); err != nil {
			log.Warn().Err(err).Msg("record outcome")
		}

		if fixed {
			return 0
		}
		if err := player.Again(ctx); err != nil {
			return quit()
		}
	}
}

// cliArgs is the parsed command line.
type cliArgs struct {
	help     bool
	today    bool
	hints    bool
	day      int // -1 when not given
	solution string
}

// argError names a command-line argument that could not be used.
type argError struct{ arg string }

func (e argError) Error() string { return "invalid argument " + e.arg }

// parseArgs accepts flags and at most one positional DAY or SOLUTION in any
// order.
func parseArgs(args []string) (cliArgs, error) {
	a := cliArgs{day: -1}

	fs := flag.NewFlagSet("wordle", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&a.help, "h", false, "print help and quit")
	fs.BoolVar(&a.help, "help", false, "print help and quit")
	fs.BoolVar(&a.today, "today", false, "use today's official solution")
	fs.BoolVar(&a.hints, "hints", false, "report remaining possible words")

	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return a, argError{badFlag(err)}
		}
		rest := fs.Args()
		if len(rest) == 0 {
			break
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
	if a.help {
		return a, nil
	}

	switch {
	case len(positional) > 1:
		return a, argError{positional[1]}
	case len(positional) == 1 && a.today:
		return a, argError{positional[0]}
	case len(positional) == 1:
		if n, err := strconv.Atoi(positional[0]); err == nil {
			if n < 0 {
				return a, argError{positional[0]}
			}
			a.day = n
		} else {
			a.solution = positional[0]
		}
	}
	return a, nil
}

// badFlag extracts the offending argument from a flag package error.
func badFlag(err error) string {
	msg := err.Error()
	for _, prefix := range []string{"flag provided but not defined: ", "invalid boolean flag "} {
		if strings.HasPrefix(msg, prefix) {
			return strings.TrimPrefix(msg, prefix)
		}
	}
	return msg
}
