// Package assets embeds the default word lists.
//
// answers.txt holds the official solutions in day order, starting with
// day 0; allowed.txt holds extra accepted guesses. Both are one word per
// line, and '#' starts a comment line. Parsing is left to the words package.
package assets

import (
	"embed"
	"io/fs"
)

const (
	AnswersFile = "answers.txt"
	AllowedFile = "allowed.txt"
)

//go:embed allowed.txt answers.txt
var lists embed.FS

// Open returns one of the embedded lists by file name.
func Open(name string) (fs.File, error) {
	return lists.Open(name)
}
