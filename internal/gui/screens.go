package gui

import (
	"fmt"
	"strings"

	"github.com/appengine-ltd/paroliere/internal/game"
	uitheme "github.com/appengine-ltd/paroliere/internal/ui/theme"
)

const summaryPerLine = 5

func drawLoading(f *uitheme.Flow, snap game.Snapshot) {
	f.Title("Welcome to Paroliere")
	f.Subtitle("Rules:")
	f.Rule(fmt.Sprintf("Choose %d letters among vowels and consonants;", game.PoolSize))
	f.Rule("Make words with the letters you drew;")
	f.Rule("Each letter can be used more than once;")
	f.Rule(fmt.Sprintf("You have %d seconds.", snap.RoundSeconds()))
	f.Bottom("Press [ENTER] to continue, [Q] to quit")
}

func drawChoosingLetters(f *uitheme.Flow, snap game.Snapshot) {
	f.Title("Choose the letter types")
	f.Line("Press:")
	f.Rule("Vowels")
	f.Rule("Consonants")
	if snap.Pool != "" {
		f.Line(fmt.Sprintf("Letters drawn (%d/%d):", len(snap.Pool), game.PoolSize))
		f.Letters(snap.Pool)
	}
}

func drawRunning(f *uitheme.Flow, snap game.Snapshot) {
	f.Title("Make words with the given letters")
	f.Clock(snap.Clock(), uitheme.TimerColor(snap.SecondsLeft, snap.RoundSeconds()))
	f.Line("Available letters:")
	f.Letters(snap.Pool)
	f.Line(fmt.Sprintf("Points: %d", snap.Score))
	f.Line(" > " + snap.CurrentWord)
	if snap.Hint != "" {
		f.Hint(fmt.Sprintf("did you mean %s?", snap.Hint))
	}
}

func drawEnded(f *uitheme.Flow, snap game.Snapshot) {
	f.Title("Game over")
	f.Subtitle(fmt.Sprintf("You scored %d points", snap.Score))
	if snap.BestWord == "" {
		f.Line("There were no words available")
	} else {
		f.Line("Longest possible word:")
		f.Subtitle(snap.BestWord)
	}
	for _, line := range summaryLines(snap.Guessed, summaryPerLine) {
		f.Hint(line)
	}
	f.Bottom("Press [ENTER] to quit")
}

// summaryLines lays out accepted words with their points, perLine to a row.
func summaryLines(words []game.ScoredWord, perLine int) []string {
	if perLine < 1 {
		perLine = 1
	}
	var lines []string
	for start := 0; start < len(words); start += perLine {
		end := min(start+perLine, len(words))
		parts := make([]string, 0, end-start)
		for _, w := range words[start:end] {
			parts = append(parts, fmt.Sprintf("%s +%d", w.Word, w.Points))
		}
		lines = append(lines, strings.Join(parts, "   "))
	}
	return lines
}
