package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/paroliere/internal/game"
)

// --- Styles (navy board) ---
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	numberStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	centeredStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	tileStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")).
			Background(lipgloss.Color("19")).Padding(0, 1).MarginRight(1)

	frameIdle    = lipgloss.Color("12")
	frameValid   = lipgloss.Color("10")
	frameInvalid = lipgloss.Color("9")
)

const minBoardWidth = 48

func frameColor(phase game.Phase, last game.LastWord) lipgloss.Color {
	switch phase {
	case game.PhaseRunning:
		switch last {
		case game.LastWordValid:
			return frameValid
		case game.LastWordInvalid:
			return frameInvalid
		}
		return frameIdle
	case game.PhaseEnded, game.PhaseClose:
		return frameValid
	default:
		return frameIdle
	}
}

// timerColor fades from green with the full round left to red at zero.
func timerColor(secondsLeft, total int) lipgloss.Color {
	g := 0
	if total > 0 {
		g = 240 * min(max(secondsLeft, 0), total) / total
	}
	return lipgloss.Color(fmt.Sprintf("#%02X%02X00", 240-g, g))
}

func renderBoard(snap game.Snapshot, cfg AppConfig, width int) string {
	var body []string
	switch snap.Phase {
	case game.PhaseLoading:
		body = loadingLines(snap, cfg)
	case game.PhaseChoosingLetters:
		body = choosingLines(snap)
	case game.PhaseRunning:
		body = runningLines(snap)
	case game.PhaseEnded, game.PhaseClose:
		body = endedLines(snap)
	}

	frame := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(frameColor(snap.Phase, snap.LastWord)).
		Padding(1, 3)
	if width > minBoardWidth {
		frame = frame.Width(width - 4)
	}
	return frame.Render(strings.Join(body, "\n"))
}

func loadingLines(snap game.Snapshot, cfg AppConfig) []string {
	lines := []string{
		titleStyle.Render("Welcome to Paroliere"),
	}
	if cfg.Version != "" {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("v%s (%s) %s", cfg.Version, cfg.Commit, cfg.BuildDate)))
	}
	lines = append(lines,
		"",
		titleStyle.Render("Rules:"),
		rule(1, fmt.Sprintf("Choose %d letters among vowels and consonants;", game.PoolSize)),
		rule(2, "Make words with the letters you drew;"),
		rule(3, "Each letter can be used more than once;"),
		rule(4, fmt.Sprintf("You have %d seconds.", snap.RoundSeconds())),
		"",
		numberStyle.Render("Press [ENTER] to continue, [Q] to quit"),
	)
	return lines
}

func choosingLines(snap game.Snapshot) []string {
	lines := []string{
		titleStyle.Render("Choose the letter types"),
		"",
		normalStyle.Render("Press:"),
		rule(1, "Vowels"),
		rule(2, "Consonants"),
	}
	if snap.Pool != "" {
		lines = append(lines,
			"",
			normalStyle.Render(fmt.Sprintf("Letters drawn (%d/%d):", len(snap.Pool), game.PoolSize)),
			tiles(snap.Pool),
		)
	}
	return lines
}

func runningLines(snap game.Snapshot) []string {
	clock := lipgloss.NewStyle().Bold(true).
		Foreground(timerColor(snap.SecondsLeft, snap.RoundSeconds())).
		Render(snap.Clock())
	lines := []string{
		titleStyle.Render("Make words with the given letters"),
		"",
		clock,
		"",
		normalStyle.Render("Available letters:"),
		tiles(snap.Pool),
		"",
		normalStyle.Render(fmt.Sprintf("Points: %d", snap.Score)),
		normalStyle.Render(" > " + snap.CurrentWord),
	}
	if snap.Hint != "" {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("did you mean %s?", snap.Hint)))
	}
	return lines
}

func endedLines(snap game.Snapshot) []string {
	lines := []string{
		titleStyle.Render("Game over"),
		"",
		titleStyle.Render(fmt.Sprintf("You scored %d points", snap.Score)),
	}
	if snap.BestWord == "" {
		lines = append(lines, normalStyle.Render("There were no words available"))
	} else {
		lines = append(lines,
			normalStyle.Render("Longest possible word:"),
			centeredStyle.Render(snap.BestWord),
		)
	}
	if len(snap.Guessed) > 0 {
		lines = append(lines, "", normalStyle.Render("Your words:"))
		for _, w := range snap.Guessed {
			lines = append(lines, mutedStyle.Render(fmt.Sprintf("  %-*s +%d", game.MaxWordLen, w.Word, w.Points)))
		}
	}
	lines = append(lines, "", numberStyle.Render("Press [ENTER] to quit"))
	return lines
}

func rule(n int, text string) string {
	return numberStyle.Render(fmt.Sprintf("%d)", n)) + " " + normalStyle.Render(text)
}

func tiles(letters string) string {
	parts := make([]string, 0, len(letters))
	for _, r := range letters {
		parts = append(parts, tileStyle.Render(string(r)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
