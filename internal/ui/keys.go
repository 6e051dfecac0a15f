package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/paroliere/internal/game"
)

// translateKey maps one key press to game inputs for phase.
func translateKey(phase game.Phase, msg tea.KeyMsg) []game.Input {
	switch phase {
	case game.PhaseLoading:
		switch {
		case msg.Type == tea.KeyEnter:
			return []game.Input{game.Key(game.InputConfirm)}
		case msg.String() == "q" || msg.String() == "Q":
			return []game.Input{game.Key(game.InputQuit)}
		}
	case game.PhaseChoosingLetters:
		switch msg.String() {
		case "1":
			return []game.Input{game.Key(game.InputDrawVowel)}
		case "2":
			return []game.Input{game.Key(game.InputDrawConsonant)}
		}
	case game.PhaseRunning:
		switch msg.Type {
		case tea.KeyEnter:
			return []game.Input{game.Key(game.InputConfirm)}
		case tea.KeyBackspace:
			return []game.Input{game.Key(game.InputBackspace)}
		case tea.KeyRunes:
			out := make([]game.Input, 0, len(msg.Runes))
			for _, r := range msg.Runes {
				out = append(out, game.Letter(r))
			}
			return out
		}
	case game.PhaseEnded:
		if msg.Type == tea.KeyEnter {
			return []game.Input{game.Key(game.InputConfirm)}
		}
	}
	return nil
}
