package ui

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/appengine-ltd/paroliere/internal/game"
)

func TestTranslateKey(t *testing.T) {
	runes := func(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	tests := []struct {
		name  string
		phase game.Phase
		msg   tea.KeyMsg
		want  []game.Input
	}{
		{name: "welcome enter", phase: game.PhaseLoading, msg: enter, want: []game.Input{game.Key(game.InputConfirm)}},
		{name: "welcome q", phase: game.PhaseLoading, msg: runes("q"), want: []game.Input{game.Key(game.InputQuit)}},
		{name: "welcome Q", phase: game.PhaseLoading, msg: runes("Q"), want: []game.Input{game.Key(game.InputQuit)}},
		{name: "welcome letter", phase: game.PhaseLoading, msg: runes("a")},
		{name: "choose vowel", phase: game.PhaseChoosingLetters, msg: runes("1"), want: []game.Input{game.Key(game.InputDrawVowel)}},
		{name: "choose consonant", phase: game.PhaseChoosingLetters, msg: runes("2"), want: []game.Input{game.Key(game.InputDrawConsonant)}},
		{name: "choose enter", phase: game.PhaseChoosingLetters, msg: enter},
		{name: "running letters", phase: game.PhaseRunning, msg: runes("ci"), want: []game.Input{game.Letter('c'), game.Letter('i')}},
		{name: "running backspace", phase: game.PhaseRunning, msg: tea.KeyMsg{Type: tea.KeyBackspace}, want: []game.Input{game.Key(game.InputBackspace)}},
		{name: "running enter", phase: game.PhaseRunning, msg: enter, want: []game.Input{game.Key(game.InputConfirm)}},
		{name: "ended enter", phase: game.PhaseEnded, msg: enter, want: []game.Input{game.Key(game.InputConfirm)}},
		{name: "ended letter", phase: game.PhaseEnded, msg: runes("q")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := translateKey(tc.phase, tc.msg)
			if len(tc.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBellRingsOnFeedbackOnly(t *testing.T) {
	var buf bytes.Buffer
	bell := bellAudio{w: &buf}
	for _, c := range game.Cues {
		bell.Play(c)
	}
	assert.Equal(t, "\a\a", buf.String())
}
