package ui

import (
	"io"

	"github.com/appengine-ltd/paroliere/internal/game"
)

// bellAudio rings the terminal bell on word feedback. Timer cues are silent.
type bellAudio struct {
	w io.Writer
}

func (b bellAudio) Play(c game.Cue) {
	switch c {
	case game.CueCorrect, game.CueIncorrect:
		_, _ = io.WriteString(b.w, "\a")
	}
}
