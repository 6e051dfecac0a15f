package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/paroliere/internal/game"
)

// keyPressedFunc matches rl.IsKeyPressed so tests can stub the keyboard.
type keyPressedFunc func(key int32) bool

// translateFrame turns one frame of keyboard state into game inputs for
// phase. Typed characters only matter while a round is running.
func translateFrame(phase game.Phase, pressed keyPressedFunc, chars []rune) []game.Input {
	var out []game.Input
	switch phase {
	case game.PhaseLoading:
		if confirmPressed(pressed) {
			out = append(out, game.Key(game.InputConfirm))
		}
		if pressed(rl.KeyQ) {
			out = append(out, game.Key(game.InputQuit))
		}
	case game.PhaseChoosingLetters:
		if pressed(rl.KeyOne) || pressed(rl.KeyKp1) {
			out = append(out, game.Key(game.InputDrawVowel))
		}
		if pressed(rl.KeyTwo) || pressed(rl.KeyKp2) {
			out = append(out, game.Key(game.InputDrawConsonant))
		}
	case game.PhaseRunning:
		for _, r := range chars {
			out = append(out, game.Letter(r))
		}
		if pressed(rl.KeyBackspace) {
			out = append(out, game.Key(game.InputBackspace))
		}
		if confirmPressed(pressed) {
			out = append(out, game.Key(game.InputConfirm))
		}
	case game.PhaseEnded:
		if confirmPressed(pressed) {
			out = append(out, game.Key(game.InputConfirm))
		}
	}
	return out
}

func confirmPressed(pressed keyPressedFunc) bool {
	return pressed(rl.KeyEnter) || pressed(rl.KeyKpEnter)
}

// pollChars drains the characters typed since the previous frame.
func pollChars() []rune {
	var chars []rune
	for c := rl.GetCharPressed(); c > 0; c = rl.GetCharPressed() {
		chars = append(chars, rune(c))
	}
	return chars
}
