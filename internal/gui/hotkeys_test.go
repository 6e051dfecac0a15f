package gui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/paroliere/internal/game"
)

func keysDown(keys ...int32) keyPressedFunc {
	down := make(map[int32]bool, len(keys))
	for _, k := range keys {
		down[k] = true
	}
	return func(key int32) bool { return down[key] }
}

func TestTranslateLoadingKeys(t *testing.T) {
	got := translateFrame(game.PhaseLoading, keysDown(rl.KeyEnter), []rune{'x'})
	if len(got) != 1 || got[0].Kind != game.InputConfirm {
		t.Fatalf("expected confirm only, got %+v", got)
	}

	got = translateFrame(game.PhaseLoading, keysDown(rl.KeyQ), []rune{'q'})
	if len(got) != 1 || got[0].Kind != game.InputQuit {
		t.Fatalf("expected quit only, got %+v", got)
	}
}

func TestTranslateChoosingKeys(t *testing.T) {
	got := translateFrame(game.PhaseChoosingLetters, keysDown(rl.KeyOne), []rune{'1'})
	if len(got) != 1 || got[0].Kind != game.InputDrawVowel {
		t.Fatalf("expected vowel draw, got %+v", got)
	}

	got = translateFrame(game.PhaseChoosingLetters, keysDown(rl.KeyKp2), nil)
	if len(got) != 1 || got[0].Kind != game.InputDrawConsonant {
		t.Fatalf("expected consonant draw from keypad, got %+v", got)
	}

	got = translateFrame(game.PhaseChoosingLetters, keysDown(rl.KeyEnter, rl.KeyThree), []rune{'a'})
	if len(got) != 0 {
		t.Fatalf("expected no inputs while choosing, got %+v", got)
	}
}

func TestTranslateRunningKeepsTypingOrder(t *testing.T) {
	got := translateFrame(game.PhaseRunning, keysDown(rl.KeyBackspace, rl.KeyEnter), []rune{'c', 'i'})
	want := []game.Input{
		game.Letter('c'),
		game.Letter('i'),
		game.Key(game.InputBackspace),
		game.Key(game.InputConfirm),
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d inputs, got %+v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("input %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestTranslateEndedOnlyConfirms(t *testing.T) {
	got := translateFrame(game.PhaseEnded, keysDown(rl.KeyKpEnter, rl.KeyQ), []rune{'q'})
	if len(got) != 1 || got[0].Kind != game.InputConfirm {
		t.Fatalf("expected confirm only, got %+v", got)
	}
}

func TestTranslateCloseIgnoresEverything(t *testing.T) {
	if got := translateFrame(game.PhaseClose, keysDown(rl.KeyEnter), []rune{'a'}); len(got) != 0 {
		t.Fatalf("expected no inputs after close, got %+v", got)
	}
}

func TestSummaryLines(t *testing.T) {
	words := []game.ScoredWord{
		{Word: "CIBO", Points: 1},
		{Word: "ABICO", Points: 2},
		{Word: "BACIO", Points: 2},
	}
	got := summaryLines(words, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 lines, got %q", got)
	}
	if got[0] != "CIBO +1   ABICO +2" || got[1] != "BACIO +2" {
		t.Fatalf("unexpected layout %q", got)
	}
	if summaryLines(nil, 5) != nil {
		t.Fatalf("expected no lines for no words")
	}
}

func TestSoundFileNames(t *testing.T) {
	want := []string{"tic.wav", "tac.wav", "correct.wav", "incorrect.wav"}
	for i, cue := range game.Cues {
		if soundFile(cue) != want[i] {
			t.Fatalf("expected %s, got %s", want[i], soundFile(cue))
		}
	}
}
