package game_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appengine-ltd/paroliere/internal/game"
)

type stubHinter struct {
	calls []string
	reply string
}

func (s *stubHinter) Suggest(word string, _ game.LetterPool) string {
	s.calls = append(s.calls, word)
	return s.reply
}

func TestSubmitShortWordIsNoop(t *testing.T) {
	for _, word := range []string{"", "c"} {
		t.Run(fmt.Sprintf("len_%d", len(word)), func(t *testing.T) {
			h := newHarness(t, "C")
			h.startRunning(t)
			h.typeWord(t, word)

			res, err := h.m.Submit()
			require.NoError(t, err)

			assert.Equal(t, game.OutcomeIgnored, res.Outcome)
			assert.Equal(t, strings.ToUpper(word), h.m.CurrentWord())
			assert.Equal(t, 0, h.m.Score())
			assert.Empty(t, h.m.GuessedWords())
			assert.Equal(t, game.LastWordNone, h.m.LastWord())
			assert.Empty(t, h.audio.Played())
		})
	}
}

func TestSubmitScoresByLength(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{word: "AB", want: 1},
		{word: "CIO", want: 1},
		{word: "CIBO", want: 1},
		{word: "ABICO", want: 2},
		{word: "GIOCDA", want: 3},
		{word: "BOCCIAD", want: 5},
		{word: "FOGACCIA", want: 11},
		{word: "DEFIBIGACUGO", want: 11},
	}
	for _, tc := range tests {
		t.Run(tc.word, func(t *testing.T) {
			h := newHarness(t, tc.word)
			h.startRunning(t)
			h.typeWord(t, tc.word)

			res, err := h.m.Submit()
			require.NoError(t, err)

			assert.Equal(t, game.OutcomeAccepted, res.Outcome)
			assert.Equal(t, tc.want, res.Points)
			assert.Equal(t, tc.want, h.m.Score())
			assert.Equal(t, game.LastWordValid, h.m.LastWord())
			assert.Equal(t, "", h.m.CurrentWord())
			assert.Equal(t, []game.Cue{game.CueCorrect}, h.audio.Played())
		})
	}
}

func TestSubmitUnknownWordRejected(t *testing.T) {
	h := newHarness(t, "CIBO")
	h.startRunning(t)
	h.typeWord(t, "boci")

	res, err := h.m.Submit()
	require.NoError(t, err)

	assert.Equal(t, game.OutcomeRejected, res.Outcome)
	assert.Equal(t, "BOCI", res.Word)
	assert.Equal(t, 0, h.m.Score())
	assert.Equal(t, game.LastWordInvalid, h.m.LastWord())
	assert.Equal(t, "", h.m.CurrentWord())
	assert.Empty(t, h.m.GuessedWords())
	assert.Equal(t, []game.Cue{game.CueIncorrect}, h.audio.Played())
}

func TestSubmitCiboScenario(t *testing.T) {
	h := newHarness(t, "CIBO")
	h.startRunning(t)

	h.typeWord(t, "cibo")
	res, err := h.m.Submit()
	require.NoError(t, err)
	assert.Equal(t, game.OutcomeAccepted, res.Outcome)
	assert.Equal(t, 1, h.m.Score())
	assert.Equal(t, []string{"CIBO"}, h.m.GuessedWords())

	for i := 0; i < 3; i++ {
		h.typeWord(t, "CIBO")
		res, err = h.m.Submit()
		require.NoError(t, err)
		assert.Equal(t, game.OutcomeDuplicate, res.Outcome)
		assert.Equal(t, game.LastWordInvalid, h.m.LastWord())
		assert.Equal(t, 1, h.m.Score())
		assert.Equal(t, []string{"CIBO"}, h.m.GuessedWords())
		assert.Equal(t, "", h.m.CurrentWord())
	}
	assert.Equal(t,
		[]game.Cue{game.CueCorrect, game.CueIncorrect, game.CueIncorrect, game.CueIncorrect},
		h.audio.Played(),
	)
}

func TestSubmitViaConfirmInput(t *testing.T) {
	h := newHarness(t, "CIBO")
	h.startRunning(t)
	h.typeWord(t, "cibo")

	require.NoError(t, h.m.HandleInput(game.Key(game.InputConfirm)))
	assert.Equal(t, 1, h.m.Score())
}

func TestSubmitOutsideRunning(t *testing.T) {
	h := newHarness(t, "CIBO")
	_, err := h.m.Submit()
	assert.True(t, errors.Is(err, game.ErrNotRunning))
}

func TestSubmitGuessedWordsOverflow(t *testing.T) {
	// Every two-letter word over the pool alphabet, more than the list holds.
	letters := "ABCDEFGIOU"
	var words []string
	for _, a := range letters {
		for _, b := range letters {
			words = append(words, string([]rune{a, b}))
		}
	}
	require.Greater(t, len(words), game.MaxGuessedWords)

	h := newHarness(t, words...)
	h.startRunning(t)
	for _, w := range words[:game.MaxGuessedWords] {
		h.typeWord(t, w)
		res, err := h.m.Submit()
		require.NoError(t, err)
		require.Equal(t, game.OutcomeAccepted, res.Outcome)
	}
	score := h.m.Score()

	h.typeWord(t, words[game.MaxGuessedWords])
	res, err := h.m.Submit()

	assert.True(t, errors.Is(err, game.ErrGuessedWordsFull))
	assert.Equal(t, game.OutcomeRejected, res.Outcome)
	assert.Equal(t, score, h.m.Score())
	assert.Equal(t, game.LastWordInvalid, h.m.LastWord())
	assert.Len(t, h.m.GuessedWords(), game.MaxGuessedWords)
}

func TestSubmitRejectedAsksHinter(t *testing.T) {
	hinter := &stubHinter{reply: "CIBO"}
	h := newHarnessWith(t, hinter, "CIBO")
	h.startRunning(t)

	h.typeWord(t, "cubo")
	_, err := h.m.Submit()
	require.NoError(t, err)
	assert.Equal(t, []string{"CUBO"}, hinter.calls)
	assert.Equal(t, "CIBO", h.m.Hint())

	h.typeWord(t, "cibo")
	_, err = h.m.Submit()
	require.NoError(t, err)
	assert.Equal(t, "", h.m.Hint())
	assert.Len(t, hinter.calls, 1)
}
