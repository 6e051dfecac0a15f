package testutil

import (
	"github.com/stretchr/testify/mock"

	"github.com/appengine-ltd/paroliere/internal/game"
)

// MockAudio is a mock implementation of game.Audio
type MockAudio struct {
	mock.Mock
}

// NewMockAudio returns a MockAudio that accepts any cue.
func NewMockAudio() *MockAudio {
	m := new(MockAudio)
	m.On("Play", mock.Anything).Return()
	return m
}

func (m *MockAudio) Play(cue game.Cue) {
	m.Called(cue)
}

// Played returns the cues received so far, in order.
func (m *MockAudio) Played() []game.Cue {
	var out []game.Cue
	for _, call := range m.Calls {
		if call.Method != "Play" {
			continue
		}
		out = append(out, call.Arguments.Get(0).(game.Cue))
	}
	return out
}
