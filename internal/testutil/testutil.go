package testutil

import (
	"time"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// ScriptedLetters hands out vowels and consonants in a fixed order,
// wrapping around when a script runs out.
type ScriptedLetters struct {
	Vowels     string
	Consonants string

	v, c int
}

func (s *ScriptedLetters) DrawVowel() rune {
	r := []rune(s.Vowels)[s.v%len([]rune(s.Vowels))]
	s.v++
	return r
}

func (s *ScriptedLetters) DrawConsonant() rune {
	r := []rune(s.Consonants)[s.c%len([]rune(s.Consonants))]
	s.c++
	return r
}

// FakeClock is a manually advanced clock.
type FakeClock struct {
	T time.Time
}

func NewFakeClock() *FakeClock {
	return &FakeClock{T: time.Date(2026, 2, 18, 10, 0, 0, 0, time.UTC)}
}

func (c *FakeClock) Now() time.Time {
	return c.T
}

// Advance moves the clock forward by d and returns the new time.
func (c *FakeClock) Advance(d time.Duration) time.Time {
	c.T = c.T.Add(d)
	return c.T
}
