package game

import (
	"fmt"
	"time"
)

// ScoredWord is an accepted word with the points it earned.
type ScoredWord struct {
	Word   string
	Points int
}

// Snapshot is what front-ends render each frame.
type Snapshot struct {
	Phase       Phase
	RoundID     string
	Pool        string
	CurrentWord string
	Score       int
	Guessed     []ScoredWord
	SecondsLeft int
	Remaining   time.Duration
	RoundLength time.Duration
	LastWord    LastWord
	BestWord    string
	Hint        string
}

func (m *Machine) Snapshot() Snapshot {
	words := m.guessed.Words()
	scored := make([]ScoredWord, 0, len(words))
	for _, w := range words {
		scored = append(scored, ScoredWord{Word: w, Points: Points(len(w))})
	}
	return Snapshot{
		Phase:       m.phase,
		RoundID:     m.roundID,
		Pool:        m.pool.String(),
		CurrentWord: string(m.current),
		Score:       m.score,
		Guessed:     scored,
		SecondsLeft: m.timer.Seconds(),
		Remaining:   m.timer.Remaining(),
		RoundLength: m.timer.Total(),
		LastWord:    m.lastWord,
		BestWord:    m.BestWord(),
		Hint:        m.hint,
	}
}

// Clock formats the seconds left as MM:SS.
func (s Snapshot) Clock() string {
	left := s.SecondsLeft
	if left < 0 {
		left = 0
	}
	return fmt.Sprintf("%02d:%02d", left/60, left%60)
}

// RoundSeconds is the full round length in whole seconds.
func (s Snapshot) RoundSeconds() int {
	return int(s.RoundLength / time.Second)
}
