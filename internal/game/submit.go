package game

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Outcome is the verdict on a submitted word.
type Outcome int

const (
	// OutcomeIgnored: the word was too short to evaluate; nothing changed.
	OutcomeIgnored Outcome = iota
	OutcomeRejected
	OutcomeAccepted
	OutcomeDuplicate
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeRejected:
		return "rejected"
	case OutcomeAccepted:
		return "accepted"
	case OutcomeDuplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

type SubmitResult struct {
	Word    string
	Outcome Outcome
	Points  int
}

// Submit evaluates the word being typed. Dictionary membership is the only
// check here: letters were already restricted to the pool while typing.
func (m *Machine) Submit() (SubmitResult, error) {
	if m.phase != PhaseRunning {
		return SubmitResult{}, ErrNotRunning
	}
	word := strings.ToUpper(string(m.current))
	if len(m.current) < MinWordLen {
		return SubmitResult{Word: word, Outcome: OutcomeIgnored}, nil
	}
	m.current = m.current[:0]
	m.hint = ""

	res := SubmitResult{Word: word}
	switch {
	case !m.lex.Contains(word):
		res.Outcome = OutcomeRejected
		if m.hinter != nil {
			m.hint = m.hinter.Suggest(word, m.pool)
		}
	case m.guessed.Contains(word):
		res.Outcome = OutcomeDuplicate
	default:
		if err := m.guessed.Add(word); err != nil {
			res.Outcome = OutcomeRejected
			m.markInvalid(res)
			if errors.Is(err, ErrGuessedWordsFull) {
				m.log.Warn("guessed words full", zap.String("round_id", m.roundID), zap.String("word", word))
			}
			return res, fmt.Errorf("submit %s: %w", word, err)
		}
		res.Outcome = OutcomeAccepted
		res.Points = Points(len(word))
		m.score += res.Points
		m.lastWord = LastWordValid
		m.audio.Play(CueCorrect)
		m.log.Debug("word accepted",
			zap.String("round_id", m.roundID),
			zap.String("word", word),
			zap.Int("points", res.Points),
			zap.Int("score", m.score),
		)
		return res, nil
	}

	m.markInvalid(res)
	return res, nil
}

func (m *Machine) markInvalid(res SubmitResult) {
	m.lastWord = LastWordInvalid
	m.audio.Play(CueIncorrect)
	m.log.Debug("word refused",
		zap.String("round_id", m.roundID),
		zap.String("word", res.Word),
		zap.Stringer("outcome", res.Outcome),
	)
}
