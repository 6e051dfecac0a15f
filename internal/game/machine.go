package game

import (
	"errors"
	"fmt"
	"time"
	"unicode"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Phase is a state of the game.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseChoosingLetters
	PhaseRunning
	PhaseEnded
	PhaseClose
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseChoosingLetters:
		return "choosing_letters"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	case PhaseClose:
		return "close"
	default:
		return "unknown"
	}
}

// LastWord is the verdict on the most recent evaluated submission.
type LastWord int

const (
	LastWordNone LastWord = iota
	LastWordValid
	LastWordInvalid
)

var (
	ErrNotRunning      = errors.New("round is not running")
	ErrWordTooLong     = errors.New("word is at maximum length")
	ErrLetterNotInPool = errors.New("letter not in pool")
)

// Lexicon is the read-only word list a round is played against.
type Lexicon interface {
	Contains(word string) bool
	Words() []string
}

// Hinter proposes a close valid word for a rejected one. It may return "".
type Hinter interface {
	Suggest(word string, pool LetterPool) string
}

type Options struct {
	RoundDuration time.Duration
	Seed          int64
	Letters       LetterSource
	Audio         Audio
	Hinter        Hinter
	Logger        *zap.Logger
	Clock         func() time.Time
}

// Machine owns the whole state of one game and drives its phases.
// It is not safe for concurrent use; front-ends call it from their loop.
type Machine struct {
	lex     Lexicon
	letters LetterSource
	audio   Audio
	hinter  Hinter
	log     *zap.Logger
	clock   func() time.Time
	round   time.Duration

	phase    Phase
	roundID  string
	pool     LetterPool
	current  []rune
	guessed  *GuessedWords
	score    int
	timer    RoundTimer
	lastTick time.Time
	lastWord LastWord
	hint     string

	best     string
	bestDone bool
}

func NewMachine(lex Lexicon, opts Options) (*Machine, error) {
	if lex == nil {
		return nil, fmt.Errorf("new machine: lexicon is required")
	}
	if opts.RoundDuration == 0 {
		opts.RoundDuration = DefaultRoundDuration
	}
	if opts.RoundDuration < 0 {
		return nil, fmt.Errorf("new machine: invalid round duration %s", opts.RoundDuration)
	}
	if opts.Letters == nil {
		opts.Letters = NewDrawer(opts.Seed)
	}
	if opts.Audio == nil {
		opts.Audio = NopAudio{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	return &Machine{
		lex:     lex,
		letters: opts.Letters,
		audio:   opts.Audio,
		hinter:  opts.Hinter,
		log:     opts.Logger,
		clock:   opts.Clock,
		round:   opts.RoundDuration,
		phase:   PhaseLoading,
		current: make([]rune, 0, MaxWordLen),
		guessed: NewGuessedWords(MaxGuessedWords),
		timer:   NewRoundTimer(opts.RoundDuration),
	}, nil
}

func (m *Machine) Phase() Phase { return m.phase }
func (m *Machine) Score() int { return m.score }
func (m *Machine) Pool() LetterPool { return m.pool }
func (m *Machine) CurrentWord() string { return string(m.current) }
func (m *Machine) GuessedWords() []string { return m.guessed.Words() }
func (m *Machine) LastWord() LastWord { return m.lastWord }
func (m *Machine) Timer() RoundTimer { return m.timer }
func (m *Machine) RoundID() string { return m.roundID }
func (m *Machine) Hint() string { return m.hint }

// HandleInput applies one input to the current phase. Returned errors
// describe rejected gameplay input; they never end the round.
func (m *Machine) HandleInput(in Input) error {
	switch m.phase {
	case PhaseLoading:
		switch in.Kind {
		case InputConfirm:
			m.startRound()
		case InputQuit:
			m.Close()
		}
	case PhaseChoosingLetters:
		switch in.Kind {
		case InputDrawVowel:
			return m.addLetter(m.letters.DrawVowel())
		case InputDrawConsonant:
			return m.addLetter(m.letters.DrawConsonant())
		}
	case PhaseRunning:
		switch in.Kind {
		case InputLetter:
			return m.typeLetter(in.Letter)
		case InputBackspace:
			if n := len(m.current); n > 0 {
				m.current = m.current[:n-1]
			}
		case InputConfirm:
			_, err := m.Submit()
			return err
		}
	case PhaseEnded:
		if in.Kind == InputConfirm {
			m.Close()
		}
	}
	return nil
}

// Tick advances the round timer by the time elapsed since the previous
// tick. It does nothing outside the running phase.
func (m *Machine) Tick(now time.Time) {
	if m.phase != PhaseRunning {
		return
	}
	elapsed := now.Sub(m.lastTick)
	if elapsed < 0 {
		elapsed = 0
	}
	m.lastTick = now

	prev, crossed := m.timer.Advance(elapsed)
	if crossed {
		if prev%2 == 0 {
			m.audio.Play(CueTic)
		} else {
			m.audio.Play(CueTac)
		}
	}
	if m.timer.Expired() {
		m.setPhase(PhaseEnded)
		m.log.Info("round ended",
			zap.String("round_id", m.roundID),
			zap.Int("score", m.score),
			zap.Int("words", m.guessed.Len()),
		)
	}
}

// Close moves the game to its terminal phase from anywhere.
func (m *Machine) Close() {
	if m.phase == PhaseClose {
		return
	}
	m.setPhase(PhaseClose)
}

// BestWord returns the longest word the pool could spell. It is computed
// once, the first time it is asked for after the round ended.
func (m *Machine) BestWord() string {
	if m.phase != PhaseEnded && m.phase != PhaseClose {
		return ""
	}
	if !m.bestDone {
		m.best = FindLongest(m.lex.Words(), m.pool)
		m.bestDone = true
	}
	return m.best
}

func (m *Machine) startRound() {
	m.roundID = uuid.NewString()
	m.setPhase(PhaseChoosingLetters)
}

func (m *Machine) addLetter(r rune) error {
	if err := m.pool.Append(r); err != nil {
		return err
	}
	m.log.Debug("letter drawn", zap.String("round_id", m.roundID), zap.String("pool", m.pool.String()))
	if m.pool.Full() {
		m.timer = NewRoundTimer(m.round)
		m.lastTick = m.clock()
		m.setPhase(PhaseRunning)
	}
	return nil
}

func (m *Machine) typeLetter(r rune) error {
	if r > unicode.MaxASCII || !unicode.IsLetter(r) {
		return nil
	}
	if len(m.current) >= MaxWordLen {
		m.audio.Play(CueIncorrect)
		return ErrWordTooLong
	}
	if !m.pool.Allows(r) {
		m.audio.Play(CueIncorrect)
		return fmt.Errorf("type %q: %w", r, ErrLetterNotInPool)
	}
	m.current = append(m.current, unicode.ToUpper(r))
	return nil
}

func (m *Machine) setPhase(next Phase) {
	m.log.Debug("phase changed",
		zap.String("round_id", m.roundID),
		zap.Stringer("from", m.phase),
		zap.Stringer("to", next),
	)
	m.phase = next
}
