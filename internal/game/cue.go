package game

// Cue identifies a short feedback sound.
type Cue int

const (
	CueTic Cue = iota
	CueTac
	CueCorrect
	CueIncorrect
)

// Cues lists every cue, in the order sound banks load them.
var Cues = []Cue{CueTic, CueTac, CueCorrect, CueIncorrect}

func (c Cue) String() string {
	switch c {
	case CueTic:
		return "tic"
	case CueTac:
		return "tac"
	case CueCorrect:
		return "correct"
	case CueIncorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

// Audio plays cues. Calls are fire-and-forget.
type Audio interface {
	Play(Cue)
}

// NopAudio discards every cue.
type NopAudio struct{}

func (NopAudio) Play(Cue) {}
