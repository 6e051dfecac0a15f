package game

// InputKind is the meaning of a key press, independent of the front-end.
type InputKind int

const (
	InputConfirm InputKind = iota
	InputQuit
	InputBackspace
	InputDrawVowel
	InputDrawConsonant
	InputLetter
)

func (k InputKind) String() string {
	switch k {
	case InputConfirm:
		return "confirm"
	case InputQuit:
		return "quit"
	case InputBackspace:
		return "backspace"
	case InputDrawVowel:
		return "draw_vowel"
	case InputDrawConsonant:
		return "draw_consonant"
	case InputLetter:
		return "letter"
	default:
		return "unknown"
	}
}

type Input struct {
	Kind   InputKind
	Letter rune
}

func Key(kind InputKind) Input {
	return Input{Kind: kind}
}

func Letter(r rune) Input {
	return Input{Kind: InputLetter, Letter: r}
}
