package game

const (
	// MinWordLen is the shortest word a submission is evaluated for.
	MinWordLen = 2
	// MaxWordLen bounds both dictionary entries and the word being typed.
	MaxWordLen = 24
)

// Points returns the score awarded for a new valid word of n letters.
func Points(n int) int {
	switch {
	case n < MinWordLen:
		return 0
	case n <= 4:
		return 1
	case n == 5:
		return 2
	case n == 6:
		return 3
	case n == 7:
		return 5
	default:
		return 11
	}
}
