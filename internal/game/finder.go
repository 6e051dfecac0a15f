package game

// FindLongest returns the first longest word, in iteration order, spelled
// only with letters of the pool. Letters may be reused any number of
// times. It returns "" when no word qualifies.
func FindLongest(words []string, pool LetterPool) string {
	allowed := pool.alphabet()
	best := ""
	bestLen := 0
	for _, w := range words {
		if len(w) <= bestLen {
			continue
		}
		if spelledFrom(w, allowed) {
			best = w
			bestLen = len(w)
		}
	}
	return best
}

// spelledFrom reports whether every byte of w is an allowed A-Z letter.
func spelledFrom(w string, allowed [26]bool) bool {
	for i := 0; i < len(w); i++ {
		c := w[i]
		if c < 'A' || c > 'Z' || !allowed[c-'A'] {
			return false
		}
	}
	return true
}
