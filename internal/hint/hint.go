// Package hint suggests the dictionary word closest to a refused guess.
package hint

import (
	"github.com/agnivade/levenshtein"

	"github.com/appengine-ltd/paroliere/internal/game"
)

// minInput is the shortest guess worth a suggestion.
const minInput = 3

// Suggester looks up near misses in a word list.
type Suggester struct {
	words game.Lexicon
}

func New(words game.Lexicon) *Suggester {
	return &Suggester{words: words}
}

// Suggest returns the word spelled from the pool with the smallest edit
// distance to word, within a limit that grows with the candidate length.
// Ties keep the earliest word in list order. It returns "" when nothing
// is close enough.
func (s *Suggester) Suggest(word string, pool game.LetterPool) string {
	if s == nil || s.words == nil || len(word) < minInput {
		return ""
	}
	best := ""
	bestDist := -1
	for _, cand := range s.words.Words() {
		if cand == word || !lengthClose(len(word), len(cand)) {
			continue
		}
		if !pool.CanSpell(cand) {
			continue
		}
		dist := levenshtein.ComputeDistance(word, cand)
		if dist > levenshteinLimit(len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best = cand
			bestDist = dist
			if dist == 1 {
				break
			}
		}
	}
	return best
}

// lengthClose filters out candidates that cannot be within the largest
// limit before paying for a distance computation.
func lengthClose(a, b int) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= levenshteinLimit(b)
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
