package game

import (
	"errors"
	"fmt"
	"unicode"
)

// PoolSize is the number of letters chosen for a round.
const PoolSize = 10

var (
	ErrPoolFull      = errors.New("letter pool is full")
	ErrInvalidLetter = errors.New("not a letter")
)

// LetterPool is the ordered set of letters available in a round. Letters
// may repeat. Once PoolSize letters are held the pool is frozen.
type LetterPool struct {
	letters []rune
}

// NewLetterPool builds a pool from s, e.g. "AEIOUBCDFG".
func NewLetterPool(s string) (LetterPool, error) {
	var p LetterPool
	for _, r := range s {
		if err := p.Append(r); err != nil {
			return LetterPool{}, err
		}
	}
	return p, nil
}

// Append adds r (uppercased) to the pool.
func (p *LetterPool) Append(r rune) error {
	if p.Full() {
		return ErrPoolFull
	}
	r = unicode.ToUpper(r)
	if r < 'A' || r > 'Z' {
		return fmt.Errorf("append %q: %w", r, ErrInvalidLetter)
	}
	p.letters = append(p.letters, r)
	return nil
}

func (p LetterPool) Len() int {
	return len(p.letters)
}

func (p LetterPool) Full() bool {
	return len(p.letters) >= PoolSize
}

// Letters returns a copy of the pool in draw order.
func (p LetterPool) Letters() []rune {
	out := make([]rune, len(p.letters))
	copy(out, p.letters)
	return out
}

func (p LetterPool) String() string {
	return string(p.letters)
}

// Allows reports whether r, case-insensitively, is one of the pool letters.
func (p LetterPool) Allows(r rune) bool {
	r = unicode.ToUpper(r)
	for _, l := range p.letters {
		if l == r {
			return true
		}
	}
	return false
}

// alphabet returns the pool as a lookup table indexed by letter.
func (p LetterPool) alphabet() [26]bool {
	var set [26]bool
	for _, l := range p.letters {
		set[l-'A'] = true
	}
	return set
}

// CanSpell reports whether word uses only pool letters, reusing them
// freely. word must already be uppercase.
func (p LetterPool) CanSpell(word string) bool {
	return word != "" && spelledFrom(word, p.alphabet())
}
