package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"time"
)

const (
	Vowels     = "AEIOU"
	Consonants = "BCDFGHLMNPQRSTVZ"
)

// LetterSource supplies the letters appended to the pool while the player
// is choosing them.
type LetterSource interface {
	DrawVowel() rune
	DrawConsonant() rune
}

// Drawer picks vowels and consonants uniformly from the fixed alphabets.
type Drawer struct {
	rng *rand.Rand
}

// NewDrawer returns a Drawer seeded with seed. A zero seed uses the clock.
func NewDrawer(seed int64) *Drawer {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Drawer{rng: seededRNG(seed)}
}

func (d *Drawer) DrawVowel() rune {
	return rune(Vowels[d.rng.IntN(len(Vowels))])
}

func (d *Drawer) DrawConsonant() rune {
	return rune(Consonants[d.rng.IntN(len(Consonants))])
}

func seededRNG(seed int64) *rand.Rand {
	// Letter draws only need to look random to the player.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}
