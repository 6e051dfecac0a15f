package game

import "errors"

// MaxGuessedWords is the number of accepted words a round can hold.
const MaxGuessedWords = 64

var (
	ErrGuessedWordsFull = errors.New("guessed words list is full")
	ErrAlreadyGuessed   = errors.New("word already guessed")
)

// GuessedWords keeps the accepted words of a round in insertion order,
// without duplicates and up to a fixed capacity.
type GuessedWords struct {
	words []string
	seen  map[string]struct{}
	limit int
}

func NewGuessedWords(limit int) *GuessedWords {
	if limit < 1 {
		limit = MaxGuessedWords
	}
	return &GuessedWords{
		words: make([]string, 0, limit),
		seen:  make(map[string]struct{}, limit),
		limit: limit,
	}
}

func (g *GuessedWords) Contains(word string) bool {
	_, ok := g.seen[word]
	return ok
}

// Add appends word. Duplicates and overflow are reported, never dropped.
func (g *GuessedWords) Add(word string) error {
	if g.Contains(word) {
		return ErrAlreadyGuessed
	}
	if len(g.words) >= g.limit {
		return ErrGuessedWordsFull
	}
	g.words = append(g.words, word)
	g.seen[word] = struct{}{}
	return nil
}

func (g *GuessedWords) Len() int {
	return len(g.words)
}

func (g *GuessedWords) Words() []string {
	out := make([]string, len(g.words))
	copy(out, g.words)
	return out
}
