// Package dictionary loads the word lists a game is validated against.
//
// Word lists are plain text, one word per line. Lines are trimmed and
// uppercased; blank lines are skipped. A line longer than MaxWordLen ends
// the file it appears in. At most MaxWords words are kept across every
// source; later words are dropped.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

const (
	MaxWords   = 130000
	MaxWordLen = 24
)

var ErrSourceUnreadable = errors.New("word list unreadable")

// Dictionary is an ordered, immutable word list with constant-time lookup.
// Duplicates across sources stay in the ordered list.
type Dictionary struct {
	words []string
	index map[string]struct{}
}

// Source is a named word list.
type Source struct {
	Name string
	R    io.Reader
}

// Load reads every file in paths, in order. Any unreadable file fails the
// whole load.
func Load(logger *zap.Logger, paths ...string) (*Dictionary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := newBuilder()
	for _, path := range paths {
		logger.Info("loading word list", zap.String("path", path))
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnreadable, path, err)
		}
		added, err := b.read(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnreadable, path, err)
		}
		logger.Info("word list loaded", zap.String("path", path), zap.Int("words", added))
	}
	return b.build(), nil
}

// LoadReaders builds a dictionary from in-memory sources with the same
// rules as Load.
func LoadReaders(sources ...Source) (*Dictionary, error) {
	b := newBuilder()
	for _, src := range sources {
		if _, err := b.read(src.R); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnreadable, src.Name, err)
		}
	}
	return b.build(), nil
}

// FromWords builds a dictionary from words, applying the same rules.
func FromWords(words ...string) *Dictionary {
	d, _ := LoadReaders(Source{Name: "inline", R: strings.NewReader(strings.Join(words, "\n"))})
	return d
}

// Contains reports whether word, uppercased, is in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.index[strings.ToUpper(word)]
	return ok
}

// Words returns the words in load order. The slice must not be modified.
func (d *Dictionary) Words() []string {
	return d.words
}

func (d *Dictionary) Len() int {
	return len(d.words)
}

type builder struct {
	words []string
	index map[string]struct{}
}

func newBuilder() *builder {
	return &builder{index: make(map[string]struct{})}
}

// read consumes r line by line and returns how many words it kept.
func (b *builder) read(r io.Reader) (int, error) {
	added := 0
	sc := bufio.NewScanner(r)
	for len(b.words) < MaxWords && sc.Scan() {
		w := strings.ToUpper(strings.TrimSpace(sc.Text()))
		if w == "" {
			continue
		}
		if utf8.RuneCountInString(w) > MaxWordLen {
			break
		}
		b.words = append(b.words, w)
		b.index[w] = struct{}{}
		added++
	}
	if err := sc.Err(); err != nil && !errors.Is(err, bufio.ErrTooLong) {
		return added, err
	}
	return added, nil
}

func (b *builder) build() *Dictionary {
	return &Dictionary{words: b.words, index: b.index}
}
