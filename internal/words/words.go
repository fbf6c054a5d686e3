// internal/words/words.go
//
// Dictionary loading for the hint engine.
//
// Responsibilities:
//   - Read word lists from a file or fall back to the embedded default.
//   - Normalize entries (trim, lowercase) and keep only 5-letter a–z words.
//   - Provide an immutable, ordered Dictionary with fast membership checks.
//
// Word list format:
//   - One word per line; blank lines and lines starting with "#" are skipped.
//   - Duplicates are dropped, first occurrence wins (order is preserved).
//
// The embedded default is parsed once (sync.Once) and shared.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/robalobadob/wordle/apps/hint-server/assets"
)

// WordLen is the only word length the dictionary accepts.
const WordLen = 5

// ErrEmpty is returned when a word list yields no usable words.
var ErrEmpty = errors.New("words: dictionary is empty")

// Dictionary is an ordered, read-only list of lowercase 5-letter words.
type Dictionary struct {
	words []string
	set   map[string]struct{}
}

// New builds a Dictionary from raw entries, normalizing and de-duplicating them.
func New(list []string) (*Dictionary, error) {
	d := &Dictionary{set: make(map[string]struct{}, len(list))}
	for _, raw := range list {
		w := strings.ToLower(strings.TrimSpace(raw))
		if len(w) != WordLen || !isAlpha(w) {
			continue
		}
		if _, dup := d.set[w]; dup {
			continue
		}
		d.set[w] = struct{}{}
		d.words = append(d.words, w)
	}
	if len(d.words) == 0 {
		return nil, ErrEmpty
	}
	return d, nil
}

// Parse reads one word per line from r.
func Parse(r io.Reader) (*Dictionary, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		lines = append(lines, s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read: %w", err)
	}
	return New(lines)
}

// LoadFile parses the word list at path.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()
	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

var (
	defaultOnce sync.Once
	defaultDict *Dictionary
	defaultErr  error
)

// Default returns the embedded dictionary, parsing it on first use.
func Default() (*Dictionary, error) {
	defaultOnce.Do(func() {
		f, err := assets.Words()
		if err != nil {
			defaultErr = fmt.Errorf("words: embedded list: %w", err)
			return
		}
		defer f.Close()
		defaultDict, defaultErr = Parse(f)
	})
	return defaultDict, defaultErr
}

// Load reads path when it is set and falls back to the embedded default.
func Load(path string) (*Dictionary, error) {
	if path != "" {
		return LoadFile(path)
	}
	return Default()
}

// Words returns the words in dictionary order. Callers must not modify it.
func (d *Dictionary) Words() []string { return d.words }

// Len returns the number of words.
func (d *Dictionary) Len() int { return len(d.words) }

// Contains reports whether w (in any case) is in the dictionary.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.set[strings.ToLower(strings.TrimSpace(w))]
	return ok
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
