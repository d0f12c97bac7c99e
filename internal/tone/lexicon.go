package tone

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

//go:embed lexicon.toml
var defaultLexiconTOML []byte

var (
	// ErrLexiconEmptyWord indicates an entry with an empty key.
	ErrLexiconEmptyWord = errors.New("lexicon word cannot be empty")
	// ErrLexiconNoSyllables indicates an entry without syllables.
	ErrLexiconNoSyllables = errors.New("lexicon entry has no syllables")
	// ErrLexiconEmptySyllable indicates an entry containing an empty syllable.
	ErrLexiconEmptySyllable = errors.New("lexicon entry contains an empty syllable")
	// ErrLexiconEntryMismatch indicates syllables that do not spell their word.
	ErrLexiconEntryMismatch = errors.New("lexicon syllables do not concatenate to the word")
)

// Lexicon maps irregular words to their syllable boundaries. A Lexicon is not
// modified after it has been built, so it is safe for concurrent use.
type Lexicon struct {
	entries map[string][]string
}

type lexiconFile struct {
	Words map[string][]string `toml:"words"`
}

// ParseLexicon decodes a TOML lexicon document and validates every entry.
func ParseLexicon(data []byte) (*Lexicon, error) {
	var file lexiconFile

	err := toml.Unmarshal(data, &file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode lexicon: %w", err)
	}

	lexicon := &Lexicon{entries: make(map[string][]string, len(file.Words))}

	for word, syllables := range file.Words {
		err = lexicon.add(word, syllables)
		if err != nil {
			return nil, err
		}
	}

	return lexicon, nil
}

// LoadLexiconFile reads and parses a TOML lexicon from path.
func LoadLexiconFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon file '%s': %w", path, err)
	}

	lexicon, err := ParseLexicon(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse lexicon file '%s': %w", path, err)
	}

	return lexicon, nil
}

var defaultLexicon = sync.OnceValues(func() (*Lexicon, error) {
	return ParseLexicon(defaultLexiconTOML)
})

// DefaultLexicon returns the lexicon compiled into the binary.
func DefaultLexicon() (*Lexicon, error) {
	lexicon, err := defaultLexicon()
	if err != nil {
		return nil, fmt.Errorf("failed to load built-in lexicon: %w", err)
	}

	return lexicon, nil
}

func (l *Lexicon) add(word string, syllables []string) error {
	if word == "" {
		return ErrLexiconEmptyWord
	}

	if len(syllables) == 0 {
		return fmt.Errorf("%w: '%s'", ErrLexiconNoSyllables, word)
	}

	if slices.Contains(syllables, "") {
		return fmt.Errorf("%w: '%s'", ErrLexiconEmptySyllable, word)
	}

	if joined := strings.Join(syllables, ""); joined != word {
		return fmt.Errorf("%w: '%s' != '%s'", ErrLexiconEntryMismatch, joined, word)
	}

	l.entries[word] = slices.Clone(syllables)

	return nil
}

// Lookup returns the syllables registered for word. A nil Lexicon has no
// entries.
func (l *Lexicon) Lookup(word string) ([]string, bool) {
	if l == nil {
		return nil, false
	}

	syllables, ok := l.entries[word]
	if !ok {
		return nil, false
	}

	return slices.Clone(syllables), true
}

// Merge returns a new Lexicon holding the entries of l overridden by those of
// other. Neither input is modified.
func (l *Lexicon) Merge(other *Lexicon) *Lexicon {
	merged := &Lexicon{entries: make(map[string][]string, l.Len()+other.Len())}

	for _, source := range []*Lexicon{l, other} {
		if source == nil {
			continue
		}

		for word, syllables := range source.entries {
			merged.entries[word] = syllables
		}
	}

	return merged
}

// Len returns the number of entries.
func (l *Lexicon) Len() int {
	if l == nil {
		return 0
	}

	return len(l.entries)
}

// Words returns the registered words in sorted order.
func (l *Lexicon) Words() []string {
	if l == nil {
		return nil
	}

	words := make([]string, 0, len(l.entries))
	for word := range l.entries {
		words = append(words, word)
	}

	slices.Sort(words)

	return words
}
