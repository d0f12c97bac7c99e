// Package tone segments Thai words into syllables and classifies the tone of
// each syllable from its consonant class, vowel length, final consonant and
// tone mark.
//
// Everything in this package is a pure function of its input: the character
// tables are built once and never mutated, so an Analyzer may be shared by any
// number of goroutines without synchronisation.
package tone

import "strings"

// Tone is the tone label assigned to a syllable, or the word-level
// MultiSyllable label.
type Tone string

// Tone labels.
const (
	Mid           Tone = "Mid"
	Low           Tone = "Low"
	Falling       Tone = "Falling"
	High          Tone = "High"
	Rising        Tone = "Rising"
	Unknown       Tone = "Unknown"
	MultiSyllable Tone = "Multi-syllable"
)

// ConsonantClass is the tone class of an initial consonant.
type ConsonantClass int

// Consonant classes.
const (
	ClassNone ConsonantClass = iota
	ClassMid
	ClassHigh
	ClassLow
)

func (c ConsonantClass) String() string {
	switch c {
	case ClassMid:
		return "mid"
	case ClassHigh:
		return "high"
	case ClassLow:
		return "low"
	case ClassNone:
		return "none"
	default:
		return "none"
	}
}

// Length is the length of a vowel.
type Length int

// Vowel lengths.
const (
	Short Length = iota
	Long
)

func (l Length) String() string {
	if l == Long {
		return "long"
	}

	return "short"
}

// VowelKind tells how a vowel was recognised.
type VowelKind int

// Vowel kinds.
const (
	KindSimple VowelKind = iota
	KindComplex
	KindImplied
	KindSanskrit
	KindWAsVowel
)

func (k VowelKind) String() string {
	switch k {
	case KindComplex:
		return "complex"
	case KindImplied:
		return "implied"
	case KindSanskrit:
		return "sanskrit"
	case KindWAsVowel:
		return "w-as-vowel"
	case KindSimple:
		return "simple"
	default:
		return "simple"
	}
}

// Position is where a vowel symbol is written relative to its consonant. It
// only feeds explanation text.
type Position int

// Vowel positions.
const (
	PositionAfter Position = iota
	PositionBefore
	PositionAbove
	PositionBelow
	PositionSplit
)

func (p Position) String() string {
	switch p {
	case PositionBefore:
		return "before"
	case PositionAbove:
		return "above"
	case PositionBelow:
		return "below"
	case PositionSplit:
		return "around"
	case PositionAfter:
		return "after"
	default:
		return "after"
	}
}

// Liveness is the live/dead state of a syllable.
type Liveness int

// Syllable liveness.
const (
	Live Liveness = iota
	Dead
)

func (l Liveness) String() string {
	if l == Dead {
		return "dead"
	}

	return "live"
}

// VowelDescriptor describes one vowel pattern. Coda marks vowels that carry
// their own sonorant ending (ำ, ไ, ใ) and therefore keep an open syllable live.
type VowelDescriptor struct {
	Symbol      string
	Name        string
	Description string
	Length      Length
	Kind        VowelKind
	Position    Position
	Coda        bool
}

// VowelMatch is a VowelDescriptor found at a rune offset of a span. End is the
// offset just past the runes the vowel occupies.
type VowelMatch struct {
	VowelDescriptor

	Index int
	End   int
}

// Syllable is one classified span of a word.
type Syllable struct {
	Text        string
	Initial     rune
	Class       ConsonantClass
	Promoted    bool
	Vowels      []VowelMatch
	Final       rune
	Liveness    Liveness
	ToneMarks   []rune
	Tone        Tone
	Explanation []string
}

// ExplanationText joins the explanation trace into a single line.
func (s Syllable) ExplanationText() string {
	return strings.Join(s.Explanation, explanationSeparator)
}

// Analysis is the result of analyzing a word.
type Analysis struct {
	Word                string
	Syllables           []Syllable
	OverallTone         Tone
	CombinedExplanation string
}

// IsMultiSyllable reports whether the word was split into more than one
// syllable.
func (a Analysis) IsMultiSyllable() bool {
	return len(a.Syllables) > 1
}

const explanationSeparator = " | "
