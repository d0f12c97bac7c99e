package tone

import (
	"strings"
	"unicode"
)

// InitialKind tells how the initial consonant of a syllable was found.
type InitialKind int

// Initial consonant kinds.
const (
	InitialNone InitialKind = iota
	InitialSingle
	InitialCluster
	InitialZero
	InitialHoHip
	InitialSilentO
	InitialImplicitO
)

// Initial is the resolved onset of a syllable. End is the rune offset just past
// the onset in the analysis form of the span (tone marks and silenced letters
// removed).
type Initial struct {
	Consonant rune
	End       int
	Kind      InitialKind
}

// ResolveInitial finds the consonant whose class drives the tone of span.
func ResolveInitial(span string) Initial {
	if _, ok := silentOWords[strings.TrimSpace(span)]; ok {
		return Initial{Consonant: oAng, End: 2, Kind: InitialSilentO}
	}

	return resolveInitial(analysisRunes(span))
}

func resolveInitial(runes []rune) Initial {
	if len(runes) == 0 {
		return Initial{Consonant: 0, End: 0, Kind: InitialNone}
	}

	first := runes[0]

	if isPrefixVowel(first) {
		switch onsetLength(runes, 1) {
		case 2:
			return pairInitial(runes[1], runes[2], 3)
		case 1:
			kind := InitialSingle
			if runes[1] == oAng {
				kind = InitialZero
			}

			return Initial{Consonant: runes[1], End: 2, Kind: kind}
		default:
			return Initial{Consonant: oAng, End: 1, Kind: InitialImplicitO}
		}
	}

	if first == oAng {
		return Initial{Consonant: oAng, End: 1, Kind: InitialZero}
	}

	if onsetLength(runes, 0) == 2 {
		return pairInitial(runes[0], runes[1], 2)
	}

	if isConsonant(first) || isSanskritVowel(first) {
		return Initial{Consonant: first, End: 1, Kind: InitialSingle}
	}

	return Initial{Consonant: first, End: 1, Kind: InitialNone}
}

// pairInitial resolves a two-consonant onset. A ห-led sonorant takes the
// sonorant as its sound; a cluster keeps its first consonant.
func pairInitial(first, second rune, end int) Initial {
	if isHoHipPair(first, second) {
		return Initial{Consonant: second, End: end, Kind: InitialHoHip}
	}

	return Initial{Consonant: first, End: end, Kind: InitialCluster}
}

// analysisRunes returns the letters of span that take part in classification:
// whitespace and tone marks are dropped, and a letter silenced by thanthakhat
// is dropped together with the mark.
func analysisRunes(span string) []rune {
	source := []rune(span)
	runes := make([]rune, 0, len(source))

	for i, r := range source {
		if unicode.IsSpace(r) || isToneMark(r) {
			continue
		}

		if i+1 < len(source) && source[i+1] == thanthakhat {
			continue
		}

		if r == thanthakhat {
			continue
		}

		runes = append(runes, r)
	}

	return runes
}

// toneMarksOf returns the tone marks of span in written order.
func toneMarksOf(span string) []rune {
	var marks []rune

	for _, r := range span {
		if isToneMark(r) {
			marks = append(marks, r)
		}
	}

	return marks
}
