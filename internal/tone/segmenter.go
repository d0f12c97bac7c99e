package tone

// Segmenter splits a cleaned word into syllable spans. It consults its
// exception lexicon first and falls back to a left-to-right scanner.
type Segmenter struct {
	lexicon *Lexicon
}

// NewSegmenter returns a Segmenter backed by lexicon. A nil lexicon means the
// scanner alone decides.
func NewSegmenter(lexicon *Lexicon) *Segmenter {
	return &Segmenter{lexicon: lexicon}
}

// Segment returns the syllable spans of word and whether they came from the
// lexicon. Concatenating the spans always gives back word.
func (s *Segmenter) Segment(word string) ([]string, bool) {
	if word == "" {
		return nil, false
	}

	if syllables, ok := s.lexicon.Lookup(word); ok {
		return syllables, true
	}

	runes := []rune(word)
	if isConsonantOConsonant(runes) {
		return []string{word}, false
	}

	return scanWord(runes), false
}

// isConsonantOConsonant matches three-letter words such as คอก where the
// middle อ is the vowel.
func isConsonantOConsonant(runes []rune) bool {
	return len(runes) == 3 && runes[1] == oAng && isConsonant(runes[0]) && isConsonant(runes[2])
}

func scanWord(runes []rune) []string {
	var spans []string

	for start := 0; start < len(runes); {
		end := syllableEnd(runes, start)
		if end <= start {
			end = start + 1
		}

		span := runes[start:end]

		switch {
		case !hasLetter(span) && len(spans) > 0:
			spans[len(spans)-1] += string(span)
		case isThreeConsonantSpan(span):
			spans = append(spans, string(span[:1]), string(span[1:]))
		default:
			spans = append(spans, string(span))
		}

		start = end
	}

	return spans
}

func hasLetter(span []rune) bool {
	for _, r := range span {
		if isConsonant(r) || isVowelSymbol(r) || isSanskritVowel(r) {
			return true
		}
	}

	return false
}

// isThreeConsonantSpan reports spans read with two implied vowels, which are
// split after their first consonant.
func isThreeConsonantSpan(span []rune) bool {
	vowels := identifyVowels(analysisRunes(string(span)))

	return len(vowels) == 2 && vowels[0].Kind == KindImplied && vowels[1].Kind == KindImplied
}

// syllableEnd walks from start and returns the index where the syllable that
// begins there ends.
func syllableEnd(runes []rune, start int) int {
	n := len(runes)
	i := start

	for i < n {
		if match, ok := matchComplexAt(runes, i, i == start); ok {
			i = match.End

			continue
		}

		c := runes[i]

		switch {
		case isSanskritVowel(c):
			i++
			if i < n && runes[i] == lakkhangyao {
				i++
			}

		case i == start && isPrefixVowel(c):
			i++
			i += onsetLength(runes, i)

			if i < n && isPrefixVowel(runes[i]) {
				return i
			}

		case i == start && isConsonant(c):
			i += onsetLength(runes, i)

		case isPrefixVowel(c):
			return i

		case isToneMark(c):
			i++
			if i+1 < n && isConsonant(runes[i]) && startsVowel(runes, i+1) {
				return i
			}

		case c == thanthakhat:
			i++

		case isFollowingVowel(c):
			i++

		case c == woWaen && i+1 < n && isConsonant(runes[i+1]) && !startsVowel(runes, i+2):
			i += 2

		case isOVowel(runes, i):
			prev := previousLetter(runes, start, i)
			if prev >= 0 && isConsonant(runes[prev]) && i+1 < n && isConsonant(runes[i+1]) &&
				!startsVowel(runes, i+2) {
				i += 2
			} else {
				i++
			}

		case isConsonant(c):
			return consonantEnd(runes, i)

		default:
			return i
		}
	}

	return i
}

// consonantEnd decides where a syllable ends when the scan reaches a
// consonant that is not its onset.
func consonantEnd(runes []rune, i int) int {
	if !hasVowelAfter(runes, i+1) {
		for i < len(runes) && (isConsonant(runes[i]) || isToneMark(runes[i]) || runes[i] == thanthakhat) {
			i++
		}

		return i
	}

	if startsVowel(runes, i+1) {
		return i
	}

	i++
	if i < len(runes) && runes[i] == thanthakhat {
		i++
	}

	return i
}

// startsVowel reports whether the first non-mark rune at or after j is a vowel
// written after its consonant, or an อ read as "o".
func startsVowel(runes []rune, j int) bool {
	k := skipMarks(runes, j)
	if k >= len(runes) {
		return false
	}

	r := runes[k]

	return isFollowingVowel(r) || isSanskritVowel(r) || (r == oAng && isOVowel(runes, k))
}

func hasVowelAfter(runes []rune, from int) bool {
	for k := from; k < len(runes); k++ {
		r := runes[k]
		if isVowelSymbol(r) || isSanskritVowel(r) || (r == oAng && isOVowel(runes, k)) {
			return true
		}
	}

	return false
}

func previousLetter(runes []rune, start, i int) int {
	for k := i - 1; k >= start; k-- {
		if !isToneMark(runes[k]) {
			return k
		}
	}

	return -1
}
