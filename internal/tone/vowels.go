package tone

// complexVowel is a vowel written around its onset: an optional lead symbol
// before the onset and a tail written after it. Tone marks may sit anywhere
// between the onset and the tail symbols.
type complexVowel struct {
	lead rune
	tail []rune
	desc VowelDescriptor
}

func newComplex(key string, lead rune, tail string, length Length, name, description string) complexVowel {
	position := PositionSplit
	if lead == 0 {
		position = PositionAbove
	}

	return complexVowel{
		lead: lead,
		tail: []rune(tail),
		desc: VowelDescriptor{
			Symbol:      key,
			Name:        name,
			Description: description,
			Length:      length,
			Kind:        KindComplex,
			Position:    position,
			Coda:        false,
		},
	}
}

// complexVowels is tried in order and the first match wins. Longer patterns
// precede the shorter patterns they contain: เ_ือะ before เ_ือ, เ_าะ before
// เ_า, เ_อะ before เ_อ, ัวะ before ัว, and เ_ือ before ือ.
var complexVowels = []complexVowel{
	newComplex("เ_็", 'เ', "็", Short, "e (short e)", "short e sound with mai taikhu"),
	newComplex("แ_็", 'แ', "็", Short, "ae (short ae)", "short ae sound with mai taikhu"),
	newComplex("เ_ือะ", 'เ', "ือะ", Short, "uea (short uea)", "short uea sound"),
	newComplex("เ_ียะ", 'เ', "ียะ", Short, "ia (short ia)", "short ia sound"),
	newComplex("เ_ือ", 'เ', "ือ", Long, "uea (long uea)", "long uea sound"),
	newComplex("เ_ีย", 'เ', "ีย", Long, "ia (long ia)", "long ia sound"),
	newComplex("เ_าะ", 'เ', "าะ", Short, "o (short open o)", "short open o sound"),
	newComplex("เ_อะ", 'เ', "อะ", Short, "oe (short oe)", "short oe sound"),
	newComplex("เ_ะ", 'เ', "ะ", Short, "e (short e)", "short e sound"),
	newComplex("แ_ะ", 'แ', "ะ", Short, "ae (short ae)", "short ae sound"),
	newComplex("โ_ะ", 'โ', "ะ", Short, "o (short o)", "short o sound"),
	newComplex("เ_า", 'เ', "า", Long, "ao (long ao)", "long ao sound"),
	newComplex("เ_อ", 'เ', "อ", Long, "oe (long oe)", "long oe sound"),
	newComplex("เ_ิ", 'เ', "ิ", Long, "oe (long oe)", "long oe sound before a final"),
	newComplex("เ_ย", 'เ', "ย", Long, "oei (long oei)", "long oe closed by y"),
	newComplex("ไ_", 'ไ', "", Long, "ai (long ai)", "long ai sound"),
	newComplex("ใ_", 'ใ', "", Long, "ai (long ai)", "long ai sound"),
	newComplex("ัวะ", 0, "ัวะ", Short, "ua (short ua)", "short ua sound"),
	newComplex("ัว", 0, "ัว", Long, "ua (long ua)", "long ua sound"),
	newComplex("ือ", 0, "ือ", Long, "ue (long ue)", "long ue sound"),
}

// matchAt reports whether the pattern starts at index p and returns the index
// just past it.
func (cv complexVowel) matchAt(runes []rune, p int) (int, bool) {
	if cv.lead == 0 {
		return cv.matchTail(runes, p)
	}

	if p >= len(runes) || runes[p] != cv.lead {
		return 0, false
	}

	// Prefer a two-consonant onset, fall back to one.
	for onset := onsetLength(runes, p+1); onset > 0; onset-- {
		end, ok := cv.matchTail(runes, skipMarks(runes, p+1+onset))
		if ok {
			return end, true
		}
	}

	return 0, false
}

func (cv complexVowel) matchTail(runes []rune, j int) (int, bool) {
	for i, want := range cv.tail {
		if i > 0 {
			j = skipMarks(runes, j)
		}

		if j >= len(runes) || runes[j] != want {
			return 0, false
		}

		j++
	}

	return j, true
}

// matchComplexAt tries every complex vowel at index p. Patterns with a lead
// symbol are only tried when leadAllowed is set.
func matchComplexAt(runes []rune, p int, leadAllowed bool) (VowelMatch, bool) {
	for _, cv := range complexVowels {
		if cv.lead != 0 && !leadAllowed {
			continue
		}

		end, ok := cv.matchAt(runes, p)
		if ok {
			return VowelMatch{VowelDescriptor: cv.desc, Index: p, End: end}, true
		}
	}

	return VowelMatch{}, false
}

// findComplex returns the first complex vowel, in declaration order, that
// occurs anywhere in runes.
func findComplex(runes []rune) (VowelMatch, bool) {
	for _, cv := range complexVowels {
		for p := range runes {
			end, ok := cv.matchAt(runes, p)
			if ok {
				return VowelMatch{VowelDescriptor: cv.desc, Index: p, End: end}, true
			}
		}
	}

	return VowelMatch{}, false
}

// IdentifyVowels returns the vowel pattern of a syllable-sized span. Rules are
// applied in precedence order and the first one that applies decides:
// ว read as "ua", Sanskrit vowels, complex vowels, อ read as "o", implied
// vowels, then the simple vowel table.
func IdentifyVowels(span string) []VowelMatch {
	return identifyVowels(analysisRunes(span))
}

func identifyVowels(runes []rune) []VowelMatch {
	if len(runes) == 0 {
		return nil
	}

	if match, ok := findWAsVowel(runes); ok {
		return []VowelMatch{match}
	}

	if match, ok := findSanskrit(runes); ok {
		return []VowelMatch{match}
	}

	if match, ok := findComplex(runes); ok {
		return []VowelMatch{match}
	}

	for i := 1; i < len(runes); i++ {
		if isOVowel(runes, i) && !isPrefixVowel(runes[i-1]) {
			return []VowelMatch{{VowelDescriptor: oAsVowel, Index: i, End: i + 1}}
		}
	}

	if matches := impliedVowels(runes); matches != nil {
		return matches
	}

	return scanSimpleVowels(runes)
}

func findWAsVowel(runes []rune) (VowelMatch, bool) {
	for i := 1; i+1 < len(runes); i++ {
		if runes[i] == woWaen && isConsonant(runes[i-1]) && isConsonant(runes[i+1]) {
			return VowelMatch{VowelDescriptor: wAsVowel, Index: i, End: i + 1}, true
		}
	}

	return VowelMatch{}, false
}

func findSanskrit(runes []rune) (VowelMatch, bool) {
	for i, r := range runes {
		desc, ok := sanskritVowels[r]
		if !ok {
			continue
		}

		end := i + 1
		if end < len(runes) && runes[end] == lakkhangyao {
			desc.Symbol += string(lakkhangyao)
			end++
		}

		return VowelMatch{VowelDescriptor: desc, Index: i, End: end}, true
	}

	return VowelMatch{}, false
}

// impliedVowels handles spans made of consonants only. One consonant carries
// a short "a", two carry a short "o" between them, three read as a short "a"
// after the first followed by a short "o".
func impliedVowels(runes []rune) []VowelMatch {
	for _, r := range runes {
		if !isConsonant(r) {
			return nil
		}
	}

	switch len(runes) {
	case 1:
		return []VowelMatch{{VowelDescriptor: impliedShortA, Index: 1, End: 1}}
	case 2:
		return []VowelMatch{{VowelDescriptor: impliedShortO, Index: 1, End: 1}}
	case 3:
		return []VowelMatch{
			{VowelDescriptor: impliedShortA, Index: 1, End: 1},
			{VowelDescriptor: impliedShortO, Index: 2, End: 2},
		}
	default:
		return nil
	}
}

// scanSimpleVowels looks for single-symbol vowels after the onset, then checks
// a leading vowel symbol written before the onset.
func scanSimpleVowels(runes []rune) []VowelMatch {
	onset := resolveInitial(runes)

	var matches []VowelMatch

	for i := onset.End; i < len(runes); i++ {
		desc, ok := simpleVowels[runes[i]]
		if ok && !isPrefixVowel(runes[i]) {
			matches = append(matches, VowelMatch{VowelDescriptor: desc, Index: i, End: i + 1})
		}
	}

	if desc, ok := simpleVowels[runes[0]]; ok && isPrefixVowel(runes[0]) {
		matches = append(matches, VowelMatch{VowelDescriptor: desc, Index: 0, End: 1})
	}

	return matches
}
