package tone

import (
	"fmt"
	"strings"
)

var markTones = map[ToneRule]map[ConsonantClass]Tone{
	RuleMaiEk:       {ClassMid: Low, ClassHigh: Low, ClassLow: Falling},
	RuleMaiTho:      {ClassMid: Falling, ClassHigh: Falling, ClassLow: High},
	RuleMaiTri:      {ClassMid: High, ClassHigh: High, ClassLow: High},
	RuleMaiChattawa: {ClassMid: Rising, ClassHigh: Rising, ClassLow: Rising},
}

var liveTones = map[ConsonantClass]Tone{
	ClassMid:  Mid,
	ClassHigh: Rising,
	ClassLow:  Mid,
}

var deadTones = map[ConsonantClass]Tone{
	ClassMid:  Low,
	ClassHigh: Low,
}

// watPattern is a syllable read with a low tone although its letters alone
// would give a high one: the ว borrows the class of a preceding ส.
const watPattern = "วัส"

// Classify determines the tone of a single syllable span and records the
// reasoning as an explanation trace. It never fails: spans it cannot read get
// the Unknown tone with a message saying why.
func Classify(span string) Syllable {
	syllable := Syllable{Text: span, Tone: Unknown}

	runes := analysisRunes(span)
	if len(runes) == 0 {
		syllable.Explanation = []string{"Empty syllable"}

		return syllable
	}

	initial := ResolveInitial(span)
	syllable.Initial = initial.Consonant

	class, ok := ClassOf(initial.Consonant)
	if !ok || initial.Kind == InitialNone {
		syllable.Explanation = []string{unrecognizedMessage(initial.Consonant)}

		return syllable
	}

	if initial.Kind == InitialHoHip && class == ClassLow {
		class = ClassHigh
		syllable.Promoted = true
	}

	syllable.Class = class
	syllable.ToneMarks = toneMarksOf(span)
	syllable.Vowels = identifyVowels(runes)

	final, liveness, reason := determineLiveness(runes, initial, syllable.Vowels)
	syllable.Final = final
	syllable.Liveness = liveness

	syllable.Explanation = append(syllable.Explanation,
		initialLine(runes, initial, class),
		"Vowel: "+describeVowels(syllable.Vowels),
		fmt.Sprintf("Syllable type: %s (%s)", liveness, reason),
	)

	if len(syllable.ToneMarks) > 0 {
		syllable.Explanation = append(syllable.Explanation,
			"Tone marks found: "+joinRunes(syllable.ToneMarks, ", "))
	}

	tone, rule := applyRules(runes, syllable)
	syllable.Tone = tone
	syllable.Explanation = append(syllable.Explanation, rule)

	return syllable
}

func unrecognizedMessage(r rune) string {
	if obsolete, ok := obsoleteConsonants[r]; ok {
		return fmt.Sprintf(
			"'%c' (%s) is an obsolete Thai consonant that has been replaced by '%c' (%s) in modern Thai.",
			r, obsolete.name, obsolete.replacement, obsolete.replName,
		)
	}

	if r == 0 {
		return "Could not find a consonant in the syllable."
	}

	return fmt.Sprintf("'%c' is not a recognized Thai consonant.", r)
}

// applyRules picks the tone. A tone mark overrides everything, then the two
// fixed low-tone patterns, then the class and liveness table.
func applyRules(runes []rune, syllable Syllable) (Tone, string) {
	class := syllable.Class
	label := classLabel(class)

	if len(syllable.ToneMarks) > 0 {
		mark := syllable.ToneMarks[0]
		rule := toneMarks[mark]
		tone := markTones[rule][class]

		if rule == RuleMaiTri || rule == RuleMaiChattawa {
			return tone, fmt.Sprintf("Rule: Any consonant + %s (%c) = %s tone", rule, mark, tone)
		}

		return tone, fmt.Sprintf("Rule: %s consonant + %s (%c) = %s tone", label, rule, mark, tone)
	}

	if len(runes) == 1 && len(syllable.Vowels) == 1 && syllable.Vowels[0].Kind == KindImplied {
		return Low, "Rule: Single consonant with implied vowel = Low tone"
	}

	if string(runes) == watPattern {
		return Low, "Rule: วัส pattern (ว + ั + ส with implied vowel) = Low tone"
	}

	if syllable.Liveness == Live {
		tone := liveTones[class]

		return tone, fmt.Sprintf(
			"Rule: %s consonant + live syllable (long vowel/sonorant ending, no tone mark) = %s tone", label, tone)
	}

	if class != ClassLow {
		tone := deadTones[class]

		return tone, fmt.Sprintf(
			"Rule: %s consonant + dead syllable (short vowel/stop ending, no tone mark) = %s tone", label, tone)
	}

	if vowelLength(syllable.Vowels) == Short {
		return High, "Rule: Low-class consonant + dead syllable (short vowel, no tone mark) = High tone"
	}

	return Falling, "Rule: Low-class consonant + dead syllable (long vowel, no tone mark) = Falling tone"
}

func classLabel(class ConsonantClass) string {
	name := class.String()

	return strings.ToUpper(name[:1]) + name[1:] + "-class"
}

// vowelLength is the length of the first vowel found. Without a vowel the
// syllable counts as long.
func vowelLength(vowels []VowelMatch) Length {
	if len(vowels) == 0 {
		return Long
	}

	return vowels[0].Length
}

// determineLiveness decides whether a syllable is live or dead. A final
// consonant decides by itself; an open syllable is live when its vowel is long
// or carries its own sonorant ending.
func determineLiveness(runes []rune, initial Initial, vowels []VowelMatch) (rune, Liveness, string) {
	if final, ok := finalConsonant(runes, initial, vowels); ok {
		if isSonorantFinal(final) {
			return final, Live, fmt.Sprintf("ends in sonorant '%c'", final)
		}

		return final, Dead, fmt.Sprintf("ends in stop consonant '%c'", final)
	}

	if len(vowels) > 0 {
		for _, vowel := range vowels {
			if vowel.Coda {
				return 0, Live, "vowel closed by its own sonorant"
			}
		}

		if vowels[0].Length == Long {
			return 0, Live, "open syllable with long vowel"
		}

		return 0, Dead, "open syllable with short vowel"
	}

	last := runes[len(runes)-1]

	switch {
	case isSonorantFinal(last):
		return last, Live, fmt.Sprintf("ends in sonorant '%c'", last)
	case isConsonant(last):
		return last, Dead, fmt.Sprintf("ends in stop consonant '%c'", last)
	default:
		return 0, Live, "no vowel identified"
	}
}

// finalConsonant returns the consonant closing the syllable, if any. The last
// letter is not a final when it belongs to the onset or to a written vowel.
func finalConsonant(runes []rune, initial Initial, vowels []VowelMatch) (rune, bool) {
	last := len(runes) - 1
	if last < initial.End || !isConsonant(runes[last]) {
		return 0, false
	}

	for _, vowel := range vowels {
		if vowel.Kind != KindImplied && last >= vowel.Index && last < vowel.End {
			return 0, false
		}
	}

	return runes[last], true
}

func initialLine(runes []rune, initial Initial, class ConsonantClass) string {
	consonant := initial.Consonant

	switch initial.Kind {
	case InitialHoHip:
		if class == ClassHigh {
			return fmt.Sprintf(
				"Initial consonant: '%c' (Class: low, but ห leading consonant makes it high-class for tone rules)",
				consonant)
		}
	case InitialCluster:
		return fmt.Sprintf("Initial consonant: '%c' (Class: %s, first consonant of cluster '%s')",
			consonant, class, string(runes[initial.End-2:initial.End]))
	case InitialZero, InitialImplicitO:
		return fmt.Sprintf("Initial consonant: '%c' (Class: %s, silent carrier of the vowel)", consonant, class)
	case InitialSilentO:
		return fmt.Sprintf("Initial consonant: '%c' (Class: %s, silent อ leading ย)", consonant, class)
	case InitialNone, InitialSingle:
	}

	return fmt.Sprintf("Initial consonant: '%c' (Class: %s)", consonant, class)
}

func describeVowels(vowels []VowelMatch) string {
	if len(vowels) == 0 {
		return "no vowels identified"
	}

	if len(vowels) == 1 {
		vowel := vowels[0]

		switch vowel.Kind {
		case KindImplied:
			return fmt.Sprintf("implied vowel '%s' (%s) - %s", vowel.Symbol, vowel.Name, vowel.Description)
		case KindWAsVowel:
			return fmt.Sprintf("'%s' vowel sound (%s) - %s", vowel.Symbol, vowel.Name, vowel.Description)
		case KindSimple, KindComplex, KindSanskrit:
		}

		return fmt.Sprintf("vowel '%s' (%s) - %s (vowel positioned %s consonant)",
			vowel.Symbol, vowel.Name, vowel.Description, vowel.Position)
	}

	parts := make([]string, 0, len(vowels))

	for _, vowel := range vowels {
		if vowel.Kind == KindImplied {
			parts = append(parts, fmt.Sprintf("'%s' (%s, implied)", vowel.Symbol, vowel.Name))

			continue
		}

		parts = append(parts, fmt.Sprintf("'%s' (%s, %s)", vowel.Symbol, vowel.Name, vowel.Position))
	}

	return "vowels " + strings.Join(parts, ", ")
}

func joinRunes(runes []rune, sep string) string {
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}

	return strings.Join(parts, sep)
}
