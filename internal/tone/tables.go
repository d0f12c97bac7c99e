package tone

// Diacritics and letters with a role of their own.
const (
	maiEk       = '่'
	maiTho      = '้'
	maiTri      = '๊'
	maiChattawa = '๋'
	thanthakhat = '์'
	maiTaikhu   = '็'
	lakkhangyao = 'ๅ'
	nikhahit    = 'ํ'
	saraAm      = 'ำ'
	saraAa      = 'า'

	oAng    = 'อ'
	woWaen  = 'ว'
	hoHip   = 'ห'
	ruVowel = 'ฤ'
	luVowel = 'ฦ'

	firstConsonant = 'ก'
	lastConsonant  = 'ฮ'
	firstThai      = '\u0E00'
	lastThai       = '\u0E7F'
)

// ToneRule names the rule a tone mark selects.
type ToneRule string

// Tone mark rules.
const (
	RuleMaiEk       ToneRule = "mai ek"
	RuleMaiTho      ToneRule = "mai tho"
	RuleMaiTri      ToneRule = "mai tri"
	RuleMaiChattawa ToneRule = "mai chattawa"
)

var toneMarks = map[rune]ToneRule{
	maiEk:       RuleMaiEk,
	maiTho:      RuleMaiTho,
	maiTri:      RuleMaiTri,
	maiChattawa: RuleMaiChattawa,
}

var consonantClasses = map[rune]ConsonantClass{
	'ก': ClassMid, 'จ': ClassMid, 'ฎ': ClassMid, 'ฏ': ClassMid, 'ด': ClassMid,
	'ต': ClassMid, 'บ': ClassMid, 'ป': ClassMid, 'อ': ClassMid,

	'ข': ClassHigh, 'ฉ': ClassHigh, 'ฐ': ClassHigh, 'ถ': ClassHigh, 'ผ': ClassHigh,
	'ฝ': ClassHigh, 'ศ': ClassHigh, 'ษ': ClassHigh, 'ส': ClassHigh, 'ห': ClassHigh,

	'ค': ClassLow, 'ฆ': ClassLow, 'ง': ClassLow, 'ช': ClassLow, 'ซ': ClassLow,
	'ฌ': ClassLow, 'ญ': ClassLow, 'ฑ': ClassLow, 'ฒ': ClassLow, 'ณ': ClassLow,
	'ท': ClassLow, 'ธ': ClassLow, 'น': ClassLow, 'พ': ClassLow, 'ฟ': ClassLow,
	'ภ': ClassLow, 'ม': ClassLow, 'ย': ClassLow, 'ร': ClassLow, 'ล': ClassLow,
	'ว': ClassLow, 'ฬ': ClassLow, 'ฮ': ClassLow,
	ruVowel: ClassLow, luVowel: ClassLow,
}

// obsoleteConsonant is a historical letter that no longer has a class.
type obsoleteConsonant struct {
	name        string
	replacement rune
	replName    string
}

var obsoleteConsonants = map[rune]obsoleteConsonant{
	'ฃ': {name: "kho khuat", replacement: 'ข', replName: "kho khai"},
	'ฅ': {name: "kho khon", replacement: 'ค', replName: "kho khwai"},
}

var prefixVowels = map[rune]struct{}{
	'เ': {}, 'แ': {}, 'โ': {}, 'ใ': {}, 'ไ': {},
}

var simpleVowels = map[rune]VowelDescriptor{
	saraAa:   {Symbol: "า", Name: "a (long a)", Description: "long a sound", Length: Long, Position: PositionAfter},
	'ี': {Symbol: "ี", Name: "i (long i)", Description: "long i sound", Length: Long, Position: PositionAbove},
	'ื': {Symbol: "ื", Name: "ue (long ue)", Description: "long ue sound", Length: Long, Position: PositionAbove},
	'ู': {Symbol: "ู", Name: "u (long u)", Description: "long u sound", Length: Long, Position: PositionBelow},

	'ะ': {Symbol: "ะ", Name: "a (short a)", Description: "short a sound", Length: Short, Position: PositionAfter},
	'ิ': {Symbol: "ิ", Name: "i (short i)", Description: "short i sound", Length: Short, Position: PositionAbove},
	'ึ': {Symbol: "ึ", Name: "ue (short ue)", Description: "short ue sound", Length: Short, Position: PositionAbove},
	'ุ': {Symbol: "ุ", Name: "u (short u)", Description: "short u sound", Length: Short, Position: PositionBelow},
	'ั': {Symbol: "ั", Name: "a (short a)", Description: "short a sound", Length: Short, Position: PositionAbove},
	maiTaikhu: {
		Symbol: "็", Name: "mai taikhu", Description: "shortened vowel", Length: Short, Position: PositionAbove,
	},
	saraAm: {
		Symbol: "ำ", Name: "am (short am)", Description: "short a closed by m", Length: Short,
		Position: PositionAfter, Coda: true,
	},

	'เ': {Symbol: "เ", Name: "e (long e)", Description: "long e sound", Length: Long, Position: PositionBefore},
	'แ': {Symbol: "แ", Name: "ae (long ae)", Description: "long ae sound", Length: Long, Position: PositionBefore},
	'โ': {Symbol: "โ", Name: "o (long o)", Description: "long o sound", Length: Long, Position: PositionBefore},
	'ไ': {
		Symbol: "ไ", Name: "ai (short ai)", Description: "short a closed by y", Length: Short,
		Position: PositionBefore, Coda: true,
	},
	'ใ': {
		Symbol: "ใ", Name: "ai (short ai)", Description: "short a closed by y", Length: Short,
		Position: PositionBefore, Coda: true,
	},
}

var sanskritVowels = map[rune]VowelDescriptor{
	ruVowel: {Symbol: "ฤ", Name: "rue (long rue)", Description: "long rue sound (Sanskrit)", Length: Long, Kind: KindSanskrit},
	luVowel: {Symbol: "ฦ", Name: "lue (long lue)", Description: "long lue sound (Sanskrit)", Length: Long, Kind: KindSanskrit},
}

var oAsVowel = VowelDescriptor{
	Symbol: "อ", Name: "o (long o)", Description: "long o sound", Length: Long, Position: PositionAfter,
}

var wAsVowel = VowelDescriptor{
	Symbol: "อัว", Name: "ua (long ua)", Description: "ua sound (ว functioning as vowel)", Length: Long,
	Kind: KindWAsVowel, Position: PositionSplit,
}

var (
	impliedShortA = VowelDescriptor{
		Symbol: "อะ", Name: "a (short a)", Description: "short a sound", Length: Short, Kind: KindImplied,
		Position: PositionAfter,
	}
	impliedShortO = VowelDescriptor{
		Symbol: "โอะ", Name: "o (short o)", Description: "short o sound", Length: Short, Kind: KindImplied,
		Position: PositionSplit,
	}
)

var sonorantFinals = map[rune]struct{}{
	'ม': {}, 'น': {}, 'ง': {}, 'ย': {}, 'ร': {}, 'ล': {}, 'ว': {}, 'ญ': {}, 'ณ': {}, 'ฬ': {},
}

var hoHipSonorants = map[rune]struct{}{
	'ง': {}, 'ญ': {}, 'น': {}, 'ม': {}, 'ย': {}, 'ร': {}, 'ล': {}, 'ว': {},
}

var clusters = map[[2]rune]struct{}{
	{'ก', 'ร'}: {}, {'ก', 'ล'}: {}, {'ก', 'ว'}: {},
	{'ข', 'ร'}: {}, {'ข', 'ล'}: {}, {'ข', 'ว'}: {},
	{'ค', 'ร'}: {}, {'ค', 'ล'}: {}, {'ค', 'ว'}: {},
	{'ต', 'ร'}: {},
	{'ป', 'ร'}: {}, {'ป', 'ล'}: {},
	{'พ', 'ร'}: {}, {'พ', 'ล'}: {},
}

// silentOWords are spelled with a leading อ that only lends its mid class to
// the following ย.
var silentOWords = map[string]struct{}{
	"อย่า": {}, "อยาก": {}, "อยู่": {}, "อย่าง": {},
}

func isConsonant(r rune) bool {
	return r >= firstConsonant && r <= lastConsonant && r != ruVowel && r != luVowel
}

func isThaiLetter(r rune) bool {
	if isConsonant(r) || isToneMark(r) || isVowelSymbol(r) {
		return true
	}

	return r == ruVowel || r == luVowel || r == lakkhangyao || r == thanthakhat
}

func isToneMark(r rune) bool {
	_, ok := toneMarks[r]

	return ok
}

func isPrefixVowel(r rune) bool {
	_, ok := prefixVowels[r]

	return ok
}

// isFollowingVowel reports vowel symbols written after, above or below their
// consonant.
func isFollowingVowel(r rune) bool {
	if isPrefixVowel(r) {
		return false
	}

	_, ok := simpleVowels[r]

	return ok
}

func isVowelSymbol(r rune) bool {
	_, ok := simpleVowels[r]

	return ok
}

func isSanskritVowel(r rune) bool {
	_, ok := sanskritVowels[r]

	return ok
}

func isSonorantFinal(r rune) bool {
	_, ok := sonorantFinals[r]

	return ok
}

func isHoHipPair(first, second rune) bool {
	if first != hoHip {
		return false
	}

	_, ok := hoHipSonorants[second]

	return ok
}

func isCluster(first, second rune) bool {
	_, ok := clusters[[2]rune{first, second}]

	return ok
}

// ClassOf returns the tone class of a consonant. Obsolete letters and
// non-consonants report false.
func ClassOf(r rune) (ConsonantClass, bool) {
	class, ok := consonantClasses[r]

	return class, ok
}

// IsObsolete reports whether r is a historical consonant without a class.
func IsObsolete(r rune) bool {
	_, ok := obsoleteConsonants[r]

	return ok
}

// skipMarks returns the first index at or after i that is not a tone mark.
func skipMarks(runes []rune, i int) int {
	for i < len(runes) && isToneMark(runes[i]) {
		i++
	}

	return i
}

// isZeroConsonant reports whether the อ at index i is a silent onset carrier
// rather than the vowel "o".
func isZeroConsonant(runes []rune, i int) bool {
	if runes[i] != oAng {
		return false
	}

	if i == 0 {
		return true
	}

	next := skipMarks(runes, i+1)

	return next < len(runes) && isFollowingVowel(runes[next])
}

// isOVowel reports whether index i holds อ acting as the vowel "o".
func isOVowel(runes []rune, i int) bool {
	return runes[i] == oAng && !isZeroConsonant(runes, i)
}

// onsetLength returns how many consonants starting at i form one onset: 2 for
// an allowed cluster or a ห-led sonorant, 1 for a single consonant, 0 when i
// does not hold a consonant.
func onsetLength(runes []rune, i int) int {
	if i >= len(runes) || !isConsonant(runes[i]) {
		return 0
	}

	if i+1 < len(runes) && (isCluster(runes[i], runes[i+1]) || isHoHipPair(runes[i], runes[i+1])) {
		return 2
	}

	return 1
}
