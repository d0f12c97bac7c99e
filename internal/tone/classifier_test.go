package tone_test

import (
	"testing"

	"github.com/book-expert/tone-service/internal/tone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_ToneMarksOnMidClass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		syllable string
		want     tone.Tone
	}{
		{syllable: "กา", want: tone.Mid},
		{syllable: "ก่า", want: tone.Low},
		{syllable: "ก้า", want: tone.Falling},
		{syllable: "ก๊า", want: tone.High},
		{syllable: "ก๋า", want: tone.Rising},
	}

	for _, testCase := range tests {
		t.Run(testCase.syllable, func(t *testing.T) {
			t.Parallel()

			result := tone.Classify(testCase.syllable)
			assert.Equal(t, testCase.want, result.Tone)
			assert.Equal(t, 'ก', result.Initial)
			assert.Equal(t, tone.ClassMid, result.Class)
		})
	}
}

func TestClassify_Tones(t *testing.T) {
	t.Parallel()

	tests := []struct {
		syllable string
		want     tone.Tone
	}{
		{syllable: "ขา", want: tone.Rising},
		{syllable: "ข่า", want: tone.Low},
		{syllable: "ข้า", want: tone.Falling},
		{syllable: "คา", want: tone.Mid},
		{syllable: "ค่า", want: tone.Falling},
		{syllable: "ค้า", want: tone.High},
		{syllable: "ขอบ", want: tone.Low},
		{syllable: "คุณ", want: tone.Mid},
		{syllable: "ลูก", want: tone.Falling},
		{syllable: "รัก", want: tone.High},
		{syllable: "มาก", want: tone.Falling},
		{syllable: "ผม", want: tone.Rising},
		{syllable: "หมา", want: tone.Rising},
		{syllable: "หมอ", want: tone.Rising},
		{syllable: "หลับ", want: tone.Low},
		{syllable: "เก็บ", want: tone.Low},
		{syllable: "ไก่", want: tone.Low},
		{syllable: "ไม่", want: tone.Falling},
		{syllable: "น้ำ", want: tone.High},
		{syllable: "คำ", want: tone.Mid},
		{syllable: "ใบ", want: tone.Mid},
		{syllable: "เรียน", want: tone.Mid},
		{syllable: "เกาะ", want: tone.Low},
		{syllable: "กิ", want: tone.Low},
		{syllable: "กี", want: tone.Mid},
		{syllable: "เก", want: tone.Mid},
		{syllable: "เกิน", want: tone.Mid},
		{syllable: "เลย", want: tone.Mid},
		{syllable: "สวย", want: tone.Rising},
		{syllable: "ขวด", want: tone.Low},
		{syllable: "ตัว", want: tone.Mid},
		{syllable: "กัวะ", want: tone.Low},
		{syllable: "เบื่อ", want: tone.Low},
		{syllable: "โกรธ", want: tone.Low},
		{syllable: "กรอก", want: tone.Low},
		{syllable: "ทด", want: tone.High},
		{syllable: "รถ", want: tone.High},
		{syllable: "สอบ", want: tone.Low},
		{syllable: "อยาก", want: tone.Low},
		{syllable: "อย่า", want: tone.Low},
		{syllable: "ฤ", want: tone.Mid},
		{syllable: "ฤๅ", want: tone.Mid},
	}

	for _, testCase := range tests {
		t.Run(testCase.syllable, func(t *testing.T) {
			t.Parallel()

			result := tone.Classify(testCase.syllable)
			assert.Equal(t, testCase.want, result.Tone, result.ExplanationText())
		})
	}
}

func TestClassify_SpecialCases(t *testing.T) {
	t.Parallel()

	single := tone.Classify("ส")
	assert.Equal(t, tone.Low, single.Tone)
	assert.Contains(t, single.ExplanationText(), "Rule: Single consonant with implied vowel = Low tone")

	wat := tone.Classify("วัส")
	assert.Equal(t, tone.Low, wat.Tone)
	assert.Contains(t, wat.ExplanationText(), "วัส pattern")

	marked := tone.Classify("ส่")
	assert.Equal(t, tone.Low, marked.Tone)
	assert.Contains(t, marked.ExplanationText(), "mai ek")
}

func TestClassify_HoHipPromotion(t *testing.T) {
	t.Parallel()

	result := tone.Classify("หมา")

	assert.Equal(t, 'ม', result.Initial)
	assert.Equal(t, tone.ClassHigh, result.Class)
	assert.True(t, result.Promoted)
	require.NotEmpty(t, result.Explanation)
	assert.Equal(t,
		"Initial consonant: 'ม' (Class: low, but ห leading consonant makes it high-class for tone rules)",
		result.Explanation[0])
}

func TestClassify_Explanation(t *testing.T) {
	t.Parallel()

	result := tone.Classify("ก่า")

	require.Len(t, result.Explanation, 5)
	assert.Equal(t, "Initial consonant: 'ก' (Class: mid)", result.Explanation[0])
	assert.Contains(t, result.Explanation[1], "Vowel: vowel 'า'")
	assert.Equal(t, "Syllable type: live (open syllable with long vowel)", result.Explanation[2])
	assert.Equal(t, "Tone marks found: ่", result.Explanation[3])
	assert.Equal(t, "Rule: Mid-class consonant + mai ek (่) = Low tone", result.Explanation[4])
	assert.Equal(t,
		"Initial consonant: 'ก' (Class: mid) | Vowel: vowel 'า' (a (long a)) - long a sound "+
			"(vowel positioned after consonant) | Syllable type: live (open syllable with long vowel) | "+
			"Tone marks found: ่ | Rule: Mid-class consonant + mai ek (่) = Low tone",
		result.ExplanationText())

	tri := tone.Classify("ค๊า")
	assert.Contains(t, tri.ExplanationText(), "Rule: Any consonant + mai tri (๊) = High tone")
}

func TestClassify_Unknown(t *testing.T) {
	t.Parallel()

	obsolete := tone.Classify("ฅน")
	assert.Equal(t, tone.Unknown, obsolete.Tone)
	assert.Equal(t,
		[]string{"'ฅ' (kho khon) is an obsolete Thai consonant that has been replaced by 'ค' (kho khwai) in modern Thai."},
		obsolete.Explanation)

	khuat := tone.Classify("ฃา")
	assert.Equal(t, tone.Unknown, khuat.Tone)
	assert.Contains(t, khuat.ExplanationText(), "obsolete")

	unrecognized := tone.Classify("ๆ")
	assert.Equal(t, tone.Unknown, unrecognized.Tone)
	assert.Equal(t, "'ๆ' is not a recognized Thai consonant.", unrecognized.ExplanationText())
	assert.NotContains(t, unrecognized.ExplanationText(), "obsolete")

	empty := tone.Classify("")
	assert.Equal(t, tone.Unknown, empty.Tone)
	assert.Equal(t, "Empty syllable", empty.ExplanationText())
}

func TestClassify_MaiTriAlwaysHigh(t *testing.T) {
	t.Parallel()

	for _, syllable := range []string{"ก๊า", "ข๊า", "ค๊า", "จ๊ะ", "ส๊ก", "ม๊ก", "หน๊า", "โต๊ะ", "เก๊า"} {
		result := tone.Classify(syllable)
		assert.Equal(t, tone.High, result.Tone, syllable)
	}
}

func TestClassify_MidClassLiveWithoutMarkIsMid(t *testing.T) {
	t.Parallel()

	for _, syllable := range []string{"กา", "จาน", "ดี", "บิน", "ตัว", "ปู", "เอา", "ใบ", "กิน", "ดาว"} {
		result := tone.Classify(syllable)
		require.Equal(t, tone.ClassMid, result.Class, syllable)
		require.Equal(t, tone.Live, result.Liveness, syllable)
		assert.Equal(t, tone.Mid, result.Tone, syllable)
	}
}

func TestClassify_LowClassDeadSplitsOnVowelLength(t *testing.T) {
	t.Parallel()

	for _, syllable := range []string{"รัก", "มาก", "นก", "ลูก", "พิษ", "เลข", "ชอบ", "มีด", "คิด", "ทุก"} {
		result := tone.Classify(syllable)
		require.Equal(t, tone.ClassLow, result.Class, syllable)
		require.Equal(t, tone.Dead, result.Liveness, syllable)
		require.NotEmpty(t, result.Vowels, syllable)

		want := tone.Falling
		if result.Vowels[0].Length == tone.Short {
			want = tone.High
		}

		assert.Equal(t, want, result.Tone, syllable)
	}
}

func TestClassify_IsPure(t *testing.T) {
	t.Parallel()

	for _, syllable := range []string{"กา", "หมา", "เบื่อ", "ฅน", "ๆ"} {
		assert.Equal(t, tone.Classify(syllable), tone.Classify(syllable), syllable)
	}
}
