package core

import "github.com/book-expert/tone-service/internal/tone"

// SyllableResult is the wire form of one classified syllable.
type SyllableResult struct {
	Syllable    string `json:"syllable"`
	Tone        string `json:"tone"`
	Explanation string `json:"explanation"`
	Position    int    `json:"position"`
}

// AnalysisResponse is the wire form of a word analysis shared by the HTTP and
// NATS surfaces. Syllables is only present for multi-syllable words.
type AnalysisResponse struct {
	Word            string           `json:"word"`
	Tone            string           `json:"tone"`
	Explanation     string           `json:"explanation"`
	IsMultiSyllable bool             `json:"is_multi_syllable"`
	Syllables       []SyllableResult `json:"syllables,omitempty"`
}

// FromAnalysis converts an analysis to its wire form. Positions start at 1.
func FromAnalysis(analysis tone.Analysis) AnalysisResponse {
	response := AnalysisResponse{
		Word:            analysis.Word,
		Tone:            string(analysis.OverallTone),
		Explanation:     analysis.CombinedExplanation,
		IsMultiSyllable: analysis.IsMultiSyllable(),
		Syllables:       nil,
	}

	if !response.IsMultiSyllable {
		return response
	}

	response.Syllables = make([]SyllableResult, len(analysis.Syllables))
	for i, syllable := range analysis.Syllables {
		response.Syllables[i] = SyllableResult{
			Syllable:    syllable.Text,
			Tone:        string(syllable.Tone),
			Explanation: syllable.ExplanationText(),
			Position:    i + 1,
		}
	}

	return response
}
