package tone

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/book-expert/logger"
)

const noThaiMessage = "No Thai characters found in the word."

// SyllableCountOracle is an external reader that can say how many syllables a
// word has. It is only used to cross-check the scanner.
type SyllableCountOracle interface {
	SyllableCount(ctx context.Context, word string) (int, error)
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*Analyzer)

// WithLexicon replaces the built-in exception lexicon.
func WithLexicon(lexicon *Lexicon) AnalyzerOption {
	return func(a *Analyzer) {
		a.lexicon = lexicon
	}
}

// WithOracle enables the syllable count cross-check.
func WithOracle(oracle SyllableCountOracle) AnalyzerOption {
	return func(a *Analyzer) {
		a.oracle = oracle
	}
}

// WithLogger sets the logger used for diagnostics. Without it the analyzer is
// silent.
func WithLogger(log *logger.Logger) AnalyzerOption {
	return func(a *Analyzer) {
		a.log = log
	}
}

// Analyzer turns words into tone analyses. It holds no mutable state and may be
// shared between goroutines.
type Analyzer struct {
	lexicon   *Lexicon
	segmenter *Segmenter
	oracle    SyllableCountOracle
	log       *logger.Logger
}

// NewAnalyzer builds an Analyzer. The built-in lexicon is used unless
// WithLexicon is given.
func NewAnalyzer(opts ...AnalyzerOption) (*Analyzer, error) {
	analyzer := &Analyzer{}

	for _, opt := range opts {
		opt(analyzer)
	}

	if analyzer.lexicon == nil {
		lexicon, err := DefaultLexicon()
		if err != nil {
			return nil, err
		}

		analyzer.lexicon = lexicon
	}

	analyzer.segmenter = NewSegmenter(analyzer.lexicon)

	return analyzer, nil
}

var defaultAnalyzer = sync.OnceValue(func() *Analyzer {
	analyzer, err := NewAnalyzer()
	if err != nil {
		return &Analyzer{lexicon: nil, segmenter: NewSegmenter(nil), oracle: nil, log: nil}
	}

	return analyzer
})

// Analyze analyzes word with the built-in lexicon and no oracle.
func Analyze(word string) Analysis {
	return defaultAnalyzer().Analyze(context.Background(), word)
}

// Lexicon returns the lexicon the analyzer segments with.
func (a *Analyzer) Lexicon() *Lexicon {
	return a.lexicon
}

// Analyze segments word, classifies every syllable and assembles the word
// level result. It never fails: unreadable input yields the Unknown tone.
func (a *Analyzer) Analyze(ctx context.Context, word string) Analysis {
	cleaned := Clean(word)
	if cleaned == "" {
		return Analysis{Word: "", Syllables: nil, OverallTone: Unknown, CombinedExplanation: noThaiMessage}
	}

	spans, fromLexicon := a.segmenter.Segment(cleaned)
	if !fromLexicon {
		a.crossCheck(ctx, cleaned, len(spans))
	}

	syllables := make([]Syllable, len(spans))
	for i, span := range spans {
		syllables[i] = Classify(span)
	}

	analysis := Analysis{Word: cleaned, Syllables: syllables, OverallTone: Unknown, CombinedExplanation: ""}

	if len(syllables) == 1 {
		analysis.OverallTone = syllables[0].Tone
		analysis.CombinedExplanation = syllables[0].ExplanationText()

		return analysis
	}

	tones := make([]string, len(syllables))
	for i, syllable := range syllables {
		tones[i] = string(syllable.Tone)
	}

	analysis.OverallTone = MultiSyllable
	analysis.CombinedExplanation = fmt.Sprintf(
		"Multi-syllable word with %d syllables: %s", len(syllables), strings.Join(tones, " + "))

	return analysis
}

// crossCheck compares the scanner's syllable count with the oracle. A
// disagreement is only reported; the scanner's split is kept.
func (a *Analyzer) crossCheck(ctx context.Context, word string, count int) {
	if a.oracle == nil {
		return
	}

	expected, err := a.oracle.SyllableCount(ctx, word)
	if err != nil {
		a.warn("Syllable count oracle failed for '%s': %v", word, err)

		return
	}

	if expected > 0 && expected != count {
		a.warn("Syllable count mismatch for '%s': scanner found %d, oracle reported %d; keeping scanner split",
			word, count, expected)
	}
}

func (a *Analyzer) warn(format string, args ...any) {
	if a.log != nil {
		a.log.Warn(format, args...)
	}
}
