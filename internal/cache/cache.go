// Package cache memoizes tone analyses in a bounded LRU.
package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/book-expert/tone-service/internal/core"
	"github.com/book-expert/tone-service/internal/tone"
	lru "github.com/hashicorp/golang-lru/v2"
)

// ErrInvalidSize indicates a cache size that is not positive.
var ErrInvalidSize = errors.New("cache size must be positive")

// Analyzer wraps a core.ToneAnalyzer and remembers its most recent results.
// Analyses are deterministic, so entries never go stale.
type Analyzer struct {
	next    core.ToneAnalyzer
	entries *lru.Cache[string, tone.Analysis]
}

// New returns an Analyzer holding at most size analyses.
func New(next core.ToneAnalyzer, size int) (*Analyzer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	entries, err := lru.New[string, tone.Analysis](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis cache: %w", err)
	}

	return &Analyzer{next: next, entries: entries}, nil
}

// Analyze returns the cached analysis of word or computes and stores it.
// Entries are keyed by the cleaned word. Returned analyses are shared and
// must not be modified.
func (a *Analyzer) Analyze(ctx context.Context, word string) tone.Analysis {
	key := tone.Clean(word)
	if analysis, ok := a.entries.Get(key); ok {
		return analysis
	}

	analysis := a.next.Analyze(ctx, word)
	a.entries.Add(key, analysis)

	return analysis
}

// Len returns the number of cached analyses.
func (a *Analyzer) Len() int {
	return a.entries.Len()
}

// Purge drops every cached analysis, for example after the lexicon changed.
func (a *Analyzer) Purge() {
	a.entries.Purge()
}
