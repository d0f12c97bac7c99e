// Package core defines the shared types and interfaces of the tone service.
package core

import (
	"context"

	"github.com/book-expert/tone-service/internal/tone"
)

// ObjectStore defines the interface for interacting with a key-value blob store.
type ObjectStore interface {
	Download(ctx context.Context, key string) ([]byte, error)
	Upload(ctx context.Context, key string, data []byte) error
}

// ToneAnalyzer turns a word into its tone analysis.
type ToneAnalyzer interface {
	Analyze(ctx context.Context, word string) tone.Analysis
}
