package objectstore

import (
	"context"
	"fmt"

	"github.com/book-expert/tone-service/internal/core"
	"github.com/book-expert/tone-service/internal/tone"
)

// FetchLexicon downloads and parses the lexicon stored under key.
func FetchLexicon(ctx context.Context, store core.ObjectStore, key string) (*tone.Lexicon, error) {
	data, err := store.Download(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to download lexicon: %w", err)
	}

	lexicon, err := tone.ParseLexicon(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse lexicon '%s': %w", key, err)
	}

	return lexicon, nil
}

// PublishLexicon validates data as a lexicon and uploads it under key. Invalid
// documents are never uploaded.
func PublishLexicon(ctx context.Context, store core.ObjectStore, key string, data []byte) (*tone.Lexicon, error) {
	lexicon, err := tone.ParseLexicon(data)
	if err != nil {
		return nil, fmt.Errorf("failed to validate lexicon: %w", err)
	}

	err = store.Upload(ctx, key, data)
	if err != nil {
		return nil, fmt.Errorf("failed to upload lexicon: %w", err)
	}

	return lexicon, nil
}
