package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/book-expert/logger"
	"github.com/book-expert/tone-service/internal/config"
	"github.com/book-expert/tone-service/internal/objectstore"
	"github.com/book-expert/tone-service/internal/tone"
	"github.com/nats-io/nats.go"
)

// loadLexicon layers the operator lexicons over the built-in one: first the
// file from tone_service.lexicon_path, then the object from the JetStream
// bucket. A missing bucket object is not an error.
func loadLexicon(
	ctx context.Context,
	cfg *config.Config,
	natsConnection *nats.Conn,
	log *logger.Logger,
) (*tone.Lexicon, error) {
	lexicon, err := tone.DefaultLexicon()
	if err != nil {
		return nil, err
	}

	if cfg.Tone.LexiconPath != "" {
		fileLexicon, loadErr := tone.LoadLexiconFile(cfg.Tone.LexiconPath)
		if loadErr != nil {
			return nil, loadErr
		}

		lexicon = lexicon.Merge(fileLexicon)
		log.Info("Loaded %d lexicon entries from %s", fileLexicon.Len(), cfg.Tone.LexiconPath)
	}

	if cfg.NATS.LexiconBucket == "" {
		return lexicon, nil
	}

	jetstreamContext, err := natsConnection.JetStream()
	if err != nil {
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	store, err := objectstore.New(jetstreamContext, cfg.NATS.LexiconBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon bucket: %w", err)
	}

	storedLexicon, err := objectstore.FetchLexicon(ctx, store, cfg.NATS.LexiconObjectKey)
	if errors.Is(err, objectstore.ErrObjectNotFound) {
		log.Info("No lexicon '%s' in bucket '%s', using local lexicon",
			cfg.NATS.LexiconObjectKey, cfg.NATS.LexiconBucket)

		return lexicon, nil
	}

	if err != nil {
		return nil, err
	}

	log.Info("Loaded %d lexicon entries from bucket '%s'", storedLexicon.Len(), cfg.NATS.LexiconBucket)

	return lexicon.Merge(storedLexicon), nil
}
