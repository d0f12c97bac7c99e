package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/book-expert/logger"
	"github.com/book-expert/tone-service/internal/config"
	"github.com/book-expert/tone-service/internal/objectstore"
	"github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()

	testLogger, err := logger.New(t.TempDir(), "tone-service-test.log")
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = testLogger.Close()
	})

	return testLogger
}

func TestLoadLexicon_DefaultOnly(t *testing.T) {
	t.Parallel()

	lexicon, err := loadLexicon(context.Background(), &config.Config{}, nil, newTestLogger(t))
	require.NoError(t, err)

	_, ok := lexicon.Lookup("ขอบคุณ")
	assert.True(t, ok)
}

func TestLoadLexicon_FileOverridesDefault(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "lexicon.toml")
	require.NoError(t, os.WriteFile(path, []byte("[words]\n\"ขอบคุณ\" = [\"ขอบคุณ\"]\n"), 0o600))

	cfg := &config.Config{}
	cfg.Tone.LexiconPath = path

	lexicon, err := loadLexicon(context.Background(), cfg, nil, newTestLogger(t))
	require.NoError(t, err)

	syllables, ok := lexicon.Lookup("ขอบคุณ")
	require.True(t, ok)
	assert.Equal(t, []string{"ขอบคุณ"}, syllables)
}

func TestLoadLexicon_FromBucket(t *testing.T) {
	t.Parallel()

	opts := test.DefaultTestOptions
	opts.Port = -1
	opts.JetStream = true
	opts.StoreDir = t.TempDir()
	natsServer := test.RunServer(&opts)

	natsConnection, err := nats.Connect(natsServer.ClientURL())
	require.NoError(t, err)

	t.Cleanup(func() {
		natsConnection.Close()
		natsServer.Shutdown()
	})

	cfg := &config.Config{}
	cfg.NATS.LexiconBucket = "TONE_LEXICONS"
	cfg.NATS.LexiconObjectKey = "lexicon.toml"

	lexicon, err := loadLexicon(context.Background(), cfg, natsConnection, newTestLogger(t))
	require.NoError(t, err)

	_, ok := lexicon.Lookup("ภาษา")
	assert.False(t, ok)

	jetstreamContext, err := natsConnection.JetStream()
	require.NoError(t, err)

	store, err := objectstore.New(jetstreamContext, cfg.NATS.LexiconBucket)
	require.NoError(t, err)

	_, err = objectstore.PublishLexicon(context.Background(), store, cfg.NATS.LexiconObjectKey,
		[]byte("[words]\n\"ภาษา\" = [\"ภา\", \"ษา\"]\n"))
	require.NoError(t, err)

	lexicon, err = loadLexicon(context.Background(), cfg, natsConnection, newTestLogger(t))
	require.NoError(t, err)

	syllables, ok := lexicon.Lookup("ภาษา")
	require.True(t, ok)
	assert.Equal(t, []string{"ภา", "ษา"}, syllables)

	_, ok = lexicon.Lookup("ขอบคุณ")
	assert.True(t, ok)
}
