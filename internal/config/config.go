// Package config provides the configuration structure for the tone-service.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/book-expert/configurator"
	"github.com/book-expert/logger"
)

var (
	// ErrNATSURLEmpty indicates that the NATS URL is missing.
	ErrNATSURLEmpty = errors.New("nats.url cannot be empty")
	// ErrAnalysisSubjectEmpty indicates that the analysis subject is missing.
	ErrAnalysisSubjectEmpty = errors.New("nats.analysis_subject cannot be empty")
	// ErrLexiconObjectKeyEmpty indicates a lexicon bucket without an object key.
	ErrLexiconObjectKeyEmpty = errors.New("nats.lexicon_object_key is required when nats.lexicon_bucket is set")
	// ErrCacheSizeNegative indicates a negative cache size.
	ErrCacheSizeNegative = errors.New("tone_service.cache_size must be non-negative")
	// ErrMaxWordRunes indicates a word limit that is not positive.
	ErrMaxWordRunes = errors.New("tone_service.max_word_runes must be positive")
	// ErrOracleTimeout indicates an oracle subject without a positive timeout.
	ErrOracleTimeout = errors.New("tone_service.oracle_timeout_seconds must be positive when nats.oracle_subject is set")
	// ErrRequestTimeout indicates a request timeout that is not positive.
	ErrRequestTimeout = errors.New("tone_service.request_timeout_seconds must be positive")
	// ErrLogsDirEmpty indicates that the log directory is missing.
	ErrLogsDirEmpty = errors.New("paths.base_logs_dir cannot be empty")
)

// NATSConfig holds the configuration for NATS.
type NATSConfig struct {
	URL              string `toml:"url"`
	AnalysisSubject  string `toml:"analysis_subject"`
	OracleSubject    string `toml:"oracle_subject"`
	LexiconBucket    string `toml:"lexicon_bucket"`
	LexiconObjectKey string `toml:"lexicon_object_key"`
}

// ToneServiceConfig holds the analysis settings. An empty OracleSubject
// disables the syllable count cross-check and a zero CacheSize disables
// memoization.
type ToneServiceConfig struct {
	LexiconPath           string `toml:"lexicon_path"`
	CacheSize             int    `toml:"cache_size"`
	MaxWordRunes          int    `toml:"max_word_runes"`
	OracleTimeoutSeconds  int    `toml:"oracle_timeout_seconds"`
	RequestTimeoutSeconds int    `toml:"request_timeout_seconds"`
}

// HTTPConfig holds the HTTP host API settings. An empty Addr disables it.
type HTTPConfig struct {
	Addr           string   `toml:"addr"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

// PathsConfig holds the configuration for file paths.
type PathsConfig struct {
	BaseLogsDir string `toml:"base_logs_dir"`
}

// Config is the root configuration structure.
type Config struct {
	NATS  NATSConfig        `toml:"nats"`
	Tone  ToneServiceConfig `toml:"tone_service"`
	HTTP  HTTPConfig        `toml:"http"`
	Paths PathsConfig       `toml:"paths"`
}

// Load loads the configuration for the tone-service and validates it.
func Load(log *logger.Logger) (*Config, error) {
	var cfg Config

	err := configurator.Load(&cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration from configurator: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.NATS.URL == "":
		return ErrNATSURLEmpty
	case c.NATS.AnalysisSubject == "":
		return ErrAnalysisSubjectEmpty
	case c.NATS.LexiconBucket != "" && c.NATS.LexiconObjectKey == "":
		return ErrLexiconObjectKeyEmpty
	case c.Tone.CacheSize < 0:
		return fmt.Errorf("%w: got %d", ErrCacheSizeNegative, c.Tone.CacheSize)
	case c.Tone.MaxWordRunes <= 0:
		return fmt.Errorf("%w: got %d", ErrMaxWordRunes, c.Tone.MaxWordRunes)
	case c.NATS.OracleSubject != "" && c.Tone.OracleTimeoutSeconds <= 0:
		return fmt.Errorf("%w: got %d", ErrOracleTimeout, c.Tone.OracleTimeoutSeconds)
	case c.Tone.RequestTimeoutSeconds <= 0:
		return fmt.Errorf("%w: got %d", ErrRequestTimeout, c.Tone.RequestTimeoutSeconds)
	case c.Paths.BaseLogsDir == "":
		return ErrLogsDirEmpty
	}

	return nil
}

// OracleTimeout returns the oracle timeout as a duration.
func (c *Config) OracleTimeout() time.Duration {
	return time.Duration(c.Tone.OracleTimeoutSeconds) * time.Second
}

// RequestTimeout returns the per-request timeout as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Tone.RequestTimeoutSeconds) * time.Second
}
