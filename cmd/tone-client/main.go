// Command tone-client analyzes Thai words locally or through the tone-service
// and publishes operator lexicons to the service's object store.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/book-expert/logger"
	"github.com/book-expert/tone-service/internal/config"
	"github.com/book-expert/tone-service/internal/core"
	"github.com/book-expert/tone-service/internal/objectstore"
	"github.com/book-expert/tone-service/internal/tone"
	"github.com/nats-io/nats.go"
)

// Flag descriptions.
const (
	flagWordDesc           = "Thai word to analyze"
	flagWordsDesc          = "File with one Thai word per line to analyze"
	flagLocalDesc          = "Analyze in-process instead of asking the service"
	flagPublishLexiconDesc = "TOML lexicon file to validate and publish to the lexicon bucket"
	flagTimeoutDesc        = "Seconds to wait for each service reply"
)

// Flag names.
const (
	flagWord           = "word"
	flagWords          = "words"
	flagLocal          = "local"
	flagPublishLexicon = "publish-lexicon"
	flagTimeout        = "timeout"
)

// File names and defaults.
const (
	logFileName           = "tone-client.log"
	defaultTimeoutSeconds = 10
	commentPrefix         = "#"
)

var (
	// ErrNothingToDo indicates that no action flag was given.
	ErrNothingToDo = errors.New("one of --word, --words or --publish-lexicon must be provided")
	// ErrCannotSpecifyBoth indicates that --word and --words were both given.
	ErrCannotSpecifyBoth = errors.New("cannot specify both --word and --words")
	// ErrPublishNeedsService indicates --publish-lexicon combined with --local.
	ErrPublishNeedsService = errors.New("--publish-lexicon cannot be combined with --local")
	// ErrTimeoutNotPositive indicates a --timeout that is not positive.
	ErrTimeoutNotPositive = errors.New("--timeout must be positive")
	// ErrLexiconBucketEmpty indicates that publishing was asked without a configured bucket.
	ErrLexiconBucketEmpty = errors.New("nats.lexicon_bucket is not configured")
	// ErrServiceError indicates that the service answered with an error.
	ErrServiceError = errors.New("service returned an error")
)

// appFlags holds the parsed command-line flag values.
type appFlags struct {
	word           string
	words          string
	local          bool
	publishLexicon string
	timeout        int
}

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the main application entry point, returning an error on failure.
func run(args []string, out io.Writer) error {
	flags, err := parseFlags(args)
	if err != nil {
		return err
	}

	err = validateArguments(flags)
	if err != nil {
		return err
	}

	words, err := collectWords(flags)
	if err != nil {
		return err
	}

	if flags.local {
		return analyzeLocally(words, out)
	}

	return runAgainstService(flags, words, out)
}

// parseFlags defines and parses command-line flags, returning them in a struct.
func parseFlags(args []string) (appFlags, error) {
	var flags appFlags

	flagSet := flag.NewFlagSet("tone-client", flag.ContinueOnError)
	flagSet.StringVar(&flags.word, flagWord, "", flagWordDesc)
	flagSet.StringVar(&flags.words, flagWords, "", flagWordsDesc)
	flagSet.BoolVar(&flags.local, flagLocal, false, flagLocalDesc)
	flagSet.StringVar(&flags.publishLexicon, flagPublishLexicon, "", flagPublishLexiconDesc)
	flagSet.IntVar(&flags.timeout, flagTimeout, defaultTimeoutSeconds, flagTimeoutDesc)

	err := flagSet.Parse(args)
	if err != nil {
		return flags, fmt.Errorf("failed to parse flags: %w", err)
	}

	return flags, nil
}

// validateArguments checks for required and conflicting flags.
func validateArguments(flags appFlags) error {
	if flags.word == "" && flags.words == "" && flags.publishLexicon == "" {
		return ErrNothingToDo
	}

	if flags.word != "" && flags.words != "" {
		return ErrCannotSpecifyBoth
	}

	if flags.publishLexicon != "" && flags.local {
		return ErrPublishNeedsService
	}

	if flags.timeout <= 0 {
		return fmt.Errorf("%w: got %d", ErrTimeoutNotPositive, flags.timeout)
	}

	return nil
}

func collectWords(flags appFlags) ([]string, error) {
	if flags.word != "" {
		return []string{flags.word}, nil
	}

	if flags.words == "" {
		return nil, nil
	}

	file, err := os.Open(flags.words)
	if err != nil {
		return nil, fmt.Errorf("failed to open words file '%s': %w", flags.words, err)
	}
	defer file.Close()

	return readWords(file)
}

// readWords returns the non-blank lines of r, skipping lines starting with #.
func readWords(r io.Reader) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		words = append(words, line)
	}

	err := scanner.Err()
	if err != nil {
		return nil, fmt.Errorf("failed to read words: %w", err)
	}

	return words, nil
}

func analyzeLocally(words []string, out io.Writer) error {
	analyzer, err := tone.NewAnalyzer()
	if err != nil {
		return fmt.Errorf("failed to create analyzer: %w", err)
	}

	encoder := newEncoder(out)

	for _, word := range words {
		err = encoder.Encode(core.FromAnalysis(analyzer.Analyze(context.Background(), word)))
		if err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}

	return nil
}

func runAgainstService(flags appFlags, words []string, out io.Writer) error {
	log, err := logger.New(os.TempDir(), logFileName)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	cfg, err := config.Load(log)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	natsConnection, err := nats.Connect(cfg.NATS.URL, nats.Name("tone-client"))
	if err != nil {
		return fmt.Errorf("failed to connect to NATS: %w", err)
	}
	defer natsConnection.Close()

	ctx := context.Background()

	if flags.publishLexicon != "" {
		err = publishLexicon(ctx, natsConnection, cfg, flags.publishLexicon, out)
		if err != nil {
			log.Error("Failed to publish lexicon: %v", err)

			return err
		}
	}

	timeout := time.Duration(flags.timeout) * time.Second
	encoder := newEncoder(out)

	for _, word := range words {
		result, requestErr := requestAnalysis(ctx, natsConnection, cfg.NATS.AnalysisSubject, word, timeout)
		if requestErr != nil {
			log.Error("Analysis of '%s' failed: %v", word, requestErr)

			return requestErr
		}

		err = encoder.Encode(result)
		if err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}

	return nil
}

// requestAnalysis sends one analysis request and waits for its reply.
func requestAnalysis(
	ctx context.Context,
	natsConnection *nats.Conn,
	subject, word string,
	timeout time.Duration,
) (*core.AnalysisResponse, error) {
	event := core.ToneAnalysisRequestedEvent{Header: core.NewRequestHeader(), Word: word}

	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	requestCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	msg, err := natsConnection.RequestWithContext(requestCtx, subject, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to request analysis on %s: %w", subject, err)
	}

	var reply core.ToneAnalysisCompletedEvent

	err = json.Unmarshal(msg.Data, &reply)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal reply: %w", err)
	}

	if reply.Error != "" || reply.Result == nil {
		return nil, fmt.Errorf("%w: %s", ErrServiceError, reply.Error)
	}

	return reply.Result, nil
}

func publishLexicon(
	ctx context.Context,
	natsConnection *nats.Conn,
	cfg *config.Config,
	path string,
	out io.Writer,
) error {
	if cfg.NATS.LexiconBucket == "" {
		return ErrLexiconBucketEmpty
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read lexicon file '%s': %w", path, err)
	}

	jetstreamContext, err := natsConnection.JetStream()
	if err != nil {
		return fmt.Errorf("failed to create JetStream context: %w", err)
	}

	store, err := objectstore.New(jetstreamContext, cfg.NATS.LexiconBucket)
	if err != nil {
		return fmt.Errorf("failed to open lexicon bucket: %w", err)
	}

	lexicon, err := objectstore.PublishLexicon(ctx, store, cfg.NATS.LexiconObjectKey, data)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Published %d lexicon entries to %s/%s\n",
		lexicon.Len(), cfg.NATS.LexiconBucket, cfg.NATS.LexiconObjectKey)

	return nil
}

func newEncoder(out io.Writer) *json.Encoder {
	encoder := json.NewEncoder(out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	return encoder
}
