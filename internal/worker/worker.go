// Package worker provides a NATS worker that answers tone analysis requests.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/book-expert/events"
	"github.com/book-expert/logger"
	"github.com/book-expert/tone-service/internal/core"
	"github.com/nats-io/nats.go"
)

const defaultHandleMessageTimeout = 30 * time.Second

var (
	// ErrSubjectEmpty indicates that no subject was configured.
	ErrSubjectEmpty = errors.New("worker subject cannot be empty")
	// ErrAnalyzerNil indicates that the worker was built without an analyzer.
	ErrAnalyzerNil = errors.New("worker analyzer cannot be nil")
	// ErrWordEmpty indicates a request without a word.
	ErrWordEmpty = errors.New("word cannot be empty")
	// ErrWordTooLong indicates a word above the configured rune limit.
	ErrWordTooLong = errors.New("word is too long")
)

// NatsWorker listens for analysis requests on a NATS subject and replies to
// each one.
type NatsWorker struct {
	natsConnection *nats.Conn
	subject        string
	analyzer       core.ToneAnalyzer
	maxWordRunes   int
	timeout        time.Duration
	log            *logger.Logger
}

// Option configures a NatsWorker.
type Option func(*NatsWorker)

// WithMaxWordRunes rejects words longer than limit runes. Zero disables the
// check.
func WithMaxWordRunes(limit int) Option {
	return func(w *NatsWorker) {
		w.maxWordRunes = limit
	}
}

// WithTimeout bounds the time spent on a single request.
func WithTimeout(timeout time.Duration) Option {
	return func(w *NatsWorker) {
		if timeout > 0 {
			w.timeout = timeout
		}
	}
}

// NewNatsWorker creates a new instance of a NATS worker.
func NewNatsWorker(
	natsConnection *nats.Conn,
	subject string,
	analyzer core.ToneAnalyzer,
	log *logger.Logger,
	opts ...Option,
) (*NatsWorker, error) {
	if subject == "" {
		return nil, ErrSubjectEmpty
	}

	if analyzer == nil {
		return nil, ErrAnalyzerNil
	}

	worker := &NatsWorker{
		natsConnection: natsConnection,
		subject:        subject,
		analyzer:       analyzer,
		maxWordRunes:   0,
		timeout:        defaultHandleMessageTimeout,
		log:            log,
	}

	for _, opt := range opts {
		opt(worker)
	}

	return worker, nil
}

// Run subscribes and serves requests until ctx is cancelled, then drains the
// subscription.
func (w *NatsWorker) Run(ctx context.Context) error {
	sub, err := w.natsConnection.Subscribe(w.subject, w.handleMessage)
	if err != nil {
		return fmt.Errorf("failed to subscribe to subject %s: %w", w.subject, err)
	}

	w.log.Info("Listening for tone analysis requests on %s", w.subject)

	<-ctx.Done()

	drainErr := sub.Drain()
	if drainErr != nil {
		return fmt.Errorf("failed to drain subscription: %w", drainErr)
	}

	return nil
}

func (w *NatsWorker) handleMessage(msg *nats.Msg) {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	event, err := parseEvent(msg)
	if err != nil {
		w.log.Error("Failed to parse analysis request: %v", err)
		w.reply(msg, &core.ToneAnalysisCompletedEvent{
			Header: core.ReplyHeader(events.EventHeader{}),
			Result: nil,
			Error:  err.Error(),
		})

		return
	}

	reply := &core.ToneAnalysisCompletedEvent{Header: core.ReplyHeader(event.Header), Result: nil, Error: ""}

	err = w.validateWord(event.Word)
	if err != nil {
		w.log.Warn("Rejected analysis request for workflow %s: %v", event.Header.WorkflowID, err)
		reply.Error = err.Error()
		w.reply(msg, reply)

		return
	}

	result := core.FromAnalysis(w.analyzer.Analyze(ctx, event.Word))
	reply.Result = &result

	w.reply(msg, reply)
}

func (w *NatsWorker) validateWord(word string) error {
	if word == "" {
		return ErrWordEmpty
	}

	count := utf8.RuneCountInString(word)
	if w.maxWordRunes > 0 && count > w.maxWordRunes {
		return fmt.Errorf("%w: %d runes, limit is %d", ErrWordTooLong, count, w.maxWordRunes)
	}

	return nil
}

func (w *NatsWorker) reply(msg *nats.Msg, reply *core.ToneAnalysisCompletedEvent) {
	err := publishReplyEvent(msg, reply)
	if err != nil {
		w.log.Error("Failed to publish reply event for workflow %s: %v", reply.Header.WorkflowID, err)
	}
}

// publishReplyEvent marshals and responds with the completed event.
func publishReplyEvent(msg *nats.Msg, replyEvent *core.ToneAnalysisCompletedEvent) error {
	replyData, err := json.Marshal(replyEvent)
	if err != nil {
		return fmt.Errorf("failed to marshal reply event: %w", err)
	}

	err = msg.Respond(replyData)
	if err != nil {
		return fmt.Errorf("failed to publish reply event: %w", err)
	}

	return nil
}

func parseEvent(msg *nats.Msg) (*core.ToneAnalysisRequestedEvent, error) {
	var event core.ToneAnalysisRequestedEvent

	err := json.Unmarshal(msg.Data, &event)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return &event, nil
}
