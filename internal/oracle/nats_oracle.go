// Package oracle asks an external phonetic reading service how many syllables
// a word has, over NATS request/reply.
package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

var (
	// ErrSubjectEmpty indicates that no oracle subject was configured.
	ErrSubjectEmpty = errors.New("oracle subject cannot be empty")
	// ErrOracleFailed indicates that the oracle answered with an error.
	ErrOracleFailed = errors.New("oracle reported an error")
	// ErrNoAnswer indicates a reply without syllables or a count.
	ErrNoAnswer = errors.New("oracle reply has no syllable count")
)

// Request is the payload sent to the oracle.
type Request struct {
	Word string `json:"word"`
}

// Reply is the payload the oracle answers with. Syllables wins over Count
// when both are present.
type Reply struct {
	Syllables []string `json:"syllables,omitempty"`
	Count     int      `json:"count,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// NatsOracle implements tone.SyllableCountOracle on top of a NATS connection.
type NatsOracle struct {
	natsConnection *nats.Conn
	subject        string
	timeout        time.Duration
}

// New returns a NatsOracle that sends requests to subject and waits at most
// timeout for each answer.
func New(natsConnection *nats.Conn, subject string, timeout time.Duration) (*NatsOracle, error) {
	if subject == "" {
		return nil, ErrSubjectEmpty
	}

	return &NatsOracle{natsConnection: natsConnection, subject: subject, timeout: timeout}, nil
}

// SyllableCount returns the oracle's syllable count for word.
func (o *NatsOracle) SyllableCount(ctx context.Context, word string) (int, error) {
	payload, err := json.Marshal(Request{Word: word})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal oracle request: %w", err)
	}

	requestCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	msg, err := o.natsConnection.RequestWithContext(requestCtx, o.subject, payload)
	if err != nil {
		return 0, fmt.Errorf("failed to query oracle on subject %s: %w", o.subject, err)
	}

	var reply Reply

	err = json.Unmarshal(msg.Data, &reply)
	if err != nil {
		return 0, fmt.Errorf("failed to unmarshal oracle reply: %w", err)
	}

	if reply.Error != "" {
		return 0, fmt.Errorf("%w: %s", ErrOracleFailed, reply.Error)
	}

	if len(reply.Syllables) > 0 {
		return len(reply.Syllables), nil
	}

	if reply.Count > 0 {
		return reply.Count, nil
	}

	return 0, ErrNoAnswer
}
