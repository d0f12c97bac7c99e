package core

import (
	"time"

	"github.com/book-expert/events"
	"github.com/google/uuid"
)

// ToneAnalysisRequestedEvent asks the service to analyze a single word.
type ToneAnalysisRequestedEvent struct {
	Header events.EventHeader `json:"header"`
	Word   string             `json:"word"`
}

// ToneAnalysisCompletedEvent answers a ToneAnalysisRequestedEvent. Exactly one
// of Result and Error is set.
type ToneAnalysisCompletedEvent struct {
	Header events.EventHeader `json:"header"`
	Result *AnalysisResponse  `json:"result,omitempty"`
	Error  string             `json:"error,omitempty"`
}

// NewRequestHeader starts a new workflow for a request.
func NewRequestHeader() events.EventHeader {
	return events.EventHeader{
		Timestamp:  time.Now(),
		WorkflowID: uuid.NewString(),
		EventID:    uuid.NewString(),
		UserID:     "",
		TenantID:   "",
	}
}

// ReplyHeader derives the header of a reply: same workflow, new event.
func ReplyHeader(request events.EventHeader) events.EventHeader {
	return events.EventHeader{
		Timestamp:  time.Now(),
		WorkflowID: request.WorkflowID,
		EventID:    uuid.NewString(),
		UserID:     request.UserID,
		TenantID:   request.TenantID,
	}
}
