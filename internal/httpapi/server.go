// Package httpapi exposes the tone analyzer as a JSON HTTP API.
//
// Endpoints:
//
//	POST /analyze  body: {"word":"..."}
//	GET  /health
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/book-expert/logger"
	"github.com/book-expert/tone-service/internal/core"
	"github.com/rs/cors"
)

const (
	emptyWordMessage  = "Please enter a word."
	maxBodyBytes      = 64 << 10
	readHeaderTimeout = 5 * time.Second
)

type analyzeRequest struct {
	Word string `json:"word"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// Server serves analysis requests over HTTP.
type Server struct {
	analyzer       core.ToneAnalyzer
	log            *logger.Logger
	maxWordRunes   int
	requestTimeout time.Duration
	allowedOrigins []string
}

// Option configures a Server.
type Option func(*Server)

// WithMaxWordRunes rejects words longer than limit runes. Zero disables the
// check.
func WithMaxWordRunes(limit int) Option {
	return func(s *Server) {
		s.maxWordRunes = limit
	}
}

// WithRequestTimeout bounds the time spent analyzing one request.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.requestTimeout = timeout
	}
}

// WithAllowedOrigins sets the origins allowed by CORS. Without it every origin
// is allowed.
func WithAllowedOrigins(origins []string) Option {
	return func(s *Server) {
		s.allowedOrigins = origins
	}
}

// New returns a Server backed by analyzer.
func New(analyzer core.ToneAnalyzer, log *logger.Logger, opts ...Option) *Server {
	server := &Server{
		analyzer:       analyzer,
		log:            log,
		maxWordRunes:   0,
		requestTimeout: 0,
		allowedOrigins: nil,
	}

	for _, opt := range opts {
		opt(server)
	}

	return server
}

// Handler returns the routed handler wrapped in CORS.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("GET /health", s.handleHealth)

	origins := s.allowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(mux)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errChan := make(chan error, 1)

	go func() {
		errChan <- httpServer.ListenAndServe()
	}()

	if s.log != nil {
		s.log.Info("HTTP API listening on %s", addr)
	}

	select {
	case err := <-errChan:
		return fmt.Errorf("failed to serve HTTP on %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), readHeaderTimeout)
	defer cancel()

	err := httpServer.Shutdown(shutdownCtx)
	if err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}

	return nil
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var body analyzeRequest

	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "body must be JSON with a 'word' field")

		return
	}

	word := strings.TrimSpace(body.Word)
	if word == "" {
		s.writeError(w, http.StatusBadRequest, emptyWordMessage)

		return
	}

	if count := utf8.RuneCountInString(word); s.maxWordRunes > 0 && count > s.maxWordRunes {
		s.writeError(w, http.StatusBadRequest,
			fmt.Sprintf("Word is too long: %d characters, limit is %d.", count, s.maxWordRunes))

		return
	}

	ctx := r.Context()

	if s.requestTimeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, s.requestTimeout)
		defer cancel()
	}

	s.writeJSON(w, http.StatusOK, core.FromAnalysis(s.analyzer.Analyze(ctx, word)))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil && s.log != nil {
		s.log.Error("Failed to encode HTTP response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Error: message})
}
