package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/book-expert/tone-service/internal/core"
	"github.com/book-expert/tone-service/internal/httpapi"
	"github.com/book-expert/tone-service/internal/tone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, opts ...httpapi.Option) http.Handler {
	t.Helper()

	analyzer, err := tone.NewAnalyzer()
	require.NoError(t, err)

	return httpapi.New(analyzer, nil, opts...).Handler()
}

func postAnalyze(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	request := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	return recorder
}

func TestAnalyze_SingleSyllable(t *testing.T) {
	t.Parallel()

	recorder := postAnalyze(t, newTestHandler(t), `{"word":"ก่า"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var response map[string]any

	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "ก่า", response["word"])
	assert.Equal(t, "Low", response["tone"])
	assert.Equal(t, false, response["is_multi_syllable"])
	assert.NotContains(t, response, "syllables")
	assert.Contains(t, response["explanation"], "mai ek")
}

func TestAnalyze_MultiSyllable(t *testing.T) {
	t.Parallel()

	recorder := postAnalyze(t, newTestHandler(t), `{"word":"ขอบคุณ"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response core.AnalysisResponse

	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "Multi-syllable", response.Tone)
	assert.True(t, response.IsMultiSyllable)
	assert.Equal(t, "Multi-syllable word with 2 syllables: Low + Mid", response.Explanation)
	require.Len(t, response.Syllables, 2)
	assert.Equal(t, core.SyllableResult{
		Syllable:    "ขอบ",
		Tone:        "Low",
		Explanation: response.Syllables[0].Explanation,
		Position:    1,
	}, response.Syllables[0])
	assert.Equal(t, 2, response.Syllables[1].Position)
}

func TestAnalyze_Errors(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, httpapi.WithMaxWordRunes(5))

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "empty", body: `{"word":"  "}`, want: "Please enter a word."},
		{name: "missing", body: `{}`, want: "Please enter a word."},
		{name: "malformed", body: `{"word":`, want: "body must be JSON with a 'word' field"},
		{name: "too long", body: `{"word":"กกกกกก"}`, want: "Word is too long: 6 characters, limit is 5."},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			recorder := postAnalyze(t, handler, testCase.body)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			var response map[string]string

			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
			assert.Equal(t, testCase.want, response["error"])
		})
	}
}

func TestAnalyze_NoThaiCharacters(t *testing.T) {
	t.Parallel()

	recorder := postAnalyze(t, newTestHandler(t), `{"word":"hello"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response core.AnalysisResponse

	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "Unknown", response.Tone)
	assert.Equal(t, "No Thai characters found in the word.", response.Explanation)
}

func TestAnalyze_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	newTestHandler(t).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/analyze", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
}

func TestHealth(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	newTestHandler(t).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
}

func TestCORS(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, httpapi.WithAllowedOrigins([]string{"http://allowed.example"}))

	request := httptest.NewRequest(http.MethodGet, "/health", nil)
	request.Header.Set("Origin", "http://allowed.example")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, "http://allowed.example", recorder.Header().Get("Access-Control-Allow-Origin"))

	request = httptest.NewRequest(http.MethodGet, "/health", nil)
	request.Header.Set("Origin", "http://other.example")

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}
