package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goodcents/goodcents-api/models"
)

func claudeStub(t *testing.T, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NotEmpty(t, r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"content":[{"type":"text","text":%q}],"model":"stub","usage":{"input_tokens":1,"output_tokens":1}}`, text)
	}))
}

func newTestSelector(baseURL string) *ClaudeSelector {
	return NewClaudeSelector(ClaudeSelectorOpts{
		APIKey:  "sk-ant-test",
		BaseURL: baseURL,
	}, models.DefaultCatalogue(), NewLocalSelector())
}

func TestClaudeSelectorParsesResponse(t *testing.T) {
	srv := claudeStub(t, `{"charity": "FareShare", "confidence": 91, "reasoning": "Grocery purchase"}`)
	defer srv.Close()

	sel := newTestSelector(srv.URL).Select(context.Background(), "Sainsbury's Local", decimal.RequireFromString("6.20"))

	assert.Equal(t, "FareShare", sel.Charity)
	assert.Equal(t, 91, sel.Confidence)
	assert.Equal(t, "Grocery purchase", sel.Reasoning)
}

func TestClaudeSelectorStripsCodeFences(t *testing.T) {
	srv := claudeStub(t, "```json\n{\"charity\": \"Mind\", \"confidence\": 88, \"reasoning\": \"Wellbeing\"}\n```")
	defer srv.Close()

	sel := newTestSelector(srv.URL).Select(context.Background(), "Holland & Barrett", decimal.NewFromInt(9))

	assert.Equal(t, "Mind", sel.Charity)
	assert.Equal(t, 88, sel.Confidence)
}

func TestClaudeSelectorUnknownCharitySubstitutesDefault(t *testing.T) {
	srv := claudeStub(t, `{"charity": "Save The Whales", "confidence": 90, "reasoning": "Made up"}`)
	defer srv.Close()

	sel := newTestSelector(srv.URL).Select(context.Background(), "Ocean Gifts", decimal.NewFromInt(4))

	assert.Equal(t, models.DefaultCharity, sel.Charity)
}

func TestClaudeSelectorMalformedResponseFallsBack(t *testing.T) {
	srv := claudeStub(t, "I think FareShare would be lovely here.")
	defer srv.Close()

	// Still a valid selection, sourced from the keyword table.
	sel := newTestSelector(srv.URL).Select(context.Background(), "Waterstones Books", decimal.NewFromInt(12))

	assert.Equal(t, "Teach First", sel.Charity)
	assert.Equal(t, 89, sel.Confidence)
	assert.Equal(t, "Education-related purchase", sel.Reasoning)
}

func TestClaudeSelectorServerErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	sel := newTestSelector(srv.URL).Select(context.Background(), "Costa Coffee", decimal.RequireFromString("4.65"))

	assert.Equal(t, "FareShare", sel.Charity)
	assert.Equal(t, 87, sel.Confidence)
}

func TestClaudeSelectorUnreachableFallsBack(t *testing.T) {
	sel := newTestSelector("http://127.0.0.1:1/v1/messages").Select(context.Background(), "Uber", decimal.NewFromInt(12))

	assert.Equal(t, "Crisis", sel.Charity)
}

func TestClaudeSelectorNoKeySkipsRemote(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	selector := NewClaudeSelector(ClaudeSelectorOpts{BaseURL: srv.URL}, models.DefaultCatalogue(), NewLocalSelector())
	require.False(t, selector.Configured())

	sel := selector.Select(context.Background(), "Tesco Express", decimal.RequireFromString("8.47"))

	assert.False(t, called)
	assert.Equal(t, "FareShare", sel.Charity)
}

func TestClaudeSelectorCachesByMerchant(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"content":[{"type":"text","text":"{\"charity\": \"Crisis\", \"confidence\": 90, \"reasoning\": \"Travel\"}"}]}`)
	}))
	defer srv.Close()

	selector := newTestSelector(srv.URL)
	first := selector.Select(context.Background(), "Trainline", decimal.NewFromInt(20))
	second := selector.Select(context.Background(), "trainline ", decimal.NewFromInt(35))

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
}
