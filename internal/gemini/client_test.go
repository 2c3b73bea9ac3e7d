package gemini

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmitrijs2005/darazkeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProducts() []models.Product {
	return []models.Product{
		{Title: "Widget", CostPrice: 100, SellPrice: 150, Stock: 10},
		{Title: "Freebie", CostPrice: 10, SellPrice: 0, Stock: 1},
	}
}

func TestAnalyzeBusiness_MissingKey(t *testing.T) {
	c := NewClient("http://unused", "gemini-2.5-flash", "")
	assert.Equal(t, MsgMissingKey, c.AnalyzeBusiness(context.Background(), sampleProducts()))
}

func TestAnalyzeBusiness_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var req generateRequest
		require.NoError(t, json.Unmarshal(body, &req))
		require.Len(t, req.Contents, 1)
		prompt := req.Contents[0].Parts[0].Text
		assert.Contains(t, prompt, `"title":"Widget"`)
		assert.Contains(t, prompt, `"profitPerUnit":50`)
		assert.Contains(t, prompt, `"margin":"33.3%"`)
		// zero sell price must not produce NaN in the summary
		assert.Contains(t, prompt, `"margin":"0.0%"`)

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Solid margins overall."}]}}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "gemini-2.5-flash", "test-key")
	got := c.AnalyzeBusiness(context.Background(), sampleProducts())
	assert.Equal(t, "Solid margins overall.", got)
}

func TestAnalyzeBusiness_RequestFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "gemini-2.5-flash", "test-key")
	assert.Equal(t, MsgRequestFailed, c.AnalyzeBusiness(context.Background(), sampleProducts()))

	// unreachable endpoint
	down := NewClient("http://127.0.0.1:1", "gemini-2.5-flash", "test-key")
	assert.Equal(t, MsgRequestFailed, down.AnalyzeBusiness(context.Background(), sampleProducts()))
}

func TestAnalyzeBusiness_EmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "gemini-2.5-flash", "test-key")
	assert.Equal(t, MsgEmptyResponse, c.AnalyzeBusiness(context.Background(), sampleProducts()))
}

func TestBuildPrompt(t *testing.T) {
	prompt, err := buildPrompt(sampleProducts())
	require.NoError(t, err)
	assert.True(t, strings.Contains(prompt, "Daraz Store"))
	assert.Contains(t, prompt, `"stock":10`)
}
