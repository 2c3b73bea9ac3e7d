// Package gemini calls the Google text-generation REST API to produce a
// free-form business analysis of the current inventory. The rest of the
// application only depends on "send summary, get text back": on a missing
// credential or a failed request a fixed fallback string is returned, and no
// retry, streaming, or caching is attempted.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/darazkeeper/internal/models"
)

// Fallback texts returned instead of an analysis.
const (
	MsgMissingKey    = "Gemini API Key is missing. Please check your environment configuration."
	MsgRequestFailed = "Failed to generate AI analysis. Please try again later."
	MsgEmptyResponse = "No analysis could be generated."
)

// Client talks to one generateContent endpoint with one model.
type Client struct {
	httpClient *http.Client
	endpoint   string
	model      string
	apiKey     string
}

// NewClient returns a Client for the given API base endpoint, model name, and
// key. An empty key disables the client (AnalyzeBusiness returns MsgMissingKey).
func NewClient(endpoint, model, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		endpoint:   endpoint,
		model:      model,
		apiKey:     apiKey,
	}
}

// productSummary is the per-product row serialized into the prompt.
type productSummary struct {
	Title         string  `json:"title"`
	Cost          float64 `json:"cost"`
	Sell          float64 `json:"sell"`
	Stock         int     `json:"stock"`
	ProfitPerUnit float64 `json:"profitPerUnit"`
	Margin        string  `json:"margin"`
}

// AnalyzeBusiness sends an inventory summary to the model and returns the
// generated analysis, or one of the fixed fallback strings. It never fails:
// callers display whatever comes back.
func (c *Client) AnalyzeBusiness(ctx context.Context, products []models.Product) string {
	if c.apiKey == "" {
		return MsgMissingKey
	}

	prompt, err := buildPrompt(products)
	if err != nil {
		return MsgRequestFailed
	}

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return MsgRequestFailed
	}
	if text == "" {
		return MsgEmptyResponse
	}
	return text
}

func buildPrompt(products []models.Product) (string, error) {
	summary := make([]productSummary, len(products))
	for n, p := range products {
		summary[n] = productSummary{
			Title:         p.Title,
			Cost:          p.CostPrice,
			Sell:          p.SellPrice,
			Stock:         p.Stock,
			ProfitPerUnit: p.ProfitPerUnit(),
			Margin:        fmt.Sprintf("%.1f%%", p.MarginPercent()),
		}
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`You are an expert E-commerce Business Analyst for a Daraz Store.
Here is the current inventory data in JSON format:
%s

Please provide a concise but high-value analysis in Markdown format:
1. Identify the top 3 most profitable items (high margin).
2. Identify items with low margins that might be risky.
3. Calculate the total potential profit if all current stock is sold.
4. Give 1 strategic recommendation to improve the store's profitability.

Keep the tone professional and encouraging.`, data), nil
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.endpoint, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %s", resp.Status)
	}

	var gr generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", err
	}

	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return gr.Candidates[0].Content.Parts[0].Text, nil
}
