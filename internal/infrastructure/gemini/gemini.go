package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopmate-vn/go-backend/internal/cfg"
	"github.com/shopmate-vn/go-backend/pkg/e"
	"github.com/shopmate-vn/go-backend/pkg/jitter"
	"github.com/shopmate-vn/go-backend/pkg/logger"
)

const (
	defaultTemperature = 0.4
	maxOutputTokens    = 1024
)

// Client calls the Gemini GenerateContent REST API with retry logic and
// exponential backoff.
type Client struct {
	httpClient *http.Client
	cfg        *cfg.GeminiCfg
	logger     logger.Logger
}

func NewClient(cfg *cfg.GeminiCfg, logger logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		logger:     logger,
	}
}

// Complete sends the prompt and returns the first candidate's text. Transient
// failures (5xx, 429, network errors) are retried; 4xx responses are not.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	const (
		op         = "gemini.Client.Complete"
		baseJitter = 1 * time.Second
		maxJitter  = 30 * time.Second
	)

	// A misconfigured retry count must not skip the call entirely.
	attempts := c.cfg.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		text, retryable, err := c.generateContent(ctx, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if !retryable || attempt == attempts-1 {
			break
		}

		sleepTime := jitter.ExponentialBackoff(
			baseJitter,
			maxJitter,
			attempt,
			jitter.DefaultJitter,
		)

		c.logger.Warnf("generation failed, retrying in %v (attempt %d): %v", sleepTime, attempt+1, err)
		select {
		case <-time.After(sleepTime):
		case <-ctx.Done():
			return "", e.Wrap(op, ctx.Err())
		}
	}

	return "", e.Wrap(op, lastErr)
}

// generateContent performs one GenerateContent call. The second return value
// reports whether the failure is worth retrying.
func (c *Client) generateContent(ctx context.Context, prompt string) (string, bool, error) {
	reqBody := GeminiRequest{
		Contents: []Content{
			{
				Role:  "user",
				Parts: []Part{{Text: prompt}},
			},
		},
		GenerationConfig: &GenerationConfig{
			Temperature:     defaultTemperature,
			MaxOutputTokens: maxOutputTokens,
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", false, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.cfg.BaseURL, c.cfg.Model, c.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", false, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", true, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", true, err
	}

	if resp.StatusCode != http.StatusOK {
		retryable := resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests

		var apiErr ErrorResponse
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error.Message != "" {
			return "", retryable, fmt.Errorf("gemini api status %d: %s", resp.StatusCode, apiErr.Error.Message)
		}

		return "", retryable, fmt.Errorf("gemini api status %d", resp.StatusCode)
	}

	var geminiResp GeminiResponse
	if err := json.Unmarshal(respBody, &geminiResp); err != nil {
		return "", false, err
	}

	text := extractText(&geminiResp)
	if text == "" {
		return "", false, fmt.Errorf("gemini response contains no text")
	}

	return text, false, nil
}

// extractText concatenates the text parts of the first candidate.
func extractText(resp *GeminiResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}

	return strings.TrimSpace(sb.String())
}
