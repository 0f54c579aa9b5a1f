package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"travelcms/constants"
	"travelcms/errors"
	"travelcms/services/logger"
	"travelcms/services/metrics"
)

// DescriptionGenerator drafts package copy from an editor's prompt
type DescriptionGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const descriptionSystemPrompt = "You are a professional copy editor for travel itineraries and holiday packages. " +
	"Write in Traditional Chinese with a professional, natural and appealing tone."

type PerplexityOptions struct {
	URL               string
	APIKey            string
	Model             string
	RequestsPerMinute int
	Timeout           time.Duration
	Logger            logger.Logger
}

type PerplexityClient struct {
	url    string
	key    string
	model  string
	hc     *http.Client
	rl     *rate.Limiter
	logger logger.Logger
}

func NewPerplexityClient(opts PerplexityOptions) *PerplexityClient {
	if opts.URL == "" {
		opts.URL = constants.DefaultPerplexityURL
	}
	if opts.Model == "" {
		opts.Model = constants.DefaultPerplexityModel
	}
	if opts.RequestsPerMinute <= 0 {
		opts.RequestsPerMinute = 20
	}
	if opts.Timeout <= 0 {
		opts.Timeout = constants.AIRequestTimeoutSecond * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &PerplexityClient{
		url:    opts.URL,
		key:    opts.APIKey,
		model:  opts.Model,
		hc:     &http.Client{Timeout: opts.Timeout},
		rl:     rate.NewLimiter(rate.Limit(float64(opts.RequestsPerMinute)/60), opts.RequestsPerMinute),
		logger: opts.Logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content json.RawMessage `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type chatError struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
	Message string `json:"message"`
}

func aiError(format string, args ...interface{}) error {
	return errors.NewAppError(errors.ErrCodeAIFailed, fmt.Sprintf(format, args...), nil)
}

// Generate returns the trimmed completion for prompt
func (c *PerplexityClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.key == "" {
		return "", errors.NewAppError(errors.ErrCodeAIUnavailable, "PERPLEXITY_API_KEY is not set, check the environment configuration.", nil)
	}
	if err := c.rl.Wait(ctx); err != nil {
		return "", aiError("Error calling Perplexity API: %v", err)
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: descriptionSystemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens: constants.AIMaxTokens,
	})
	if err != nil {
		return "", aiError("Error calling Perplexity API: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", aiError("Error calling Perplexity API: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		metrics.ObserveExternal("perplexity", "chat_completions", 0, time.Since(start))
		return "", aiError("Error calling Perplexity API: %v", err)
	}
	defer resp.Body.Close()
	metrics.ObserveExternal("perplexity", "chat_completions", resp.StatusCode, time.Since(start))

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", aiError("Error calling Perplexity API: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("perplexity returned %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
		return "", aiError("HTTP %d: %s", resp.StatusCode, errorMessage(raw, resp.Status))
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", aiError("Error calling Perplexity API: %v", err)
	}
	if len(parsed.Choices) == 0 {
		return "", aiError("The API response contained no choices, please try again later.")
	}
	rawContent := parsed.Choices[0].Message.Content
	var content string
	if len(rawContent) == 0 || string(rawContent) == "null" || json.Unmarshal(rawContent, &content) != nil {
		return "", aiError("The API response format was unexpected, no text content was found.")
	}
	return strings.TrimSpace(content), nil
}

// errorMessage prefers error.message, then message, then the raw body
func errorMessage(raw []byte, status string) string {
	var e chatError
	if err := json.Unmarshal(raw, &e); err == nil {
		if e.Error != nil && e.Error.Message != "" {
			return e.Error.Message
		}
		if e.Message != "" {
			return e.Message
		}
	}
	if text := strings.TrimSpace(string(raw)); text != "" {
		return text
	}
	return status
}
