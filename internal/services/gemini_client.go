package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"municipal-budget/internal/config"
	"municipal-budget/internal/dto"

	"google.golang.org/genai"
)

// APIKeyTransport attaches the generation service key to every request.
type APIKeyTransport struct {
	apiKey string
	base   http.RoundTripper
}

func (t *APIKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	req.Header.Set("x-goog-api-key", t.apiKey)
	req.Header.Set("Content-Type", "application/json")

	return t.base.RoundTrip(req)
}

type generateContentRequest struct {
	Contents         []*genai.Content        `json:"contents"`
	GenerationConfig *genai.GenerationConfig `json:"generationConfig,omitempty"`
}

// GeminiClient posts prompts to the generateContent endpoint, retrying on 429.
type GeminiClient struct {
	config  *config.InsightConfig
	client  *http.Client
	metrics MetricsRecorderInterface
	logger  *slog.Logger

	sleep  func(ctx context.Context, d time.Duration) error
	jitter func() time.Duration
}

func NewGeminiClient(
	cfg *config.InsightConfig,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) *GeminiClient {
	transport := &APIKeyTransport{
		apiKey: cfg.APIKey,
		base:   http.DefaultTransport,
	}

	return &GeminiClient{
		config: cfg,
		client: &http.Client{
			Transport: transport,
			Timeout:   cfg.RequestTimeout,
		},
		metrics: metrics,
		logger:  logger,
		sleep:   sleepContext,
		jitter:  randomJitter,
	}
}

// maxGenerationAttempts bounds calls per prompt, including the first.
const maxGenerationAttempts = 3

// GenerateContent sends the prompt up to maxGenerationAttempts times. Only a 429 response
// is retried; the final response is returned as received even if it is a 429.
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string) (*dto.GenerationResponse, error) {
	payload, err := json.Marshal(c.newRequest(prompt))
	if err != nil {
		return nil, fmt.Errorf("marshal generation request: %w", err)
	}

	var last *dto.GenerationResponse
	for attempt := 0; attempt < maxGenerationAttempts; attempt++ {
		req, err := c.buildRequest(ctx, payload)
		if err != nil {
			return nil, err
		}

		start := time.Now()
		resp, body, err := c.do(req)
		c.metrics.RecordProcessingTime("insight_upstream", time.Since(start))
		if err != nil {
			c.metrics.IncrementCounter("insight_upstream_attempts", map[string]string{"status": "transport_error"})
			return nil, err
		}
		c.metrics.IncrementCounter("insight_upstream_attempts", map[string]string{"status": strconv.Itoa(resp.StatusCode)})

		last = &dto.GenerationResponse{
			StatusCode: resp.StatusCode,
			Body:       body,
			Attempts:   attempt + 1,
		}

		if resp.StatusCode != http.StatusTooManyRequests || attempt == maxGenerationAttempts-1 {
			break
		}

		delay := backoffDelay(attempt) + c.jitter()
		c.logger.WarnContext(ctx, "generation service rate limited, retrying",
			"attempt", attempt+1,
			"max_attempts", maxGenerationAttempts,
			"delay_ms", delay.Milliseconds(),
		)
		if err := c.sleep(ctx, delay); err != nil {
			return nil, err
		}
	}

	return last, nil
}

func (c *GeminiClient) newRequest(prompt string) generateContentRequest {
	return generateContentRequest{
		Contents: []*genai.Content{
			{Parts: []*genai.Part{{Text: prompt}}},
		},
		GenerationConfig: &genai.GenerationConfig{
			Temperature:     genai.Ptr(c.config.Temperature),
			TopK:            genai.Ptr(c.config.TopK),
			TopP:            genai.Ptr(c.config.TopP),
			MaxOutputTokens: c.config.MaxOutputTokens,
		},
	}
}

func (c *GeminiClient) buildRequest(ctx context.Context, payload []byte) (*http.Request, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent", c.config.BaseURL, c.config.Model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	return req, nil
}

func (c *GeminiClient) do(req *http.Request) (*http.Response, []byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.ErrorContext(req.Context(), "generation request failed",
			"method", req.Method,
			"url", req.URL.String(),
			"error", err,
		)
		return nil, nil, err
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()

	if err != nil {
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}

	return resp, body, nil
}

// backoffDelay is 2^attempt seconds for a zero-based attempt number.
func backoffDelay(attempt int) time.Duration {
	return time.Duration(1<<attempt) * time.Second
}

// randomJitter is uniform in [0, 1s).
func randomJitter() time.Duration {
	return time.Duration(rand.Int64N(int64(time.Second)))
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
