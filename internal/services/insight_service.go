package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"municipal-budget/internal/dto"
	"municipal-budget/internal/models"

	"google.golang.org/genai"
)

// FallbackInsight is returned when the generation service answers without text.
const FallbackInsight = "Unable to generate insights"

const insightPromptTemplate = `You are an AI analyzing municipal budget data for transparency.

Department: %s
Budget Data (INR):
%s

Provide:
- A 3-line summary of the most important spending patterns for this department
- Identify any anomalies, unusually high spending, or potential inefficiencies
- Suggest 2-3 ways to optimize spending, focusing on transparency and efficiency

Respond in clear, concise English. Avoid code blocks or JSON formatting.`

type insightService struct {
	client     GenerationClientInterface
	configured bool
	metrics    MetricsRecorderInterface
	logger     *slog.Logger
}

// NewInsightService builds the requester. configured is false when no API key is
// set, in which case every request fails with ErrInsightNotConfigured.
func NewInsightService(
	client GenerationClientInterface,
	configured bool,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) InsightServiceInterface {
	return &insightService{
		client:     client,
		configured: configured,
		metrics:    metrics,
		logger:     logger,
	}
}

func (s *insightService) GenerateInsights(ctx context.Context, department string, items []dto.InsightBudgetItem) (string, error) {
	if !s.configured {
		s.logger.ErrorContext(ctx, "insight request rejected: generation service API key not configured")
		s.metrics.IncrementCounter("insight_requests", map[string]string{"status": "not_configured"})
		return "", ErrInsightNotConfigured
	}

	department = strings.TrimSpace(department)
	if items == nil || department == "" {
		s.metrics.IncrementCounter("insight_requests", map[string]string{"status": "invalid"})
		return "", ErrMissingBudgetData
	}

	valid := FilterValid(recordsFromInsightItems(items))
	if len(valid) == 0 {
		s.metrics.IncrementCounter("insight_requests", map[string]string{"status": "no_data"})
		return "", ErrNoValidData
	}

	prompt, err := BuildInsightPrompt(department, CategoryShares(valid))
	if err != nil {
		return "", err
	}

	resp, err := s.client.GenerateContent(ctx, prompt)
	if err != nil {
		s.metrics.IncrementCounter("insight_requests", map[string]string{"status": "transport_error"})
		return "", fmt.Errorf("generation request failed: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		s.logger.ErrorContext(ctx, "generation service returned an error",
			"department", department,
			"status", resp.StatusCode,
			"attempts", resp.Attempts,
			"body", string(resp.Body),
		)
		upstreamErr := &UpstreamError{StatusCode: resp.StatusCode, Body: string(resp.Body), Attempts: resp.Attempts}
		status := "upstream_error"
		if upstreamErr.RateLimited() {
			status = "rate_limited"
		}
		s.metrics.IncrementCounter("insight_requests", map[string]string{"status": status})
		return "", upstreamErr
	}

	s.metrics.IncrementCounter("insight_requests", map[string]string{"status": "success"})
	return s.extractText(resp.Body), nil
}

// extractText returns the first candidate's first part, or FallbackInsight.
func (s *insightService) extractText(body []byte) string {
	var parsed genai.GenerateContentResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		s.logger.Warn("could not decode generation response", "error", err)
		return FallbackInsight
	}

	if len(parsed.Candidates) == 0 || parsed.Candidates[0] == nil {
		return FallbackInsight
	}
	content := parsed.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 || content.Parts[0] == nil {
		return FallbackInsight
	}
	if text := content.Parts[0].Text; text != "" {
		return text
	}
	return FallbackInsight
}

// BuildInsightPrompt fills the fixed template. The department is quoted and the
// shares are embedded as indented JSON so caller text stays data.
func BuildInsightPrompt(department string, shares []models.CategoryShare) (string, error) {
	quotedDepartment, err := json.Marshal(department)
	if err != nil {
		return "", fmt.Errorf("encode department: %w", err)
	}

	data, err := json.MarshalIndent(shares, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode budget data: %w", err)
	}

	return fmt.Sprintf(insightPromptTemplate, quotedDepartment, data), nil
}

func recordsFromInsightItems(items []dto.InsightBudgetItem) []models.BudgetRecord {
	records := make([]models.BudgetRecord, 0, len(items))
	for _, item := range items {
		records = append(records, models.BudgetRecord{
			CategoryLabel: strings.TrimSpace(item.ResolvedCategory()),
			UsedAmount:    item.ResolvedAmount(),
		})
	}
	return records
}
