package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/kailas-cloud/finsight/internal/domain"
	domanalysis "github.com/kailas-cloud/finsight/internal/domain/analysis"
	domcompany "github.com/kailas-cloud/finsight/internal/domain/company"
	"github.com/kailas-cloud/finsight/internal/metrics"
)

const systemPrompt = `You rate the financial strength of a listed company from five ratios.
Answer with exactly one word: Strong, Moderate or Weak.`

// Classifier labels company strength with an OpenAI-compatible chat model.
type Classifier struct {
	client   *openai.Client
	model    string
	provider string
	logger   *zap.Logger
}

// Config holds the chat provider settings.
type Config struct {
	APIKey   string
	BaseURL  string
	Model    string
	Provider string
	Logger   *zap.Logger
}

// NewClassifier creates an OpenAI-compatible strength classifier.
func NewClassifier(cfg *Config) *Classifier {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Classifier{
		client:   openai.NewClientWithConfig(clientCfg),
		model:    cfg.Model,
		provider: cfg.Provider,
		logger:   logger,
	}
}

// Name identifies the classifier in logs and metrics.
func (c *Classifier) Name() string { return "openai" }

// Classify asks the model for a label. Any answer other than a known label is a provider error.
func (c *Classifier) Classify(ctx context.Context, f domanalysis.Features) (domcompany.Strength, error) {
	features, err := json.Marshal(map[string]float64{
		"roe":            f.ROE,
		"sales_growth":   f.SalesGrowth,
		"dividend":       f.Dividend,
		"profit_margin":  f.ProfitMargin,
		"debt_to_equity": f.DebtToEquity,
	})
	if err != nil {
		return "", fmt.Errorf("marshal features: %w", err)
	}

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: string(features)},
		},
		Temperature: 0,
		MaxTokens:   4,
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, req)
	duration := time.Since(start)

	if err != nil {
		metrics.ClassifierRequestsTotal.WithLabelValues(c.provider, c.model, "error").Inc()
		return "", parseAPIError(err)
	}
	metrics.ClassifierRequestDuration.WithLabelValues(c.provider, c.model).Observe(duration.Seconds())

	if len(resp.Choices) == 0 {
		metrics.ClassifierRequestsTotal.WithLabelValues(c.provider, c.model, "error").Inc()
		return "", fmt.Errorf("empty completion: %w", domain.ErrClassifierError)
	}

	answer := strings.Trim(strings.TrimSpace(resp.Choices[0].Message.Content), ".")
	strength, err := domcompany.ParseStrength(answer)
	if err != nil {
		metrics.ClassifierRequestsTotal.WithLabelValues(c.provider, c.model, "error").Inc()
		return "", fmt.Errorf("%w: %w", domain.ErrClassifierError, err)
	}

	metrics.ClassifierRequestsTotal.WithLabelValues(c.provider, c.model, "success").Inc()
	c.logger.Debug("Strength classified",
		zap.String("provider", c.provider),
		zap.String("model", c.model),
		zap.Duration("duration", duration),
		zap.String("strength", string(strength)),
		zap.Int("total_tokens", resp.Usage.TotalTokens),
	)
	return strength, nil
}

// parseAPIError extracts a human-readable error from the API response.
// All errors wrap domain.ErrClassifierError.
func parseAPIError(err error) error {
	wrap := domain.ErrClassifierError

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if detail := extractDetail(reqErr.Body); detail != "" {
			return fmt.Errorf("chat API error %d: %s: %w", reqErr.HTTPStatusCode, detail, wrap)
		}
		return fmt.Errorf("chat API error %d: %s: %w", reqErr.HTTPStatusCode, string(reqErr.Body), wrap)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("chat API error %d: %s: %w", apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	return fmt.Errorf("chat request failed: %w: %w", wrap, err)
}

// extractDetail reads the "detail" field some OpenAI-compatible gateways return.
func extractDetail(body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return ""
}
