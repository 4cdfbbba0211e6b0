// Package gemini backs the dashboard copywriter with Google's Gemini models.
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"vora/config"
	deliverycontext "vora/internal/delivery/context"
	"vora/internal/domain/service"

	"google.golang.org/genai"
)

const (
	descriptionPrompt = `Write a beautiful, luxury, and persuasive marketing description for a product named "%s" in the "%s" category. Keep it under 60 words.`
	pricePrompt       = `Suggest a competitive and realistic price for a product: %s in category: %s. Respond with ONLY a number representing the price in Nigerian Naira (NGN).`

	operationDescription = "description"
	operationPrice       = "price"
)

var pricePattern = regexp.MustCompile(`\d+(\.\d{1,2})?`)

// textGenerator sends one prompt to a model and returns the answer text.
type textGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// genaiGenerator calls the Gemini API through the genai SDK.
type genaiGenerator struct {
	client      *genai.Client
	model       string
	temperature float32
}

func (g *genaiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(g.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate content failed: %w", err)
	}

	return resp.Text(), nil
}

// copywriter implements service.Copywriter. A nil generator means the collaborator is disabled.
type copywriter struct {
	generator textGenerator
	timeout   time.Duration
	metrics   service.StorefrontMetrics
	logger    *slog.Logger
}

// NewCopywriter creates the Gemini copywriter. Without an API key every call answers with its fallback.
func NewCopywriter(ctx context.Context, cfg *config.Config, metrics service.StorefrontMetrics, logger *slog.Logger) (service.Copywriter, error) {
	if cfg.Gemini.APIKey == "" {
		logger.Warn("gemini api key not configured, copywriter answers with fallbacks")
		return newCopywriter(nil, cfg.Gemini.Timeout, metrics, logger), nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	generator := &genaiGenerator{
		client:      client,
		model:       cfg.Gemini.Model,
		temperature: cfg.Gemini.Temperature,
	}

	return newCopywriter(generator, cfg.Gemini.Timeout, metrics, logger), nil
}

func newCopywriter(generator textGenerator, timeout time.Duration, metrics service.StorefrontMetrics, logger *slog.Logger) *copywriter {
	return &copywriter{
		generator: generator,
		timeout:   timeout,
		metrics:   metrics,
		logger:    logger,
	}
}

func (c *copywriter) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// GenerateDescription writes marketing copy, falling back to a fixed sentence on empty or failed answers.
func (c *copywriter) GenerateDescription(ctx context.Context, productName, category string) string {
	text, err := c.generate(ctx, fmt.Sprintf(descriptionPrompt, productName, category))
	if err != nil {
		c.fallback(ctx, operationDescription, err)
		return service.FallbackFailedDescription
	}
	if strings.TrimSpace(text) == "" {
		c.fallback(ctx, operationDescription, nil)
		return service.FallbackEmptyDescription
	}

	return text
}

// SuggestPrice returns the first number found in the answer, or the fallback price.
func (c *copywriter) SuggestPrice(ctx context.Context, productName, category string) float64 {
	text, err := c.generate(ctx, fmt.Sprintf(pricePrompt, productName, category))
	if err != nil {
		c.fallback(ctx, operationPrice, err)
		return service.FallbackSuggestedPrice
	}

	price, ok := parsePrice(text)
	if !ok {
		c.fallback(ctx, operationPrice, nil)
		return service.FallbackSuggestedPrice
	}

	return price
}

func (c *copywriter) generate(ctx context.Context, prompt string) (string, error) {
	if c.generator == nil {
		return "", fmt.Errorf("copywriter disabled")
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	return c.generator.Generate(ctx, prompt)
}

func (c *copywriter) fallback(ctx context.Context, operation string, err error) {
	c.metrics.RecordCopywriterFallback(operation)

	attrs := []any{slog.String("operation", operation)}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}
	c.log(ctx).Warn("copywriter answered with fallback", attrs...)
}

func parsePrice(text string) (float64, bool) {
	match := pricePattern.FindString(strings.TrimSpace(text))
	if match == "" {
		return 0, false
	}

	price, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}

	return price, true
}
