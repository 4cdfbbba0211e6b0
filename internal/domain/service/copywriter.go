package service

import "context"

// Fallbacks returned by a Copywriter when the generation call cannot produce a usable answer.
const (
	FallbackEmptyDescription  = "No description generated."
	FallbackFailedDescription = "Error generating AI description."
	FallbackSuggestedPrice    = 25000.0
)

// Copywriter is the generative-text collaborator used by the partner dashboard.
// Implementations never return errors: every failure resolves to the documented fallback.
type Copywriter interface {
	// GenerateDescription writes persuasive marketing copy for a product.
	GenerateDescription(ctx context.Context, productName, category string) string

	// SuggestPrice proposes a price in the base currency.
	SuggestPrice(ctx context.Context, productName, category string) float64
}
