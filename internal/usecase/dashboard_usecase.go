package usecase

import (
	"context"

	"vora/internal/domain/entity"

	"github.com/google/uuid"
)

// ListingInput is a new dashboard listing.
// With GenerateDescription or SuggestPrice set, the copywriter fills the field instead.
type ListingInput struct {
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	Price               int64           `json:"price"`
	Category            entity.Category `json:"category"`
	ImageURL            string          `json:"image_url"`
	GenerateDescription bool            `json:"generate_description"`
	SuggestPrice        bool            `json:"suggest_price"`
}

// DashboardUsecase manages a business identity's listings. Every call requires a business identity.
type DashboardUsecase interface {
	ListMine(ctx context.Context, sessionID uuid.UUID) (*DashboardView, error)

	// AddListing appends a product owned by the signed-in business.
	AddListing(ctx context.Context, sessionID uuid.UUID, input ListingInput) (*ProductView, error)

	// RemoveListing deletes one of the business's own products.
	RemoveListing(ctx context.Context, sessionID uuid.UUID, productID string) error
}

// AssistantUsecase exposes the copywriter to business identities.
type AssistantUsecase interface {
	DescribeProduct(ctx context.Context, sessionID uuid.UUID, name string, category entity.Category) (string, error)
	SuggestPrice(ctx context.Context, sessionID uuid.UUID, name string, category entity.Category) (float64, error)
}
