package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type listingRequest struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required,category"`
	Currency string `json:"currency,omitempty" validate:"omitempty,currency"`
	Account  string `json:"account_type" validate:"account_type"`
}

func TestCustomValidator(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		req     listingRequest
		wantErr string
	}{
		{"valid", listingRequest{Name: "Ring", Category: "Fine Jewelry", Currency: "USD"}, ""},
		{"all collection is a filter not a category", listingRequest{Name: "Ring", Category: "All Collection"}, "category"},
		{"missing name reports json name", listingRequest{Category: "Fine Jewelry"}, "name"},
		{"unsupported currency", listingRequest{Name: "Ring", Category: "Fine Jewelry", Currency: "GBP"}, "currency"},
		{"unknown account type", listingRequest{Name: "Ring", Category: "Fine Jewelry", Account: "ADMIN"}, "account_type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
