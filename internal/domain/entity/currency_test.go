package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency_Convert(t *testing.T) {
	const amount int64 = 1_600_000

	assert.InDelta(t, 0.000625*float64(amount), CurrencyUSD.Convert(amount), 1e-9)
	assert.InDelta(t, 0.000571*float64(amount), CurrencyEUR.Convert(amount), 1e-9)
	assert.Equal(t, float64(amount), CurrencyNGN.Convert(amount))
}

func TestCurrency_Format(t *testing.T) {
	tests := []struct {
		name     string
		currency Currency
		amount   int64
		want     string
	}{
		{"base currency is identity with no fraction", CurrencyNGN, 1_600_000, "₦1,600,000"},
		{"base currency small amount", CurrencyNGN, 450, "₦450"},
		{"usd uses two fraction digits", CurrencyUSD, 1_600_000, "$1,000.00"},
		{"usd rounds to cents", CurrencyUSD, 12_500_000, "$7,812.50"},
		{"eur uses two fraction digits", CurrencyEUR, 1_000_000, "€571.00"},
		{"zero", CurrencyUSD, 0, "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.currency.Format(tt.amount))
		})
	}
}

func TestCurrency_IsValid(t *testing.T) {
	for _, c := range Currencies() {
		assert.True(t, c.IsValid(), c)
	}
	assert.False(t, Currency("GBP").IsValid())
	assert.Equal(t, 0, CurrencyNGN.FractionDigits())
	assert.Equal(t, 2, CurrencyEUR.FractionDigits())
}
