package entity

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Currency is a display currency code.
type Currency string

const (
	// CurrencyNGN is the base currency all prices are stored in.
	CurrencyNGN Currency = "NGN"
	// CurrencyUSD is US dollars.
	CurrencyUSD Currency = "USD"
	// CurrencyEUR is euros.
	CurrencyEUR Currency = "EUR"
)

// BaseCurrency is the currency catalog prices are denominated in.
const BaseCurrency = CurrencyNGN

type currencyFormat struct {
	rate     float64
	symbol   string
	fraction int
}

// Static rates from the base currency. They are never fetched.
var currencyFormats = map[Currency]currencyFormat{
	CurrencyNGN: {rate: 1, symbol: "₦", fraction: 0},
	CurrencyUSD: {rate: 0.000625, symbol: "$", fraction: 2},
	CurrencyEUR: {rate: 0.000571, symbol: "€", fraction: 2},
}

// Currencies returns the supported display currencies, base currency first.
func Currencies() []Currency {
	return []Currency{CurrencyNGN, CurrencyUSD, CurrencyEUR}
}

// String returns the string representation of the Currency.
func (c Currency) String() string {
	return string(c)
}

// IsValid reports whether c is a supported display currency.
func (c Currency) IsValid() bool {
	_, ok := currencyFormats[c]
	return ok
}

// Rate returns the fixed exchange rate from the base currency to c.
// Unsupported codes fall back to the base rate.
func (c Currency) Rate() float64 {
	return c.format().rate
}

// FractionDigits returns how many decimals c is displayed with.
func (c Currency) FractionDigits() int {
	return c.format().fraction
}

// Convert turns a base-currency amount into c.
func (c Currency) Convert(amount int64) float64 {
	return float64(amount) * c.Rate()
}

// Format converts amount into c and renders it with the narrow symbol,
// thousands grouping and the currency's fraction digits, e.g. "₦1,600,000" or "$1,000.00".
func (c Currency) Format(amount int64) string {
	f := c.format()
	converted := c.Convert(amount)

	scale := math.Pow10(f.fraction)
	rounded := math.Round(converted*scale) / scale

	sign := ""
	if rounded < 0 {
		sign = "-"
		rounded = -rounded
	}

	digits := strconv.FormatFloat(rounded, 'f', f.fraction, 64)
	whole, frac, _ := strings.Cut(digits, ".")

	wholeValue, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return sign + f.symbol + digits
	}

	grouped := humanize.Comma(wholeValue)
	if frac != "" {
		grouped += "." + frac
	}

	return sign + f.symbol + grouped
}

func (c Currency) format() currencyFormat {
	if f, ok := currencyFormats[c]; ok {
		return f
	}

	return currencyFormats[BaseCurrency]
}
