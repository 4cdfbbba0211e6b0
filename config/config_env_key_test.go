package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"storefront": map[string]any{
			"shippingFee":     15000,
			"referencePrefix": "VORA",
		},
		"gemini": map[string]any{
			"apiKey": "",
		},
		"secretKey": map[string]any{
			"session": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STOREFRONT_SHIPPINGFEE", want: "storefront.shippingFee"},
		{envKey: "STOREFRONT_REFERENCEPREFIX", want: "storefront.referencePrefix"},
		{envKey: "GEMINI_APIKEY", want: "gemini.apiKey"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 24*time.Hour, cfg.Session.TokenTTL)
	assert.Equal(t, 10*time.Minute, cfg.Session.PurgeInterval)
	assert.InDelta(t, 30, cfg.Session.CreationsPerMinute, 1e-9)
	assert.Equal(t, 20, cfg.Session.CreationBurst)
	assert.Equal(t, int64(15000), cfg.Storefront.ShippingFee)
	assert.Equal(t, "VORA", cfg.Storefront.ReferencePrefix)
	assert.Equal(t, time.Second, cfg.Storefront.TrackingDelay)
	assert.Equal(t, 6, cfg.Storefront.HomeHighlights)
	assert.Equal(t, 3, cfg.Storefront.RelatedLimit)
	assert.Equal(t, "gemini-3-flash-preview", cfg.Gemini.Model)
	assert.InDelta(t, 0.7, cfg.Gemini.Temperature, 1e-6)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Storefront: &StorefrontConfig{ShippingFee: 20000, ReferencePrefix: "MAISON", TrackingDelay: 2 * time.Second},
		Metrics:    &MetricsConfig{Enabled: false},
	}

	applyDefaults(cfg)

	assert.Equal(t, int64(20000), cfg.Storefront.ShippingFee)
	assert.Equal(t, "MAISON", cfg.Storefront.ReferencePrefix)
	assert.Equal(t, 2*time.Second, cfg.Storefront.TrackingDelay)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestApplyDefaults_AssistantAndQRCode(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.InDelta(t, 10.0, cfg.Assistant.RequestsPerMinute, 1e-9)
	assert.Equal(t, 5, cfg.Assistant.Burst)
	assert.Equal(t, 10*time.Minute, cfg.Assistant.IdleEviction)
	assert.Equal(t, 256, cfg.QRCode.Size)
	assert.Equal(t, "M", cfg.QRCode.ErrorCorrectionLevel)
}
