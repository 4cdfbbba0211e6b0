package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultSessionTokenTTL    = 24 * time.Hour
	defaultSessionPurge       = 10 * time.Minute
	defaultSessionCreateRPM   = 30
	defaultSessionCreateBurst = 20
	defaultShippingFee        = 15000
	defaultReferencePrefix    = "VORA"
	defaultTrackingDelay      = time.Second
	defaultHomeHighlights     = 6
	defaultRelatedLimit       = 3
	defaultGeminiModel        = "gemini-3-flash-preview"
	defaultGeminiTemperature  = 0.7
	defaultGeminiTimeout      = 15 * time.Second
	defaultMetricsPath        = "/metrics"
	defaultAssistantRPM       = 10
	defaultAssistantBurst     = 5
	defaultAssistantEviction  = 10 * time.Minute
	defaultQRCodeSize         = 256
	defaultQRCodeLevel        = "M"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	SecretKey struct {
		Session string `json:"session" yaml:"session"`
	} `json:"secretKey" yaml:"secretKey"`

	// Session configuration for visitor session tokens
	Session *SessionConfig `json:"session" yaml:"session"`

	// Storefront configuration for checkout, tracking and page projections
	Storefront *StorefrontConfig `json:"storefront" yaml:"storefront"`

	// Gemini configuration for the dashboard copywriter
	Gemini *GeminiConfig `json:"gemini" yaml:"gemini"`

	// Assistant rate limits for copywriter endpoints
	Assistant *AssistantConfig `json:"assistant" yaml:"assistant"`

	// QRCode configuration for order reference QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Metrics configuration for the prometheus endpoint
	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// SessionConfig defines visitor session token settings
type SessionConfig struct {
	TokenTTL time.Duration `json:"tokenTTL" yaml:"tokenTTL"`

	// How often idle sessions are purged
	PurgeInterval time.Duration `json:"purgeInterval" yaml:"purgeInterval"`

	// New sessions a single client IP may start per minute, with burst headroom
	CreationsPerMinute float64       `json:"creationsPerMinute" yaml:"creationsPerMinute"`
	CreationBurst      int           `json:"creationBurst" yaml:"creationBurst"`
	CreationEviction   time.Duration `json:"creationEviction" yaml:"creationEviction"`
}

// StorefrontConfig defines storefront behaviour
type StorefrontConfig struct {
	// Flat shipping fee added to every order, in the base currency
	ShippingFee int64 `json:"shippingFee" yaml:"shippingFee"`

	// Prefix of generated order references, e.g. VORA-2025-XXXXXX
	ReferencePrefix string `json:"referencePrefix" yaml:"referencePrefix"`

	// Artificial delay before a tracking lookup answers
	TrackingDelay time.Duration `json:"trackingDelay" yaml:"trackingDelay"`

	// Number of catalog products highlighted on the home page
	HomeHighlights int `json:"homeHighlights" yaml:"homeHighlights"`

	// Number of related products shown on a product page
	RelatedLimit int `json:"relatedLimit" yaml:"relatedLimit"`
}

// GeminiConfig defines the generative text collaborator
type GeminiConfig struct {
	// An empty APIKey disables the collaborator; every call returns its fallback
	APIKey      string        `json:"apiKey" yaml:"apiKey"`
	Model       string        `json:"model" yaml:"model"`
	Temperature float32       `json:"temperature" yaml:"temperature"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout"`
}

// AssistantConfig defines per-session rate limits for copywriter calls
type AssistantConfig struct {
	RequestsPerMinute float64       `json:"requestsPerMinute" yaml:"requestsPerMinute"`
	Burst             int           `json:"burst" yaml:"burst"`
	IdleEviction      time.Duration `json:"idleEviction" yaml:"idleEviction"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// MetricsConfig defines the metrics endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: STOREFRONT_SHIPPINGFEE -> storefront.shippingFee (not storefront.shippingfee)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults fills optional sections so the rest of the application can rely on them.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.TokenTTL <= 0 {
		cfg.Session.TokenTTL = defaultSessionTokenTTL
	}
	if cfg.Session.PurgeInterval <= 0 {
		cfg.Session.PurgeInterval = defaultSessionPurge
	}
	if cfg.Session.CreationsPerMinute <= 0 {
		cfg.Session.CreationsPerMinute = defaultSessionCreateRPM
	}
	if cfg.Session.CreationBurst <= 0 {
		cfg.Session.CreationBurst = defaultSessionCreateBurst
	}
	if cfg.Session.CreationEviction <= 0 {
		cfg.Session.CreationEviction = defaultAssistantEviction
	}

	if cfg.Storefront == nil {
		cfg.Storefront = &StorefrontConfig{}
	}
	if cfg.Storefront.ShippingFee <= 0 {
		cfg.Storefront.ShippingFee = defaultShippingFee
	}
	if cfg.Storefront.ReferencePrefix == "" {
		cfg.Storefront.ReferencePrefix = defaultReferencePrefix
	}
	if cfg.Storefront.TrackingDelay <= 0 {
		cfg.Storefront.TrackingDelay = defaultTrackingDelay
	}
	if cfg.Storefront.HomeHighlights <= 0 {
		cfg.Storefront.HomeHighlights = defaultHomeHighlights
	}
	if cfg.Storefront.RelatedLimit <= 0 {
		cfg.Storefront.RelatedLimit = defaultRelatedLimit
	}

	if cfg.Gemini == nil {
		cfg.Gemini = &GeminiConfig{}
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = defaultGeminiModel
	}
	if cfg.Gemini.Temperature <= 0 {
		cfg.Gemini.Temperature = defaultGeminiTemperature
	}
	if cfg.Gemini.Timeout <= 0 {
		cfg.Gemini.Timeout = defaultGeminiTimeout
	}

	if cfg.Assistant == nil {
		cfg.Assistant = &AssistantConfig{}
	}
	if cfg.Assistant.RequestsPerMinute <= 0 {
		cfg.Assistant.RequestsPerMinute = defaultAssistantRPM
	}
	if cfg.Assistant.Burst <= 0 {
		cfg.Assistant.Burst = defaultAssistantBurst
	}
	if cfg.Assistant.IdleEviction <= 0 {
		cfg.Assistant.IdleEviction = defaultAssistantEviction
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}
	if cfg.QRCode.ErrorCorrectionLevel == "" {
		cfg.QRCode.ErrorCorrectionLevel = defaultQRCodeLevel
	}

	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{Enabled: true}
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
