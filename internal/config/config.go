package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/velobpa/adyen-connector/internal/domain"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Adyen    AdyenConfig
	Webhook  WebhookConfig
	Delivery DeliveryConfig
	Secrets  SecretsConfig
	Logger   LoggerConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port        int
	Host        string
	MetricsPort int
}

// AdyenConfig holds Adyen platform credentials and endpoints
type AdyenConfig struct {
	Environment     string // test, live-eu, live-us, live-au
	APIKey          string // x-API-key credential; never logged
	MerchantAccount string
	HMACKey         string // Hex-encoded webhook signing secret
	LiveURLPrefix   string // Account-specific prefix for live checkout hosts
	Timeout         int    // Request timeout in seconds (default: 30)
}

// WebhookConfig holds the inbound notification policy
type WebhookConfig struct {
	Path                 string
	ValidateHMAC         bool
	AcceptAllEvents      bool
	EnforceMerchantScope bool
	AcceptedEvents       []string
	RateLimit            float64 // Requests per second per client
	RateBurst            int
}

// DeliveryConfig holds downstream forwarding configuration
type DeliveryConfig struct {
	SinkURLs      []string
	SigningSecret string // Shared secret for outbound delivery signatures
	MaxRetries    int
	Timeout       int // Per-attempt timeout in seconds
}

// SecretsConfig selects where sensitive credentials are resolved from
type SecretsConfig struct {
	Backend string // env, vault, or aws
	// Names of the secrets holding the Adyen credentials when a remote
	// backend is used
	APIKeyName  string
	HMACKeyName string
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level       string // debug, info, warn, error
	Development bool
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnvAsInt("SERVER_PORT", 8080),
			Host:        getEnv("SERVER_HOST", "0.0.0.0"),
			MetricsPort: getEnvAsInt("METRICS_PORT", 9090),
		},
		Adyen: AdyenConfig{
			Environment:     getEnv("ADYEN_ENVIRONMENT", "test"),
			APIKey:          getEnv("ADYEN_API_KEY", ""),
			MerchantAccount: getEnv("ADYEN_MERCHANT_ACCOUNT", ""),
			HMACKey:         getEnv("ADYEN_HMAC_KEY", ""),
			LiveURLPrefix:   getEnv("ADYEN_LIVE_URL_PREFIX", ""),
			Timeout:         getEnvAsInt("ADYEN_TIMEOUT", 30),
		},
		Webhook: WebhookConfig{
			Path:                 getEnv("WEBHOOK_PATH", "/webhooks/adyen"),
			ValidateHMAC:         getEnvAsBool("WEBHOOK_VALIDATE_HMAC", true),
			AcceptAllEvents:      getEnvAsBool("WEBHOOK_ACCEPT_ALL_EVENTS", false),
			EnforceMerchantScope: getEnvAsBool("WEBHOOK_ENFORCE_MERCHANT_SCOPE", true),
			AcceptedEvents:       getEnvAsSlice("WEBHOOK_ACCEPTED_EVENTS", defaultAcceptedEvents()),
			RateLimit:            getEnvAsFloat("WEBHOOK_RATE_LIMIT", 50),
			RateBurst:            getEnvAsInt("WEBHOOK_RATE_BURST", 100),
		},
		Delivery: DeliveryConfig{
			SinkURLs:      getEnvAsSlice("DELIVERY_SINK_URLS", nil),
			SigningSecret: getEnv("DELIVERY_SIGNING_SECRET", ""),
			MaxRetries:    getEnvAsInt("DELIVERY_MAX_RETRIES", 3),
			Timeout:       getEnvAsInt("DELIVERY_TIMEOUT", 10),
		},
		Secrets: SecretsConfig{
			Backend:     getEnv("SECRETS_BACKEND", "env"),
			APIKeyName:  getEnv("SECRETS_ADYEN_API_KEY_NAME", "adyen-api-key"),
			HMACKeyName: getEnv("SECRETS_ADYEN_HMAC_KEY_NAME", "adyen-hmac-key"),
		},
		Logger: LoggerConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Development: getEnvAsBool("LOG_DEVELOPMENT", false),
		},
	}

	// Validate required fields. Credentials may instead arrive via a remote
	// secrets backend, so they are only required for the env backend.
	if cfg.Adyen.MerchantAccount == "" {
		return nil, fmt.Errorf("ADYEN_MERCHANT_ACCOUNT is required")
	}
	if cfg.Secrets.Backend == "env" {
		if cfg.Adyen.APIKey == "" {
			return nil, fmt.Errorf("ADYEN_API_KEY is required")
		}
		if cfg.Webhook.ValidateHMAC && cfg.Adyen.HMACKey == "" {
			return nil, fmt.Errorf("ADYEN_HMAC_KEY is required when WEBHOOK_VALIDATE_HMAC is enabled")
		}
	}

	return cfg, nil
}

// defaultAcceptedEvents covers the payment lifecycle events most hosts
// consume; override with WEBHOOK_ACCEPTED_EVENTS.
func defaultAcceptedEvents() []string {
	return []string{
		domain.EventAuthorisation,
		domain.EventCancellation,
		domain.EventCapture,
		domain.EventCaptureFailed,
		domain.EventRefund,
		domain.EventRefundFailed,
		domain.EventChargeback,
		domain.EventChargebackReversed,
	}
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
