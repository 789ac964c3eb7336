package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velobpa/adyen-connector/internal/config"
	"github.com/velobpa/adyen-connector/internal/domain"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ADYEN_MERCHANT_ACCOUNT", "TestMerchant")
	t.Setenv("ADYEN_API_KEY", "key")
	t.Setenv("ADYEN_HMAC_KEY", "ABCD")
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 9090, cfg.Server.MetricsPort)
	assert.Equal(t, "test", cfg.Adyen.Environment)
	assert.Equal(t, 30, cfg.Adyen.Timeout)
	assert.Equal(t, "/webhooks/adyen", cfg.Webhook.Path)
	assert.True(t, cfg.Webhook.ValidateHMAC)
	assert.True(t, cfg.Webhook.EnforceMerchantScope)
	assert.False(t, cfg.Webhook.AcceptAllEvents)
	assert.Contains(t, cfg.Webhook.AcceptedEvents, domain.EventAuthorisation)
	assert.Equal(t, "env", cfg.Secrets.Backend)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("ADYEN_ENVIRONMENT", "live-eu")
	t.Setenv("ADYEN_LIVE_URL_PREFIX", "1797a841fbb37ca7-AdyenDemo")
	t.Setenv("WEBHOOK_ACCEPTED_EVENTS", "AUTHORISATION, REFUND,,CAPTURE")
	t.Setenv("DELIVERY_SINK_URLS", "https://a.example.com/hook,https://b.example.com/hook")
	t.Setenv("WEBHOOK_RATE_LIMIT", "12.5")

	cfg, err := config.LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "live-eu", cfg.Adyen.Environment)
	assert.Equal(t, []string{"AUTHORISATION", "REFUND", "CAPTURE"}, cfg.Webhook.AcceptedEvents)
	assert.Len(t, cfg.Delivery.SinkURLs, 2)
	assert.Equal(t, 12.5, cfg.Webhook.RateLimit)
}

func TestLoadFromEnv_RequiredFields(t *testing.T) {
	t.Run("merchant account", func(t *testing.T) {
		t.Setenv("ADYEN_MERCHANT_ACCOUNT", "")
		t.Setenv("ADYEN_API_KEY", "key")
		_, err := config.LoadFromEnv()
		assert.ErrorContains(t, err, "ADYEN_MERCHANT_ACCOUNT")
	})

	t.Run("api key with env backend", func(t *testing.T) {
		t.Setenv("ADYEN_MERCHANT_ACCOUNT", "TestMerchant")
		t.Setenv("ADYEN_API_KEY", "")
		_, err := config.LoadFromEnv()
		assert.ErrorContains(t, err, "ADYEN_API_KEY")
	})

	t.Run("hmac key required when validation enabled", func(t *testing.T) {
		t.Setenv("ADYEN_MERCHANT_ACCOUNT", "TestMerchant")
		t.Setenv("ADYEN_API_KEY", "key")
		t.Setenv("ADYEN_HMAC_KEY", "")
		_, err := config.LoadFromEnv()
		assert.ErrorContains(t, err, "ADYEN_HMAC_KEY")
	})

	t.Run("remote backend defers credential checks", func(t *testing.T) {
		t.Setenv("ADYEN_MERCHANT_ACCOUNT", "TestMerchant")
		t.Setenv("ADYEN_API_KEY", "")
		t.Setenv("SECRETS_BACKEND", "vault")
		cfg, err := config.LoadFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "vault", cfg.Secrets.Backend)
	})
}
