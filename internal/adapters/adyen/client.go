package adyen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/velobpa/adyen-connector/internal/adapters/ports"
	"github.com/velobpa/adyen-connector/internal/domain"
	"github.com/velobpa/adyen-connector/pkg/observability"
)

// Environment selects the Adyen platform to talk to
type Environment string

const (
	EnvironmentTest   Environment = "test"
	EnvironmentLiveEU Environment = "live-eu"
	EnvironmentLiveUS Environment = "live-us"
	EnvironmentLiveAU Environment = "live-au"
)

// API identifies one of Adyen's API families, each with its own host
type API string

const (
	APICheckout        API = "checkout"
	APIManagement      API = "management"
	APIDisputes        API = "disputes"
	APIBalancePlatform API = "balancePlatform"
)

// BaseURL returns the base URL for the given environment and API family.
// Live checkout hosts require the account's unique live URL prefix.
func BaseURL(env Environment, api API, liveURLPrefix string) string {
	switch api {
	case APICheckout:
		switch env {
		case EnvironmentLiveEU:
			if liveURLPrefix != "" {
				return fmt.Sprintf("https://%s-checkout-live.adyen.com/checkout", liveURLPrefix)
			}
			return "https://checkout-live.adyen.com"
		case EnvironmentLiveUS:
			if liveURLPrefix != "" {
				return fmt.Sprintf("https://%s-checkout-live-us.adyen.com/checkout", liveURLPrefix)
			}
			return "https://checkout-live-us.adyen.com"
		case EnvironmentLiveAU:
			if liveURLPrefix != "" {
				return fmt.Sprintf("https://%s-checkout-live-au.adyen.com/checkout", liveURLPrefix)
			}
			return "https://checkout-live-au.adyen.com"
		default:
			return "https://checkout-test.adyen.com"
		}
	case APIManagement:
		if env == EnvironmentTest {
			return "https://management-test.adyen.com"
		}
		return "https://management-live.adyen.com"
	case APIDisputes:
		if env == EnvironmentTest {
			return "https://ca-test.adyen.com/ca/services/DisputeService"
		}
		return "https://ca-live.adyen.com/ca/services/DisputeService"
	case APIBalancePlatform:
		if env == EnvironmentTest {
			return "https://balanceplatform-api-test.adyen.com"
		}
		return "https://balanceplatform-api-live.adyen.com"
	}
	return ""
}

// ClientConfig contains configuration for the Adyen API client
type ClientConfig struct {
	Environment     Environment
	APIKey          string // Sent as the x-API-key header; never logged
	MerchantAccount string
	LiveURLPrefix   string // Required for live checkout hosts
	Timeout         time.Duration
}

// DefaultClientConfig returns configuration pointed at the test platform
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Environment: EnvironmentTest,
		Timeout:     30 * time.Second,
	}
}

// Client performs authenticated JSON requests against the Adyen APIs.
// Resource adapters in this package share one Client.
type Client struct {
	config     *ClientConfig
	httpClient ports.HTTPClient
	logger     ports.Logger
}

// NewClient creates a new Adyen API client
func NewClient(config *ClientConfig, httpClient ports.HTTPClient, logger ports.Logger) *Client {
	return &Client{
		config:     config,
		httpClient: httpClient,
		logger:     logger,
	}
}

// MerchantAccount returns the configured merchant account identifier
func (c *Client) MerchantAccount() string {
	return c.config.MerchantAccount
}

// IdempotencyKey generates a unique key for POST requests so Adyen can
// de-duplicate retried submissions
func IdempotencyKey() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString())
}

// apiErrorBody is Adyen's standard error envelope
type apiErrorBody struct {
	Status       int    `json:"status"`
	ErrorCode    string `json:"errorCode"`
	Message      string `json:"message"`
	ErrorType    string `json:"errorType"`
	PSPReference string `json:"pspReference"`
}

// do executes one JSON request. A nil body sends no payload; out may be nil
// when the caller ignores the response body.
func (c *Client) do(ctx context.Context, method string, api API, endpoint string, body interface{}, query url.Values, out interface{}) error {
	base := BaseURL(c.config.Environment, api, c.config.LiveURLPrefix)
	reqURL := base + endpoint
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return domain.WrapError(domain.ErrorCodeInternalError, "marshal request body", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return domain.WrapError(domain.ErrorCodeInternalError, "create request", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-API-key", c.config.APIKey)
	if method == http.MethodPost {
		req.Header.Set("Idempotency-Key", IdempotencyKey())
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		observability.ObserveGatewayRequest(string(api), method, 0, elapsed)
		c.logger.Error("Adyen API request failed",
			ports.String("api", string(api)),
			ports.String("endpoint", endpoint),
			ports.String("elapsed", elapsed.String()),
			ports.Err(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return domain.WrapError(domain.ErrorCodeGatewayTimeout, "Adyen API request timed out", err)
		}
		return domain.WrapError(domain.ErrorCodeGatewayError, "Adyen API request failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.WrapError(domain.ErrorCodeGatewayError, "read response body", err)
	}

	observability.ObserveGatewayRequest(string(api), method, resp.StatusCode, elapsed)
	c.logger.Debug("Adyen API response",
		ports.String("api", string(api)),
		ports.String("endpoint", endpoint),
		ports.Int("status_code", resp.StatusCode),
		ports.String("elapsed", elapsed.String()),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.mapAPIError(resp.StatusCode, respBody, api, endpoint)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return domain.WrapError(domain.ErrorCodeGatewayError, "decode response body", err)
		}
	}

	return nil
}

// mapAPIError converts a non-2xx response into a DomainError. The API key is
// never part of the error.
func (c *Client) mapAPIError(status int, body []byte, api API, endpoint string) error {
	var apiErr apiErrorBody
	_ = json.Unmarshal(body, &apiErr)

	message := apiErr.Message
	if message == "" {
		message = fmt.Sprintf("Adyen API returned status %d", status)
	}

	code := domain.ErrorCodeGatewayError
	if status >= 400 && status < 500 {
		code = domain.ErrorCodeGatewayRejected
	}

	c.logger.Warn("Adyen API returned error",
		ports.String("api", string(api)),
		ports.String("endpoint", endpoint),
		ports.Int("status_code", status),
		ports.String("error_code", apiErr.ErrorCode),
	)

	derr := domain.NewDomainError(code, message).
		WithDetail("status", status).
		WithDetail("api", string(api))
	if apiErr.ErrorCode != "" {
		derr = derr.WithDetail("errorCode", apiErr.ErrorCode)
	}
	if apiErr.PSPReference != "" {
		derr = derr.WithDetail("pspReference", apiErr.PSPReference)
	}
	return derr
}
