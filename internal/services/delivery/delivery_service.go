package delivery

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/velobpa/adyen-connector/internal/adapters/ports"
	"github.com/velobpa/adyen-connector/internal/domain"
	"github.com/velobpa/adyen-connector/pkg/observability"
	"github.com/velobpa/adyen-connector/pkg/resilience"
)

// Options configures downstream forwarding
type Options struct {
	SinkURLs      []string
	SigningSecret string
	MaxRetries    int
}

// Service forwards accepted notification records to configured sink
// endpoints. Each delivery is signed so sinks can authenticate the
// payload the same way this connector authenticates Adyen's.
type Service struct {
	opts       Options
	httpClient ports.HTTPClient
	backoff    resilience.BackoffStrategy
	logger     *zap.Logger
}

// Envelope is the payload posted to each sink
type Envelope struct {
	Notifications []domain.NotificationRecord `json:"notifications"`
	DeliveredAt   time.Time                   `json:"deliveredAt"`
}

// NewService creates a delivery service
func NewService(opts Options, httpClient ports.HTTPClient, logger *zap.Logger) *Service {
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	return &Service{
		opts:       opts,
		httpClient: httpClient,
		backoff:    resilience.DeliveryBackoff(),
		logger:     logger,
	}
}

// WithBackoff replaces the retry backoff strategy
func (s *Service) WithBackoff(backoff resilience.BackoffStrategy) *Service {
	s.backoff = backoff
	return s
}

// Deliver posts the records to every configured sink. Sinks are independent:
// one sink failing does not stop delivery to the others. An error is returned
// when at least one sink could not be reached after all retries.
func (s *Service) Deliver(ctx context.Context, records []domain.NotificationRecord) error {
	if len(s.opts.SinkURLs) == 0 || len(records) == 0 {
		return nil
	}

	payload, err := json.Marshal(Envelope{
		Notifications: records,
		DeliveredAt:   time.Now().UTC(),
	})
	if err != nil {
		return domain.WrapError(domain.ErrorCodeInternalError, "marshal delivery payload", err)
	}

	var failed int
	for _, sinkURL := range s.opts.SinkURLs {
		if err := s.deliverToSink(ctx, sinkURL, payload); err != nil {
			s.logger.Error("delivery to sink failed",
				zap.Error(err),
				zap.String("sink_url", sinkURL),
				zap.Int("records", len(records)),
			)
			failed++
			continue
		}
	}

	if failed > 0 {
		return domain.NewDomainError(domain.ErrorCodeDeliveryFailed,
			fmt.Sprintf("delivery failed for %d of %d sinks", failed, len(s.opts.SinkURLs)))
	}
	return nil
}

// deliverToSink posts one payload with retries. Client errors (4xx) are not
// retried: the sink understood the request and rejected it.
func (s *Service) deliverToSink(ctx context.Context, sinkURL string, payload []byte) error {
	var lastErr error

	for attempt := 0; attempt <= s.opts.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := s.backoff.NextDelay(attempt - 1)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		lastErr = s.attempt(ctx, sinkURL, payload)
		if lastErr == nil {
			observability.CountDeliveryAttempt(sinkURL, "success")
			return nil
		}
		if domain.IsDomainError(lastErr, domain.ErrorCodeDeliveryFailed) {
			observability.CountDeliveryAttempt(sinkURL, "retry")
			s.logger.Warn("delivery attempt failed",
				zap.Error(lastErr),
				zap.String("sink_url", sinkURL),
				zap.Int("attempt", attempt+1),
			)
			continue
		}
		// Rejected outright; retrying will not change the outcome
		observability.CountDeliveryAttempt(sinkURL, "rejected")
		return lastErr
	}

	observability.CountDeliveryAttempt(sinkURL, "exhausted")
	return lastErr
}

func (s *Service) attempt(ctx context.Context, sinkURL string, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sinkURL, bytes.NewReader(payload))
	if err != nil {
		return domain.WrapError(domain.ErrorCodeInternalError, "create delivery request", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Webhook-Timestamp", time.Now().UTC().Format(time.RFC3339))
	if s.opts.SigningSecret != "" {
		req.Header.Set("X-Webhook-Signature", s.sign(payload))
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return domain.WrapError(domain.ErrorCodeDeliveryFailed, "send delivery request", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return domain.NewDomainError(domain.ErrorCodeGatewayRejected,
			fmt.Sprintf("sink rejected delivery with HTTP %d: %s", resp.StatusCode, string(body)))
	default:
		return domain.NewDomainError(domain.ErrorCodeDeliveryFailed,
			fmt.Sprintf("sink returned HTTP %d", resp.StatusCode))
	}
}

// sign creates a hex-encoded HMAC-SHA256 signature of the payload
func (s *Service) sign(payload []byte) string {
	h := hmac.New(sha256.New, []byte(s.opts.SigningSecret))
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}
