package delivery_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/velobpa/adyen-connector/internal/domain"
	"github.com/velobpa/adyen-connector/internal/services/delivery"
	"github.com/velobpa/adyen-connector/test/mocks"
)

// immediateBackoff removes retry delays from tests
type immediateBackoff struct{}

func (immediateBackoff) NextDelay(attempt int) time.Duration { return 0 }

func testRecords() []domain.NotificationRecord {
	return []domain.NotificationRecord{
		{EventCode: domain.EventAuthorisation, Success: true, PSPReference: "psp-1", Live: true},
	}
}

func newService(opts delivery.Options, httpClient *mocks.MockHTTPClient) *delivery.Service {
	return delivery.NewService(opts, httpClient, zap.NewNop()).WithBackoff(immediateBackoff{})
}

func TestDeliver_SignsAndPostsEnvelope(t *testing.T) {
	mockHTTP := mocks.NewMockHTTPClient(nil)
	service := newService(delivery.Options{
		SinkURLs:      []string{"https://sink.example.com/hook"},
		SigningSecret: "sink-secret",
	}, mockHTTP)

	err := service.Deliver(context.Background(), testRecords())
	require.NoError(t, err)

	require.Len(t, mockHTTP.Calls, 1)
	req := mockHTTP.Calls[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "https://sink.example.com/hook", req.URL.String())
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.NotEmpty(t, req.Header.Get("X-Webhook-Timestamp"))

	payload, err := io.ReadAll(req.Body)
	require.NoError(t, err)

	var envelope delivery.Envelope
	require.NoError(t, json.Unmarshal(payload, &envelope))
	require.Len(t, envelope.Notifications, 1)
	assert.Equal(t, "psp-1", envelope.Notifications[0].PSPReference)

	mac := hmac.New(sha256.New, []byte("sink-secret"))
	mac.Write(payload)
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), req.Header.Get("X-Webhook-Signature"))
}

func TestDeliver_NoSinksIsNoop(t *testing.T) {
	mockHTTP := mocks.NewMockHTTPClient(nil)
	service := newService(delivery.Options{}, mockHTTP)

	require.NoError(t, service.Deliver(context.Background(), testRecords()))
	assert.Empty(t, mockHTTP.Calls)
}

func TestDeliver_RetriesServerErrors(t *testing.T) {
	var calls int
	mockHTTP := mocks.NewMockHTTPClient(func(req *http.Request) (*http.Response, error) {
		calls++
		status := http.StatusBadGateway
		if calls == 3 {
			status = http.StatusOK
		}
		return &http.Response{
			StatusCode: status,
			Body:       http.NoBody,
			Header:     make(http.Header),
		}, nil
	})
	service := newService(delivery.Options{
		SinkURLs:   []string{"https://sink.example.com/hook"},
		MaxRetries: 3,
	}, mockHTTP)

	err := service.Deliver(context.Background(), testRecords())
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDeliver_DoesNotRetryClientErrors(t *testing.T) {
	var calls int
	mockHTTP := mocks.NewMockHTTPClient(func(req *http.Request) (*http.Response, error) {
		calls++
		return &http.Response{
			StatusCode: http.StatusUnauthorized,
			Body:       http.NoBody,
			Header:     make(http.Header),
		}, nil
	})
	service := newService(delivery.Options{
		SinkURLs:   []string{"https://sink.example.com/hook"},
		MaxRetries: 3,
	}, mockHTTP)

	err := service.Deliver(context.Background(), testRecords())
	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.True(t, domain.IsDomainError(err, domain.ErrorCodeDeliveryFailed))
}

func TestDeliver_ExhaustedRetriesFails(t *testing.T) {
	var calls int
	mockHTTP := mocks.NewMockHTTPClient(func(req *http.Request) (*http.Response, error) {
		calls++
		return &http.Response{
			StatusCode: http.StatusServiceUnavailable,
			Body:       http.NoBody,
			Header:     make(http.Header),
		}, nil
	})
	service := newService(delivery.Options{
		SinkURLs:   []string{"https://sink.example.com/hook"},
		MaxRetries: 2,
	}, mockHTTP)

	err := service.Deliver(context.Background(), testRecords())
	require.Error(t, err)
	assert.Equal(t, 3, calls) // initial attempt + 2 retries
	assert.True(t, domain.IsDomainError(err, domain.ErrorCodeDeliveryFailed))
}

func TestDeliver_OneFailingSinkDoesNotBlockOthers(t *testing.T) {
	mockHTTP := mocks.NewMockHTTPClient(func(req *http.Request) (*http.Response, error) {
		status := http.StatusOK
		if req.URL.Host == "bad.example.com" {
			status = http.StatusInternalServerError
		}
		return &http.Response{
			StatusCode: status,
			Body:       http.NoBody,
			Header:     make(http.Header),
		}, nil
	})
	service := newService(delivery.Options{
		SinkURLs: []string{"https://bad.example.com/hook", "https://good.example.com/hook"},
	}, mockHTTP)

	err := service.Deliver(context.Background(), testRecords())
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrorCodeDeliveryFailed))

	var goodCalls int
	for _, req := range mockHTTP.Calls {
		if req.URL.Host == "good.example.com" {
			goodCalls++
		}
	}
	assert.Equal(t, 1, goodCalls)
}
