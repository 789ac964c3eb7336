package webhook_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/velobpa/adyen-connector/internal/domain"
	"github.com/velobpa/adyen-connector/internal/handlers/webhook"
)

type stubProcessor struct {
	records []domain.NotificationRecord
	err     error
	batches []*domain.Webhook
}

func (s *stubProcessor) Process(ctx context.Context, batch *domain.Webhook) ([]domain.NotificationRecord, error) {
	s.batches = append(s.batches, batch)
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

type stubDeliverer struct {
	delivered [][]domain.NotificationRecord
	err       error
}

func (s *stubDeliverer) Deliver(ctx context.Context, records []domain.NotificationRecord) error {
	s.delivered = append(s.delivered, records)
	return s.err
}

const validBody = `{"live":"true","notificationItems":[{"NotificationRequestItem":{"eventCode":"AUTHORISATION","success":"true","pspReference":"psp-1","merchantAccountCode":"TestMerchant"}}]}`

func newRequest(method, body string) *http.Request {
	return httptest.NewRequest(method, "/webhooks/adyen", strings.NewReader(body))
}

func TestHandleWebhook_AcceptsBatch(t *testing.T) {
	processor := &stubProcessor{records: []domain.NotificationRecord{{EventCode: domain.EventAuthorisation, PSPReference: "psp-1"}}}
	deliverer := &stubDeliverer{}
	handler := webhook.NewHandler(processor, deliverer, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.HandleWebhook(rec, newRequest(http.MethodPost, validBody))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[accepted]", rec.Body.String())
	require.Len(t, processor.batches, 1)
	assert.Equal(t, "true", processor.batches[0].Live)
	require.Len(t, deliverer.delivered, 1)
	assert.Equal(t, "psp-1", deliverer.delivered[0][0].PSPReference)
}

func TestHandleWebhook_RejectsNonPost(t *testing.T) {
	handler := webhook.NewHandler(&stubProcessor{}, nil, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.HandleWebhook(rec, newRequest(http.MethodGet, ""))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
}

func TestHandleWebhook_RejectsUndecodableBody(t *testing.T) {
	processor := &stubProcessor{}
	handler := webhook.NewHandler(processor, nil, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.HandleWebhook(rec, newRequest(http.MethodPost, "{not json"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, processor.batches)
}

func TestHandleWebhook_MapsProcessorErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "structural error",
			err:        domain.NewDomainError(domain.ErrorCodeWebhookInvalidPayload, "missing notification items"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "signature mismatch",
			err:        domain.NewDomainError(domain.ErrorCodeWebhookInvalidSignature, "signature does not match"),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unexpected failure",
			err:        domain.NewDomainError(domain.ErrorCodeInternalError, "boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := webhook.NewHandler(&stubProcessor{err: tt.err}, nil, zap.NewNop())

			rec := httptest.NewRecorder()
			handler.HandleWebhook(rec, newRequest(http.MethodPost, validBody))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEqual(t, "[accepted]", rec.Body.String())
		})
	}
}

func TestHandleWebhook_DeliveryFailureStillAccepts(t *testing.T) {
	processor := &stubProcessor{records: []domain.NotificationRecord{{PSPReference: "psp-1"}}}
	deliverer := &stubDeliverer{err: domain.NewDomainError(domain.ErrorCodeDeliveryFailed, "sink unreachable")}
	handler := webhook.NewHandler(processor, deliverer, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.HandleWebhook(rec, newRequest(http.MethodPost, validBody))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[accepted]", rec.Body.String())
}

func TestHandleWebhook_NoDelivererConfigured(t *testing.T) {
	processor := &stubProcessor{records: []domain.NotificationRecord{{PSPReference: "psp-1"}}}
	handler := webhook.NewHandler(processor, nil, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.HandleWebhook(rec, newRequest(http.MethodPost, validBody))

	assert.Equal(t, http.StatusOK, rec.Code)
}
