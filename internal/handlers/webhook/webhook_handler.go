package webhook

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/velobpa/adyen-connector/internal/domain"
)

// acceptedBody is the acknowledgement Adyen expects from a webhook endpoint
const acceptedBody = "[accepted]"

// Processor turns a raw webhook batch into accepted notification records
type Processor interface {
	Process(ctx context.Context, webhook *domain.Webhook) ([]domain.NotificationRecord, error)
}

// Deliverer forwards accepted records downstream
type Deliverer interface {
	Deliver(ctx context.Context, records []domain.NotificationRecord) error
}

// Handler receives Adyen webhook deliveries
type Handler struct {
	processor Processor
	deliverer Deliverer
	logger    *zap.Logger
}

// NewHandler creates a webhook handler. deliverer may be nil when no
// downstream sinks are configured.
func NewHandler(processor Processor, deliverer Deliverer, logger *zap.Logger) *Handler {
	return &Handler{
		processor: processor,
		deliverer: deliverer,
		logger:    logger,
	}
}

// HandleWebhook processes one inbound notification batch.
// POST /webhooks/adyen
func (h *Handler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	var batch domain.Webhook
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		h.logger.Warn("rejecting webhook with undecodable body", zap.Error(err))
		http.Error(w, "invalid webhook payload", http.StatusBadRequest)
		return
	}

	records, err := h.processor.Process(ctx, &batch)
	if err != nil {
		switch domain.GetErrorCode(err) {
		case domain.ErrorCodeWebhookInvalidPayload:
			h.logger.Warn("rejecting malformed webhook batch", zap.Error(err))
			http.Error(w, "invalid webhook payload", http.StatusBadRequest)
		case domain.ErrorCodeWebhookInvalidSignature:
			// Details were already logged by the processor; the response
			// stays deliberately terse.
			http.Error(w, "invalid signature", http.StatusUnauthorized)
		default:
			h.logger.Error("webhook processing failed", zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	if h.deliverer != nil && len(records) > 0 {
		// Delivery failures are not surfaced to Adyen: the batch was
		// authenticated and accepted, and retries run on our side.
		if err := h.deliverer.Deliver(ctx, records); err != nil {
			h.logger.Error("downstream delivery failed",
				zap.Error(err),
				zap.Int("records", len(records)),
			)
		}
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(acceptedBody))
}
