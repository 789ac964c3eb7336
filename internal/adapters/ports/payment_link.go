package ports

import (
	"context"

	"github.com/velobpa/adyen-connector/internal/domain"
)

// CreatePaymentLinkRequest creates a shareable payment link
type CreatePaymentLinkRequest struct {
	Amount            float64
	Currency          string
	Reference         string
	AdditionalOptions map[string]interface{}
}

// PaymentLinkResponse is a created or retrieved payment link
type PaymentLinkResponse struct {
	ID        string        `json:"id"`
	URL       string        `json:"url"`
	Amount    domain.Amount `json:"amount"`
	Reference string        `json:"reference"`
	Status    string        `json:"status"`
	ExpiresAt string        `json:"expiresAt,omitempty"`
}

// PaymentLinkAdapter creates and manages payment links
type PaymentLinkAdapter interface {
	Create(ctx context.Context, req *CreatePaymentLinkRequest) (*PaymentLinkResponse, error)
	Get(ctx context.Context, linkID string) (*PaymentLinkResponse, error)
	// Update changes the link status; the only supported value is "expired"
	Update(ctx context.Context, linkID, status string) (*PaymentLinkResponse, error)
}
