package ports

import (
	"context"

	"github.com/velobpa/adyen-connector/internal/domain"
)

// ModificationRequest targets an authorised payment by its pspReference.
// Amount and Currency are only read by operations that carry money
// (capture, refund, amount update).
type ModificationRequest struct {
	PSPReference      string
	Amount            float64
	Currency          string
	AdditionalOptions map[string]interface{}
}

// ModificationResponse acknowledges an asynchronous modification.
// The final outcome arrives later as a webhook notification.
type ModificationResponse struct {
	PSPReference         string        `json:"pspReference"`
	PaymentPSPReference  string        `json:"paymentPspReference"`
	Status               string        `json:"status"`
	Amount               domain.Amount `json:"amount,omitempty"`
	Reference            string        `json:"reference,omitempty"`
	MerchantAccount      string        `json:"merchantAccount,omitempty"`
}

// ModificationAdapter defines capture/cancel/refund/reverse operations
type ModificationAdapter interface {
	Capture(ctx context.Context, req *ModificationRequest) (*ModificationResponse, error)
	Cancel(ctx context.Context, req *ModificationRequest) (*ModificationResponse, error)
	Refund(ctx context.Context, req *ModificationRequest) (*ModificationResponse, error)
	Reverse(ctx context.Context, req *ModificationRequest) (*ModificationResponse, error)
	UpdateAmount(ctx context.Context, req *ModificationRequest) (*ModificationResponse, error)
}
