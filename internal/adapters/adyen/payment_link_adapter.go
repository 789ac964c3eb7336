package adyen

import (
	"context"
	"fmt"
	"net/http"

	"github.com/velobpa/adyen-connector/internal/adapters/ports"
	"github.com/velobpa/adyen-connector/internal/domain"
)

type paymentLinkAdapter struct {
	client *Client
}

// NewPaymentLinkAdapter creates an adapter for Pay by Link
func NewPaymentLinkAdapter(client *Client) ports.PaymentLinkAdapter {
	return &paymentLinkAdapter{client: client}
}

func (a *paymentLinkAdapter) Create(ctx context.Context, req *ports.CreatePaymentLinkRequest) (*ports.PaymentLinkResponse, error) {
	body := mergeOptions(map[string]interface{}{
		"merchantAccount": a.client.MerchantAccount(),
		"amount":          domain.MinorUnits(req.Amount, req.Currency),
		"reference":       req.Reference,
	}, req.AdditionalOptions)

	var resp ports.PaymentLinkResponse
	if err := a.client.do(ctx, http.MethodPost, APICheckout, checkoutVersion+"/paymentLinks", body, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *paymentLinkAdapter) Get(ctx context.Context, linkID string) (*ports.PaymentLinkResponse, error) {
	var resp ports.PaymentLinkResponse
	endpoint := fmt.Sprintf("%s/paymentLinks/%s", checkoutVersion, linkID)
	if err := a.client.do(ctx, http.MethodGet, APICheckout, endpoint, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *paymentLinkAdapter) Update(ctx context.Context, linkID, status string) (*ports.PaymentLinkResponse, error) {
	body := map[string]interface{}{"status": status}

	var resp ports.PaymentLinkResponse
	endpoint := fmt.Sprintf("%s/paymentLinks/%s", checkoutVersion, linkID)
	if err := a.client.do(ctx, http.MethodPatch, APICheckout, endpoint, body, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
