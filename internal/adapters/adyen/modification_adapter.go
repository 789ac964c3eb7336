package adyen

import (
	"context"
	"fmt"
	"net/http"

	"github.com/velobpa/adyen-connector/internal/adapters/ports"
	"github.com/velobpa/adyen-connector/internal/domain"
)

type modificationAdapter struct {
	client *Client
}

// NewModificationAdapter creates an adapter for payment modifications:
// captures, cancels, refunds, reversals and amount updates. All of these
// are asynchronous on Adyen's side; the response only acknowledges receipt
// and the outcome arrives as a webhook notification.
func NewModificationAdapter(client *Client) ports.ModificationAdapter {
	return &modificationAdapter{client: client}
}

func (a *modificationAdapter) modify(ctx context.Context, req *ports.ModificationRequest, action string, withAmount bool) (*ports.ModificationResponse, error) {
	body := mergeOptions(map[string]interface{}{
		"merchantAccount": a.client.MerchantAccount(),
	}, req.AdditionalOptions)
	if withAmount {
		body["amount"] = domain.MinorUnits(req.Amount, req.Currency)
	}

	var resp ports.ModificationResponse
	endpoint := fmt.Sprintf("%s/payments/%s/%s", checkoutVersion, req.PSPReference, action)
	if err := a.client.do(ctx, http.MethodPost, APICheckout, endpoint, body, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *modificationAdapter) Capture(ctx context.Context, req *ports.ModificationRequest) (*ports.ModificationResponse, error) {
	return a.modify(ctx, req, "captures", true)
}

func (a *modificationAdapter) Cancel(ctx context.Context, req *ports.ModificationRequest) (*ports.ModificationResponse, error) {
	return a.modify(ctx, req, "cancels", false)
}

func (a *modificationAdapter) Refund(ctx context.Context, req *ports.ModificationRequest) (*ports.ModificationResponse, error) {
	return a.modify(ctx, req, "refunds", true)
}

func (a *modificationAdapter) Reverse(ctx context.Context, req *ports.ModificationRequest) (*ports.ModificationResponse, error) {
	return a.modify(ctx, req, "reversals", false)
}

func (a *modificationAdapter) UpdateAmount(ctx context.Context, req *ports.ModificationRequest) (*ports.ModificationResponse, error) {
	return a.modify(ctx, req, "amountUpdates", true)
}
