package adyen

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/velobpa/adyen-connector/internal/adapters/ports"
)

type recurringAdapter struct {
	client *Client
}

// NewRecurringAdapter creates an adapter for stored payment methods
func NewRecurringAdapter(client *Client) ports.RecurringAdapter {
	return &recurringAdapter{client: client}
}

func (a *recurringAdapter) ListStoredPaymentMethods(ctx context.Context, req *ports.ListStoredPaymentMethodsRequest) (*ports.ListStoredPaymentMethodsResponse, error) {
	query := url.Values{
		"merchantAccount":  {a.client.MerchantAccount()},
		"shopperReference": {req.ShopperReference},
	}

	var resp ports.ListStoredPaymentMethodsResponse
	if err := a.client.do(ctx, http.MethodGet, APICheckout, checkoutVersion+"/storedPaymentMethods", nil, query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *recurringAdapter) CreateStoredPaymentMethod(ctx context.Context, req *ports.CreateStoredPaymentMethodRequest) (*ports.StoredPaymentMethod, error) {
	paymentMethod := map[string]interface{}{
		"type": req.PaymentMethodType,
	}
	switch req.PaymentMethodType {
	case "scheme":
		if req.Card != nil {
			paymentMethod["encryptedCardNumber"] = req.Card.EncryptedCardNumber
			paymentMethod["encryptedExpiryMonth"] = req.Card.EncryptedExpiryMonth
			paymentMethod["encryptedExpiryYear"] = req.Card.EncryptedExpiryYear
			paymentMethod["encryptedSecurityCode"] = req.Card.EncryptedSecurityCode
		}
		if req.HolderName != "" {
			paymentMethod["holderName"] = req.HolderName
		}
	case "sepadirectdebit":
		paymentMethod["iban"] = req.IBAN
		paymentMethod["ownerName"] = req.OwnerName
	}

	body := mergeOptions(map[string]interface{}{
		"merchantAccount":  a.client.MerchantAccount(),
		"shopperReference": req.ShopperReference,
		"paymentMethod":    paymentMethod,
	}, req.AdditionalOptions)

	var resp ports.StoredPaymentMethod
	if err := a.client.do(ctx, http.MethodPost, APICheckout, checkoutVersion+"/storedPaymentMethods", body, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *recurringAdapter) DeleteStoredPaymentMethod(ctx context.Context, req *ports.DeleteStoredPaymentMethodRequest) error {
	query := url.Values{"merchantAccount": {a.client.MerchantAccount()}}
	endpoint := fmt.Sprintf("%s/storedPaymentMethods/%s", checkoutVersion, req.StoredPaymentMethodID)
	return a.client.do(ctx, http.MethodDelete, APICheckout, endpoint, nil, query, nil)
}
