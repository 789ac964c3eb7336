package adyen

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/velobpa/adyen-connector/internal/adapters/ports"
	"github.com/velobpa/adyen-connector/internal/domain"
)

// checkoutVersion pins the Checkout API version all endpoints run against
const checkoutVersion = "/v71"

type checkoutAdapter struct {
	client *Client
}

// NewCheckoutAdapter creates an adapter for the Checkout API
func NewCheckoutAdapter(client *Client) ports.CheckoutAdapter {
	return &checkoutAdapter{client: client}
}

// mergeOptions folds caller-supplied extras into a request body. Explicit
// fields win over options with the same key having been set first.
func mergeOptions(body map[string]interface{}, opts map[string]interface{}) map[string]interface{} {
	for k, v := range opts {
		body[k] = v
	}
	return body
}

func (a *checkoutAdapter) CreateSession(ctx context.Context, req *ports.CreateSessionRequest) (*ports.SessionResponse, error) {
	body := mergeOptions(map[string]interface{}{
		"merchantAccount": a.client.MerchantAccount(),
		"amount":          domain.MinorUnits(req.Amount, req.Currency),
		"reference":       req.Reference,
		"returnUrl":       req.ReturnURL,
	}, req.AdditionalOptions)

	var resp ports.SessionResponse
	if err := a.client.do(ctx, http.MethodPost, APICheckout, checkoutVersion+"/sessions", body, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *checkoutAdapter) GetSession(ctx context.Context, req *ports.GetSessionRequest) (*ports.SessionResponse, error) {
	var query url.Values
	if req.SessionResult != "" {
		query = url.Values{"sessionResult": {req.SessionResult}}
	}

	var resp ports.SessionResponse
	endpoint := fmt.Sprintf("%s/sessions/%s", checkoutVersion, req.SessionID)
	if err := a.client.do(ctx, http.MethodGet, APICheckout, endpoint, nil, query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *checkoutAdapter) GetPaymentMethods(ctx context.Context, req *ports.PaymentMethodsRequest) (*ports.PaymentMethodsResponse, error) {
	body := mergeOptions(map[string]interface{}{
		"merchantAccount": a.client.MerchantAccount(),
	}, req.AdditionalOptions)
	if req.Currency != "" {
		body["amount"] = domain.Amount{Value: 0, Currency: req.Currency}
	}

	var resp ports.PaymentMethodsResponse
	if err := a.client.do(ctx, http.MethodPost, APICheckout, checkoutVersion+"/paymentMethods", body, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *checkoutAdapter) CreatePayment(ctx context.Context, req *ports.CreatePaymentRequest) (*ports.PaymentResponse, error) {
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
	case "storedPaymentMethod":
		paymentMethod["storedPaymentMethodId"] = req.StoredPaymentMethodID
	}

	body := mergeOptions(map[string]interface{}{
		"merchantAccount": a.client.MerchantAccount(),
		"amount":          domain.MinorUnits(req.Amount, req.Currency),
		"reference":       req.Reference,
		"returnUrl":       req.ReturnURL,
		"paymentMethod":   paymentMethod,
	}, req.AdditionalOptions)

	var resp ports.PaymentResponse
	if err := a.client.do(ctx, http.MethodPost, APICheckout, checkoutVersion+"/payments", body, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *checkoutAdapter) SubmitDetails(ctx context.Context, req *ports.SubmitDetailsRequest) (*ports.PaymentResponse, error) {
	body := map[string]interface{}{
		"details": req.Details,
	}
	if req.PaymentData != "" {
		body["paymentData"] = req.PaymentData
	}

	var resp ports.PaymentResponse
	if err := a.client.do(ctx, http.MethodPost, APICheckout, checkoutVersion+"/payments/details", body, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *checkoutAdapter) GetCardDetails(ctx context.Context, req *ports.CardDetailsRequest) (*ports.CardDetailsResponse, error) {
	body := map[string]interface{}{
		"merchantAccount": a.client.MerchantAccount(),
		"cardNumber":      req.CardNumber,
	}

	var resp ports.CardDetailsResponse
	if err := a.client.do(ctx, http.MethodPost, APICheckout, checkoutVersion+"/cardDetails", body, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
