package ports

import (
	"context"

	"github.com/velobpa/adyen-connector/internal/domain"
)

// CreateSessionRequest contains parameters for a hosted checkout session
type CreateSessionRequest struct {
	Amount    float64 // Major units; converted to minor units on the wire
	Currency  string
	Reference string
	ReturnURL string
	// Optional fields merged into the request body as-is
	AdditionalOptions map[string]interface{}
}

// SessionResponse is the created or retrieved checkout session
type SessionResponse struct {
	ID          string        `json:"id"`
	SessionData string        `json:"sessionData,omitempty"`
	Amount      domain.Amount `json:"amount"`
	Reference   string        `json:"reference"`
	ReturnURL   string        `json:"returnUrl,omitempty"`
	ExpiresAt   string        `json:"expiresAt,omitempty"`
	Status      string        `json:"status,omitempty"`
}

// GetSessionRequest retrieves an existing session, optionally with its result
type GetSessionRequest struct {
	SessionID     string
	SessionResult string
}

// PaymentMethodsRequest lists payment methods available to the merchant
type PaymentMethodsRequest struct {
	Currency          string // When set, sent as a zero-value amount filter
	AdditionalOptions map[string]interface{}
}

// PaymentMethodsResponse lists available payment methods
type PaymentMethodsResponse struct {
	PaymentMethods []PaymentMethodDetail `json:"paymentMethods"`
}

// PaymentMethodDetail describes one available payment method
type PaymentMethodDetail struct {
	Type   string   `json:"type"`
	Name   string   `json:"name"`
	Brands []string `json:"brands,omitempty"`
}

// CardFields carries client-side encrypted card data
type CardFields struct {
	EncryptedCardNumber   string
	EncryptedExpiryMonth  string
	EncryptedExpiryYear   string
	EncryptedSecurityCode string
}

// CreatePaymentRequest initiates a payment
type CreatePaymentRequest struct {
	Amount            float64
	Currency          string
	Reference         string
	ReturnURL         string
	PaymentMethodType string // e.g. "scheme", "storedPaymentMethod", "ideal"
	// Set when PaymentMethodType is "scheme"
	Card *CardFields
	// Set when PaymentMethodType is "storedPaymentMethod"
	StoredPaymentMethodID string
	AdditionalOptions     map[string]interface{}
}

// PaymentResponse is the result of a payment or details submission
type PaymentResponse struct {
	PSPReference      string                 `json:"pspReference,omitempty"`
	ResultCode        string                 `json:"resultCode"`
	Amount            domain.Amount          `json:"amount,omitempty"`
	MerchantReference string                 `json:"merchantReference,omitempty"`
	RefusalReason     string                 `json:"refusalReason,omitempty"`
	Action            map[string]interface{} `json:"action,omitempty"`
}

// SubmitDetailsRequest completes a payment that required a redirect or challenge
type SubmitDetailsRequest struct {
	Details     map[string]interface{}
	PaymentData string
}

// CardDetailsRequest looks up brand and routing details for a card number
type CardDetailsRequest struct {
	CardNumber string
}

// CardDetailsResponse describes the brands that can route a card
type CardDetailsResponse struct {
	Brands []struct {
		Type      string `json:"type"`
		Supported bool   `json:"supported"`
	} `json:"brands"`
}

// CheckoutAdapter defines outbound operations against the Checkout API
type CheckoutAdapter interface {
	CreateSession(ctx context.Context, req *CreateSessionRequest) (*SessionResponse, error)
	GetSession(ctx context.Context, req *GetSessionRequest) (*SessionResponse, error)
	GetPaymentMethods(ctx context.Context, req *PaymentMethodsRequest) (*PaymentMethodsResponse, error)
	CreatePayment(ctx context.Context, req *CreatePaymentRequest) (*PaymentResponse, error)
	SubmitDetails(ctx context.Context, req *SubmitDetailsRequest) (*PaymentResponse, error)
	GetCardDetails(ctx context.Context, req *CardDetailsRequest) (*CardDetailsResponse, error)
}
