package ports

import "context"

// StoredPaymentMethod is one tokenized payment method on file for a shopper
type StoredPaymentMethod struct {
	ID               string `json:"id"`
	Type             string `json:"type"`
	Brand            string `json:"brand,omitempty"`
	LastFour         string `json:"lastFour,omitempty"`
	ExpiryMonth      string `json:"expiryMonth,omitempty"`
	ExpiryYear       string `json:"expiryYear,omitempty"`
	HolderName       string `json:"holderName,omitempty"`
	ShopperReference string `json:"shopperReference,omitempty"`
	IBAN             string `json:"iban,omitempty"`
	OwnerName        string `json:"ownerName,omitempty"`
}

// ListStoredPaymentMethodsRequest lists tokens for one shopper
type ListStoredPaymentMethodsRequest struct {
	ShopperReference string
}

// ListStoredPaymentMethodsResponse carries the shopper's stored methods
type ListStoredPaymentMethodsResponse struct {
	ShopperReference     string                `json:"shopperReference"`
	MerchantAccount      string                `json:"merchantAccount"`
	StoredPaymentMethods []StoredPaymentMethod `json:"storedPaymentMethods"`
}

// CreateStoredPaymentMethodRequest tokenizes a payment method
type CreateStoredPaymentMethodRequest struct {
	ShopperReference  string
	PaymentMethodType string // "scheme" or "sepadirectdebit"
	// Set when PaymentMethodType is "scheme"
	Card       *CardFields
	HolderName string
	// Set when PaymentMethodType is "sepadirectdebit"
	IBAN              string
	OwnerName         string
	AdditionalOptions map[string]interface{}
}

// DeleteStoredPaymentMethodRequest removes a token
type DeleteStoredPaymentMethodRequest struct {
	StoredPaymentMethodID string
}

// RecurringAdapter manages stored payment methods
type RecurringAdapter interface {
	ListStoredPaymentMethods(ctx context.Context, req *ListStoredPaymentMethodsRequest) (*ListStoredPaymentMethodsResponse, error)
	CreateStoredPaymentMethod(ctx context.Context, req *CreateStoredPaymentMethodRequest) (*StoredPaymentMethod, error)
	DeleteStoredPaymentMethod(ctx context.Context, req *DeleteStoredPaymentMethodRequest) error
}
