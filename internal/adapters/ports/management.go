package ports

import "context"

// PageOptions controls list pagination on the Management API
type PageOptions struct {
	PageNumber int
	PageSize   int
}

// Company is an Adyen company account
type Company struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status,omitempty"`
	Description string `json:"description,omitempty"`
}

// CompanyListResponse is a page of company accounts
type CompanyListResponse struct {
	ItemsTotal int       `json:"itemsTotal"`
	PagesTotal int       `json:"pagesTotal"`
	Data       []Company `json:"data"`
}

// Merchant is an Adyen merchant account
type Merchant struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CompanyID   string `json:"companyId,omitempty"`
	Status      string `json:"status,omitempty"`
	Description string `json:"description,omitempty"`
}

// MerchantListResponse is a page of merchant accounts
type MerchantListResponse struct {
	ItemsTotal int        `json:"itemsTotal"`
	PagesTotal int        `json:"pagesTotal"`
	Data       []Merchant `json:"data"`
}

// StoreAddress locates a physical store
type StoreAddress struct {
	Country         string `json:"country"`
	City            string `json:"city,omitempty"`
	Line1           string `json:"line1,omitempty"`
	Line2           string `json:"line2,omitempty"`
	PostalCode      string `json:"postalCode,omitempty"`
	StateOrProvince string `json:"stateOrProvince,omitempty"`
}

// Store is a physical or online store under a merchant
type Store struct {
	ID               string        `json:"id"`
	Reference        string        `json:"reference"`
	Description      string        `json:"description,omitempty"`
	ShopperStatement string        `json:"shopperStatement,omitempty"`
	Status           string        `json:"status,omitempty"`
	Address          *StoreAddress `json:"address,omitempty"`
}

// StoreListResponse is a page of stores
type StoreListResponse struct {
	ItemsTotal int     `json:"itemsTotal"`
	PagesTotal int     `json:"pagesTotal"`
	Data       []Store `json:"data"`
}

// CreateStoreRequest registers a new store under a merchant
type CreateStoreRequest struct {
	MerchantID       string
	Reference        string
	Description      string
	ShopperStatement string
	Address          *StoreAddress
}

// WebhookConfig is one configured webhook endpoint on a merchant
type WebhookConfig struct {
	ID                  string `json:"id"`
	URL                 string `json:"url"`
	Type                string `json:"type"`
	CommunicationFormat string `json:"communicationFormat"`
	Active              bool   `json:"active"`
}

// WebhookListResponse is a page of webhook configurations
type WebhookListResponse struct {
	ItemsTotal int             `json:"itemsTotal"`
	PagesTotal int             `json:"pagesTotal"`
	Data       []WebhookConfig `json:"data"`
}

// CreateWebhookRequest registers a webhook endpoint on a merchant
type CreateWebhookRequest struct {
	MerchantID          string
	URL                 string
	Type                string
	CommunicationFormat string
	Active              bool
}

// ManagementAdapter covers companies, merchants, stores, and webhooks
type ManagementAdapter interface {
	ListCompanies(ctx context.Context, page *PageOptions) (*CompanyListResponse, error)
	GetCompany(ctx context.Context, companyID string) (*Company, error)
	ListMerchants(ctx context.Context, page *PageOptions) (*MerchantListResponse, error)
	GetMerchant(ctx context.Context, merchantID string) (*Merchant, error)
	ListStores(ctx context.Context, merchantID string, page *PageOptions) (*StoreListResponse, error)
	CreateStore(ctx context.Context, req *CreateStoreRequest) (*Store, error)
	ListWebhooks(ctx context.Context, merchantID string, page *PageOptions) (*WebhookListResponse, error)
	CreateWebhook(ctx context.Context, req *CreateWebhookRequest) (*WebhookConfig, error)
}
