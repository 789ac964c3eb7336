package adyen

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/velobpa/adyen-connector/internal/adapters/ports"
)

// managementVersion pins the Management API version
const managementVersion = "/v3"

type managementAdapter struct {
	client *Client
}

// NewManagementAdapter creates an adapter for the Management API
func NewManagementAdapter(client *Client) ports.ManagementAdapter {
	return &managementAdapter{client: client}
}

func pageQuery(page *ports.PageOptions) url.Values {
	if page == nil {
		return nil
	}
	query := url.Values{}
	if page.PageNumber > 0 {
		query.Set("pageNumber", strconv.Itoa(page.PageNumber))
	}
	if page.PageSize > 0 {
		query.Set("pageSize", strconv.Itoa(page.PageSize))
	}
	if len(query) == 0 {
		return nil
	}
	return query
}

func (a *managementAdapter) ListCompanies(ctx context.Context, page *ports.PageOptions) (*ports.CompanyListResponse, error) {
	var resp ports.CompanyListResponse
	if err := a.client.do(ctx, http.MethodGet, APIManagement, managementVersion+"/companies", nil, pageQuery(page), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *managementAdapter) GetCompany(ctx context.Context, companyID string) (*ports.Company, error) {
	var resp ports.Company
	endpoint := fmt.Sprintf("%s/companies/%s", managementVersion, companyID)
	if err := a.client.do(ctx, http.MethodGet, APIManagement, endpoint, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *managementAdapter) ListMerchants(ctx context.Context, page *ports.PageOptions) (*ports.MerchantListResponse, error) {
	var resp ports.MerchantListResponse
	if err := a.client.do(ctx, http.MethodGet, APIManagement, managementVersion+"/merchants", nil, pageQuery(page), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *managementAdapter) GetMerchant(ctx context.Context, merchantID string) (*ports.Merchant, error) {
	var resp ports.Merchant
	endpoint := fmt.Sprintf("%s/merchants/%s", managementVersion, merchantID)
	if err := a.client.do(ctx, http.MethodGet, APIManagement, endpoint, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *managementAdapter) ListStores(ctx context.Context, merchantID string, page *ports.PageOptions) (*ports.StoreListResponse, error) {
	var resp ports.StoreListResponse
	endpoint := fmt.Sprintf("%s/merchants/%s/stores", managementVersion, merchantID)
	if err := a.client.do(ctx, http.MethodGet, APIManagement, endpoint, nil, pageQuery(page), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *managementAdapter) CreateStore(ctx context.Context, req *ports.CreateStoreRequest) (*ports.Store, error) {
	body := map[string]interface{}{
		"reference":        req.Reference,
		"description":      req.Description,
		"shopperStatement": req.ShopperStatement,
	}
	if req.Address != nil {
		body["address"] = req.Address
	}

	var resp ports.Store
	endpoint := fmt.Sprintf("%s/merchants/%s/stores", managementVersion, req.MerchantID)
	if err := a.client.do(ctx, http.MethodPost, APIManagement, endpoint, body, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *managementAdapter) ListWebhooks(ctx context.Context, merchantID string, page *ports.PageOptions) (*ports.WebhookListResponse, error) {
	var resp ports.WebhookListResponse
	endpoint := fmt.Sprintf("%s/merchants/%s/webhooks", managementVersion, merchantID)
	if err := a.client.do(ctx, http.MethodGet, APIManagement, endpoint, nil, pageQuery(page), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *managementAdapter) CreateWebhook(ctx context.Context, req *ports.CreateWebhookRequest) (*ports.WebhookConfig, error) {
	body := map[string]interface{}{
		"url":                 req.URL,
		"type":                req.Type,
		"communicationFormat": req.CommunicationFormat,
		"active":              req.Active,
	}

	var resp ports.WebhookConfig
	endpoint := fmt.Sprintf("%s/merchants/%s/webhooks", managementVersion, req.MerchantID)
	if err := a.client.do(ctx, http.MethodPost, APIManagement, endpoint, body, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
