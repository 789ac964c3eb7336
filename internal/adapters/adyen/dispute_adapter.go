package adyen

import (
	"context"
	"net/http"

	"github.com/velobpa/adyen-connector/internal/adapters/ports"
)

// disputeVersion pins the Disputes API version
const disputeVersion = "/v30"

// disputeEnvelope unwraps the disputeServiceResult wrapper the dispute
// service puts around its responses
type disputeEnvelope struct {
	DisputeServiceResult ports.DisputeServiceResponse `json:"disputeServiceResult"`
}

type disputeAdapter struct {
	client *Client
}

// NewDisputeAdapter creates an adapter for the Disputes API. Note the
// dispute service keys the merchant account as merchantAccountCode, not
// merchantAccount like the Checkout API.
func NewDisputeAdapter(client *Client) ports.DisputeAdapter {
	return &disputeAdapter{client: client}
}

func (a *disputeAdapter) Accept(ctx context.Context, req *ports.DisputeRequest) (*ports.DisputeServiceResponse, error) {
	body := map[string]interface{}{
		"merchantAccountCode": a.client.MerchantAccount(),
		"disputePspReference": req.DisputePSPReference,
	}

	var envelope disputeEnvelope
	if err := a.client.do(ctx, http.MethodPost, APIDisputes, disputeVersion+"/acceptDispute", body, nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.DisputeServiceResult, nil
}

func (a *disputeAdapter) Defend(ctx context.Context, req *ports.DefendDisputeRequest) (*ports.DisputeServiceResponse, error) {
	body := map[string]interface{}{
		"merchantAccountCode": a.client.MerchantAccount(),
		"disputePspReference": req.DisputePSPReference,
		"defenseReasonCode":   req.DefenseReasonCode,
	}

	var envelope disputeEnvelope
	if err := a.client.do(ctx, http.MethodPost, APIDisputes, disputeVersion+"/defendDispute", body, nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.DisputeServiceResult, nil
}

func (a *disputeAdapter) DefenseReasons(ctx context.Context, req *ports.DisputeRequest) (*ports.DefenseReasonsResponse, error) {
	body := map[string]interface{}{
		"merchantAccountCode": a.client.MerchantAccount(),
		"disputePspReference": req.DisputePSPReference,
	}

	var resp ports.DefenseReasonsResponse
	if err := a.client.do(ctx, http.MethodPost, APIDisputes, disputeVersion+"/retrieveApplicableDefenseReasons", body, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *disputeAdapter) SupplyDefenseDocument(ctx context.Context, req *ports.SupplyDefenseDocumentRequest) (*ports.DisputeServiceResponse, error) {
	body := map[string]interface{}{
		"merchantAccountCode": a.client.MerchantAccount(),
		"disputePspReference": req.DisputePSPReference,
		"defenseDocuments":    []ports.DefenseDocument{req.Document},
	}

	var envelope disputeEnvelope
	if err := a.client.do(ctx, http.MethodPost, APIDisputes, disputeVersion+"/supplyDefenseDocument", body, nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.DisputeServiceResult, nil
}

func (a *disputeAdapter) DeleteDefenseDocument(ctx context.Context, req *ports.DeleteDefenseDocumentRequest) (*ports.DisputeServiceResponse, error) {
	body := map[string]interface{}{
		"merchantAccountCode":     a.client.MerchantAccount(),
		"disputePspReference":     req.DisputePSPReference,
		"defenseDocumentTypeCode": req.DocumentType,
	}

	var envelope disputeEnvelope
	if err := a.client.do(ctx, http.MethodPost, APIDisputes, disputeVersion+"/deleteDisputeDefenseDocument", body, nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.DisputeServiceResult, nil
}
