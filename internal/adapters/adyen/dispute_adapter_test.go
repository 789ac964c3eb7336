package adyen_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velobpa/adyen-connector/internal/adapters/adyen"
	"github.com/velobpa/adyen-connector/internal/adapters/ports"
	"github.com/velobpa/adyen-connector/test/mocks"
)

func TestDisputeAdapter_Accept(t *testing.T) {
	mockHTTP := mocks.NewMockHTTPClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(200, `{"disputeServiceResult":{"success":true}}`), nil
	})
	adapter := adyen.NewDisputeAdapter(newTestClient(mockHTTP))

	resp, err := adapter.Accept(context.Background(), &ports.DisputeRequest{DisputePSPReference: "dsp-1"})
	require.NoError(t, err)
	assert.True(t, resp.Success)

	require.Len(t, mockHTTP.Calls, 1)
	req := mockHTTP.Calls[0]
	assert.Equal(t, "https://ca-test.adyen.com/ca/services/DisputeService/v30/acceptDispute", req.URL.String())

	// The dispute service keys the merchant account differently
	body, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"merchantAccountCode":"TestMerchant"`)
	assert.Contains(t, string(body), `"disputePspReference":"dsp-1"`)
}

func TestDisputeAdapter_DefenseReasons(t *testing.T) {
	mockHTTP := mocks.NewMockHTTPClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(200, `{"defenseReasons":[{"defenseReasonCode":"DuplicateChargeback","satisfied":false,"requiredDocuments":["DefenseMaterial"]}]}`), nil
	})
	adapter := adyen.NewDisputeAdapter(newTestClient(mockHTTP))

	resp, err := adapter.DefenseReasons(context.Background(), &ports.DisputeRequest{DisputePSPReference: "dsp-1"})
	require.NoError(t, err)
	require.Len(t, resp.DefenseReasons, 1)
	assert.Equal(t, "DuplicateChargeback", resp.DefenseReasons[0].DefenseReasonCode)
}

func TestDisputeAdapter_SupplyDefenseDocument(t *testing.T) {
	mockHTTP := mocks.NewMockHTTPClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(200, `{"disputeServiceResult":{"success":true}}`), nil
	})
	adapter := adyen.NewDisputeAdapter(newTestClient(mockHTTP))

	resp, err := adapter.SupplyDefenseDocument(context.Background(), &ports.SupplyDefenseDocumentRequest{
		DisputePSPReference: "dsp-1",
		Document: ports.DefenseDocument{
			Content:                 "aGVsbG8=",
			ContentType:             "application/pdf",
			DefenseDocumentTypeCode: "DefenseMaterial",
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)

	body, err := io.ReadAll(mockHTTP.Calls[0].Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"defenseDocuments":[`)
	assert.Contains(t, string(body), `"defenseDocumentTypeCode":"DefenseMaterial"`)
}
