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

func TestModificationAdapter_Endpoints(t *testing.T) {
	tests := []struct {
		name       string
		call       func(ctx context.Context, adapter ports.ModificationAdapter, req *ports.ModificationRequest) (*ports.ModificationResponse, error)
		wantPath   string
		wantAmount bool
	}{
		{
			name: "capture",
			call: func(ctx context.Context, a ports.ModificationAdapter, req *ports.ModificationRequest) (*ports.ModificationResponse, error) {
				return a.Capture(ctx, req)
			},
			wantPath:   "/v71/payments/psp-1/captures",
			wantAmount: true,
		},
		{
			name: "cancel",
			call: func(ctx context.Context, a ports.ModificationAdapter, req *ports.ModificationRequest) (*ports.ModificationResponse, error) {
				return a.Cancel(ctx, req)
			},
			wantPath: "/v71/payments/psp-1/cancels",
		},
		{
			name: "refund",
			call: func(ctx context.Context, a ports.ModificationAdapter, req *ports.ModificationRequest) (*ports.ModificationResponse, error) {
				return a.Refund(ctx, req)
			},
			wantPath:   "/v71/payments/psp-1/refunds",
			wantAmount: true,
		},
		{
			name: "reverse",
			call: func(ctx context.Context, a ports.ModificationAdapter, req *ports.ModificationRequest) (*ports.ModificationResponse, error) {
				return a.Reverse(ctx, req)
			},
			wantPath: "/v71/payments/psp-1/reversals",
		},
		{
			name: "amount update",
			call: func(ctx context.Context, a ports.ModificationAdapter, req *ports.ModificationRequest) (*ports.ModificationResponse, error) {
				return a.UpdateAmount(ctx, req)
			},
			wantPath:   "/v71/payments/psp-1/amountUpdates",
			wantAmount: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockHTTP := mocks.NewMockHTTPClient(func(req *http.Request) (*http.Response, error) {
				return jsonResponse(201, `{"pspReference":"mod-1","paymentPspReference":"psp-1","status":"received"}`), nil
			})
			adapter := adyen.NewModificationAdapter(newTestClient(mockHTTP))

			resp, err := tt.call(context.Background(), adapter, &ports.ModificationRequest{
				PSPReference: "psp-1",
				Amount:       10.50,
				Currency:     "USD",
			})
			require.NoError(t, err)
			assert.Equal(t, "received", resp.Status)
			assert.Equal(t, "psp-1", resp.PaymentPSPReference)

			require.Len(t, mockHTTP.Calls, 1)
			req := mockHTTP.Calls[0]
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, tt.wantPath, req.URL.Path)

			body, err := io.ReadAll(req.Body)
			require.NoError(t, err)
			assert.Contains(t, string(body), `"merchantAccount":"TestMerchant"`)
			if tt.wantAmount {
				assert.Contains(t, string(body), `"value":1050`)
				assert.Contains(t, string(body), `"currency":"USD"`)
			} else {
				assert.NotContains(t, string(body), `"amount"`)
			}
		})
	}
}
