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

func TestCheckoutAdapter_CreatePaymentWithCard(t *testing.T) {
	mockHTTP := mocks.NewMockHTTPClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(200, `{"pspReference":"993617895204","resultCode":"Authorised"}`), nil
	})
	checkout := adyen.NewCheckoutAdapter(newTestClient(mockHTTP))

	resp, err := checkout.CreatePayment(context.Background(), &ports.CreatePaymentRequest{
		Amount:            10.00,
		Currency:          "EUR",
		Reference:         "order-77",
		ReturnURL:         "https://example.com/return",
		PaymentMethodType: "scheme",
		Card: &ports.CardFields{
			EncryptedCardNumber:   "adyenjs_0_1_25$card",
			EncryptedExpiryMonth:  "adyenjs_0_1_25$month",
			EncryptedExpiryYear:   "adyenjs_0_1_25$year",
			EncryptedSecurityCode: "adyenjs_0_1_25$cvc",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Authorised", resp.ResultCode)
	assert.Equal(t, "993617895204", resp.PSPReference)

	require.Len(t, mockHTTP.Calls, 1)
	req := mockHTTP.Calls[0]
	assert.Equal(t, "https://checkout-test.adyen.com/v71/payments", req.URL.String())

	body, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"type":"scheme"`)
	assert.Contains(t, string(body), `"encryptedCardNumber":"adyenjs_0_1_25$card"`)
	assert.Contains(t, string(body), `"value":1000`)
}

func TestCheckoutAdapter_CreatePaymentWithStoredMethod(t *testing.T) {
	mockHTTP := mocks.NewMockHTTPClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(200, `{"resultCode":"Authorised"}`), nil
	})
	checkout := adyen.NewCheckoutAdapter(newTestClient(mockHTTP))

	_, err := checkout.CreatePayment(context.Background(), &ports.CreatePaymentRequest{
		Amount:                5.00,
		Currency:              "USD",
		Reference:             "order-78",
		ReturnURL:             "https://example.com/return",
		PaymentMethodType:     "storedPaymentMethod",
		StoredPaymentMethodID: "8415995487234100",
	})
	require.NoError(t, err)

	require.Len(t, mockHTTP.Calls, 1)
	body, err := io.ReadAll(mockHTTP.Calls[0].Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"storedPaymentMethodId":"8415995487234100"`)
	assert.NotContains(t, string(body), "encryptedCardNumber")
}

func TestCheckoutAdapter_PaymentMethodsCurrencyFilter(t *testing.T) {
	mockHTTP := mocks.NewMockHTTPClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(200, `{"paymentMethods":[{"type":"scheme","name":"Cards"}]}`), nil
	})
	checkout := adyen.NewCheckoutAdapter(newTestClient(mockHTTP))

	resp, err := checkout.GetPaymentMethods(context.Background(), &ports.PaymentMethodsRequest{
		Currency: "GBP",
	})
	require.NoError(t, err)
	require.Len(t, resp.PaymentMethods, 1)
	assert.Equal(t, "scheme", resp.PaymentMethods[0].Type)

	require.Len(t, mockHTTP.Calls, 1)
	body, err := io.ReadAll(mockHTTP.Calls[0].Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"currency":"GBP"`)
	assert.Contains(t, string(body), `"value":0`)
}
