package adyen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velobpa/adyen-connector/internal/domain"
)

const testHMACKey = "44782DEF547AAA06C910C43932B1EB0C71FC68D9D0C057550C48EC2ACF6BA056"

func testNotificationItem() *domain.NotificationItem {
	return &domain.NotificationItem{
		PSPReference:        "7914073381342284",
		OriginalReference:   "",
		MerchantAccountCode: "TestMerchant",
		MerchantReference:   "TestPayment-1",
		Amount:              &domain.Amount{Value: 1000, Currency: "EUR"},
		EventCode:           domain.EventAuthorisation,
		Success:             "true",
	}
}

func TestSigningString(t *testing.T) {
	got := SigningString(testNotificationItem())
	assert.Equal(t, "7914073381342284::TestMerchant:TestPayment-1:1000:EUR:AUTHORISATION:true", got)
}

func TestSigningString_AbsentFieldsAreEmpty(t *testing.T) {
	item := &domain.NotificationItem{
		PSPReference: "ABC123",
		EventCode:    domain.EventRefund,
		Success:      "false",
	}
	// No amount, no references: every absent field contributes "".
	assert.Equal(t, "ABC123::::::REFUND:false", SigningString(item))
}

func TestCalculateSignature(t *testing.T) {
	sig, err := CalculateSignature(testNotificationItem(), testHMACKey)
	require.NoError(t, err)
	assert.NotEmpty(t, sig)

	// Deterministic: same input, same output.
	sig2, err := CalculateSignature(testNotificationItem(), testHMACKey)
	require.NoError(t, err)
	assert.Equal(t, sig, sig2)
}

func TestCalculateSignature_SensitiveToEverySignedField(t *testing.T) {
	base, err := CalculateSignature(testNotificationItem(), testHMACKey)
	require.NoError(t, err)

	mutations := map[string]func(*domain.NotificationItem){
		"pspReference":        func(n *domain.NotificationItem) { n.PSPReference = "other" },
		"originalReference":   func(n *domain.NotificationItem) { n.OriginalReference = "other" },
		"merchantAccountCode": func(n *domain.NotificationItem) { n.MerchantAccountCode = "other" },
		"merchantReference":   func(n *domain.NotificationItem) { n.MerchantReference = "other" },
		"amount.value":        func(n *domain.NotificationItem) { n.Amount.Value = 999 },
		"amount.currency":     func(n *domain.NotificationItem) { n.Amount.Currency = "USD" },
		"eventCode":           func(n *domain.NotificationItem) { n.EventCode = domain.EventCapture },
		"success":             func(n *domain.NotificationItem) { n.Success = "false" },
	}

	for field, mutate := range mutations {
		t.Run(field, func(t *testing.T) {
			item := testNotificationItem()
			mutate(item)
			sig, err := CalculateSignature(item, testHMACKey)
			require.NoError(t, err)
			assert.NotEqual(t, base, sig, "changing %s should change the signature", field)
		})
	}
}

func TestCalculateSignature_KeyIsHexDecoded(t *testing.T) {
	// The same hex digits in different case decode to the same key bytes.
	upper, err := CalculateSignature(testNotificationItem(), testHMACKey)
	require.NoError(t, err)
	lower, err := CalculateSignature(testNotificationItem(), "44782def547aaa06c910c43932b1eb0c71fc68d9d0c057550c48ec2acf6ba056")
	require.NoError(t, err)
	assert.Equal(t, upper, lower)
}

func TestCalculateSignature_InvalidKey(t *testing.T) {
	_, err := CalculateSignature(testNotificationItem(), "not-hex")
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrorCodeWebhookInvalidHMACKey))
}

func TestVerifySignature(t *testing.T) {
	item := testNotificationItem()
	sig, err := CalculateSignature(item, testHMACKey)
	require.NoError(t, err)

	ok, err := VerifySignature(item, testHMACKey, sig)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifySignature(item, testHMACKey, "forged")
	require.NoError(t, err)
	assert.False(t, ok)
}
