package adyen

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/velobpa/adyen-connector/internal/domain"
)

// SigningString builds the data an Adyen HMAC signature covers: eight field
// values joined with ':' in a fixed order. The order is part of the wire
// contract; changing it invalidates every existing signature. Absent fields
// contribute an empty string.
func SigningString(item *domain.NotificationItem) string {
	amountValue := ""
	amountCurrency := ""
	if item.Amount != nil {
		amountValue = strconv.FormatInt(item.Amount.Value, 10)
		amountCurrency = item.Amount.Currency
	}

	return strings.Join([]string{
		item.PSPReference,
		item.OriginalReference,
		item.MerchantAccountCode,
		item.MerchantReference,
		amountValue,
		amountCurrency,
		item.EventCode,
		item.Success,
	}, ":")
}

// CalculateSignature computes the HMAC-SHA256 digest of the item's signed
// fields, base64 encoded. The key is hex-encoded bytes, not raw text.
func CalculateSignature(item *domain.NotificationItem, hmacKey string) (string, error) {
	key, err := hex.DecodeString(hmacKey)
	if err != nil {
		return "", domain.WrapError(domain.ErrorCodeWebhookInvalidHMACKey, "HMAC key is not valid hex", err)
	}

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(SigningString(item)))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}

// VerifySignature recomputes the item's signature and compares it against the
// provided one in constant time.
func VerifySignature(item *domain.NotificationItem, hmacKey, providedSignature string) (bool, error) {
	expected, err := CalculateSignature(item, hmacKey)
	if err != nil {
		return false, err
	}
	return hmac.Equal([]byte(expected), []byte(providedSignature)), nil
}
