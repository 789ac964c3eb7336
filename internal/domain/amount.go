package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amount represents money in a currency's minor units, the wire format
// Adyen expects on every monetary field.
// Value carries no fractional component; the scale factor depends on the
// currency's conventional number of decimal places.
type Amount struct {
	Value    int64  `json:"value"`
	Currency string `json:"currency"`
}

// Currencies whose minor unit equals the major unit (no decimal places).
// Source: ISO 4217 exponent exceptions recognized by Adyen.
var zeroDecimalCurrencies = map[string]struct{}{
	"BIF": {}, "CLP": {}, "DJF": {}, "GNF": {}, "ISK": {}, "JPY": {}, "KMF": {}, "KRW": {},
	"PYG": {}, "RWF": {}, "UGX": {}, "VND": {}, "VUV": {}, "XAF": {}, "XOF": {}, "XPF": {},
}

// Currencies with three decimal places.
var threeDecimalCurrencies = map[string]struct{}{
	"BHD": {}, "IQD": {}, "JOD": {}, "KWD": {}, "LYD": {}, "OMR": {}, "TND": {},
}

// CurrencyExponent returns the number of decimal places for a currency code.
// Unknown currencies fall back to the two-decimal default; this never fails.
func CurrencyExponent(currency string) int32 {
	code := strings.ToUpper(currency)
	if _, ok := zeroDecimalCurrencies[code]; ok {
		return 0
	}
	if _, ok := threeDecimalCurrencies[code]; ok {
		return 3
	}
	return 2
}

// MinorUnits converts a major-unit amount (e.g. 10.50) to the integer
// minor-unit representation for the given currency. Rounding is half away
// from zero, so 10.999 USD becomes 1100 cents. The currency code is
// normalized to upper case. Pure function; never errors.
func MinorUnits(amount float64, currency string) Amount {
	exp := CurrencyExponent(currency)
	value := decimal.NewFromFloat(amount).Shift(exp).Round(0).IntPart()
	return Amount{
		Value:    value,
		Currency: strings.ToUpper(currency),
	}
}

// Major returns the amount back in major units, for display and logging.
func (a Amount) Major() decimal.Decimal {
	return decimal.New(a.Value, 0).Shift(-CurrencyExponent(a.Currency))
}
