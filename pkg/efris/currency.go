package efris

import "strings"

// CleanCurrency traduce un código ISO o un código EFRIS a su código EFRIS.
// Devuelve "" si la moneda no está soportada.
func CleanCurrency(currency string) string {
	switch strings.ToUpper(strings.TrimSpace(currency)) {
	case "UGX", CurrencyUGX:
		return CurrencyUGX
	case "USD", CurrencyUSD:
		return CurrencyUSD
	case "EUR", CurrencyEUR:
		return CurrencyEUR
	default:
		return ""
	}
}
