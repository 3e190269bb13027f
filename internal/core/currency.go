package core

// CurrencySymbols maps an ISO currency code to the label shown on export
// price badges.
type CurrencySymbols map[string]string

var DefaultCurrencySymbols = CurrencySymbols{
	"USD": "$",
	"KZT": "₸",
	"UZS": "UZS",
	"KGS": "KGS",
	"BYN": "BYN",
	"AZN": "AZN",
}

func (c CurrencySymbols) Label(code string) string {
	if symbol, ok := c[code]; ok && symbol != "" {
		return symbol
	}
	return code
}
