package display

import "fmt"

// Currency is an explicit formatting configuration passed to the
// Format functions; nothing here is ambient state and no calculator
// depends on this package. Rate is an illustrative conversion factor
// from the base currency (ZMW), not a market rate.
type Currency struct {
	Code   string
	Symbol string
	Rate   float64
}

var currencies = map[string]Currency{
	"ZMW": {Code: "ZMW", Symbol: "K", Rate: 1},
	"USD": {Code: "USD", Symbol: "$", Rate: 0.040},
	"EUR": {Code: "EUR", Symbol: "€", Rate: 0.037},
	"GBP": {Code: "GBP", Symbol: "£", Rate: 0.031},
	"ZAR": {Code: "ZAR", Symbol: "R", Rate: 0.72},
}

// Lookup resolves a currency code, falling back to the ZMW base when
// the code is unknown or empty.
func Lookup(code string) Currency {
	if c, ok := currencies[code]; ok {
		return c
	}
	return currencies["ZMW"]
}

// FormatAmount renders a base-currency amount in the given currency.
func FormatAmount(c Currency, amount float64) string {
	return fmt.Sprintf("%s%.2f", c.Symbol, amount*c.Rate)
}
