package finance

// Policy discount rates by country. These are lookup values, not
// computed ones; the bands mirror the rate card the product ships with.
const (
	rateZambia   = 10
	rateEmerging = 8
	rateDefault  = 5
)

var emergingMarkets = map[string]struct{}{
	"Nigeria":       {},
	"Kenya":         {},
	"South Africa":  {},
	"Ghana":         {},
	"Tanzania":      {},
	"Uganda":        {},
	"Zimbabwe":      {},
	"Malawi":        {},
	"Botswana":      {},
	"Mozambique":    {},
	"Rwanda":        {},
	"Ethiopia":      {},
	"Senegal":       {},
	"Côte d'Ivoire": {},
}

// DefaultDiscountRate returns the default annual discount rate (in
// percent) for a country: 10 for Zambia, 8 for the emerging-market
// list, 5 for everything else including an unset country.
func DefaultDiscountRate(country string) float64 {
	if country == "Zambia" {
		return rateZambia
	}
	if _, ok := emergingMarkets[country]; ok {
		return rateEmerging
	}
	return rateDefault
}
