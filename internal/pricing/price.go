package pricing

// Price is the outcome of a catalog query: either a found hourly price or NotFound.
type Price struct {
	value float64
	found bool
}

// NotFound is the lookup-miss result.
var NotFound = Price{}

// Found wraps a resolved hourly price.
func Found(hourly float64) Price {
	return Price{value: hourly, found: true}
}

// Value returns the hourly price and whether it was found.
func (p Price) Value() (float64, bool) {
	return p.value, p.found
}

// Found reports whether the lookup resolved a price.
func (p Price) Found() bool {
	return p.found
}

// MonthlyCost multiplies an hourly price by the number of hours. No rounding is applied.
func MonthlyCost(hourly, hoursPerMonth float64) float64 {
	return hourly * hoursPerMonth
}
