package estimate

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Currencies are display labels only; no conversion is performed.
const (
	CurrencyINR = "INR"
	CurrencyUSD = "USD"
)

// DefaultCurrency is shown when the caller does not pick one.
const DefaultCurrency = CurrencyINR

const (
	hourlyPlaces  int32 = 4
	monthlyPlaces int32 = 2
)

// ErrUnknownCurrency is returned for labels other than INR and USD.
var ErrUnknownCurrency = errors.New("unknown currency")

// Currencies lists the supported display labels.
func Currencies() []string {
	return []string{CurrencyINR, CurrencyUSD}
}

// ParseCurrency validates a currency label; empty selects the default.
func ParseCurrency(raw string) (string, error) {
	switch raw {
	case "":
		return DefaultCurrency, nil
	case CurrencyINR, CurrencyUSD:
		return raw, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, raw)
}

// exactFloatExponent is small enough that NewFromFloatWithExponent keeps every
// binary digit of a float64 instead of its shortest decimal form.
const exactFloatExponent = -1074

// FormatMoney renders an amount with a fixed number of decimal places, e.g. "INR 8.76".
// Rounding is half-to-even on the exact binary value, so 0.47499999999999998 shows as 0.47.
func FormatMoney(currency string, amount float64, places int32) string {
	exact := decimal.NewFromFloatWithExponent(amount, exactFloatExponent)
	return currency + " " + exact.RoundBank(places).StringFixed(places)
}

func formatHourly(currency string, amount float64) string {
	return FormatMoney(currency, amount, hourlyPlaces)
}

func formatMonthly(currency string, amount float64) string {
	return FormatMoney(currency, amount, monthlyPlaces)
}
