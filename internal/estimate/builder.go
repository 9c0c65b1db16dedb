// Package estimate turns raw price lookups into monthly estimates and region comparisons.
package estimate

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"

	"azure-cost-planner/internal/catalog"
	"azure-cost-planner/internal/format"
	"azure-cost-planner/internal/pricing"
)

const (
	// MinHoursPerMonth and MaxHoursPerMonth bound the accepted usage (744 = 31 days).
	MinHoursPerMonth = 1
	MaxHoursPerMonth = 744
	// DefaultHoursPerMonth approximates an always-on VM.
	DefaultHoursPerMonth = 730
)

var (
	// ErrConfigurationNotFound reports a lookup miss for the requested configuration.
	ErrConfigurationNotFound = errors.New("configuration not available in price catalog")
	// ErrNoPricingData reports that no region prices the requested VM size and OS.
	ErrNoPricingData = errors.New("no pricing data for the selected vm size and os")
	// ErrInvalidHours reports hours outside MinHoursPerMonth..MaxHoursPerMonth.
	ErrInvalidHours = errors.New("hours per month out of range")
)

// PriceLookup is the subset of the pricing service the builder needs.
type PriceLookup interface {
	Regions() []string
	HourlyPrice(region, vmSize string, os catalog.OS) pricing.Price
	AllRegionsForVM(vmSize string, os catalog.OS) map[string]float64
}

// Builder produces estimates from a price lookup.
type Builder struct {
	prices PriceLookup
}

// NewBuilder returns a Builder bound to the lookup.
func NewBuilder(prices PriceLookup) *Builder {
	return &Builder{prices: prices}
}

// ValidateHours enforces the accepted hours-per-month range.
func ValidateHours(hours int) error {
	if hours < MinHoursPerMonth || hours > MaxHoursPerMonth {
		return fmt.Errorf("%w: %d (allowed %d-%d)", ErrInvalidHours, hours, MinHoursPerMonth, MaxHoursPerMonth)
	}
	return nil
}

// Estimate prices a single configuration.
func (b *Builder) Estimate(req Request) (Estimate, error) {
	if err := ValidateHours(req.Hours); err != nil {
		return Estimate{}, err
	}
	currency, err := ParseCurrency(req.Currency)
	if err != nil {
		return Estimate{}, err
	}

	hourly, ok := b.prices.HourlyPrice(req.Region, req.VMSize, req.OS).Value()
	if !ok {
		return Estimate{}, fmt.Errorf("%w: %s/%s/%s", ErrConfigurationNotFound, req.Region, req.VMSize, req.OS)
	}
	monthly := pricing.MonthlyCost(hourly, float64(req.Hours))

	return Estimate{
		Region:         req.Region,
		RegionName:     format.RegionName(req.Region),
		VMSize:         req.VMSize,
		OS:             req.OS,
		HoursPerMonth:  req.Hours,
		Currency:       currency,
		HourlyPrice:    hourly,
		MonthlyCost:    monthly,
		HourlyDisplay:  formatHourly(currency, hourly),
		MonthlyDisplay: formatMonthly(currency, monthly),
	}, nil
}

// Compare prices vmSize/os in every region that offers it, sorted by hourly price.
// Ties keep region order.
func (b *Builder) Compare(vmSize string, os catalog.OS, hours int, currency string) (Comparison, error) {
	if err := ValidateHours(hours); err != nil {
		return Comparison{}, err
	}
	currency, err := ParseCurrency(currency)
	if err != nil {
		return Comparison{}, err
	}

	prices := b.prices.AllRegionsForVM(vmSize, os)
	quotes := lo.FilterMap(b.prices.Regions(), func(region string, _ int) (RegionQuote, bool) {
		hourly, ok := prices[region]
		if !ok {
			return RegionQuote{}, false
		}
		return newQuote(region, hourly, hours, currency), true
	})
	if len(quotes) == 0 {
		return Comparison{}, fmt.Errorf("%w: %s/%s", ErrNoPricingData, vmSize, os)
	}
	slices.SortStableFunc(quotes, func(x, y RegionQuote) int {
		return cmp.Compare(x.HourlyPrice, y.HourlyPrice)
	})

	return Comparison{
		VMSize:        vmSize,
		OS:            os,
		HoursPerMonth: hours,
		Currency:      currency,
		Quotes:        quotes,
		Cheapest:      quotes[0],
		MostExpensive: quotes[len(quotes)-1],
	}, nil
}

func newQuote(region string, hourly float64, hours int, currency string) RegionQuote {
	monthly := pricing.MonthlyCost(hourly, float64(hours))
	return RegionQuote{
		Region:         region,
		RegionName:     format.RegionName(region),
		HourlyPrice:    hourly,
		MonthlyCost:    monthly,
		HourlyDisplay:  formatHourly(currency, hourly),
		MonthlyDisplay: formatMonthly(currency, monthly),
	}
}
