package pricing

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"azure-cost-planner/internal/catalog"
)

// Source resolves hourly VM prices. Implementations must never panic on unknown input.
type Source interface {
	Name() string
	Regions() []string
	VMSizes() []string
	HourlyPrice(region, vmSize string, os catalog.OS) Price
}

// StaticSource serves prices from a compiled-in catalog.
type StaticSource struct {
	catalog *catalog.Catalog
}

// NewStaticSource wraps the catalog; nil selects the default catalog.
func NewStaticSource(c *catalog.Catalog) *StaticSource {
	if c == nil {
		c = catalog.Default()
	}
	return &StaticSource{catalog: c}
}

// Name identifies the source in logs and metrics.
func (s *StaticSource) Name() string { return "static" }

// Regions returns the catalog regions in insertion order.
func (s *StaticSource) Regions() []string { return s.catalog.Regions() }

// VMSizes returns the catalog's representative VM sizes.
func (s *StaticSource) VMSizes() []string { return s.catalog.VMSizes() }

// HourlyPrice looks the combination up in the catalog.
func (s *StaticSource) HourlyPrice(region, vmSize string, os catalog.OS) Price {
	if price, ok := s.catalog.Lookup(region, vmSize, os); ok {
		return Found(price)
	}
	return NotFound
}

// RetailPricesEndpoint is the public Azure Retail Prices API.
const RetailPricesEndpoint = "https://prices.azure.com/api/retail/prices"

// DefaultRetailCurrency is used when no currency code is configured.
const DefaultRetailCurrency = "INR"

// RetailSource is the placeholder for live Azure Retail Prices lookups.
// It knows how to phrase a query but never performs one, so every lookup is NotFound.
type RetailSource struct {
	currency string
	regions  []string
	sizes    []string
	logger   *slog.Logger
}

// NewRetailSource builds the placeholder source. Regions and sizes bound the
// comparison fan-out; they normally come from the static catalog. A nil logger discards output.
func NewRetailSource(currency string, regions, sizes []string, logger *slog.Logger) *RetailSource {
	if currency == "" {
		currency = DefaultRetailCurrency
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RetailSource{
		currency: currency,
		regions:  append([]string(nil), regions...),
		sizes:    append([]string(nil), sizes...),
		logger:   logger,
	}
}

// Name identifies the source in logs and metrics.
func (s *RetailSource) Name() string { return "retail" }

// Currency returns the currency code queries would be issued in.
func (s *RetailSource) Currency() string { return s.currency }

// Regions returns the regions the source would be asked about.
func (s *RetailSource) Regions() []string { return append([]string(nil), s.regions...) }

// VMSizes returns the VM sizes the source would be asked about.
func (s *RetailSource) VMSizes() []string { return append([]string(nil), s.sizes...) }

// HourlyPrice always reports NotFound until the live integration exists.
// The query that would have been issued is logged at debug level.
func (s *RetailSource) HourlyPrice(region, vmSize string, os catalog.OS) Price {
	s.logger.Debug("retail price lookup not performed",
		slog.String("region", region),
		slog.String("vmSize", vmSize),
		slog.String("os", string(os)),
		slog.String("query", s.QueryURL(region, vmSize, os)),
	)
	return NotFound
}

// QueryURL returns the request a live lookup would issue for the combination.
func (s *RetailSource) QueryURL(region, vmSize string, os catalog.OS) string {
	q := url.Values{}
	q.Set("currencyCode", s.currency)
	q.Set("$filter", retailFilter(region, vmSize, os))
	return RetailPricesEndpoint + "?" + q.Encode()
}

func retailFilter(region, vmSize string, os catalog.OS) string {
	clauses := []string{
		"serviceName eq 'Virtual Machines'",
		"priceType eq 'Consumption'",
		fmt.Sprintf("armRegionName eq '%s'", odataQuote(region)),
		fmt.Sprintf("armSkuName eq '%s'", odataQuote(vmSize)),
	}
	if os == catalog.Windows {
		clauses = append(clauses, "contains(productName, 'Windows')")
	}
	return strings.Join(clauses, " and ")
}

func odataQuote(v string) string {
	return strings.ReplaceAll(v, "'", "''")
}
