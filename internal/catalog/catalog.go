// Package catalog holds the static VM price table and its derived region and size lists.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// OS is the operating system dimension of a price.
type OS string

const (
	Linux   OS = "Linux"
	Windows OS = "Windows"
)

// ErrUnknownOS is returned by ParseOS for anything other than Linux or Windows.
var ErrUnknownOS = errors.New("unknown operating system")

// OperatingSystems lists the OS values every VM size is priced for.
func OperatingSystems() []OS {
	return []OS{Linux, Windows}
}

// ParseOS accepts exactly one of the OperatingSystems labels. Matching is case sensitive.
func ParseOS(raw string) (OS, error) {
	supported := OperatingSystems()
	if slices.Contains(supported, OS(raw)) {
		return OS(raw), nil
	}
	names := make([]string, len(supported))
	for i, os := range supported {
		names[i] = string(os)
	}
	return "", fmt.Errorf("%w: %q (want one of %s)", ErrUnknownOS, raw, strings.Join(names, ", "))
}

// Entry is one row of the catalog.
type Entry struct {
	Region      string  `json:"region"`
	VMSize      string  `json:"vmSize"`
	OS          OS      `json:"os"`
	HourlyPrice float64 `json:"hourlyPrice"`
}

type sizePrices struct {
	size    string
	linux   float64
	windows float64
}

type regionPrices struct {
	region string
	sizes  []sizePrices
}

// Catalog is an immutable region -> vmSize -> os -> hourly price table.
type Catalog struct {
	regions []string
	sizes   []string
	entries []Entry
	prices  map[string]map[string]map[OS]float64
}

var defaultCatalog = newCatalog(defaultTable)

// Default returns the compiled-in catalog shared by the whole process.
func Default() *Catalog {
	return defaultCatalog
}

// Regions returns the region codes of the default catalog in insertion order.
func Regions() []string {
	return defaultCatalog.Regions()
}

// VMSizes returns the VM sizes of the default catalog's first region.
func VMSizes() []string {
	return defaultCatalog.VMSizes()
}

func newCatalog(table []regionPrices) *Catalog {
	c := &Catalog{
		prices: make(map[string]map[string]map[OS]float64, len(table)),
	}
	for _, rp := range table {
		c.regions = append(c.regions, rp.region)
		bySize := make(map[string]map[OS]float64, len(rp.sizes))
		for _, sp := range rp.sizes {
			bySize[sp.size] = map[OS]float64{
				Linux:   sp.linux,
				Windows: sp.windows,
			}
			c.entries = append(c.entries,
				Entry{Region: rp.region, VMSize: sp.size, OS: Linux, HourlyPrice: sp.linux},
				Entry{Region: rp.region, VMSize: sp.size, OS: Windows, HourlyPrice: sp.windows},
			)
		}
		c.prices[rp.region] = bySize
	}
	// Sizes are taken from the first region; all regions are expected to match.
	if len(table) > 0 {
		for _, sp := range table[0].sizes {
			c.sizes = append(c.sizes, sp.size)
		}
	}
	return c
}

// Regions returns a copy of the region codes in insertion order.
func (c *Catalog) Regions() []string {
	return append([]string(nil), c.regions...)
}

// VMSizes returns a copy of the representative VM size list.
func (c *Catalog) VMSizes() []string {
	return append([]string(nil), c.sizes...)
}

// Entries returns every price entry in catalog order.
func (c *Catalog) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Len reports the number of price entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Lookup resolves a single price. Missing keys at any level report false.
func (c *Catalog) Lookup(region, vmSize string, os OS) (float64, bool) {
	if c == nil {
		return 0, false
	}
	price, ok := c.prices[region][vmSize][os]
	return price, ok
}
