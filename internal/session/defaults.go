// Package session tracks the last inputs a user chose so forms can be pre-filled.
package session

import (
	"slices"

	"azure-cost-planner/internal/catalog"
	"azure-cost-planner/internal/estimate"
)

// Defaults are the sticky inputs of one user session.
type Defaults struct {
	Region   string     `json:"region"`
	VMSize   string     `json:"vmSize"`
	OS       catalog.OS `json:"os"`
	Hours    int        `json:"hours"`
	Currency string     `json:"currency"`
}

// NewDefaults seeds a session from the first region and VM size on offer.
func NewDefaults(regions, vmSizes []string, currency string) Defaults {
	d := Defaults{
		OS:       catalog.Linux,
		Hours:    estimate.DefaultHoursPerMonth,
		Currency: currency,
	}
	if len(regions) > 0 {
		d.Region = regions[0]
	}
	if len(vmSizes) > 0 {
		d.VMSize = vmSizes[0]
	}
	if d.Currency == "" {
		d.Currency = estimate.DefaultCurrency
	}
	return d
}

// Update records the inputs of a successful request. Zero values leave the field unchanged.
func (d *Defaults) Update(req estimate.Request) {
	if req.Region != "" {
		d.Region = req.Region
	}
	if req.VMSize != "" {
		d.VMSize = req.VMSize
	}
	if req.OS != "" {
		d.OS = req.OS
	}
	if req.Hours != 0 {
		d.Hours = req.Hours
	}
	if req.Currency != "" {
		d.Currency = req.Currency
	}
}

// Request builds an estimate request from the stored defaults.
func (d Defaults) Request() estimate.Request {
	return estimate.Request{
		Region:   d.Region,
		VMSize:   d.VMSize,
		OS:       d.OS,
		Hours:    d.Hours,
		Currency: d.Currency,
	}
}

// Sanitize replaces values that are no longer on offer with the seeded ones.
func (d *Defaults) Sanitize(regions, vmSizes []string) {
	seed := NewDefaults(regions, vmSizes, "")
	if !slices.Contains(regions, d.Region) {
		d.Region = seed.Region
	}
	if !slices.Contains(vmSizes, d.VMSize) {
		d.VMSize = seed.VMSize
	}
	if _, err := catalog.ParseOS(string(d.OS)); err != nil {
		d.OS = seed.OS
	}
	if estimate.ValidateHours(d.Hours) != nil {
		d.Hours = seed.Hours
	}
	if _, err := estimate.ParseCurrency(d.Currency); err != nil || d.Currency == "" {
		d.Currency = seed.Currency
	}
}
