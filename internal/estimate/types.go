package estimate

import "azure-cost-planner/internal/catalog"

// Request captures one point-estimate query.
type Request struct {
	Region   string
	VMSize   string
	OS       catalog.OS
	Hours    int
	Currency string
}

// Estimate is the monthly cost breakdown for one VM configuration.
type Estimate struct {
	Region         string     `json:"region"`
	RegionName     string     `json:"regionName"`
	VMSize         string     `json:"vmSize"`
	OS             catalog.OS `json:"os"`
	HoursPerMonth  int        `json:"hoursPerMonth"`
	Currency       string     `json:"currency"`
	HourlyPrice    float64    `json:"hourlyPrice"`
	MonthlyCost    float64    `json:"monthlyCost"`
	HourlyDisplay  string     `json:"hourlyDisplay"`
	MonthlyDisplay string     `json:"monthlyDisplay"`
}

// RegionQuote is one row of a cross-region comparison.
type RegionQuote struct {
	Region         string  `json:"region"`
	RegionName     string  `json:"regionName"`
	HourlyPrice    float64 `json:"hourlyPrice"`
	MonthlyCost    float64 `json:"monthlyCost"`
	HourlyDisplay  string  `json:"hourlyDisplay"`
	MonthlyDisplay string  `json:"monthlyDisplay"`
}

// Comparison prices one VM configuration across regions, cheapest first.
type Comparison struct {
	VMSize        string        `json:"vmSize"`
	OS            catalog.OS    `json:"os"`
	HoursPerMonth int           `json:"hoursPerMonth"`
	Currency      string        `json:"currency"`
	Quotes        []RegionQuote `json:"quotes"`
	Cheapest      RegionQuote   `json:"cheapest"`
	MostExpensive RegionQuote   `json:"mostExpensive"`
}
