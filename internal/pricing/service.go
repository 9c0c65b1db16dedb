// Package pricing resolves hourly VM prices from a pluggable source.
package pricing

import (
	"github.com/prometheus/client_golang/prometheus"

	"azure-cost-planner/internal/catalog"
)

// Service answers point and cross-region price queries against a Source.
type Service struct {
	source  Source
	metrics *metrics
}

// NewService binds the lookup service to a source. A nil registerer disables metrics.
func NewService(source Source, reg prometheus.Registerer) *Service {
	if source == nil {
		source = NewStaticSource(nil)
	}
	return &Service{
		source:  source,
		metrics: newMetrics(reg, source),
	}
}

// SourceName returns the name of the backing source.
func (s *Service) SourceName() string {
	return s.source.Name()
}

// Regions lists the regions the service fans out over, in source order.
func (s *Service) Regions() []string {
	return s.source.Regions()
}

// VMSizes lists the VM sizes offered by the source.
func (s *Service) VMSizes() []string {
	return s.source.VMSizes()
}

// HourlyPrice resolves a single region/size/os combination.
func (s *Service) HourlyPrice(region, vmSize string, os catalog.OS) Price {
	p := s.source.HourlyPrice(region, vmSize, os)
	s.metrics.observeLookup(p)
	return p
}

// AllRegionsForVM returns the hourly price of vmSize/os in every region that has one.
// Regions without a price are omitted; the result may be empty.
func (s *Service) AllRegionsForVM(vmSize string, os catalog.OS) map[string]float64 {
	out := map[string]float64{}
	for _, region := range s.source.Regions() {
		if price, ok := s.source.HourlyPrice(region, vmSize, os).Value(); ok {
			out[region] = price
		}
	}
	s.metrics.observeComparison(len(out))
	return out
}
