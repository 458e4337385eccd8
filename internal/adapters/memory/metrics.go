package memory

import "github.com/prometheus/client_golang/prometheus"

// Collector exposes the store size as the quotes_stored gauge.
// The value is read on every scrape.
func (s *QuoteStore) Collector() prometheus.Collector {
	return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "quotes_stored",
		Help: "Number of quotes currently held by the in-memory store.",
	}, func() float64 {
		return float64(s.Len())
	})
}
