// Package stats holds the latest derived bridge statistics and mirrors them
// into Prometheus gauges.
package stats

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"goltobridge/bridge"
)

type bridgeMetrics struct {
	BurnRate     prometheus.Gauge
	BurnedTokens prometheus.Gauge
	BurnFee      *prometheus.GaugeVec
}

func newBridgeMetrics(reg prometheus.Registerer) *bridgeMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	factory := promauto.With(reg)

	return &bridgeMetrics{
		BurnRate: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "ltobridge_burn_rate",
				Help: "Current bridge burn rate",
			},
		),
		BurnedTokens: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "ltobridge_burned_tokens",
				Help: "Total tokens burned by the bridge",
			},
		),
		BurnFee: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ltobridge_burn_fee",
				Help: "Burn fee per token bucket, in whole tokens",
			},
			[]string{"token"},
		),
	}
}

var (
	metrics = newBridgeMetrics(nil)

	mu      sync.RWMutex
	current *bridge.Stats
)

// Record stores the snapshot and updates the gauges.
func Record(s bridge.Stats) {
	mu.Lock()
	current = &s
	mu.Unlock()

	metrics.BurnRate.Set(s.BurnRate)
	metrics.BurnedTokens.Set(s.BurnedTokens)
	for token, fee := range s.BurnFees {
		metrics.BurnFee.WithLabelValues(string(token)).Set(fee)
	}
}

// Current returns the last recorded snapshot, or nil before the first poll
// succeeds.
func Current() *bridge.Stats {
	mu.RLock()
	defer mu.RUnlock()
	return current
}
