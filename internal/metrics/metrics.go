// Package metrics counts engine runs for node-exporter's textfile collector.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all Prometheus metrics.
type Registry struct {
	*prometheus.Registry

	reportsTotal   *prometheus.CounterVec
	tradesAnalyzed prometheus.Counter
	reportDuration prometheus.Histogram
	lastNetPnL     prometheus.Gauge
}

// NewRegistry creates a new metrics registry with all metrics registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		Registry: reg,

		reportsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tradejournal_reports_total",
				Help: "Total number of reports built",
			},
			[]string{"kind"},
		),
		tradesAnalyzed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "tradejournal_trades_analyzed_total",
				Help: "Total number of trades fed through the analytics engine",
			},
		),
		reportDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tradejournal_report_duration_seconds",
				Help:    "Report build duration in seconds",
				Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
			},
		),
		lastNetPnL: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "tradejournal_net_pnl",
				Help: "Net P/L of the most recent report",
			},
		),
	}

	reg.MustRegister(r.reportsTotal)
	reg.MustRegister(r.tradesAnalyzed)
	reg.MustRegister(r.reportDuration)
	reg.MustRegister(r.lastNetPnL)

	return r
}

// RecordReport records one engine run over trades.
func (r *Registry) RecordReport(kind string, trades int, netPnL float64, d time.Duration) {
	r.reportsTotal.WithLabelValues(kind).Inc()
	r.tradesAnalyzed.Add(float64(trades))
	r.reportDuration.Observe(d.Seconds())
	r.lastNetPnL.Set(netPnL)
}

// WriteTextfile writes every metric in the text exposition format.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.Registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
