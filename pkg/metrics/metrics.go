// Package metrics defines the OpenTelemetry instruments recorded by the
// ingestion pipeline. They are exported through the Prometheus registry wired
// up by the API server.
package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Ingest groups the instruments recorded by the scan ingestion service and
// the cart-sync worker.
type Ingest struct {
	scans       metric.Int64Counter
	duplicates  metric.Int64Counter
	syncs       metric.Int64Counter
	syncLatency metric.Float64Histogram
}

// NewIngest creates the ingestion instruments on the provided meter.
func NewIngest(meter metric.Meter) (*Ingest, error) {
	scans, err := meter.Int64Counter("cartscan_scans_total",
		metric.WithDescription("Scans accepted by the ingestion endpoint"))
	if err != nil {
		return nil, err
	}
	duplicates, err := meter.Int64Counter("cartscan_scan_duplicates_total",
		metric.WithDescription("Scans ignored as recent duplicates"))
	if err != nil {
		return nil, err
	}
	syncs, err := meter.Int64Counter("cartscan_cart_syncs_total",
		metric.WithDescription("Cart sync attempts by outcome"))
	if err != nil {
		return nil, err
	}
	syncLatency, err := meter.Float64Histogram("cartscan_cart_sync_seconds",
		metric.WithDescription("Latency of the resolve-and-mutate pipeline"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, err
	}

	return &Ingest{
		scans:       scans,
		duplicates:  duplicates,
		syncs:       syncs,
		syncLatency: syncLatency,
	}, nil
}

// ScanIngested records one accepted scan.
func (m *Ingest) ScanIngested(ctx context.Context) {
	if m == nil {
		return
	}
	m.scans.Add(ctx, 1)
}

// DuplicateIgnored records one scan dropped by the dedupe window.
func (m *Ingest) DuplicateIgnored(ctx context.Context) {
	if m == nil {
		return
	}
	m.duplicates.Add(ctx, 1)
}

// CartSync records one pipeline run and its latency in seconds.
func (m *Ingest) CartSync(ctx context.Context, ok bool, seconds float64) {
	if m == nil {
		return
	}
	m.syncs.Add(ctx, 1, metric.WithAttributes(attribute.Bool("ok", ok)))
	m.syncLatency.Record(ctx, seconds)
}
