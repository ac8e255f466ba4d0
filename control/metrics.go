// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Prometheus collectors for the lock and ring stress workloads.
// Exposes a flattened snapshot for reports and tests.

package control

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// MetricsRegistry owns a private Prometheus registry and the workload collectors.
type MetricsRegistry struct {
	registry *prometheus.Registry

	lockAcquisitions *prometheus.CounterVec
	ringPushes       prometheus.Counter
	ringWraps        prometheus.Counter
	maxStreak        *prometheus.GaugeVec
	runs             *prometheus.CounterVec
	duration         *prometheus.HistogramVec
}

// NewMetricsRegistry creates and registers all collectors under namespace.
func NewMetricsRegistry(namespace string) (*MetricsRegistry, error) {
	m := &MetricsRegistry{
		registry: prometheus.NewRegistry(),
		lockAcquisitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lock",
			Name:      "acquisitions_total",
			Help:      "Total number of spin lock acquisitions",
		}, []string{"workload"}),
		ringPushes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ring",
			Name:      "pushes_total",
			Help:      "Total number of ring pushes",
		}),
		ringWraps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ring",
			Name:      "wraps_total",
			Help:      "Total number of pushes that wrapped the write index",
		}),
		maxStreak: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "lock",
			Name:      "max_streak",
			Help:      "Longest run of consecutive acquisitions by one worker in the last round",
		}, []string{"workload"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "workload",
			Name:      "rounds_total",
			Help:      "Workload rounds by result",
		}, []string{"workload", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "workload",
			Name:      "round_duration_seconds",
			Help:      "Wall time of a single workload round",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}, []string{"workload"}),
	}

	for _, c := range []prometheus.Collector{
		m.lockAcquisitions, m.ringPushes, m.ringWraps, m.maxStreak, m.runs, m.duration,
	} {
		if err := m.registry.Register(c); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}
	return m, nil
}

// Registry returns the underlying Prometheus registry.
func (m *MetricsRegistry) Registry() *prometheus.Registry {
	return m.registry
}

// RecordLock adds n acquisitions for workload.
func (m *MetricsRegistry) RecordLock(workload string, n int) {
	m.lockAcquisitions.WithLabelValues(workload).Add(float64(n))
}

// RecordRing adds ring push and wrap counts.
func (m *MetricsRegistry) RecordRing(pushes, wraps int) {
	m.ringPushes.Add(float64(pushes))
	m.ringWraps.Add(float64(wraps))
}

// SetMaxStreak records the longest same-worker acquisition streak.
func (m *MetricsRegistry) SetMaxStreak(workload string, streak int) {
	m.maxStreak.WithLabelValues(workload).Set(float64(streak))
}

// RecordRound counts a finished round and its duration.
func (m *MetricsRegistry) RecordRound(workload string, d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.runs.WithLabelValues(workload, result).Inc()
	m.duration.WithLabelValues(workload).Observe(d.Seconds())
}

// Snapshot gathers every metric into name{labels} -> value. Histograms
// contribute name_count and name_sum entries.
func (m *MetricsRegistry) Snapshot() (map[string]float64, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}
	out := make(map[string]float64)
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			key := mf.GetName() + labelSuffix(metric.GetLabel())
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				out[key] = metric.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				out[key] = metric.GetGauge().GetValue()
			case dto.MetricType_HISTOGRAM:
				h := metric.GetHistogram()
				suffix := labelSuffix(metric.GetLabel())
				out[mf.GetName()+"_count"+suffix] = float64(h.GetSampleCount())
				out[mf.GetName()+"_sum"+suffix] = h.GetSampleSum()
			}
		}
	}
	return out, nil
}

func labelSuffix(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.GetName()+"="+p.GetValue())
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, ",") + "}"
}
