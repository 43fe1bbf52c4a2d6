// Package prometheus records formation runs as Prometheus metrics and writes
// them in the node_exporter textfile format.
package prometheus

import (
	"errors"
	"fmt"

	"github.com/bnema/teambuilder-cli/internal/domain"
	"github.com/bnema/teambuilder-cli/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ErrNoTextfilePath = errors.New("metrics textfile path is required")

const (
	outcomeComplete   = "complete"
	outcomeIncomplete = "incomplete"
)

var _ ports.FormationRecorder = (*Recorder)(nil)

type Recorder struct {
	namespace       string
	subsystem       string
	durationBuckets []float64
	registry        *prometheus.Registry

	runs          *prometheus.CounterVec
	failures      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	attempts      prometheus.Histogram
	groups        prometheus.Gauge
	peoplePlaced  prometheus.Gauge
	unplaced      prometheus.Gauge
	groupScoreMin prometheus.Gauge
	groupScoreMax prometheus.Gauge
}

func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{
		namespace:       "teambuilder",
		subsystem:       "formation",
		durationBuckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
		registry:        prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(r)
	}

	r.initializeMetrics()

	return r
}

func (r *Recorder) initializeMetrics() {
	auto := promauto.With(r.registry)

	r.runs = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "runs_total",
		Help:      "Formation runs that produced groups, by strategy and outcome",
	}, []string{"strategy", "outcome"})

	r.failures = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "failures_total",
		Help:      "Formation runs that produced no groups, by strategy and reason",
	}, []string{"strategy", "reason"})

	r.duration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "duration_seconds",
		Help:      "Wall time of a formation run",
		Buckets:   r.durationBuckets,
	}, []string{"strategy"})

	r.attempts = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "attempts",
		Help:      "Passes needed before preference formation was accepted",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
	})

	r.groups = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "groups",
		Help:      "Groups formed by the last run",
	})

	r.peoplePlaced = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "people_placed",
		Help:      "People placed in a group by the last run",
	})

	r.unplaced = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "people_unplaced",
		Help:      "People the last run could not place",
	})

	r.groupScoreMin = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "group_score_min",
		Help:      "Lowest group total score of the last run",
	})

	r.groupScoreMax = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "group_score_max",
		Help:      "Highest group total score of the last run",
	})
}

func (r *Recorder) RecordFormation(report domain.Report) {
	outcome := outcomeComplete
	if len(report.Unplaced) > 0 {
		outcome = outcomeIncomplete
	}

	r.runs.WithLabelValues(report.Strategy, outcome).Inc()
	r.duration.WithLabelValues(report.Strategy).Observe(report.Duration.Seconds())
	r.attempts.Observe(float64(report.Attempts))
	r.groups.Set(float64(len(report.Groups)))
	r.peoplePlaced.Set(float64(report.Placed()))
	r.unplaced.Set(float64(len(report.Unplaced)))

	// Groups arrive ranked, so the extremes sit at either end.
	if n := len(report.Groups); n > 0 {
		r.groupScoreMax.Set(float64(report.Groups[0].Score.Total()))
		r.groupScoreMin.Set(float64(report.Groups[n-1].Score.Total()))
	}
}

func (r *Recorder) RecordFailure(strategy string, reason string) {
	r.failures.WithLabelValues(strategy, reason).Inc()
}

// Gatherer exposes the recorder's private registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes every metric gathered so far to path, replacing it
// atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if path == "" {
		return ErrNoTextfilePath
	}
	if err := prometheus.WriteToTextfile(path, r.Gatherer()); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
