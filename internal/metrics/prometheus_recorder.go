package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	foundation "git.home.luguber.info/inful/ghsummary/internal/foundation/errors"
)

const namespace = "ghsummary"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg           *prom.Registry
	elements      *prom.CounterVec
	renderedBytes prom.Histogram
	writeResults  *prom.CounterVec
	writeDuration prom.Histogram
}

// NewPrometheusRecorder constructs metrics and registers them with reg, or with
// a fresh registry when reg is nil.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		reg: reg,
		elements: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "elements_total",
			Help:      "Summary elements rendered by kind",
		}, []string{"kind"}),
		renderedBytes: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "rendered_bytes",
			Help:      "Size of rendered summary documents",
			Buckets:   prom.ExponentialBuckets(256, 4, 8),
		}),
		writeResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "write_results_total",
			Help:      "Summary deliveries by sink and outcome",
		}, []string{"sink", "result"}),
		writeDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "write_duration_seconds",
			Help:      "Time spent delivering a summary to its sink",
			Buckets:   prom.DefBuckets,
		}),
	}
	reg.MustRegister(pr.elements, pr.renderedBytes, pr.writeResults, pr.writeDuration)
	return pr
}

// Registry returns the registry the metrics are registered with.
func (p *PrometheusRecorder) Registry() *prom.Registry { return p.reg }

func (p *PrometheusRecorder) IncElement(kind string) {
	if p == nil {
		return
	}
	p.elements.WithLabelValues(kind).Inc()
}

func (p *PrometheusRecorder) ObserveRenderedBytes(n int) {
	if p == nil {
		return
	}
	p.renderedBytes.Observe(float64(n))
}

func (p *PrometheusRecorder) IncWriteResult(sink string, result ResultLabel) {
	if p == nil {
		return
	}
	p.writeResults.WithLabelValues(sink, string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveWriteDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.writeDuration.Observe(d.Seconds())
}

// WriteTextfile dumps the gathered metrics in the text exposition format to
// path, atomically, for a node_exporter textfile collector.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	if err := prom.WriteToTextfile(path, p.reg); err != nil {
		return foundation.FileSystemError("failed to write metrics file").
			WithCause(err).
			WithContext("path", path).
			Build()
	}
	return nil
}
