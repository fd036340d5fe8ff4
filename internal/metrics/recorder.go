package metrics

import "time"

// ResultLabel enumerates write outcomes for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFailed  ResultLabel = "failed"
	ResultSkipped ResultLabel = "skipped"
)

// Recorder defines observability hooks for rendering and delivering summaries.
type Recorder interface {
	IncElement(kind string)
	ObserveRenderedBytes(n int)
	IncWriteResult(sink string, result ResultLabel)
	ObserveWriteDuration(d time.Duration)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncElement(string)                  {}
func (NoopRecorder) ObserveRenderedBytes(int)           {}
func (NoopRecorder) IncWriteResult(string, ResultLabel) {}
func (NoopRecorder) ObserveWriteDuration(time.Duration) {}
