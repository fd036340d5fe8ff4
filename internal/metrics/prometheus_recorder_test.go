package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	foundation "git.home.luguber.info/inful/ghsummary/internal/foundation/errors"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.IncElement("heading")
	pr.IncElement("table")
	pr.IncElement("table")
	pr.ObserveRenderedBytes(512)
	pr.IncWriteResult("env", ResultSuccess)
	pr.ObserveWriteDuration(3 * time.Millisecond)

	mfs, err := reg.Gather()
	require.NoError(t, err)

	byName := map[string]float64{}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			if c := m.GetCounter(); c != nil {
				byName[mf.GetName()] += c.GetValue()
			}
		}
	}
	require.InDelta(t, 3, byName["ghsummary_elements_total"], 0)
	require.InDelta(t, 1, byName["ghsummary_write_results_total"], 0)
}

func TestPrometheusRecorder_WriteTextfile(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	pr.IncElement("divider")
	path := filepath.Join(t.TempDir(), "ghsummary.prom")

	require.NoError(t, pr.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `ghsummary_elements_total{kind="divider"} 1`)
}

func TestPrometheusRecorder_WriteTextfileMissingDir(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	err := pr.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom"))
	require.ErrorIs(t, err, foundation.CategoryFileSystem)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestNilRecorderIsSafe(t *testing.T) {
	var pr *PrometheusRecorder
	pr.IncElement("heading")
	pr.ObserveRenderedBytes(1)
	pr.IncWriteResult("file", ResultFailed)
	pr.ObserveWriteDuration(time.Second)
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.IncElement("heading")
	r.IncWriteResult("file", ResultSkipped)
}
