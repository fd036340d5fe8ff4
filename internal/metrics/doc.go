// Package metrics records what the CLI rendered and delivered.
//
// Components receive a Recorder; NoopRecorder is the default so callers never
// check for nil. PrometheusRecorder backs the --metrics-file flag: a CI job
// runs once and exits, so instead of serving /metrics the registry is dumped
// in the text exposition format for a textfile collector to pick up.
//
//	rec := metrics.NewPrometheusRecorder(nil)
//	rec.IncElement("table")
//	_ = rec.WriteTextfile("/var/lib/node_exporter/ghsummary.prom")
package metrics
