package commands

import (
	"git.home.luguber.info/inful/ghsummary/internal/logfields"
	"git.home.luguber.info/inful/ghsummary/internal/metrics"
	"git.home.luguber.info/inful/ghsummary/pkg/summary"
)

func elementKind(el summary.Element) string {
	switch el.(type) {
	case summary.Heading:
		return "heading"
	case summary.Paragraph:
		return "text"
	case summary.CodeBlock:
		return "code"
	case summary.Table:
		return "table"
	case summary.LinkLine:
		return "link"
	case summary.Divider:
		return "divider"
	case summary.BlankLine:
		return "blank"
	}
	return "unknown"
}

// recordRender counts the summary's elements and the rendered size.
func recordRender(rec metrics.Recorder, s *summary.Summary, n int) {
	for _, el := range s.Elements() {
		rec.IncElement(elementKind(el))
	}
	rec.ObserveRenderedBytes(n)
}

// flushMetrics writes the metrics file when --metrics-file is set.
func (c *CLI) flushMetrics(g *Global) error {
	pr, ok := g.Recorder.(*metrics.PrometheusRecorder)
	if !ok || c.MetricsFile == "" {
		return nil
	}
	if err := pr.WriteTextfile(c.MetricsFile); err != nil {
		return err
	}
	g.Logger.Debug("Metrics written", logfields.Path(c.MetricsFile))
	return nil
}
