package commands

import (
	"time"

	"git.home.luguber.info/inful/ghsummary/internal/config"
	"git.home.luguber.info/inful/ghsummary/internal/logfields"
	"git.home.luguber.info/inful/ghsummary/internal/metrics"
)

// WriteCmd implements the 'write' command.
type WriteCmd struct {
	Document  string `arg:"" help:"Summary document (YAML), or - for standard input"`
	Output    string `short:"o" help:"Summary file to write instead of the one named by --env-var"`
	Overwrite bool   `help:"Replace the summary file instead of appending to it"`
	EnvVar    string `name:"env-var" help:"Environment variable holding the summary file path (default GITHUB_STEP_SUMMARY)"`
}

func (w *WriteCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig(g, config.Overrides{
		Output:    w.Output,
		EnvVar:    w.EnvVar,
		Overwrite: w.Overwrite,
	})
	if err != nil {
		return err
	}
	doc, err := loadDocument(g, w.Document)
	if err != nil {
		return err
	}

	s := doc.Summary()
	content, err := s.Render()
	if err != nil {
		return err
	}
	sinkKind := "env"
	if cfg.Output.Path != "" {
		sinkKind = "file"
	}
	if content == "" {
		g.Recorder.IncWriteResult(sinkKind, metrics.ResultSkipped)
		g.Logger.Info("Summary is empty, nothing written", logfields.Document(w.Document))
		return root.flushMetrics(g)
	}
	recordRender(g.Recorder, s, len(content))

	start := time.Now()
	err = s.Write(cfg.Output.Sink())
	g.Recorder.ObserveWriteDuration(time.Since(start))
	if err != nil {
		g.Recorder.IncWriteResult(sinkKind, metrics.ResultFailed)
		if flushErr := root.flushMetrics(g); flushErr != nil {
			g.Logger.Warn("Failed to write metrics", logfields.Error(flushErr))
		}
		return err
	}
	g.Recorder.IncWriteResult(sinkKind, metrics.ResultSuccess)
	g.Logger.Info("Summary written",
		logfields.Sink(cfg.Output.Describe()),
		logfields.Elements(s.Len()),
		logfields.Bytes(len(content)),
		logfields.Overwrite(cfg.Output.Overwrite))
	return root.flushMetrics(g)
}
