package commands

import (
	"git.home.luguber.info/inful/ghsummary/internal/config"
	"git.home.luguber.info/inful/ghsummary/internal/logfields"
)

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	Document string `arg:"" help:"Summary document (YAML), or - for standard input"`
}

func (r *RenderCmd) Run(g *Global, root *CLI) error {
	if _, err := root.loadConfig(g, config.Overrides{}); err != nil {
		return err
	}
	doc, err := loadDocument(g, r.Document)
	if err != nil {
		return err
	}
	s := doc.Summary()
	n, err := s.WriteTo(g.Stdout)
	if err != nil {
		return err
	}
	recordRender(g.Recorder, s, int(n))
	g.Logger.Debug("Summary rendered", logfields.Elements(s.Len()), logfields.Bytes(int(n)))
	return root.flushMetrics(g)
}
