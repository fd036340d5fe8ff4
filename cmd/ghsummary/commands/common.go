package commands

import (
	"io"
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/ghsummary/internal/config"
	"git.home.luguber.info/inful/ghsummary/internal/document"
	"git.home.luguber.info/inful/ghsummary/internal/logfields"
	"git.home.luguber.info/inful/ghsummary/internal/metrics"
)

// Global carries the process streams, logger and metrics shared by all commands.
type Global struct {
	Logger   *slog.Logger
	Recorder metrics.Recorder
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
}

// NewGlobal returns a Global with a default text logger on stderr.
func NewGlobal(stdin io.Reader, stdout, stderr io.Writer) *Global {
	return &Global{
		Logger:   slog.New(slog.NewTextHandler(stderr, nil)),
		Recorder: metrics.NoopRecorder{},
		Stdin:    stdin,
		Stdout:   stdout,
		Stderr:   stderr,
	}
}

// CLI definition & global flags.
type CLI struct {
	Config      string           `short:"c" help:"Configuration file path" default:"ghsummary.yaml"`
	Verbose     bool             `short:"v" help:"Enable verbose logging"`
	LogLevel    string           `name:"log-level" help:"Override logging.level (debug|info|warn|error)"`
	MetricsFile string           `name:"metrics-file" help:"Write Prometheus metrics in text format to this file"`
	Version     kong.VersionFlag `name:"version" help:"Show version and exit"`

	Render RenderCmd `cmd:"" help:"Render a summary document to standard output"`
	Write  WriteCmd  `cmd:"" help:"Append a rendered summary document to the job summary file"`
}

// New builds the kong parser for cli with g bound for command Run methods.
func New(cli *CLI, g *Global, options ...kong.Option) (*kong.Kong, error) {
	opts := []kong.Option{
		kong.Name("ghsummary"),
		kong.Description("Build GitHub Actions job summaries from YAML documents."),
		kong.UsageOnError(),
		kong.Bind(g),
		kong.Writers(g.Stdout, g.Stderr),
	}
	return kong.New(cli, append(opts, options...)...)
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply(g *Global) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	g.Logger = slog.New(slog.NewTextHandler(g.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(g.Logger)
	if c.MetricsFile != "" {
		g.Recorder = metrics.NewPrometheusRecorder(nil)
	}
	return nil
}

// loadConfig reads the configuration file, applies overrides and switches the
// logger to the configured level and format.
func (c *CLI) loadConfig(g *Global, overrides config.Overrides) (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}
	if c.LogLevel != "" {
		overrides.LogLevel = c.LogLevel
	}
	if err := cfg.Apply(overrides); err != nil {
		return nil, err
	}
	g.Logger = cfg.Logging.NewLogger(g.Stderr, c.Verbose)
	for _, name := range cfg.EnvFiles {
		g.Logger.Debug("Environment file loaded", logfields.Path(name))
	}
	g.Logger.Debug("Configuration loaded",
		logfields.Path(c.Config),
		logfields.Sink(cfg.Output.Describe()),
		logfields.EnvVar(cfg.Output.EnvVar))
	return cfg, nil
}

// stdinName selects standard input as the document source.
const stdinName = "-"

func loadDocument(g *Global, name string) (*document.Document, error) {
	var (
		doc *document.Document
		err error
	)
	if name == stdinName {
		doc, err = document.Read(g.Stdin)
	} else {
		doc, err = document.Load(name)
	}
	if err != nil {
		return nil, err
	}
	g.Logger.Debug("Document loaded", logfields.Document(name), logfields.Elements(len(doc.Elements)))
	return doc, nil
}
