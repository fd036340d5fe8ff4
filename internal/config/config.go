package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	foundation "git.home.luguber.info/inful/ghsummary/internal/foundation/errors"
	"git.home.luguber.info/inful/ghsummary/pkg/summary"
)

// DefaultPath is the configuration file looked up when none is given explicitly.
const DefaultPath = "ghsummary.yaml"

// Config represents the application configuration
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`

	// EnvFiles lists the .env files Load read, in load order.
	EnvFiles []string `yaml:"-"`
}

// OutputConfig describes where a rendered summary goes.
type OutputConfig struct {
	// Path is an explicit summary file; when empty the path is read from EnvVar at write time.
	Path      string `yaml:"path,omitempty"`
	EnvVar    string `yaml:"env_var,omitempty"`
	Overwrite bool   `yaml:"overwrite,omitempty"`
}

// Overrides carries command line values; zero values leave the file setting alone.
type Overrides struct {
	Output    string
	EnvVar    string
	Overwrite bool
	LogLevel  string
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configPath after loading .env files. A missing file is only an
// error when configPath is not DefaultPath.
func Load(configPath string) (*Config, error) {
	envFiles, err := LoadEnvFiles()
	if err != nil {
		return nil, err
	}

	if configPath == "" {
		configPath = DefaultPath
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && configPath == DefaultPath {
			cfg := Default()
			cfg.EnvFiles = envFiles
			return cfg, nil
		}
		return nil, foundation.WrapError(err, foundation.CategoryConfig, "failed to read config file").
			Fatal().
			WithContext("path", configPath).
			Build()
	}

	cfg, err := Parse(data)
	if err != nil {
		if classified, ok := foundation.AsClassified(err); ok {
			return nil, classified.WithContext("path", configPath)
		}
		return nil, err
	}
	cfg.EnvFiles = envFiles
	return cfg, nil
}

// envRef matches ${NAME}; a bare $NAME is left alone so literal dollar signs survive.
var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnv replaces ${NAME} references with the variable's value.
func expandEnv(s string) string {
	return envRef.ReplaceAllStringFunc(s, func(ref string) string {
		return os.Getenv(envRef.FindStringSubmatch(ref)[1])
	})
}

// Parse decodes YAML configuration, expanding ${VAR} references first.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	expanded := expandEnv(string(data))

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, foundation.WrapError(err, foundation.CategoryConfig, "failed to unmarshal config").
			Fatal().
			Build()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Output.EnvVar == "" {
		c.Output.EnvVar = summary.StepSummaryEnv
	}
	c.Logging.Level = NormalizeLogLevel(string(c.Logging.Level))
	c.Logging.Format = NormalizeLogFormat(string(c.Logging.Format))
}

func (c *Config) validate() error {
	if c.Logging.Level != "" {
		if _, err := logLevelNormalizer.NormalizeWithError(string(c.Logging.Level)); err != nil {
			return err
		}
	}
	if c.Logging.Format != "" {
		if _, err := logFormatNormalizer.NormalizeWithError(string(c.Logging.Format)); err != nil {
			return err
		}
	}
	if strings.ContainsAny(c.Output.EnvVar, "= \t") {
		return foundation.ConfigError("invalid environment variable name").
			WithContext("env_var", c.Output.EnvVar).
			Build()
	}
	return nil
}

// Apply merges command line overrides into the configuration.
func (c *Config) Apply(o Overrides) error {
	if o.Output != "" {
		c.Output.Path = o.Output
	}
	if o.EnvVar != "" {
		c.Output.EnvVar = o.EnvVar
	}
	if o.Overwrite {
		c.Output.Overwrite = true
	}
	if o.LogLevel != "" {
		level, err := logLevelNormalizer.NormalizeWithError(o.LogLevel)
		if err != nil {
			return err
		}
		c.Logging.Level = level
	}
	return c.validate()
}

// Sink returns the destination described by the output configuration.
func (o OutputConfig) Sink() summary.Sink {
	if o.Path != "" {
		return summary.FileSink{Path: o.Path, Overwrite: o.Overwrite}
	}
	return summary.EnvSink{Var: o.EnvVar, Overwrite: o.Overwrite}
}

// Describe names the destination for log messages.
func (o OutputConfig) Describe() string {
	if o.Path != "" {
		return "file:" + o.Path
	}
	name := o.EnvVar
	if name == "" {
		name = summary.StepSummaryEnv
	}
	return "env:" + name
}
