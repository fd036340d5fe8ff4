package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath      = "path"
	KeyDocument  = "document"
	KeyElements  = "elements"
	KeyBytes     = "bytes"
	KeySink      = "sink"
	KeyEnvVar    = "env_var"
	KeyOverwrite = "overwrite"
	KeyError     = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr      { return slog.String(KeyPath, p) }
func Document(p string) slog.Attr  { return slog.String(KeyDocument, p) }
func Elements(n int) slog.Attr     { return slog.Int(KeyElements, n) }
func Bytes(n int) slog.Attr        { return slog.Int(KeyBytes, n) }
func Sink(kind string) slog.Attr   { return slog.String(KeySink, kind) }
func EnvVar(name string) slog.Attr { return slog.String(KeyEnvVar, name) }
func Overwrite(on bool) slog.Attr  { return slog.Bool(KeyOverwrite, on) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
