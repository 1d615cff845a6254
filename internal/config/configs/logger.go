package configs

import (
	"io"
	"log/slog"
	"strings"
)

// Logger selects the level and encoding of the service log (LOG_LEVEL,
// LOG_FORMAT).
type Logger struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
}

// SlogLevel parses Level the way slog does, also accepting "warning" and
// "err". Anything unparsable logs at info.
func (c Logger) SlogLevel() slog.Level {
	name := strings.ToLower(strings.TrimSpace(c.Level))
	switch name {
	case "warning":
		name = "warn"
	case "err":
		name = "error"
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// SlogFormat is "json" or "text".
func (c Logger) SlogFormat() string {
	if strings.EqualFold(c.Format, "json") {
		return "json"
	}
	return "text"
}

// NewHandler returns the slog handler booking logs go through.
func (c Logger) NewHandler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if c.SlogFormat() == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
