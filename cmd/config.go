package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"logistics/internal/pkg/errs"
)

// Config holds the ambient process settings read from the environment.
// Domain values (cities, fleet, the order) are literal and not configurable.
type Config struct {
	LogLevel     string
	LogFormat    string
	ReportFormat string
	MetricsDump  bool
}

// NewLogger builds the process logger from LogLevel ("debug", "info", "warn",
// "error") and LogFormat ("text" or "json"). Empty values mean warn and text.
func (c Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLogLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(strings.TrimSpace(c.LogFormat)) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, errs.NewValueIsInvalidErrorWithCause("LOG_FORMAT", fmt.Errorf("%q is not text or json", c.LogFormat))
}

func parseLogLevel(s string) (slog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return slog.LevelWarn, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err)
	}
	return level, nil
}
