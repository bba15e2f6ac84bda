package console

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// Format selects the report encoding.
type Format int

const (
	UnknownFormat Format = iota
	TextFormat
	YAMLFormat
)

func getFormatStrings() map[Format]string {
	return map[Format]string{
		UnknownFormat: "unknown",
		TextFormat:    "text",
		YAMLFormat:    "yaml",
	}
}

// ParseFormat accepts "text" or "yaml", case-insensitively. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return TextFormat, nil
	case "yaml":
		return YAMLFormat, nil
	}
	return UnknownFormat, errs.NewValueIsInvalidErrorWithCause("report format", fmt.Errorf("%q is not a valid format", s))
}

func (f Format) String() string {
	if s, ok := getFormatStrings()[f]; ok {
		return s
	}
	return "unknown"
}
