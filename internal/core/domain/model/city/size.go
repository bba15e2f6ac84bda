package city

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Size classifies a city. Values are ordered, so eligibility rules may compare
// them with >=.
type Size int

const (
	// UnknownSize is the invalid zero value.
	UnknownSize Size = iota
	// Small cities are only served by road.
	Small
	// Medium cities additionally have a railway station.
	Medium
	// Large cities additionally have an airport.
	Large
)

func getSizeStrings() map[Size]string {
	return map[Size]string{
		UnknownSize: "Unknown",
		Small:       "Small",
		Medium:      "Medium",
		Large:       "Large",
	}
}

// ParseSize returns the Size named by s ("Small", "Medium" or "Large").
func ParseSize(s string) (Size, error) {
	for size, name := range getSizeStrings() {
		if size != UnknownSize && name == s {
			return size, nil
		}
	}
	return UnknownSize, errs.NewValueIsInvalidErrorWithCause("size is invalid", fmt.Errorf("%q is not a valid size", s))
}

// Validate rejects UnknownSize and anything outside [Small..Large].
func (s Size) Validate() error {
	if s < Small || s > Large {
		return errs.NewValueIsOutOfRangeError("size", int(s), int(Small), int(Large))
	}
	return nil
}

func (s Size) String() string {
	if str, ok := getSizeStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
