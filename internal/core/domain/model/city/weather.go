package city

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Weather is the flying/driving condition at a city.
type Weather int

const (
	// UnknownWeather is the invalid zero value.
	UnknownWeather Weather = iota
	// Good weather allows every transport kind.
	Good
	// Bad weather grounds aircraft and makes ground transport more expensive.
	Bad
)

func getWeatherStrings() map[Weather]string {
	return map[Weather]string{
		UnknownWeather: "Unknown",
		Good:           "Good",
		Bad:            "Bad",
	}
}

// ParseWeather returns the Weather named by s ("Good" or "Bad").
func ParseWeather(s string) (Weather, error) {
	switch s {
	case "Good":
		return Good, nil
	case "Bad":
		return Bad, nil
	default:
		return UnknownWeather, errs.NewValueIsInvalidErrorWithCause(
			"weather is invalid",
			fmt.Errorf("%q is not a valid weather", s),
		)
	}
}

// Validate accepts Good and Bad only.
func (w Weather) Validate() error {
	if w != Good && w != Bad {
		return errs.NewValueIsInvalidErrorWithCause(
			"weather is invalid",
			fmt.Errorf("%d is not a valid weather", w),
		)
	}
	return nil
}

func (w Weather) String() string {
	if str, ok := getWeatherStrings()[w]; ok {
		return str
	}
	return "Unknown"
}
