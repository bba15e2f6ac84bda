package transport

import (
	"fmt"

	"logistics/internal/core/domain/model/city"
	"logistics/internal/pkg/errs"
)

// Kind is the variant tag of a Transport.
type Kind int

const (
	// UnknownKind is the invalid zero value.
	UnknownKind Kind = iota
	// Road transport (trucks) serves every route.
	Road
	// Rail transport needs a station at both ends.
	Rail
	// Air transport needs an airport and good weather at both ends.
	Air
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind: "Unknown",
		Road:        "Road",
		Rail:        "Rail",
		Air:         "Air",
	}
}

// Validate accepts Road, Rail and Air.
func (k Kind) Validate() error {
	if k != Road && k != Rail && k != Air {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid", fmt.Errorf("%d is not a valid transport kind", k))
	}
	return nil
}

func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// CanOperate reports whether a transport of kind k can carry freight between
// origin and destination given their current size and weather:
//   - Road: always
//   - Rail: both endpoints at least Medium
//   - Air: both endpoints Large with Good weather
//
// Unknown kinds never operate.
func CanOperate(k Kind, origin, destination city.City) bool {
	switch k {
	case Road:
		return true
	case Rail:
		return origin.Size() >= city.Medium && destination.Size() >= city.Medium
	case Air:
		return origin.Size() == city.Large && destination.Size() == city.Large &&
			origin.Weather() == city.Good && destination.Weather() == city.Good
	default:
		return false
	}
}
