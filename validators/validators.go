// Package validators holds the predicates applied to ride payloads. Each
// predicate reports whether a value FAILS its rule, and all of them are
// defined for inputs of any type.
package validators

import (
	"math"

	"github.com/spf13/cast"
)

// Number coerces v to a finite float64. Numeric kinds, numeric strings and
// booleans coerce; nil, NaN, infinities and everything else do not.
func Number(v interface{}) (float64, bool) {
	if v == nil {
		return 0, false
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// LatitudeOutOfRange reports whether v is not a latitude in [-90, 90].
func LatitudeOutOfRange(v interface{}) bool {
	f, ok := Number(v)
	return !ok || f < -90 || f > 90
}

// LongitudeOutOfRange reports whether v is not a longitude in [-180, 180].
func LongitudeOutOfRange(v interface{}) bool {
	f, ok := Number(v)
	return !ok || f < -180 || f > 180
}

// IsBlankOrNonString reports whether v is not a string or is empty.
func IsBlankOrNonString(v interface{}) bool {
	s, ok := v.(string)
	return !ok || len(s) == 0
}
