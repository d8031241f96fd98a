package validators

import (
	"math"
	"testing"
)

func TestLatitudeOutOfRange(t *testing.T) {
	tests := []struct {
		in   interface{}
		want bool
	}{
		{0.0, false},
		{-90.0, false},
		{90.0, false},
		{45.123456, false},
		{-90.000001, true},
		{90.5, true},
		{-91, true},
		{int64(12), false},
		{float32(-12.5), false},
		{uint8(91), true},

		// Coercion: numeric strings and booleans convert, the rest fail.
		{"45", false},
		{"-95", true},
		{true, false},
		{"north", true},
		{"", true},
		{nil, true},
		{math.NaN(), true},
		{math.Inf(1), true},
		{[]interface{}{1.0}, true},
		{map[string]interface{}{}, true},
	}

	for _, tt := range tests {
		if got := LatitudeOutOfRange(tt.in); got != tt.want {
			t.Errorf("LatitudeOutOfRange(%#v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLongitudeOutOfRange(t *testing.T) {
	tests := []struct {
		in   interface{}
		want bool
	}{
		{0.0, false},
		{-180.0, false},
		{180.0, false},
		{-179.99, false},
		{-180.01, true},
		{181.0, true},
		{100, false},
		{"170.5", false},
		{"190", true},
		{false, false},
		{nil, true},
		{"east", true},
		{math.Inf(-1), true},
	}

	for _, tt := range tests {
		if got := LongitudeOutOfRange(tt.in); got != tt.want {
			t.Errorf("LongitudeOutOfRange(%#v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// The range predicates must agree with the plain comparison for every
// finite number.
func TestRangePredicatesMatchComparison(t *testing.T) {
	for v := -400.0; v <= 400.0; v += 0.25 {
		if got, want := LatitudeOutOfRange(v), v < -90 || v > 90; got != want {
			t.Fatalf("LatitudeOutOfRange(%v) = %v, want %v", v, got, want)
		}
		if got, want := LongitudeOutOfRange(v), v < -180 || v > 180; got != want {
			t.Fatalf("LongitudeOutOfRange(%v) = %v, want %v", v, got, want)
		}
	}
}

func TestIsBlankOrNonString(t *testing.T) {
	tests := []struct {
		in   interface{}
		want bool
	}{
		{"test", false},
		{" ", false},
		{"Toyota Prius", false},
		{"", true},
		{nil, true},
		{1, true},
		{0.0, true},
		{true, true},
		{[]string{"a"}, true},
		{map[string]interface{}{"name": "a"}, true},
	}

	for _, tt := range tests {
		if got := IsBlankOrNonString(tt.in); got != tt.want {
			t.Errorf("IsBlankOrNonString(%#v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNumber(t *testing.T) {
	if f, ok := Number("12.5"); !ok || f != 12.5 {
		t.Errorf(`Number("12.5") = %v, %v`, f, ok)
	}
	if f, ok := Number(true); !ok || f != 1 {
		t.Errorf("Number(true) = %v, %v", f, ok)
	}
	if _, ok := Number(nil); ok {
		t.Error("Number(nil) coerced")
	}
}
