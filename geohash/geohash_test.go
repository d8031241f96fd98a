package geohash

import "testing"

func TestCell(t *testing.T) {
	tests := []struct {
		lat, lon float64
		want     string
	}{
		{57.64911, 10.40744, "u4pruy"},
		{0, 0, "s00000"},
		{-90, -180, "000000"},
	}

	for _, tt := range tests {
		if got := Cell(tt.lat, tt.lon); got != tt.want {
			t.Errorf("Cell(%v, %v) = %q, want %q", tt.lat, tt.lon, got, tt.want)
		}
	}
}

func TestEncodePrecision(t *testing.T) {
	if got := Encode(57.64911, 10.40744, 11); got != "u4pruydqqvj" {
		t.Errorf("Encode() = %q", got)
	}
}
