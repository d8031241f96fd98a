package geohash

import (
	"github.com/mmcloughlin/geohash"
)

// CellPrecision is the geohash length used when tagging ride endpoints.
// Six characters is roughly a 1.2km x 0.6km cell.
const CellPrecision = 6

// Encode coordinates into a geohash with specified precision.
func Encode(lat, lon float64, precision uint) string {
	return geohash.EncodeWithPrecision(lat, lon, precision)
}

// Cell returns the geohash cell containing the coordinates.
func Cell(lat, lon float64) string {
	return Encode(lat, lon, CellPrecision)
}
