package domain

import (
	"github.com/foodspot-service/internal/pkg/errors"
)

// LatLon is the internal coordinate tuple. Note the axis order: wire-format
// polygon vertices arrive as [lng, lat] pairs and must be swapped exactly
// once, in RingFromBounds.
type LatLon struct {
	Lat float64
	Lon float64
}

// RingFromBounds converts wire-format [lng, lat] pairs into a closed internal
// ring. A ring needs at least 4 vertices; an open ring is closed by appending
// the first vertex.
func RingFromBounds(bounds [][]float64) ([]LatLon, error) {
	if len(bounds) < 4 {
		return nil, errors.ErrInvalidPolygon
	}

	ring := make([]LatLon, 0, len(bounds)+1)
	for _, pair := range bounds {
		if len(pair) != 2 {
			return nil, errors.ErrInvalidPolygon
		}
		ring = append(ring, LatLon{Lat: pair[1], Lon: pair[0]})
	}

	if ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}

	return ring, nil
}
