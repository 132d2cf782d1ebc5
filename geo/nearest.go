package geo

import (
	"errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	. "github.com/ttpr0/go-access/util"
)

var ErrNoCandidates = errors.New("no candidate points")

// Finds the candidate closest to the reference geometry.
//
// Areas are reduced to their centroid. Distance is euclidean, so both sides have to be projected.
// Returns the distance and the index of the candidate, ties resolve to the lowest index.
func Nearest(reference Geometry, candidates []orb.Point) (float64, int, error) {
	return NearestFrom(None[orb.Point](), reference, candidates)
}

// Same as Nearest but an explicit center (e.g. the weighted center of sub-units) overrides the reference geometry.
func NearestFrom(center Optional[orb.Point], reference Geometry, candidates []orb.Point) (float64, int, error) {
	var from orb.Point
	if center.HasValue() {
		from = center.Value
	} else {
		from = reference.Centroid()
	}
	return NearestPoint(from, candidates)
}

func NearestPoint(from orb.Point, candidates []orb.Point) (float64, int, error) {
	if len(candidates) == 0 {
		return 0, -1, ErrNoCandidates
	}
	min_dist := planar.Distance(from, candidates[0])
	min_index := 0
	for i := 1; i < len(candidates); i++ {
		dist := planar.Distance(from, candidates[i])
		if dist < min_dist {
			min_dist = dist
			min_index = i
		}
	}
	return min_dist, min_index, nil
}
