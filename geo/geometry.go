package geo

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/project"
)

var (
	// reference geometry is neither a point nor an area
	ErrGeometryType = errors.New("geometry must be a point or an area")
	// no points to build a center from
	ErrEmptyGeometry = errors.New("empty geometry")
)

//*******************************************
// geometry
//*******************************************

type GeometryType byte

const (
	POINT GeometryType = 0
	AREA  GeometryType = 1
)

func (self GeometryType) String() string {
	switch self {
	case POINT:
		return "point"
	case AREA:
		return "area"
	default:
		panic("unknown geometry type")
	}
}

// Point or area geometry in projected coordinates.
//
// The variant is resolved once on creation, the centroid of an area is computed eagerly.
type Geometry struct {
	typ      GeometryType
	point    orb.Point
	area     orb.MultiPolygon
	centroid orb.Point
}

func NewPoint(point orb.Point) Geometry {
	return Geometry{
		typ:      POINT,
		point:    point,
		centroid: point,
	}
}

func NewArea(area orb.MultiPolygon) (Geometry, error) {
	if len(area) == 0 {
		return Geometry{}, ErrEmptyGeometry
	}
	centroid, size := planar.CentroidArea(area)
	if size == 0 {
		return Geometry{}, ErrEmptyGeometry
	}
	return Geometry{
		typ:      AREA,
		area:     area,
		centroid: centroid,
	}, nil
}

// Resolves an orb geometry into a Geometry.
//
// Points, polygons and multi-polygons are accepted, everything else fails with ErrGeometryType.
func FromOrb(g orb.Geometry) (Geometry, error) {
	switch geom := g.(type) {
	case orb.Point:
		return NewPoint(geom), nil
	case orb.Polygon:
		return NewArea(orb.MultiPolygon{geom})
	case orb.MultiPolygon:
		return NewArea(geom)
	case nil:
		return Geometry{}, fmt.Errorf("%w: got no geometry", ErrGeometryType)
	default:
		return Geometry{}, fmt.Errorf("%w: got %s", ErrGeometryType, g.GeoJSONType())
	}
}

func (self Geometry) Type() GeometryType {
	return self.typ
}

// Representative point, the point itself or the area centroid.
func (self Geometry) Centroid() orb.Point {
	return self.centroid
}

//*******************************************
// centers
//*******************************************

// Computes the weighted center of the points.
//
// Without weights (nil or summing to zero) the plain centroid of the multipoint is returned.
func WeightedCenter(points []orb.Point, weights []float64) (orb.Point, error) {
	if len(points) == 0 {
		return orb.Point{}, ErrEmptyGeometry
	}
	if weights != nil && len(weights) != len(points) {
		return orb.Point{}, fmt.Errorf("got %d weights for %d points", len(weights), len(points))
	}
	total := float64(0)
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		center, _ := planar.CentroidArea(orb.MultiPoint(points))
		return center, nil
	}
	x, y := float64(0), float64(0)
	for i, p := range points {
		x += p[0] * weights[i]
		y += p[1] * weights[i]
	}
	return orb.Point{x / total, y / total}, nil
}

//*******************************************
// projection
//*******************************************

// Projects a WGS84 lon/lat point into web-mercator meters.
func ProjectPoint(p orb.Point) orb.Point {
	return project.Point(p, project.WGS84.ToMercator)
}

// Projects a WGS84 geometry into web-mercator meters.
func Project(g Geometry) Geometry {
	switch g.typ {
	case AREA:
		area := project.MultiPolygon(g.area.Clone(), project.WGS84.ToMercator)
		projected, err := NewArea(area)
		if err != nil {
			// projection keeps a non-empty area non-empty
			panic(err)
		}
		return projected
	default:
		return NewPoint(ProjectPoint(g.point))
	}
}
