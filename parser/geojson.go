package parser

import (
	"fmt"
	"os"

	"github.com/paulmach/orb/geojson"
	"github.com/ttpr0/go-access/geo"
	"github.com/ttpr0/go-access/structs"
	. "github.com/ttpr0/go-access/util"
)

// property holding the municipality population
const POPULATION_PROPERTY = "population"

func _ReadFeatures(file string) (*geojson.FeatureCollection, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	collection, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return collection, nil
}

//*******************************************
// municipalities
//*******************************************

// Reads municipalities from a GeoJSON feature collection.
//
// Point, Polygon and MultiPolygon geometries are accepted. The name and index are taken from the given properties,
// a "population" property is read when present.
func ReadMunicipalities(file string, name_column, index_column string, project bool) (Array[structs.Municipality], error) {
	collection, err := _ReadFeatures(file)
	if err != nil {
		return nil, err
	}
	municipalities := NewArray[structs.Municipality](len(collection.Features))
	for i, feature := range collection.Features {
		name, err := _PropertyString(feature.Properties, name_column)
		if err != nil {
			return nil, fmt.Errorf("%s: feature %d: %w", file, i, err)
		}
		index, err := _PropertyInt(feature.Properties, index_column)
		if err != nil {
			return nil, fmt.Errorf("%s: feature %d: %w", file, i, err)
		}
		geom, err := geo.FromOrb(feature.Geometry)
		if err != nil {
			return nil, fmt.Errorf("%s: municipality %q: %w", file, name, err)
		}
		if project {
			geom = geo.Project(geom)
		}
		population := float64(0)
		if _, ok := feature.Properties[POPULATION_PROPERTY]; ok {
			population, err = _PropertyFloat(feature.Properties, POPULATION_PROPERTY)
			if err != nil {
				return nil, fmt.Errorf("%s: municipality %q: %w", file, name, err)
			}
		}
		municipalities[i] = structs.Municipality{
			Index:      int32(i),
			MuniIndex:  int32(index),
			Name:       name,
			Geom:       geom,
			Population: population,
		}
	}
	return municipalities, nil
}

// Population of the municipalities as read from their features.
func FeaturePopulation(municipalities Array[structs.Municipality]) Array[float64] {
	population := NewArray[float64](municipalities.Length())
	for i, muni := range municipalities {
		population[i] = muni.Population
	}
	return population
}

//*******************************************
// sub-units
//*******************************************

// Reads sub-units (e.g. comunas) from a GeoJSON feature collection.
//
// Polygon features are reduced to their centroid. An empty weight_column leaves all weights at zero.
func ReadSubUnits(file string, index_column, weight_column string, project bool) (Array[structs.SubUnit], error) {
	collection, err := _ReadFeatures(file)
	if err != nil {
		return nil, err
	}
	subunits := NewArray[structs.SubUnit](len(collection.Features))
	for i, feature := range collection.Features {
		index, err := _PropertyInt(feature.Properties, index_column)
		if err != nil {
			return nil, fmt.Errorf("%s: feature %d: %w", file, i, err)
		}
		weight := float64(0)
		if weight_column != "" {
			weight, err = _PropertyFloat(feature.Properties, weight_column)
			if err != nil {
				return nil, fmt.Errorf("%s: feature %d: %w", file, i, err)
			}
		}
		geom, err := geo.FromOrb(feature.Geometry)
		if err != nil {
			return nil, fmt.Errorf("%s: feature %d: %w", file, i, err)
		}
		loc := geom.Centroid()
		if project {
			loc = geo.ProjectPoint(loc)
		}
		subunits[i] = structs.SubUnit{
			MuniIndex: int32(index),
			Loc:       loc,
			Weight:    weight,
		}
	}
	return subunits, nil
}

//*******************************************
// properties
//*******************************************

func _PropertyString(props geojson.Properties, key string) (string, error) {
	switch value := props[key].(type) {
	case string:
		return value, nil
	case float64:
		return fmt.Sprint(value), nil
	case nil:
		return "", fmt.Errorf("%w: %q is missing", ErrProperty, key)
	default:
		return "", fmt.Errorf("%w: %q is not a string", ErrProperty, key)
	}
}

func _PropertyFloat(props geojson.Properties, key string) (float64, error) {
	switch value := props[key].(type) {
	case float64:
		return value, nil
	case int:
		return float64(value), nil
	case nil:
		return 0, fmt.Errorf("%w: %q is missing", ErrProperty, key)
	default:
		return 0, fmt.Errorf("%w: %q is not a number", ErrProperty, key)
	}
}

func _PropertyInt(props geojson.Properties, key string) (int, error) {
	value, err := _PropertyFloat(props, key)
	if err != nil {
		return 0, err
	}
	if value != float64(int(value)) {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrProperty, key)
	}
	return int(value), nil
}

// Projects the stop locations to web-mercator.
func ProjectStops(stops Array[structs.Stop]) Array[structs.Stop] {
	projected := stops.Copy()
	for i := range projected {
		projected[i].Loc = geo.ProjectPoint(projected[i].Loc)
	}
	return projected
}

