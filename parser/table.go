package parser

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/samber/lo"
	"github.com/ttpr0/go-access/geo"
	"github.com/ttpr0/go-access/structs"
	. "github.com/ttpr0/go-access/util"
)

const DELIMITER = ','

// Checks the header of a csv file for the given columns.
func CheckColumns(file string, columns ...string) error {
	header, err := ReadCSVHeader(file, DELIMITER)
	if err != nil {
		return err
	}
	for _, column := range columns {
		if !lo.Contains(header, column) {
			return &MissingColumnError{File: file, Column: column}
		}
	}
	return nil
}

//*******************************************
// stops
//*******************************************

// Reads the ordered stop table.
//
// Requires the columns "Line", "Stop" and "Type" and either "x"/"y" (planar) or "longitude"/"latitude" (WGS84).
// Lon/lat coordinates are projected to web-mercator if project is set.
func ReadStops(file string, project bool) (Array[structs.Stop], error) {
	if err := CheckColumns(file, "Line", "Stop", "Type"); err != nil {
		return nil, err
	}
	planar := CheckColumns(file, "x", "y") == nil
	if !planar {
		if err := CheckColumns(file, "longitude", "latitude"); err != nil {
			return nil, err
		}
	}

	stops := NewList[structs.Stop](100)
	for row, err := range ReadCSVFromFile[StopRow](file, DELIMITER) {
		if err != nil {
			return nil, err
		}
		var loc orb.Point
		if planar {
			loc = orb.Point{row.X, row.Y}
		} else {
			loc = orb.Point{row.Lon, row.Lat}
			if project {
				loc = geo.ProjectPoint(loc)
			}
		}
		stops.Add(structs.Stop{
			Index: int32(stops.Length()),
			Line:  row.Line,
			Type:  row.Type,
			Name:  row.Stop,
			Loc:   loc,
		})
	}
	return Array[structs.Stop](stops), nil
}

//*******************************************
// employment and population
//*******************************************

// Employment keyed by municipality index and year.
type EmploymentTable = Dict[Tuple[int32, int32], float64]

func ReadEmployment(file string) (EmploymentTable, error) {
	if err := CheckColumns(file, "muni_index", "year", "employment"); err != nil {
		return nil, err
	}
	table := NewDict[Tuple[int32, int32], float64](100)
	for row, err := range ReadCSVFromFile[EmploymentRow](file, DELIMITER) {
		if err != nil {
			return nil, err
		}
		table[MakeTuple(row.MuniIndex, row.Year)] = row.Employment
	}
	return table, nil
}

// Aligns the employment of a year to the municipality order.
func EmploymentFor(municipalities Array[structs.Municipality], table EmploymentTable, year int32) (Array[float64], error) {
	employment := NewArray[float64](municipalities.Length())
	for i, muni := range municipalities {
		value, ok := table[MakeTuple(muni.MuniIndex, year)]
		if !ok {
			return nil, fmt.Errorf("%w: %q (index %d, year %d)", ErrMissingEmployment, muni.Name, muni.MuniIndex, year)
		}
		employment[i] = value
	}
	return employment, nil
}

// Reads population keyed by municipality index.
func ReadPopulation(file string) (Dict[int32, float64], error) {
	if err := CheckColumns(file, "muni_index", "population"); err != nil {
		return nil, err
	}
	table := NewDict[int32, float64](100)
	for row, err := range ReadCSVFromFile[PopulationRow](file, DELIMITER) {
		if err != nil {
			return nil, err
		}
		table[row.MuniIndex] = row.Population
	}
	return table, nil
}

// Aligns the population to the municipality order.
func PopulationFor(municipalities Array[structs.Municipality], table Dict[int32, float64]) (Array[float64], error) {
	population := NewArray[float64](municipalities.Length())
	for i, muni := range municipalities {
		value, ok := table[muni.MuniIndex]
		if !ok {
			return nil, fmt.Errorf("%w: %q (index %d)", ErrMissingPopulation, muni.Name, muni.MuniIndex)
		}
		population[i] = value
	}
	return population, nil
}

//*******************************************
// observed flows
//*******************************************

// Reads observed commuter flows into a matrix in municipality order.
//
// Origin and destination refer to municipality indices, rows of unknown municipalities are ignored.
// Repeated pairs are summed.
func ReadFlows(file string, municipalities Array[structs.Municipality]) (Matrix[float64], error) {
	if err := CheckColumns(file, "origin", "destination", "count"); err != nil {
		return Matrix[float64]{}, err
	}
	positions := NewDict[int32, int](municipalities.Length())
	for i, muni := range municipalities {
		positions[muni.MuniIndex] = i
	}
	n := municipalities.Length()
	flows := NewMatrix[float64](n, n)
	for row, err := range ReadCSVFromFile[FlowRow](file, DELIMITER) {
		if err != nil {
			return Matrix[float64]{}, err
		}
		i, ok_i := positions[row.Origin]
		j, ok_j := positions[row.Destination]
		if !ok_i || !ok_j {
			continue
		}
		flows.Set(i, j, flows.Get(i, j)+row.Count)
	}
	return flows, nil
}
