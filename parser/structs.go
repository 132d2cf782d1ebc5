package parser

import (
	"errors"
	"fmt"
)

var (
	ErrMissingEmployment = errors.New("no employment for municipality")
	ErrMissingPopulation = errors.New("no population for municipality")
	ErrProperty          = errors.New("invalid feature property")
)

// A required column is absent from a table header.
type MissingColumnError struct {
	File   string
	Column string
}

func (self *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: missing column %q", self.File, self.Column)
}

//*******************************************
// csv rows
//*******************************************

type StopRow struct {
	Line string  `csv:"Line"`
	Stop string  `csv:"Stop"`
	Type string  `csv:"Type"`
	X    float64 `csv:"x"`
	Y    float64 `csv:"y"`
	Lon  float64 `csv:"longitude"`
	Lat  float64 `csv:"latitude"`
}

type EmploymentRow struct {
	MuniIndex  int32   `csv:"muni_index"`
	Year       int32   `csv:"year"`
	Employment float64 `csv:"employment"`
}

type PopulationRow struct {
	MuniIndex  int32   `csv:"muni_index"`
	Population float64 `csv:"population"`
}

type FlowRow struct {
	Origin      int32   `csv:"origin"`
	Destination int32   `csv:"destination"`
	Count       float64 `csv:"count"`
}
