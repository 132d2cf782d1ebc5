package util

import (
	"encoding/csv"
	"errors"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

type CVSSimpleTest struct {
	Name   string  `csv:"name"`
	Age    int     `csv:"age"`
	Height float32 `csv:"height"`
	Gender bool    `csv:"gender"`
}

func TestCSVSimple(t *testing.T) {
	file := "./testdata/simple.csv"

	i := 0
	for row, err := range ReadCSVFromFile[CVSSimpleTest](file, ';') {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if i == 0 {
			if row.Name != "John" || row.Age != 30 || row.Height != 170 || row.Gender != false {
				t.Errorf("row.Name = %v; want John", row.Name)
			}
		} else if i == 1 {
			if row.Name != "Jane" || row.Age != 25 || row.Height != 160 || row.Gender != true {
				t.Errorf("row.Name = %v; want Jane", row.Name)
			}
		} else if i == 2 {
			if row.Name != "Joe" || row.Age != 35 || row.Height != 175 || row.Gender != true {
				t.Errorf("row.Name = %v; want Joe", row.Name)
			}
		} else {
			t.Errorf("too many rows")
		}
		i++
	}
	if i != 3 {
		t.Errorf("read %v rows; want 3", i)
	}
}

func TestCSVError(t *testing.T) {
	file := "./testdata/error.csv"

	i := 0
	errs := make([]error, 0)
	for row, err := range ReadCSVFromFile[CVSSimpleTest](file, ';') {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if i == 0 {
			if row.Name != "John" || row.Age != 30 || row.Height != 170.5 || row.Gender != false {
				t.Errorf("row.Name = %v; want John", row.Name)
			}
		} else if i == 1 {
			if row.Name != "Jane" || row.Age != 25 || row.Height != 160.9 || row.Gender != true {
				t.Errorf("row.Name = %v; want Jane", row.Name)
			}
		} else if i == 2 {
			if row.Name != "'Joe" || row.Age != 35 || row.Height != 175.0 || row.Gender != true {
				t.Errorf("row.Name = %v; want 'Joe", row.Name)
			}
		} else {
			t.Errorf("too many rows")
		}
		i++
	}
	if i != 3 {
		t.Errorf("read %v rows; want 3", i)
	}
	if len(errs) != 2 {
		t.Fatalf("got %v errors; want 2", len(errs))
	}
	var parse_err *csv.ParseError
	if !errors.As(errs[0], &parse_err) || !errors.Is(errs[0], csv.ErrFieldCount) || parse_err.Line != 5 {
		t.Errorf("errs[0] = %v; want field count error on line 5", errs[0])
	}
	var num_err *strconv.NumError
	if !errors.As(errs[1], &num_err) || !strings.Contains(errs[1].Error(), "line 6") || !strings.Contains(errs[1].Error(), `"height"`) {
		t.Errorf("errs[1] = %v; want height parse error on line 6", errs[1])
	}
}

func TestCSVUnparsableValue(t *testing.T) {
	rows := 0
	errs := 0
	for row, err := range ReadCSV[CVSSimpleTest](strings.NewReader("name;age\nJohn;x\nJane;25\n"), ';') {
		if err != nil {
			errs++
			continue
		}
		if row.Name != "Jane" || row.Age != 25 {
			t.Errorf("row = %v; want Jane", row)
		}
		rows++
	}
	if rows != 1 || errs != 1 {
		t.Errorf("got %v rows and %v errors; want 1 and 1", rows, errs)
	}
}

func TestCSVMissingFile(t *testing.T) {
	count := 0
	for _, err := range ReadCSVFromFile[CVSSimpleTest]("./testdata/missing.csv", ';') {
		if err == nil {
			t.Errorf("expected error for missing file")
		}
		count++
	}
	if count != 1 {
		t.Errorf("got %v yields; want 1", count)
	}
}

func TestCSVHeader(t *testing.T) {
	header, err := ReadCSVHeader("./testdata/simple.csv", ';')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if header.Length() != 4 || header[0] != "name" || header[3] != "gender" {
		t.Errorf("header = %v", header)
	}
}

func TestJSONRoundtrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "matrix.json")
	mat := MatrixFromRows([][]float64{{1, 2}, {3, 4}})
	if err := WriteJSONToFile(mat, file); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	read, err := ReadJSONFromFile[Matrix[float64]](file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if read.Rows() != 2 || read.Get(1, 0) != 3 {
		t.Errorf("read matrix = %v", read.ToRows())
	}
}
