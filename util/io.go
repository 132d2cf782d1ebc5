package util

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"
)

//*******************************************
// json io
//*******************************************

func WriteJSONToFile[T any](value T, file string) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(file, data, 0o644)
}

func ReadJSONFromFile[T any](file string) (T, error) {
	var value T
	data, err := os.ReadFile(file)
	if err != nil {
		return value, err
	}
	err = json.Unmarshal(data, &value)
	return value, err
}

//*******************************************
// csv io
//*******************************************

// Reads only the header row of a csv file.
func ReadCSVHeader(filename string, delimiter rune) (Array[string], error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = delimiter
	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	return header, nil
}

// Iterates over the rows of a csv file decoding them into T.
//
// Fields of T are matched to columns through their "csv" tag, fields without tag or matching column are left empty,
// as are empty values.
// Rows with a wrong field count or unparsable values are yielded as error carrying the line number, iteration
// continues afterwards if the consumer keeps reading.
// Failing to open the file or to read the header is reported once as error.
func ReadCSVFromFile[T any](filename string, delimiter rune) func(yield func(T, error) bool) {
	return func(yield func(T, error) bool) {
		file, err := os.Open(filename)
		if err != nil {
			var t T
			yield(t, err)
			return
		}
		defer file.Close()
		for row, err := range ReadCSV[T](file, delimiter) {
			if err != nil {
				err = fmt.Errorf("%s: %w", filename, err)
			}
			if !yield(row, err) {
				return
			}
		}
	}
}

type _CSVField struct {
	index  int
	column int
	kind   reflect.Kind
	name   string
}

func ReadCSV[T any](r io.Reader, delimiter rune) func(yield func(T, error) bool) {
	return func(yield func(T, error) bool) {
		var t T
		reader := csv.NewReader(r)
		reader.Comma = delimiter
		header, err := reader.Read()
		if err != nil {
			yield(t, err)
			return
		}
		name_row_mapping := NewDict[string, int](10)
		for i, name := range header {
			name_row_mapping[strings.TrimSpace(name)] = i
		}

		typ := reflect.TypeOf(t)
		num_field := typ.NumField()
		fields := NewList[_CSVField](num_field)
		for i := 0; i < num_field; i++ {
			field := typ.Field(i)
			tag := field.Tag.Get("csv")
			if tag == "" {
				continue
			}
			if !name_row_mapping.ContainsKey(tag) {
				continue
			}
			row := name_row_mapping[tag]
			switch field.Type.Kind() {
			case reflect.Bool:
				fields.Add(_CSVField{i, row, reflect.Bool, tag})
			case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
				fields.Add(_CSVField{i, row, reflect.Int, tag})
			case reflect.Float32, reflect.Float64:
				fields.Add(_CSVField{i, row, reflect.Float64, tag})
			case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
				fields.Add(_CSVField{i, row, reflect.Uint, tag})
			case reflect.String:
				fields.Add(_CSVField{i, row, reflect.String, tag})
			}
		}
		for {
			record, err := reader.Read()
			if err == io.EOF {
				break
			} else if err != nil {
				if !yield(t, err) {
					break
				}
				continue
			}
			value, err := _DecodeRecord[T](typ, fields, record)
			if err != nil {
				line, _ := reader.FieldPos(0)
				err = fmt.Errorf("line %d: %w", line, err)
			}
			if !yield(value, err) {
				break
			}
		}
	}
}

func _DecodeRecord[T any](typ reflect.Type, fields List[_CSVField], record []string) (T, error) {
	t := reflect.New(typ).Elem()
	for _, field := range fields {
		value := strings.TrimSpace(record[field.column])
		if value == "" {
			continue
		}
		f := t.Field(field.index)
		var err error
		switch field.kind {
		case reflect.Bool:
			var num bool
			num, err = strconv.ParseBool(value)
			f.SetBool(num)
		case reflect.Int:
			var num int64
			num, err = strconv.ParseInt(value, 10, f.Type().Bits())
			f.SetInt(num)
		case reflect.Uint:
			var num uint64
			num, err = strconv.ParseUint(value, 10, f.Type().Bits())
			f.SetUint(num)
		case reflect.Float64:
			var num float64
			num, err = strconv.ParseFloat(value, f.Type().Bits())
			f.SetFloat(num)
		case reflect.String:
			f.SetString(value)
		}
		if err != nil {
			var zero T
			return zero, fmt.Errorf("column %q: %w", field.name, err)
		}
	}
	return t.Interface().(T), nil
}
