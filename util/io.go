package util

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"reflect"
	"strconv"

	"github.com/pkg/errors"
)

//*******************************************
// json io
//*******************************************

func ReadJSONFromFile[T any](file string) (T, error) {
	var value T
	data, err := os.ReadFile(file)
	if err != nil {
		return value, errors.Wrap(err, "failed to read "+file)
	}
	if err := json.Unmarshal(data, &value); err != nil {
		return value, errors.Wrap(err, "failed to parse "+file)
	}
	return value, nil
}

func WriteJSONToFile[T any](value T, file string) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "failed to marshal "+file)
	}
	if err := os.WriteFile(file, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write "+file)
	}
	return nil
}

//*******************************************
// csv io
//*******************************************

// Reads all rows of a delimited file into structs using "csv" field tags.
// Columns missing from the header are left at their zero value.
func ReadCSVFromFile[T any](filename string, delimiter rune) (List[T], error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open "+filename)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read csv header")
	}
	name_row_mapping := NewDict[string, int](len(header))
	for i, name := range header {
		name_row_mapping[name] = i
	}

	var val T
	typ := reflect.TypeOf(val)
	num_field := typ.NumField()
	fields := NewList[Tuple[int, int]](num_field)
	for i := 0; i < num_field; i++ {
		field := typ.Field(i)
		tag := field.Tag.Get("csv")
		if tag == "" {
			continue
		}
		if !name_row_mapping.ContainsKey(tag) {
			continue
		}
		fields.Add(MakeTuple(i, name_row_mapping[tag]))
	}

	rows := NewList[T](10)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.Wrap(err, "failed to read csv row")
		}
		t := reflect.New(typ).Elem()
		for _, field := range fields {
			index := field.A
			row := field.B
			if row >= len(record) {
				continue
			}
			value := record[row]
			if value == "" {
				continue
			}
			f := t.Field(index)
			switch f.Kind() {
			case reflect.Bool:
				num, _ := strconv.ParseBool(value)
				f.SetBool(num)
			case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
				num, _ := strconv.ParseInt(value, 10, 64)
				f.SetInt(num)
			case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
				num, _ := strconv.ParseUint(value, 10, 64)
				f.SetUint(num)
			case reflect.Float32, reflect.Float64:
				num, _ := strconv.ParseFloat(value, 64)
				f.SetFloat(num)
			case reflect.String:
				f.SetString(value)
			}
		}
		rows.Add(t.Interface().(T))
	}
	return rows, nil
}
