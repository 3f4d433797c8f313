package cmd

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hscells/classy/instance"
	"github.com/pkg/errors"
)

// LoadCSV reads a data set from comma separated values. Every record is one instance: the field in column
// labelColumn is the class label and the remaining fields are continuous attributes. A negative column
// counts from the end of the record, so -1 is the last field. When header is set the first record is
// skipped.
func LoadCSV(r io.Reader, labelColumn int, header bool) (*instance.List, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	l := instance.NewList()
	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if header && line == 1 {
			continue
		}

		column := labelColumn
		if column < 0 {
			column += len(record)
		}
		if column < 0 || column >= len(record) {
			return nil, errors.Errorf("line %d: label column %d out of range for %d fields", line, labelColumn, len(record))
		}

		attributes := make([]float64, 0, len(record)-1)
		for i, field := range record {
			if i == column {
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d, column %d", line, i)
			}
			attributes = append(attributes, v)
		}
		l.Add(instance.New(strings.TrimSpace(record[column]), attributes...))
	}
	if l.Size() == 0 {
		return nil, errors.Wrap(instance.ErrInsufficientData, "data set has no instances")
	}
	return l, nil
}

// LoadCSVFile reads a data set from a file of comma separated values.
func LoadCSVFile(path string, labelColumn int, header bool) (*instance.List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadCSV(f, labelColumn, header)
}
