// Package output provides different formats of output for experiments.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"

	"github.com/hscells/classy/performance"
)

// Summary is the serialisable form of the performances of one experiment.
type Summary struct {
	ID              string    `json:"id,omitempty"`
	Name            string    `json:"name"`
	ErrorRates      []float64 `json:"errorRates"`
	MeanErrorRate   float64   `json:"meanErrorRate"`
	StdDevErrorRate float64   `json:"stdDevErrorRate"`
}

// Summarise creates the summary of the performances of an experiment.
func Summarise(name, id string, ep *performance.ExperimentPerformance) Summary {
	s := Summary{
		ID:         id,
		Name:       name,
		ErrorRates: ep.ErrorRates(),
	}
	if ep.NumberOfExperiments() > 0 {
		s.MeanErrorRate = ep.MeanErrorRate()
	}
	if ep.NumberOfExperiments() > 1 {
		s.StdDevErrorRate = ep.StdDevErrorRate()
	}
	return s
}

// EvaluationFormatter renders the summaries of experiments.
type EvaluationFormatter func(summaries ...Summary) (string, error)

// JsonEvaluationFormatter outputs the summaries as an indented JSON array.
func JsonEvaluationFormatter(summaries ...Summary) (string, error) {
	if summaries == nil {
		summaries = []Summary{}
	}
	v, err := json.MarshalIndent(summaries, "", "    ")
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// CsvEvaluationFormatter outputs one row per repetition and one column per experiment, headed by the
// experiment names. Experiments with fewer repetitions leave their trailing cells empty.
func CsvEvaluationFormatter(summaries ...Summary) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"repetition"}
	rows := 0
	for _, s := range summaries {
		header = append(header, s.Name)
		if len(s.ErrorRates) > rows {
			rows = len(s.ErrorRates)
		}
	}
	if err := w.Write(header); err != nil {
		return "", err
	}
	for i := 0; i < rows; i++ {
		record := []string{strconv.Itoa(i)}
		for _, s := range summaries {
			cell := ""
			if i < len(s.ErrorRates) {
				cell = strconv.FormatFloat(s.ErrorRates[i], 'f', -1, 64)
			}
			record = append(record, cell)
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	return buf.String(), w.Error()
}
