package output_test

import (
	"encoding/json"
	"testing"

	"github.com/hscells/classy/output"
	"github.com/hscells/classy/performance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func experimentPerformance(errorRates ...float64) *performance.ExperimentPerformance {
	ep := performance.NewExperimentPerformance()
	for _, e := range errorRates {
		ep.Add(performance.New(e))
	}
	return ep
}

func TestSummarise(t *testing.T) {
	s := output.Summarise("lda", "id", experimentPerformance(0.1, 0.3))
	assert.Equal(t, []float64{0.1, 0.3}, s.ErrorRates)
	assert.InDelta(t, 0.2, s.MeanErrorRate, 1e-12)
	assert.InDelta(t, 0.141421356, s.StdDevErrorRate, 1e-9)

	empty := output.Summarise("empty", "", performance.NewExperimentPerformance())
	assert.Zero(t, empty.MeanErrorRate)
}

func TestJsonEvaluationFormatter(t *testing.T) {
	s, err := output.JsonEvaluationFormatter(output.Summarise("lda", "id", experimentPerformance(0.25)))
	require.NoError(t, err)

	var summaries []output.Summary
	require.NoError(t, json.Unmarshal([]byte(s), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, "lda", summaries[0].Name)
	assert.Equal(t, []float64{0.25}, summaries[0].ErrorRates)
}

func TestCsvEvaluationFormatter(t *testing.T) {
	s, err := output.CsvEvaluationFormatter(
		output.Summarise("lda", "", experimentPerformance(0.1, 0.2)),
		output.Summarise("c45", "", experimentPerformance(0.3)))
	require.NoError(t, err)
	assert.Equal(t, "repetition,lda,c45\n0,0.1,0.3\n1,0.2,\n", s)
}
