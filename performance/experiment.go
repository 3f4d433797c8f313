package performance

import "gonum.org/v1/gonum/stat"

// ExperimentPerformance accumulates the performances of the repetitions of one experiment, in the order
// the repetitions were run. It only ever grows.
type ExperimentPerformance struct {
	results []Performance
}

// NewExperimentPerformance creates an empty accumulator.
func NewExperimentPerformance() *ExperimentPerformance {
	return &ExperimentPerformance{}
}

// Add appends the performance of one repetition.
func (e *ExperimentPerformance) Add(p Performance) {
	e.results = append(e.results, p)
}

// NumberOfExperiments is the number of accumulated repetitions.
func (e *ExperimentPerformance) NumberOfExperiments() int {
	return len(e.results)
}

// Performance returns the performance of repetition i.
func (e *ExperimentPerformance) Performance(i int) Performance {
	return e.results[i]
}

// ErrorRate returns the error rate of repetition i.
func (e *ExperimentPerformance) ErrorRate(i int) float64 {
	return e.results[i].ErrorRate
}

// ErrorRates returns the error rates of all repetitions, in order.
func (e *ExperimentPerformance) ErrorRates() []float64 {
	rates := make([]float64, len(e.results))
	for i, r := range e.results {
		rates[i] = r.ErrorRate
	}
	return rates
}

// MeanErrorRate is the mean error rate over all repetitions.
func (e *ExperimentPerformance) MeanErrorRate() float64 {
	return stat.Mean(e.ErrorRates(), nil)
}

// StdDevErrorRate is the sample standard deviation of the error rates.
func (e *ExperimentPerformance) StdDevErrorRate() float64 {
	return stat.StdDev(e.ErrorRates(), nil)
}

// IsBetter reports whether this experiment has a lower mean error rate than the other.
func (e *ExperimentPerformance) IsBetter(other *ExperimentPerformance) bool {
	return e.MeanErrorRate() < other.MeanErrorRate()
}
