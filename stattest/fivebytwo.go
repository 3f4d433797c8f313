package stattest

import (
	"math"

	"github.com/hscells/classy/performance"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// fiveByTwo checks that a and b come from five replications of two-fold cross-validation and returns the
// differences along with the sum over replications of the variance estimates s_i².
func fiveByTwo(a, b *performance.ExperimentPerformance) ([]float64, float64, error) {
	d, err := differences(a, b)
	if err != nil {
		return nil, 0, err
	}
	if len(d) != 10 {
		return nil, 0, notApplicable("a 5x2 test needs 10 experiments: five replications of two-fold cross-validation")
	}
	variances := 0.0
	for i := 0; i < 5; i++ {
		mean := (d[2*i] + d[2*i+1]) / 2
		variances += (d[2*i]-mean)*(d[2*i]-mean) + (d[2*i+1]-mean)*(d[2*i+1]-mean)
	}
	if variances == 0 {
		return nil, 0, notApplicable("variance is 0")
	}
	return d, variances, nil
}

// Paired5x2T is Dietterich's 5x2 cv paired t test: t = d₀ / √(Σs_i²/5) with 5 degrees of freedom.
type Paired5x2T struct{}

func (Paired5x2T) Compare(a, b *performance.ExperimentPerformance) (Result, error) {
	d, variances, err := fiveByTwo(a, b)
	if err != nil {
		return Result{}, err
	}
	t := d[0] / math.Sqrt(variances/5)
	return Result{PValue: tSurvival(t, 5)}, nil
}

// Combined5x2T combines all ten differences of the 5x2 cv t test: t = (Σd/√10) / √(Σs_i²/5) with 5
// degrees of freedom.
type Combined5x2T struct{}

func (Combined5x2T) Compare(a, b *performance.ExperimentPerformance) (Result, error) {
	d, variances, err := fiveByTwo(a, b)
	if err != nil {
		return Result{}, err
	}
	t := (floats.Sum(d) / math.Sqrt(10)) / math.Sqrt(variances/5)
	return Result{PValue: tSurvival(t, 5)}, nil
}

// Combined5x2F is Alpaydın's combined 5x2 cv F test: F = Σd² / (2Σs_i²) with (10, 5) degrees of freedom.
// The statistic has no direction, so the result is only two-tailed.
type Combined5x2F struct{}

func (Combined5x2F) Compare(a, b *performance.ExperimentPerformance) (Result, error) {
	d, variances, err := fiveByTwo(a, b)
	if err != nil {
		return Result{}, err
	}
	f := floats.Dot(d, d) / (2 * variances)
	return Result{
		PValue:        distuv.F{D1: 10, D2: 5}.Survival(f),
		OnlyTwoTailed: true,
	}, nil
}
