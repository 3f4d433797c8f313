package stattest

import (
	"math"

	"github.com/hscells/classy/performance"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// PairedT is the paired t test on the differences of the error rates. With n repetitions the statistic
// t = √n·mean/sd follows a t distribution with n-1 degrees of freedom.
type PairedT struct{}

// Statistic is the t statistic of the differences between a and b.
func (PairedT) Statistic(a, b *performance.ExperimentPerformance) (float64, error) {
	d, err := differences(a, b)
	if err != nil {
		return 0, err
	}
	if len(d) < 2 {
		return 0, notApplicable("a paired t test needs at least two experiments")
	}
	mean, sd := stat.MeanStdDev(d, nil)
	if sd == 0 {
		return 0, notApplicable("variance is 0")
	}
	return math.Sqrt(float64(len(d))) * mean / sd, nil
}

func (t PairedT) Compare(a, b *performance.ExperimentPerformance) (Result, error) {
	statistic, err := t.Statistic(a, b)
	if err != nil {
		return Result{}, err
	}
	return Result{PValue: tSurvival(statistic, float64(a.NumberOfExperiments()-1))}, nil
}

func tSurvival(t, df float64) float64 {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}.Survival(t)
}
