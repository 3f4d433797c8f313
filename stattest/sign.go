package stattest

import (
	"github.com/hscells/classy/performance"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sign is the sign test. Among the repetitions where the error rates differ, it counts those where a has
// the lower error rate; the p-value is the probability of at most that many wins when both classifiers are
// equally likely to win.
type Sign struct{}

func (Sign) Compare(a, b *performance.ExperimentPerformance) (Result, error) {
	d, err := differences(a, b)
	if err != nil {
		return Result{}, err
	}
	var wins, total int
	for _, v := range d {
		switch {
		case v < 0:
			wins++
			total++
		case v > 0:
			total++
		}
	}
	if total == 0 {
		return Result{}, notApplicable("every experiment is tied")
	}
	return Result{PValue: distuv.Binomial{N: float64(total), P: 0.5}.CDF(float64(wins))}, nil
}
