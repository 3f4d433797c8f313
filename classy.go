// Package classy evaluates classifiers by training and testing them repeatedly under a resampling strategy,
// and compares two classifiers with a paired statistical test.
//
// The building blocks live in sub-packages: instance for data sets and sampling, model and classifier for
// training, experiment for the run strategies, and stattest for the tests. Compare ties them together.
package classy

import (
	"context"

	"github.com/hscells/classy/experiment"
	"github.com/hscells/classy/performance"
	"github.com/hscells/classy/stattest"
	"github.com/pkg/errors"
)

// Comparison holds the performances of two experiments run with the same strategy and the result of
// testing them against each other.
type Comparison struct {
	First  *performance.ExperimentPerformance
	Second *performance.ExperimentPerformance
	Result stattest.Result
}

// Compare executes both experiments with the run strategy and applies the paired test to their
// performances. The experiments run one after another; a failure in either fails the comparison.
func Compare(ctx context.Context, run experiment.MultipleRun, test stattest.PairedTest, first, second experiment.Experiment) (Comparison, error) {
	a, err := run.Execute(ctx, first)
	if err != nil {
		return Comparison{}, errors.Wrap(err, "first experiment")
	}
	b, err := run.Execute(ctx, second)
	if err != nil {
		return Comparison{}, errors.Wrap(err, "second experiment")
	}
	r, err := test.Compare(a, b)
	if err != nil {
		return Comparison{First: a, Second: b}, err
	}
	return Comparison{First: a, Second: b, Result: r}, nil
}
