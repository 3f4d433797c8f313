// Package stattest contains paired statistical tests that judge whether two classifiers evaluated with the
// same run strategy perform significantly differently.
package stattest

import (
	"github.com/hscells/classy/performance"
	"github.com/pkg/errors"
)

// ErrNotApplicable is returned, wrapped in a NotApplicableError, when a test cannot be applied to the
// performances it was given.
var ErrNotApplicable = errors.New("statistical test not applicable")

// NotApplicableError carries the reason a test could not be applied. It matches ErrNotApplicable.
type NotApplicableError struct {
	Reason string
}

func (e *NotApplicableError) Error() string {
	return ErrNotApplicable.Error() + ": " + e.Reason
}

func (e *NotApplicableError) Is(target error) bool {
	return target == ErrNotApplicable
}

func notApplicable(reason string) error {
	return &NotApplicableError{Reason: reason}
}

// PairedTest compares the performances of two classifiers, repetition by repetition.
type PairedTest interface {
	Compare(a, b *performance.ExperimentPerformance) (Result, error)
}

// Decision is the outcome of a test at a significance level.
type Decision int

const (
	FailedToReject Decision = iota
	Reject
)

func (d Decision) String() string {
	if d == Reject {
		return "reject"
	}
	return "failed to reject"
}

// Result holds the p-value of a test: the probability of a statistic at least as large as the one
// observed under the null hypothesis that both classifiers perform the same. OnlyTwoTailed is set by tests
// whose statistic has no direction.
type Result struct {
	PValue        float64
	OnlyTwoTailed bool
}

// OneTailed rejects the null hypothesis when the p-value is below alpha.
func (r Result) OneTailed(alpha float64) Decision {
	if r.PValue < alpha {
		return Reject
	}
	return FailedToReject
}

// TwoTailed rejects the null hypothesis when the p-value lies in either tail of total mass alpha. Results
// without a direction reject when the p-value is below alpha.
func (r Result) TwoTailed(alpha float64) Decision {
	if r.OnlyTwoTailed {
		return r.OneTailed(alpha)
	}
	if r.PValue < alpha/2 || r.PValue > 1-alpha/2 {
		return Reject
	}
	return FailedToReject
}

// differences are the per-repetition differences between the error rates of a and b.
func differences(a, b *performance.ExperimentPerformance) ([]float64, error) {
	if a.NumberOfExperiments() != b.NumberOfExperiments() {
		return nil, notApplicable("a paired test needs the same number of experiments for both classifiers")
	}
	d := make([]float64, a.NumberOfExperiments())
	for i := range d {
		d[i] = a.ErrorRate(i) - b.ErrorRate(i)
	}
	return d, nil
}
