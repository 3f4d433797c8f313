package experiment

import (
	"context"

	"github.com/hscells/classy/instance"
	"github.com/hscells/classy/performance"
	"github.com/pkg/errors"
)

// separateTestRatio is the fraction of the data set held out as the common test set of the separate test
// runs.
const separateTestRatio = 0.25

// KFoldRun is a K-fold cross-validation over the data set: repetition i trains on every fold but i and
// tests on fold i. With Stratified set every fold keeps the class proportions of the data set.
type KFoldRun struct {
	K          int
	Stratified bool
}

func (r KFoldRun) Execute(ctx context.Context, e Experiment) (*performance.ExperimentPerformance, error) {
	if err := checkFolds("k-fold run", r.K); err != nil {
		return nil, err
	}
	s, err := seed(e)
	if err != nil {
		return nil, err
	}
	if e.dataSet == nil {
		return nil, errors.Wrap(instance.ErrInsufficientData, "experiment has no data")
	}
	cv, err := kFold(e.dataSet, r.K, s, r.Stratified)
	if err != nil {
		return nil, err
	}
	return repeat(ctx, e, "k-fold run", r.K, func(i int) (performance.Performance, error) {
		return trainTest(ctx, e, cv.TrainFold(i), cv.TestFold(i))
	})
}

// KFoldRunSeparateTest holds out a quarter of the data set as a test set and runs a K-fold
// cross-validation over the rest. Repetition i trains on every fold but i and tests on the held-out
// quarter, so fold i itself is never tested on.
type KFoldRunSeparateTest struct {
	K int
}

func (r KFoldRunSeparateTest) Execute(ctx context.Context, e Experiment) (*performance.ExperimentPerformance, error) {
	if err := checkFolds("k-fold run with separate test", r.K); err != nil {
		return nil, err
	}
	s, err := seed(e)
	if err != nil {
		return nil, err
	}
	partition, err := separateTest(e, s)
	if err != nil {
		return nil, err
	}
	cv, err := partition.Get(1).KFold(r.K, s)
	if err != nil {
		return nil, err
	}
	return repeat(ctx, e, "k-fold run with separate test", r.K, func(i int) (performance.Performance, error) {
		return trainTest(ctx, e, cv.TrainFold(i), partition.Get(0))
	})
}

func separateTest(e Experiment, seed int64) (*instance.Partition, error) {
	if e.dataSet == nil {
		return nil, errors.Wrap(instance.ErrInsufficientData, "experiment has no data")
	}
	return e.dataSet.Partition(separateTestRatio, seed)
}

func kFold(l *instance.List, k int, seed int64, stratified bool) (*instance.CrossValidation, error) {
	if stratified {
		return l.StratifiedKFold(k, seed)
	}
	return l.KFold(k, seed)
}
