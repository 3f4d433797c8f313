package experiment

import (
	"context"

	"github.com/hscells/classy/instance"
	"github.com/hscells/classy/performance"
	"github.com/pkg/errors"
)

// MxKFoldRun repeats a K-fold cross-validation M times, giving M*K performances. Every repetition
// reshuffles with the seed of the experiment parameters, so a deterministic classifier produces M
// identical blocks; with AdvanceSeed, repetition j shuffles with the seed plus j. Stratified keeps the
// class proportions of the data set in every fold.
type MxKFoldRun struct {
	M, K        int
	AdvanceSeed bool
	Stratified  bool
}

func (r MxKFoldRun) Execute(ctx context.Context, e Experiment) (*performance.ExperimentPerformance, error) {
	s, err := checkMxK("mxk-fold run", r.M, r.K, e)
	if err != nil {
		return nil, err
	}
	if e.dataSet == nil {
		return nil, errors.Wrap(instance.ErrInsufficientData, "experiment has no data")
	}

	var cv *instance.CrossValidation
	return repeat(ctx, e, "mxk-fold run", r.M*r.K, func(i int) (performance.Performance, error) {
		j, fold := i/r.K, i%r.K
		if fold == 0 {
			var err error
			if cv, err = kFold(e.dataSet, r.K, repetitionSeed(s, j, r.AdvanceSeed), r.Stratified); err != nil {
				return performance.Performance{}, err
			}
		}
		return trainTest(ctx, e, cv.TrainFold(fold), cv.TestFold(fold))
	})
}

// MxKFoldRunSeparateTest repeats KFoldRunSeparateTest M times over the same held-out quarter, giving M*K
// performances. The seeding of the repetitions follows MxKFoldRun.
type MxKFoldRunSeparateTest struct {
	M, K        int
	AdvanceSeed bool
}

func (r MxKFoldRunSeparateTest) Execute(ctx context.Context, e Experiment) (*performance.ExperimentPerformance, error) {
	s, err := checkMxK("mxk-fold run with separate test", r.M, r.K, e)
	if err != nil {
		return nil, err
	}
	partition, err := separateTest(e, s)
	if err != nil {
		return nil, err
	}

	var cv *instance.CrossValidation
	return repeat(ctx, e, "mxk-fold run with separate test", r.M*r.K, func(i int) (performance.Performance, error) {
		j, fold := i/r.K, i%r.K
		if fold == 0 {
			var err error
			if cv, err = partition.Get(1).KFold(r.K, repetitionSeed(s, j, r.AdvanceSeed)); err != nil {
				return performance.Performance{}, err
			}
		}
		return trainTest(ctx, e, cv.TrainFold(fold), partition.Get(0))
	})
}

func checkMxK(name string, m, k int, e Experiment) (int64, error) {
	if err := checkRepetitions(name, m); err != nil {
		return 0, err
	}
	if err := checkFolds(name, k); err != nil {
		return 0, err
	}
	return seed(e)
}

func repetitionSeed(seed int64, j int, advance bool) int64 {
	if advance {
		return seed + int64(j)
	}
	return seed
}
