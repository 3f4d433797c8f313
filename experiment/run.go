package experiment

import (
	"context"

	"github.com/cheggaaa/pb/v3"
	"github.com/hscells/classy/instance"
	"github.com/hscells/classy/parameter"
	"github.com/hscells/classy/performance"
	"github.com/pkg/errors"
)

// MultipleRun is a resampling strategy. Execute trains and tests the classifier of the experiment once per
// repetition and returns the performances in repetition order. If any repetition fails, or the context is
// cancelled, Execute fails and no performances are returned.
type MultipleRun interface {
	Execute(ctx context.Context, e Experiment) (*performance.ExperimentPerformance, error)
}

// trainTest trains the classifier of the experiment and tests the resulting model.
func trainTest(ctx context.Context, e Experiment, trainSet, testSet *instance.List) (performance.Performance, error) {
	if err := e.classifier.Train(ctx, trainSet, e.parameter); err != nil {
		return performance.Performance{}, err
	}
	return e.classifier.Test(testSet)
}

// repeat calls run n times, in order, accumulating the results.
func repeat(ctx context.Context, e Experiment, name string, n int, run func(i int) (performance.Performance, error)) (*performance.ExperimentPerformance, error) {
	if err := checkRepetitions(name, n); err != nil {
		return nil, err
	}
	if e.dataSet == nil || e.dataSet.Size() == 0 {
		return nil, errors.Wrap(instance.ErrInsufficientData, "experiment has no data")
	}
	logger := e.logger.With("experiment", e.id.String(), "run", name)
	logger.Infow("starting", "repetitions", n, "instances", e.dataSet.Size())

	var bar *pb.ProgressBar
	if e.progress != nil {
		bar = pb.New(n).SetWriter(e.progress).Start()
		defer bar.Finish()
	}

	ep := performance.NewExperimentPerformance()
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			logger.Warnw("cancelled", "repetition", i)
			return nil, errors.Wrapf(err, "%s cancelled before repetition %d", name, i)
		}
		p, err := run(i)
		if err != nil {
			logger.Errorw("repetition failed", "repetition", i, "error", err)
			return nil, errors.Wrapf(err, "%s repetition %d", name, i)
		}
		logger.Debugw("repetition finished", "repetition", i, "errorRate", p.ErrorRate)
		ep.Add(p)
		if bar != nil {
			bar.Increment()
		}
	}
	logger.Infow("finished", "meanErrorRate", ep.MeanErrorRate())
	return ep, nil
}

func checkFolds(name string, k int) error {
	if k < 2 {
		return errors.Wrapf(parameter.ErrInvalidConfiguration, "%s needs at least two folds, got %d", name, k)
	}
	return nil
}

func checkRepetitions(name string, n int) error {
	if n <= 0 {
		return errors.Wrapf(parameter.ErrInvalidConfiguration, "%s needs a positive number of repetitions, got %d", name, n)
	}
	return nil
}

// seed is the seed of the parameters of the experiment, from which every sample of a run is derived.
func seed(e Experiment) (int64, error) {
	if e.parameter == nil {
		return 0, errors.Wrap(parameter.ErrInvalidConfiguration, "experiment has no parameters")
	}
	return e.parameter.Seed(), nil
}
