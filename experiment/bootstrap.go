package experiment

import (
	"context"

	"github.com/hscells/classy/instance"
	"github.com/hscells/classy/performance"
	"github.com/pkg/errors"
)

// BootstrapRun trains repetition i on the bootstrap sample of the data set seeded with i plus the seed of
// the experiment parameters. Every repetition tests on the whole data set, or, when OutOfBag is set, on
// the instances the sample did not draw.
type BootstrapRun struct {
	NumberOfBootstraps int
	OutOfBag           bool
}

func (r BootstrapRun) Execute(ctx context.Context, e Experiment) (*performance.ExperimentPerformance, error) {
	if err := checkRepetitions("bootstrap run", r.NumberOfBootstraps); err != nil {
		return nil, err
	}
	s, err := seed(e)
	if err != nil {
		return nil, err
	}
	return repeat(ctx, e, "bootstrap run", r.NumberOfBootstraps, func(i int) (performance.Performance, error) {
		sample, oob, err := e.dataSet.BootstrapWithOutOfBag(int64(i) + s)
		if err != nil {
			return performance.Performance{}, err
		}
		if !r.OutOfBag {
			return trainTest(ctx, e, sample, e.dataSet)
		}
		if oob.Size() == 0 {
			return performance.Performance{}, errors.Wrap(instance.ErrInsufficientData, "bootstrap sample drew every instance; no out-of-bag instances to test on")
		}
		return trainTest(ctx, e, sample, oob)
	})
}
