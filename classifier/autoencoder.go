package classifier

import (
	"context"

	"github.com/hscells/classy/instance"
	"github.com/hscells/classy/model"
	"github.com/hscells/classy/parameter"
	"github.com/hscells/classy/performance"
)

// validationRatio is the fraction of the training set an auto encoder holds out to select its best epoch.
const validationRatio = 0.2

// AutoEncoder trains an auto encoder. Its performance is the mean squared reconstruction error, not a
// classification error.
type AutoEncoder struct {
	model *model.AutoEncoder
}

func (c *AutoEncoder) Train(ctx context.Context, trainSet *instance.List, p parameter.Parameter) error {
	mlp, ok := p.(parameter.MultiLayerPerceptron)
	if !ok {
		return wrongParameter("auto encoder", p)
	}
	if err := mlp.Validate(); err != nil {
		return err
	}
	partition, err := trainSet.StratifiedPartition(validationRatio, mlp.Seed())
	if err != nil {
		return err
	}
	m, err := model.NewAutoEncoder(ctx, partition.Get(1), partition.Get(0), mlp)
	if err != nil {
		return err
	}
	c.model = m
	return nil
}

func (c *AutoEncoder) Test(testSet *instance.List) (performance.Performance, error) {
	if c.model == nil {
		return performance.Performance{}, ErrNotTrained
	}
	return c.model.TestAutoEncoder(testSet)
}

// Model is the last trained model, or nil.
func (c *AutoEncoder) Model() *model.AutoEncoder {
	return c.model
}
