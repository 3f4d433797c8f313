package classifier

import (
	"context"

	"github.com/hscells/classy/instance"
	"github.com/hscells/classy/model"
	"github.com/hscells/classy/parameter"
	"github.com/hscells/classy/performance"
)

// LinearPerceptron holds out a stratified fraction of the training set, given by the cross-validation
// ratio, to select the best epoch of a linear perceptron.
type LinearPerceptron struct {
	model *model.LinearPerceptron
}

func (c *LinearPerceptron) Train(ctx context.Context, trainSet *instance.List, p parameter.Parameter) error {
	lp, ok := p.(parameter.LinearPerceptron)
	if !ok {
		return wrongParameter("linear perceptron", p)
	}
	if err := lp.Validate(); err != nil {
		return err
	}
	partition, err := trainSet.StratifiedPartition(lp.CrossValidationRatio(), lp.Seed())
	if err != nil {
		return err
	}
	m, err := model.NewLinearPerceptron(ctx, partition.Get(1), partition.Get(0), lp)
	if err != nil {
		return err
	}
	c.model = m
	return nil
}

func (c *LinearPerceptron) Test(testSet *instance.List) (performance.Performance, error) {
	if c.model == nil {
		return performance.Performance{}, ErrNotTrained
	}
	return testClassification(c.model, testSet)
}

// Model is the last trained model, or nil.
func (c *LinearPerceptron) Model() *model.LinearPerceptron {
	return c.model
}
