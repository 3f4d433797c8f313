package classifier

import (
	"context"

	"github.com/hscells/classy/instance"
	"github.com/hscells/classy/model"
	"github.com/hscells/classy/parameter"
	"github.com/hscells/classy/performance"
)

// C45 trains a single decision tree. With pruning enabled, a stratified fraction of the training set given
// by the cross-validation ratio is held out and used to prune the tree.
type C45 struct {
	model *model.DecisionTree
}

func (c *C45) Train(ctx context.Context, trainSet *instance.List, p parameter.Parameter) error {
	cp, ok := p.(parameter.C45)
	if !ok {
		return wrongParameter("c4.5", p)
	}
	if err := cp.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if !cp.Prune() {
		m, err := model.NewDecisionTree(trainSet)
		if err != nil {
			return err
		}
		c.model = m
		return nil
	}

	partition, err := trainSet.StratifiedPartition(cp.CrossValidationRatio(), cp.Seed())
	if err != nil {
		return err
	}
	m, err := model.NewDecisionTree(partition.Get(1))
	if err != nil {
		return err
	}
	if err := m.Prune(partition.Get(0)); err != nil {
		return err
	}
	c.model = m
	return nil
}

func (c *C45) Test(testSet *instance.List) (performance.Performance, error) {
	if c.model == nil {
		return performance.Performance{}, ErrNotTrained
	}
	return testClassification(c.model, testSet)
}

// Model is the last trained model, or nil.
func (c *C45) Model() *model.DecisionTree {
	return c.model
}
