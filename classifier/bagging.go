package classifier

import (
	"context"
	"runtime"

	"github.com/hscells/classy/instance"
	"github.com/hscells/classy/model"
	"github.com/hscells/classy/parameter"
	"github.com/hscells/classy/performance"
	"github.com/pkg/errors"
)

// pruneRatio is the fraction of the training set bagging holds out for pruning the trees.
const pruneRatio = 0.2

// maxWorkers bounds the number of trees grown at once.
const maxWorkers = 16

// Bagging trains a forest of pruned decision trees. Tree i is grown on bootstrap sample i of a stratified
// training part and pruned on bootstrap sample i of the held-out part, so the forest only depends on the
// parameters and the training set.
type Bagging struct {
	// Workers is the number of trees grown concurrently. Zero uses the number of CPUs, capped at 16.
	Workers int

	model *model.TreeEnsemble
}

func (c *Bagging) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	concurrency := runtime.NumCPU()
	if concurrency > maxWorkers {
		concurrency = maxWorkers
	}
	return concurrency
}

func (c *Bagging) Train(ctx context.Context, trainSet *instance.List, p parameter.Parameter) error {
	bp, ok := p.(parameter.Bagging)
	if !ok {
		return wrongParameter("bagging", p)
	}
	if err := bp.Validate(); err != nil {
		return err
	}
	partition, err := trainSet.StratifiedPartition(pruneRatio, bp.Seed())
	if err != nil {
		return err
	}
	if partition.Get(0).Size() == 0 || partition.Get(1).Size() == 0 {
		return errors.Wrapf(instance.ErrInsufficientData, "%d instances cannot be split for growing and pruning", trainSet.Size())
	}

	forest := make([]*model.DecisionTree, bp.EnsembleSize())
	errs := make([]error, len(forest))
	sem := make(chan bool, c.workers())
	for i := range forest {
		sem <- true
		if err := ctx.Err(); err != nil {
			errs[i] = err
			<-sem
			break
		}
		go func(i int) {
			defer func() { <-sem }()
			forest[i], errs[i] = growTree(partition, int64(i))
		}(i)
	}
	// Wait until the last goroutine has read from the semaphore.
	for i := 0; i < cap(sem); i++ {
		sem <- true
	}

	for i, err := range errs {
		if err != nil {
			return errors.Wrapf(err, "tree %d", i)
		}
	}
	m, err := model.NewTreeEnsemble(forest)
	if err != nil {
		return err
	}
	c.model = m
	return nil
}

// bootstrapPair draws the samples tree seed is grown and pruned on. Each has the size of the partition
// part it is drawn from.
func bootstrapPair(partition *instance.Partition, seed int64) (grow, prune *instance.List, err error) {
	grow, err = partition.Get(1).Bootstrap(seed)
	if err != nil {
		return nil, nil, err
	}
	prune, err = partition.Get(0).Bootstrap(seed)
	if err != nil {
		return nil, nil, err
	}
	return grow, prune, nil
}

func growTree(partition *instance.Partition, seed int64) (*model.DecisionTree, error) {
	grow, prune, err := bootstrapPair(partition, seed)
	if err != nil {
		return nil, err
	}
	tree, err := model.NewDecisionTree(grow)
	if err != nil {
		return nil, err
	}
	if err := tree.Prune(prune); err != nil {
		return nil, err
	}
	return tree, nil
}

func (c *Bagging) Test(testSet *instance.List) (performance.Performance, error) {
	if c.model == nil {
		return performance.Performance{}, ErrNotTrained
	}
	return testClassification(c.model, testSet)
}

// Model is the last trained model, or nil.
func (c *Bagging) Model() *model.TreeEnsemble {
	return c.model
}
