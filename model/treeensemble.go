package model

import (
	"sort"

	"github.com/hscells/classy/instance"
	"github.com/hscells/classy/parameter"
	"github.com/pkg/errors"
)

// TreeEnsemble is a forest of independently trained decision trees that classifies by majority vote.
type TreeEnsemble struct {
	forest []*DecisionTree
}

// NewTreeEnsemble creates an ensemble from the trees, in order. The forest cannot be empty.
func NewTreeEnsemble(forest []*DecisionTree) (*TreeEnsemble, error) {
	if len(forest) == 0 {
		return nil, errors.Wrap(parameter.ErrInvalidConfiguration, "a tree ensemble needs at least one tree")
	}
	f := make([]*DecisionTree, len(forest))
	copy(f, forest)
	return &TreeEnsemble{forest: f}, nil
}

// Size is the number of trees in the forest.
func (e *TreeEnsemble) Size() int {
	return len(e.forest)
}

// Trees returns the trees of the forest, in order.
func (e *TreeEnsemble) Trees() []*DecisionTree {
	f := make([]*DecisionTree, len(e.forest))
	copy(f, e.forest)
	return f
}

// Votes counts the predictions of every tree for the instance.
func (e *TreeEnsemble) Votes(inst *instance.Instance) (map[string]int, error) {
	votes := make(map[string]int)
	for _, tree := range e.forest {
		label, err := tree.Predict(inst)
		if err != nil {
			return nil, err
		}
		votes[label]++
	}
	return votes, nil
}

// Predict returns the class with the most votes. Ties resolve to the first tied class label in sorted
// order.
func (e *TreeEnsemble) Predict(inst *instance.Instance) (string, error) {
	votes, err := e.Votes(inst)
	if err != nil {
		return "", err
	}
	labels := make([]string, 0, len(votes))
	for label := range votes {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	best := labels[0]
	for _, label := range labels[1:] {
		if votes[label] > votes[best] {
			best = label
		}
	}
	return best, nil
}
