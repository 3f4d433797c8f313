// Package classifier binds the models to the recipes that train them. A classifier keeps the model built by
// its last call to Train and evaluates it with Test.
package classifier

import (
	"context"

	"github.com/hscells/classy/instance"
	"github.com/hscells/classy/model"
	"github.com/hscells/classy/parameter"
	"github.com/hscells/classy/performance"
	"github.com/pkg/errors"
)

// ErrNotTrained is returned by Test when Train has not completed successfully.
var ErrNotTrained = errors.New("classifier has not been trained")

// Classifier trains a model on a list of instances and tests it on another.
type Classifier interface {
	// Train builds a new model from the training set, replacing any previous model. It returns the
	// context error when ctx is done before training completes.
	Train(ctx context.Context, trainSet *instance.List, p parameter.Parameter) error
	// Test measures the performance of the last trained model on the test set.
	Test(testSet *instance.List) (performance.Performance, error)
}

// testClassification classifies every instance of the list and records the predictions in a confusion
// matrix.
func testClassification(m model.Model, l *instance.List) (performance.Performance, error) {
	if m == nil {
		return performance.Performance{}, ErrNotTrained
	}
	if l.Size() == 0 {
		return performance.Performance{}, errors.Wrap(instance.ErrInsufficientData, "empty test set")
	}
	cm := performance.NewConfusionMatrix()
	for i := 0; i < l.Size(); i++ {
		predicted, err := m.Predict(l.Get(i))
		if err != nil {
			return performance.Performance{}, err
		}
		cm.Add(l.Get(i).ClassLabel(), predicted)
	}
	return performance.NewClassification(cm), nil
}

func wrongParameter(name string, p parameter.Parameter) error {
	return errors.Wrapf(parameter.ErrInvalidConfiguration, "%s cannot be trained with %T", name, p)
}
