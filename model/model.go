// Package model contains the trained models produced by classifiers: the feed-forward networks trained by
// gradient descent (linear perceptron and auto encoder), decision trees and forests of them, and the
// linear discriminant model.
//
// Models are built by their constructors and are not modified afterwards, with the exception of
// DecisionTree.Prune.
package model

import (
	"github.com/hscells/classy/instance"
	"github.com/pkg/errors"
)

var (
	// ErrDimensionMismatch is returned when an instance does not have the number of attributes a model
	// was trained with.
	ErrDimensionMismatch = errors.New("attribute dimension mismatch")
	// ErrSingularCovariance is returned when a discriminant model cannot invert its covariance matrix.
	ErrSingularCovariance = errors.New("covariance matrix is singular")
)

// Model is a trained model that classifies instances.
type Model interface {
	// Predict returns the class label the model assigns to the instance.
	Predict(inst *instance.Instance) (string, error)
}

// dimension checks that every instance of the list has the same number of continuous attributes and
// returns it. The list must not be empty.
func dimension(l *instance.List) (int, error) {
	if l.Size() == 0 {
		return 0, errors.Wrap(instance.ErrInsufficientData, "empty training set")
	}
	d := l.Get(0).ContinuousAttributeSize()
	for i := 1; i < l.Size(); i++ {
		if n := l.Get(i).ContinuousAttributeSize(); n != d {
			return 0, errors.Wrapf(ErrDimensionMismatch, "instance %d has %d attributes, expected %d", i, n, d)
		}
	}
	return d, nil
}

func checkDimension(inst *instance.Instance, d int) error {
	if n := inst.ContinuousAttributeSize(); n != d {
		return errors.Wrapf(ErrDimensionMismatch, "instance has %d attributes, model expects %d", n, d)
	}
	return nil
}

// argmax returns the index of the largest value; ties resolve to the lowest index.
func argmax(v []float64) int {
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] {
			best = i
		}
	}
	return best
}
