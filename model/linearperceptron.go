package model

import (
	"context"

	"github.com/hscells/classy/instance"
	"github.com/hscells/classy/parameter"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// LinearPerceptron is a single layer network mapping the bias-augmented input directly to one output per
// class.
type LinearPerceptron struct {
	neuralNetwork
	W           *mat.Dense
	epochErrors []float64
}

// NewLinearPerceptron trains a linear perceptron with stochastic gradient descent on the training set.
// After every epoch the classification error on the validation set is measured, and the weights of the
// epoch with the lowest validation error are kept as the final model. Training stops with the context
// error if ctx is done before an epoch starts.
func NewLinearPerceptron(ctx context.Context, train, validation *instance.List, p parameter.LinearPerceptron) (*LinearPerceptron, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	nn, err := newNeuralNetwork(train, validation, p.Seed())
	if err != nil {
		return nil, err
	}

	m := &LinearPerceptron{neuralNetwork: nn}
	m.W = m.allocateLayerWeights(len(m.classLabels), m.d+1)
	bestW := mat.DenseCopyOf(m.W)
	bestError := bestSentinel

	trainSet := train.Copy()
	learningRate := p.LearningRate()
	y := mat.NewVecDense(len(m.classLabels), nil)
	for epoch := 0; epoch < p.Epoch(); epoch++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "training stopped before epoch %d", epoch)
		}
		trainSet.Shuffle(p.Seed() + int64(epoch))
		for j := 0; j < trainSet.Size(); j++ {
			inst := trainSet.Get(j)
			x, err := m.inputVector(inst)
			if err != nil {
				return nil, err
			}
			y.MulVec(m.W, x)
			softmax(y.RawVector().Data)

			rMinusY := m.classIndicator(inst.ClassLabel())
			rMinusY.SubVec(rMinusY, y)
			m.W.RankOne(m.W, learningRate, rMinusY, x)
		}

		current, err := classificationError(m, validation)
		if err != nil {
			return nil, err
		}
		m.epochErrors = append(m.epochErrors, current)
		if current < bestError {
			bestError = current
			bestW = mat.DenseCopyOf(m.W)
		}
		learningRate *= p.EtaDecrease()
	}
	m.W = bestW
	return m, nil
}

// Predict returns the class with the largest output; ties resolve to the first class label in sorted
// order.
func (m *LinearPerceptron) Predict(inst *instance.Instance) (string, error) {
	x, err := m.inputVector(inst)
	if err != nil {
		return "", err
	}
	o := mat.NewVecDense(len(m.classLabels), nil)
	o.MulVec(m.W, x)
	return m.classLabels[argmax(o.RawVector().Data)], nil
}

// Weights returns a copy of the weight matrix.
func (m *LinearPerceptron) Weights() *mat.Dense {
	return mat.DenseCopyOf(m.W)
}

// EpochErrors is the validation classification error measured after each training epoch.
func (m *LinearPerceptron) EpochErrors() []float64 {
	e := make([]float64, len(m.epochErrors))
	copy(e, m.epochErrors)
	return e
}

// classificationError is the fraction of instances of the list that the model misclassifies.
func classificationError(m Model, l *instance.List) (float64, error) {
	wrong := 0
	for i := 0; i < l.Size(); i++ {
		predicted, err := m.Predict(l.Get(i))
		if err != nil {
			return 0, err
		}
		if predicted != l.Get(i).ClassLabel() {
			wrong++
		}
	}
	return float64(wrong) / float64(l.Size()), nil
}
