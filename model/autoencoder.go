package model

import (
	"context"

	"github.com/hscells/classy/instance"
	"github.com/hscells/classy/parameter"
	"github.com/hscells/classy/performance"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// AutoEncoder is a network with one sigmoid hidden layer and a linear output layer that learns to
// reproduce its input. W maps the bias-augmented input to the hidden layer and V maps the bias-augmented
// hidden layer to the output.
type AutoEncoder struct {
	neuralNetwork
	W, V        *mat.Dense
	k           int
	epochErrors []float64
}

// NewAutoEncoder trains an auto encoder with stochastic gradient descent on the training set. After every
// epoch the reconstruction error on the validation set is measured, and the weights of the epoch with the
// lowest validation error are kept as the final model. Training stops with the context error if ctx is
// done before an epoch starts.
func NewAutoEncoder(ctx context.Context, train, validation *instance.List, p parameter.MultiLayerPerceptron) (*AutoEncoder, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	nn, err := newNeuralNetwork(train, validation, p.Seed())
	if err != nil {
		return nil, err
	}

	m := &AutoEncoder{
		neuralNetwork: nn,
		k:             train.Get(0).ContinuousAttributeSize(),
	}
	if m.k == 0 {
		return nil, errors.Wrap(instance.ErrInsufficientData, "instances have no continuous attributes to reconstruct")
	}
	H := p.HiddenNodes()
	m.W = m.allocateLayerWeights(H, m.d+1)
	m.V = m.allocateLayerWeights(m.k, H+1)
	bestW, bestV := mat.DenseCopyOf(m.W), mat.DenseCopyOf(m.V)
	bestError := bestSentinel

	trainSet := train.Copy()
	learningRate := p.LearningRate()
	var (
		y         = mat.NewVecDense(m.k, nil)
		rMinusY   = mat.NewVecDense(m.k, nil)
		tmph      = mat.NewVecDense(H+1, nil)
		tmpHidden = mat.NewVecDense(H, nil)
	)
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
			r := mat.NewVecDense(m.k, inst.Vector())

			hidden := calculateHidden(x, m.W)
			hiddenBiased := biased(hidden.RawVector().Data)
			y.MulVec(m.V, hiddenBiased)
			rMinusY.SubVec(r, y)

			// Backpropagate through V before it is updated.
			tmph.MulVec(m.V.T(), rMinusY)
			for h := 0; h < H; h++ {
				o := hidden.AtVec(h)
				tmpHidden.SetVec(h, (1-o)*o*tmph.AtVec(h+1))
			}

			m.V.RankOne(m.V, learningRate, rMinusY, hiddenBiased)
			m.W.RankOne(m.W, learningRate, tmpHidden, x)
		}

		current, err := m.TestAutoEncoder(validation)
		if err != nil {
			return nil, err
		}
		m.epochErrors = append(m.epochErrors, current.ErrorRate)
		if current.ErrorRate < bestError {
			bestError = current.ErrorRate
			bestW, bestV = mat.DenseCopyOf(m.W), mat.DenseCopyOf(m.V)
		}
		learningRate *= p.EtaDecrease()
	}
	m.W, m.V = bestW, bestV
	return m, nil
}

// Reconstruct runs a forward pass and returns the network output for the instance.
func (m *AutoEncoder) Reconstruct(inst *instance.Instance) ([]float64, error) {
	x, err := m.inputVector(inst)
	if err != nil {
		return nil, err
	}
	hidden := calculateHidden(x, m.W)
	y := mat.NewVecDense(m.k, nil)
	y.MulVec(m.V, biased(hidden.RawVector().Data))
	return y.RawVector().Data, nil
}

// TestAutoEncoder is the mean, over the instances of the list, of the squared distance between each
// instance and its reconstruction.
func (m *AutoEncoder) TestAutoEncoder(l *instance.List) (performance.Performance, error) {
	if l.Size() == 0 {
		return performance.Performance{}, errors.Wrap(instance.ErrInsufficientData, "empty test set")
	}
	total := 0.0
	for i := 0; i < l.Size(); i++ {
		y, err := m.Reconstruct(l.Get(i))
		if err != nil {
			return performance.Performance{}, err
		}
		r := l.Get(i).Vector()
		for j := range r {
			total += (r[j] - y[j]) * (r[j] - y[j])
		}
	}
	return performance.New(total / float64(l.Size())), nil
}

// Weights returns copies of the W and V matrices.
func (m *AutoEncoder) Weights() (W, V *mat.Dense) {
	return mat.DenseCopyOf(m.W), mat.DenseCopyOf(m.V)
}

// EpochErrors is the validation reconstruction error measured after each training epoch.
func (m *AutoEncoder) EpochErrors() []float64 {
	e := make([]float64, len(m.epochErrors))
	copy(e, m.epochErrors)
	return e
}
