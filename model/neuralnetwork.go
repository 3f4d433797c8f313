package model

import (
	"math"
	"math/rand"
	"sort"

	"github.com/hscells/classy/instance"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// bestSentinel is the validation error the best-so-far snapshot starts with.
const bestSentinel = math.MaxFloat64

// neuralNetwork is the scaffold shared by the gradient descent models: the class labels and input
// dimension taken from the training set, and the generator the weights are drawn from.
type neuralNetwork struct {
	classLabels []string
	d           int
	rng         *rand.Rand
}

func newNeuralNetwork(train, validation *instance.List, seed int64) (neuralNetwork, error) {
	d, err := dimension(train)
	if err != nil {
		return neuralNetwork{}, err
	}
	if validation.Size() == 0 {
		return neuralNetwork{}, errors.Wrap(instance.ErrInsufficientData, "empty validation set; the best weights cannot be selected")
	}
	for i := 0; i < validation.Size(); i++ {
		if err := checkDimension(validation.Get(i), d); err != nil {
			return neuralNetwork{}, err
		}
	}
	return neuralNetwork{
		classLabels: train.ClassLabels(),
		d:           d,
		rng:         rand.New(rand.NewSource(seed)),
	}, nil
}

// allocateLayerWeights creates a rows x cols matrix of weights drawn uniformly from [-0.01, 0.01].
func (n *neuralNetwork) allocateLayerWeights(rows, cols int) *mat.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = -0.01 + 0.02*n.rng.Float64()
	}
	return mat.NewDense(rows, cols, data)
}

// inputVector is the instance vector augmented with a leading bias of 1.
func (n *neuralNetwork) inputVector(inst *instance.Instance) (*mat.VecDense, error) {
	if err := checkDimension(inst, n.d); err != nil {
		return nil, err
	}
	return biased(inst.Vector()), nil
}

// classIndicator is the one-hot encoding of a class label over the sorted class labels.
func (n *neuralNetwork) classIndicator(label string) *mat.VecDense {
	r := mat.NewVecDense(len(n.classLabels), nil)
	if i := sort.SearchStrings(n.classLabels, label); i < len(n.classLabels) && n.classLabels[i] == label {
		r.SetVec(i, 1)
	}
	return r
}

// biased prepends a bias of 1 to the values.
func biased(v []float64) *mat.VecDense {
	data := make([]float64, len(v)+1)
	data[0] = 1
	copy(data[1:], v)
	return mat.NewVecDense(len(data), data)
}

// calculateHidden computes sigmoid(W x).
func calculateHidden(x *mat.VecDense, W *mat.Dense) *mat.VecDense {
	rows, _ := W.Dims()
	h := mat.NewVecDense(rows, nil)
	h.MulVec(W, x)
	for i := 0; i < rows; i++ {
		h.SetVec(i, 1/(1+math.Exp(-h.AtVec(i))))
	}
	return h
}

// softmax normalises the values in place so they sum to one.
func softmax(v []float64) {
	max := floats.Max(v)
	for i := range v {
		v[i] = math.Exp(v[i] - max)
	}
	floats.Scale(1/floats.Sum(v), v)
}
