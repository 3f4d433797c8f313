package model

import (
	"math"

	"github.com/hscells/classy/instance"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Lda is a linear discriminant model. Every class c has the discriminant g_c(x) = w_c·x + w0_c, and an
// instance is assigned the class with the largest discriminant.
type Lda struct {
	classLabels []string
	d           int
	w           []*mat.VecDense
	w0          []float64
}

// NewLda estimates the class priors, class means and pooled covariance matrix Σ from the training set and
// sets w_c = Σ⁻¹μ_c and w0_c = -½ μ_cᵀΣ⁻¹μ_c + log P(c).
func NewLda(train *instance.List) (*Lda, error) {
	d, err := dimension(train)
	if err != nil {
		return nil, err
	}
	if d == 0 {
		return nil, errors.Wrap(instance.ErrInsufficientData, "instances have no attributes")
	}
	labels := train.ClassLabels()
	n := train.Size()
	if n-len(labels) <= 0 {
		return nil, errors.Wrapf(instance.ErrInsufficientData, "%d instances cannot estimate a pooled covariance for %d classes", n, len(labels))
	}

	index := make(map[string]int, len(labels))
	for i, label := range labels {
		index[label] = i
	}

	means := make([]*mat.VecDense, len(labels))
	sizes := make([]float64, len(labels))
	for c := range means {
		means[c] = mat.NewVecDense(d, nil)
	}
	for i := 0; i < n; i++ {
		c := index[train.Get(i).ClassLabel()]
		means[c].AddVec(means[c], mat.NewVecDense(d, train.Get(i).Vector()))
		sizes[c]++
	}
	for c := range means {
		means[c].ScaleVec(1/sizes[c], means[c])
	}

	covariance := mat.NewDense(d, d, nil)
	diff := mat.NewVecDense(d, nil)
	for i := 0; i < n; i++ {
		c := index[train.Get(i).ClassLabel()]
		diff.SubVec(mat.NewVecDense(d, train.Get(i).Vector()), means[c])
		covariance.RankOne(covariance, 1, diff, diff)
	}
	covariance.Scale(1/float64(n-len(labels)), covariance)

	var inverse mat.Dense
	if err := inverse.Inverse(covariance); err != nil {
		return nil, errors.Wrap(ErrSingularCovariance, err.Error())
	}

	m := &Lda{
		classLabels: labels,
		d:           d,
		w:           make([]*mat.VecDense, len(labels)),
		w0:          make([]float64, len(labels)),
	}
	for c := range labels {
		m.w[c] = mat.NewVecDense(d, nil)
		m.w[c].MulVec(&inverse, means[c])
		m.w0[c] = -0.5*mat.Dot(m.w[c], means[c]) + math.Log(sizes[c]/float64(n))
	}
	return m, nil
}

// metric is the discriminant of class c for the instance vector.
func (m *Lda) metric(x *mat.VecDense, c int) float64 {
	return mat.Dot(m.w[c], x) + m.w0[c]
}

// Predict returns the class with the largest discriminant; ties resolve to the first class label in
// sorted order.
func (m *Lda) Predict(inst *instance.Instance) (string, error) {
	if err := checkDimension(inst, m.d); err != nil {
		return "", err
	}
	x := mat.NewVecDense(m.d, inst.Vector())
	scores := make([]float64, len(m.classLabels))
	for c := range scores {
		scores[c] = m.metric(x, c)
	}
	return m.classLabels[argmax(scores)], nil
}
