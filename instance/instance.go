// Package instance contains the data representation used for training and testing classifiers: labelled
// feature vectors, ordered lists of them, and the sampling operations (partitions, bootstrap samples and
// k-fold cross-validation) that experiments are built from.
package instance

import "github.com/pkg/errors"

var (
	// ErrInsufficientData is returned when a sampling or training operation is given too few instances.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrInvalidRatio is returned when a partition ratio is not in the open interval (0, 1).
	ErrInvalidRatio = errors.New("partition ratio must be in (0, 1)")
	// ErrInvalidFolds is returned when a cross-validation is requested with fewer than two folds.
	ErrInvalidFolds = errors.New("cross-validation requires at least two folds")
)

// Instance is a single labelled feature vector. Instances are immutable once created and are shared by
// pointer between the lists that hold them.
type Instance struct {
	label      string
	attributes []float64
}

// New creates an instance with the class label and continuous attribute values.
func New(label string, attributes ...float64) *Instance {
	a := make([]float64, len(attributes))
	copy(a, attributes)
	return &Instance{
		label:      label,
		attributes: a,
	}
}

// ClassLabel is the class the instance belongs to.
func (i *Instance) ClassLabel() string {
	return i.label
}

// Attribute returns the value of the attribute at index j.
func (i *Instance) Attribute(j int) float64 {
	return i.attributes[j]
}

// AttributeSize is the number of attributes of the instance.
func (i *Instance) AttributeSize() int {
	return len(i.attributes)
}

// ContinuousAttributeSize is the number of continuous attributes of the instance. All attributes are
// continuous, so this is also the length of Vector.
func (i *Instance) ContinuousAttributeSize() int {
	return len(i.attributes)
}

// Vector converts the instance into a numeric vector. The returned slice is a copy.
func (i *Instance) Vector() []float64 {
	v := make([]float64, len(i.attributes))
	copy(v, i.attributes)
	return v
}
