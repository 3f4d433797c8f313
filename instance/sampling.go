package instance

import (
	"math/rand"
	"sort"

	"github.com/pkg/errors"
)

// bootstrapIndices draws n indices in [0, n) with replacement.
func bootstrapIndices(n int, seed int64) []int {
	r := rand.New(rand.NewSource(seed))
	idx := make([]int, n)
	for i := range idx {
		idx[i] = r.Intn(n)
	}
	return idx
}

// Bootstrap draws a sample of the same size as the list, with replacement. The sample depends only on the
// seed and the list.
func (l *List) Bootstrap(seed int64) (*List, error) {
	sample, _, err := l.BootstrapWithOutOfBag(seed)
	return sample, err
}

// BootstrapWithOutOfBag draws the same sample as Bootstrap and also returns the out-of-bag instances:
// those positions of the list that were never drawn, in list order. The out-of-bag list may be empty.
func (l *List) BootstrapWithOutOfBag(seed int64) (*List, *List, error) {
	if l.Size() == 0 {
		return nil, nil, errors.Wrap(ErrInsufficientData, "cannot bootstrap an empty list")
	}
	drawn := make([]bool, l.Size())
	sample := &List{instances: make([]*Instance, l.Size())}
	for i, j := range bootstrapIndices(l.Size(), seed) {
		sample.instances[i] = l.instances[j]
		drawn[j] = true
	}
	oob := NewList()
	for j, ok := range drawn {
		if !ok {
			oob.Add(l.instances[j])
		}
	}
	return sample, oob, nil
}

// CrossValidation provides the training and test folds of a k-fold cross-validation.
type CrossValidation struct {
	instances []*Instance
	folds     []int // folds[i] is the fold that instances[i] is tested in.
	k         int
}

// KFold creates a k-fold cross-validation over a shuffled copy of the list. Fold i tests on the shuffled
// instances in [i*N/K, (i+1)*N/K) and trains on the rest.
func (l *List) KFold(k int, seed int64) (*CrossValidation, error) {
	if err := l.checkFolds(k); err != nil {
		return nil, err
	}
	c := l.Copy()
	c.Shuffle(seed)
	n := c.Size()
	cv := &CrossValidation{
		instances: c.instances,
		folds:     make([]int, n),
		k:         k,
	}
	for i := 0; i < k; i++ {
		for j := i * n / k; j < (i+1)*n/k; j++ {
			cv.folds[j] = i
		}
	}
	return cv, nil
}

// StratifiedKFold creates a k-fold cross-validation in which every class is dealt round-robin over the
// folds, so each fold keeps the class proportions of the list.
func (l *List) StratifiedKFold(k int, seed int64) (*CrossValidation, error) {
	if err := l.checkFolds(k); err != nil {
		return nil, err
	}
	c := l.Copy()
	c.Shuffle(seed)
	sort.SliceStable(c.instances, func(i, j int) bool {
		return c.instances[i].label < c.instances[j].label
	})
	cv := &CrossValidation{
		instances: c.instances,
		folds:     make([]int, c.Size()),
		k:         k,
	}
	for j := range cv.folds {
		cv.folds[j] = j % k
	}
	return cv, nil
}

func (l *List) checkFolds(k int) error {
	if k < 2 {
		return errors.Wrapf(ErrInvalidFolds, "got %d", k)
	}
	if l.Size() < k {
		return errors.Wrapf(ErrInsufficientData, "%d instances cannot fill %d folds", l.Size(), k)
	}
	return nil
}

// K is the number of folds.
func (cv *CrossValidation) K() int {
	return cv.k
}

// TrainFold returns the instances trained on in fold i.
func (cv *CrossValidation) TrainFold(i int) *List {
	l := NewList()
	for j, inst := range cv.instances {
		if cv.folds[j] != i {
			l.Add(inst)
		}
	}
	return l
}

// TestFold returns the instances tested on in fold i.
func (cv *CrossValidation) TestFold(i int) *List {
	l := NewList()
	for j, inst := range cv.instances {
		if cv.folds[j] == i {
			l.Add(inst)
		}
	}
	return l
}
