package instance

import (
	"math/rand"
	"sort"

	"github.com/pkg/errors"
	"github.com/xtgo/set"
)

// List is an ordered collection of instances.
type List struct {
	instances []*Instance
}

// NewList creates a list containing the instances, in order.
func NewList(instances ...*Instance) *List {
	l := &List{instances: make([]*Instance, len(instances))}
	copy(l.instances, instances)
	return l
}

// Size is the number of instances in the list.
func (l *List) Size() int {
	return len(l.instances)
}

// Get returns the instance at index i.
func (l *List) Get(i int) *Instance {
	return l.instances[i]
}

// Add appends an instance to the end of the list.
func (l *List) Add(i *Instance) {
	l.instances = append(l.instances, i)
}

// Instances returns the instances of the list. The slice is a copy; the instances are shared.
func (l *List) Instances() []*Instance {
	c := make([]*Instance, len(l.instances))
	copy(c, l.instances)
	return c
}

// Copy creates a new list sharing the instances of this one.
func (l *List) Copy() *List {
	return NewList(l.instances...)
}

// Shuffle permutes the list in place. The permutation depends only on the seed.
func (l *List) Shuffle(seed int64) {
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(l.instances), func(i, j int) {
		l.instances[i], l.instances[j] = l.instances[j], l.instances[i]
	})
}

// ClassLabels returns the distinct class labels in the list, sorted.
func (l *List) ClassLabels() []string {
	labels := make([]string, len(l.instances))
	for i, inst := range l.instances {
		labels[i] = inst.label
	}
	sort.Strings(labels)
	n := set.Uniq(sort.StringSlice(labels))
	return labels[:n]
}

// ClassDistribution counts the instances of each class label.
func (l *List) ClassDistribution() map[string]int {
	counts := make(map[string]int)
	for _, inst := range l.instances {
		counts[inst.label]++
	}
	return counts
}

// Partition splits a shuffled copy of the list in two. The first ratio-fraction of the shuffled instances
// make up the list at index 0 (the held-out portion) and the remainder the list at index 1.
func (l *List) Partition(ratio float64, seed int64) (*Partition, error) {
	if err := l.checkPartition(ratio); err != nil {
		return nil, err
	}
	c := l.Copy()
	c.Shuffle(seed)

	heldOut, train := NewList(), NewList()
	for i, inst := range c.instances {
		if float64(i) < ratio*float64(c.Size()) {
			heldOut.Add(inst)
		} else {
			train.Add(inst)
		}
	}
	return NewPartition(heldOut, train), nil
}

// StratifiedPartition splits a shuffled copy of the list in two, keeping the class proportions of the
// list in both parts. An instance is held out (index 0) while its class has fewer than ratio times the
// class size held out; otherwise it goes to the training portion (index 1).
func (l *List) StratifiedPartition(ratio float64, seed int64) (*Partition, error) {
	if err := l.checkPartition(ratio); err != nil {
		return nil, err
	}
	c := l.Copy()
	c.Shuffle(seed)

	sizes := c.ClassDistribution()
	counts := make(map[string]int, len(sizes))
	heldOut, train := NewList(), NewList()
	for _, inst := range c.instances {
		if float64(counts[inst.label]) < ratio*float64(sizes[inst.label]) {
			heldOut.Add(inst)
			counts[inst.label]++
		} else {
			train.Add(inst)
		}
	}
	return NewPartition(heldOut, train), nil
}

func (l *List) checkPartition(ratio float64) error {
	if ratio <= 0 || ratio >= 1 {
		return errors.Wrapf(ErrInvalidRatio, "got %v", ratio)
	}
	if l.Size() == 0 {
		return errors.Wrap(ErrInsufficientData, "cannot partition an empty list")
	}
	return nil
}
