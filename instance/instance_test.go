package instance_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/hscells/classy/instance"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dataset creates a list with n instances of class "a" and m instances of class "b".
func dataset(n, m int) *instance.List {
	l := instance.NewList()
	for i := 0; i < n; i++ {
		l.Add(instance.New("a", float64(i), 1))
	}
	for i := 0; i < m; i++ {
		l.Add(instance.New("b", float64(i), -1))
	}
	return l
}

func multiset(lists ...*instance.List) map[*instance.Instance]int {
	m := make(map[*instance.Instance]int)
	for _, l := range lists {
		for _, inst := range l.Instances() {
			m[inst]++
		}
	}
	return m
}

func TestInstance(t *testing.T) {
	inst := instance.New("yes", 1, 2, 3)
	assert.Equal(t, "yes", inst.ClassLabel())
	assert.Equal(t, 3, inst.ContinuousAttributeSize())
	assert.Equal(t, 2.0, inst.Attribute(1))

	v := inst.Vector()
	v[0] = 100
	assert.Equal(t, 1.0, inst.Attribute(0), "vector must be a copy")
}

func TestClassLabels(t *testing.T) {
	l := instance.NewList(
		instance.New("c"), instance.New("a"), instance.New("c"), instance.New("b"), instance.New("a"))
	assert.Equal(t, []string{"a", "b", "c"}, l.ClassLabels())
	assert.Equal(t, map[string]int{"a": 2, "b": 1, "c": 2}, l.ClassDistribution())
}

func TestShuffleDeterministic(t *testing.T) {
	a, b := dataset(20, 20), dataset(20, 20)
	for i := 0; i < a.Size(); i++ {
		// Same attribute values, different pointers; compare by value.
		require.Equal(t, a.Get(i).Vector(), b.Get(i).Vector())
	}
	a.Shuffle(7)
	b.Shuffle(7)
	for i := 0; i < a.Size(); i++ {
		assert.Equal(t, a.Get(i).Vector(), b.Get(i).Vector())
		assert.Equal(t, a.Get(i).ClassLabel(), b.Get(i).ClassLabel())
	}
}

func TestStratifiedPartition(t *testing.T) {
	for _, ratio := range []float64{0.1, 0.2, 0.25, 0.5, 0.8} {
		t.Run(fmt.Sprint(ratio), func(t *testing.T) {
			l := dataset(37, 63)
			p, err := l.StratifiedPartition(ratio, 3)
			require.NoError(t, err)
			require.Equal(t, 2, p.Size())

			// The two parts reconstruct the source multiset exactly.
			assert.Equal(t, multiset(l), multiset(p.Get(0), p.Get(1)))

			// Each class is held out in proportion to its size, within one instance.
			source := l.ClassDistribution()
			heldOut := p.Get(0).ClassDistribution()
			for label, size := range source {
				assert.InDelta(t, ratio*float64(size), float64(heldOut[label]), 1.0, label)
			}
		})
	}
}

func TestPartition(t *testing.T) {
	l := dataset(50, 50)
	p, err := l.Partition(0.25, 1)
	require.NoError(t, err)
	assert.Equal(t, 25, p.Get(0).Size())
	assert.Equal(t, 75, p.Get(1).Size())
	assert.Equal(t, multiset(l), multiset(p.Get(0), p.Get(1)))

	// The source list is not reordered.
	assert.Equal(t, 0.0, l.Get(0).Attribute(0))
	assert.Equal(t, "a", l.Get(0).ClassLabel())

	q, err := l.Partition(0.25, 1)
	require.NoError(t, err)
	assert.Equal(t, p.Lists(), q.Lists())
}

func TestPartitionErrors(t *testing.T) {
	_, err := dataset(2, 2).Partition(0, 1)
	assert.True(t, errors.Is(err, instance.ErrInvalidRatio))
	_, err = dataset(2, 2).StratifiedPartition(1, 1)
	assert.True(t, errors.Is(err, instance.ErrInvalidRatio))
	_, err = instance.NewList().StratifiedPartition(0.2, 1)
	assert.True(t, errors.Is(err, instance.ErrInsufficientData))
}

func TestBootstrap(t *testing.T) {
	l := dataset(10, 15)
	s, err := l.Bootstrap(4)
	require.NoError(t, err)
	assert.Equal(t, l.Size(), s.Size())

	source := multiset(l)
	for inst := range multiset(s) {
		_, ok := source[inst]
		assert.True(t, ok, "bootstrap sample must only contain source instances")
	}

	again, err := l.Bootstrap(4)
	require.NoError(t, err)
	assert.Equal(t, s.Instances(), again.Instances())

	_, err = instance.NewList().Bootstrap(0)
	assert.True(t, errors.Is(err, instance.ErrInsufficientData))
}

func TestBootstrapUniqueFraction(t *testing.T) {
	l := dataset(5000, 5000)
	s, err := l.Bootstrap(11)
	require.NoError(t, err)
	unique := float64(len(multiset(s))) / float64(l.Size())
	assert.InDelta(t, 1-1/math.E, unique, 0.02)
}

func TestBootstrapWithOutOfBag(t *testing.T) {
	l := dataset(30, 30)
	sample, oob, err := l.BootstrapWithOutOfBag(5)
	require.NoError(t, err)

	plain, err := l.Bootstrap(5)
	require.NoError(t, err)
	assert.Equal(t, plain.Instances(), sample.Instances())

	drawn := multiset(sample)
	for _, inst := range oob.Instances() {
		_, ok := drawn[inst]
		assert.False(t, ok, "out-of-bag instance was drawn")
	}
	assert.Equal(t, l.Size(), len(drawn)+oob.Size())
}

func TestKFold(t *testing.T) {
	l := dataset(12, 11)
	cv, err := l.KFold(5, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, cv.K())

	tested := instance.NewList()
	for i := 0; i < cv.K(); i++ {
		train, test := cv.TrainFold(i), cv.TestFold(i)
		assert.Equal(t, l.Size(), train.Size()+test.Size())
		assert.Equal(t, multiset(l), multiset(train, test))
		assert.InDelta(t, float64(l.Size())/5, float64(test.Size()), 1.0)
		for _, inst := range test.Instances() {
			tested.Add(inst)
		}
	}
	// Every instance is tested exactly once.
	assert.Equal(t, multiset(l), multiset(tested))
}

func TestStratifiedKFold(t *testing.T) {
	l := dataset(20, 10)
	cv, err := l.StratifiedKFold(5, 9)
	require.NoError(t, err)
	for i := 0; i < cv.K(); i++ {
		assert.Equal(t, map[string]int{"a": 4, "b": 2}, cv.TestFold(i).ClassDistribution())
		assert.Equal(t, 24, cv.TrainFold(i).Size())
	}
}

func TestKFoldErrors(t *testing.T) {
	_, err := dataset(5, 5).KFold(1, 0)
	assert.True(t, errors.Is(err, instance.ErrInvalidFolds))
	_, err = dataset(2, 1).KFold(4, 0)
	assert.True(t, errors.Is(err, instance.ErrInsufficientData))
	_, err = dataset(2, 1).StratifiedKFold(0, 0)
	assert.True(t, errors.Is(err, instance.ErrInvalidFolds))
}
