package classifier

import (
	"context"
	"testing"

	"github.com/hscells/classy/instance"
	"github.com/hscells/classy/parameter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labelled(n int) *instance.List {
	l := instance.NewList()
	for i := 0; i < n; i++ {
		label := "a"
		if i%3 == 0 {
			label = "b"
		}
		l.Add(instance.New(label, float64(i), float64(i%5)))
	}
	return l
}

func TestBootstrapPairSizes(t *testing.T) {
	partition, err := labelled(30).StratifiedPartition(pruneRatio, 4)
	require.NoError(t, err)
	require.NotEqual(t, partition.Get(0).Size(), partition.Get(1).Size())

	for seed := int64(0); seed < 5; seed++ {
		grow, prune, err := bootstrapPair(partition, seed)
		require.NoError(t, err)
		assert.Equal(t, partition.Get(1).Size(), grow.Size(), "seed %d", seed)
		assert.Equal(t, partition.Get(0).Size(), prune.Size(), "seed %d", seed)

		expected, err := partition.Get(1).Bootstrap(seed)
		require.NoError(t, err)
		assert.Equal(t, expected.Instances(), grow.Instances(), "seed %d", seed)
	}
}

func TestBaggingForestSize(t *testing.T) {
	c := &Bagging{Workers: 3}
	require.NoError(t, c.Train(context.Background(), labelled(30), parameter.NewBagging(2, 7)))
	assert.Equal(t, 7, c.Model().Size())
	assert.Len(t, c.Model().Trees(), 7)
}
