package classy_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/hscells/classy"
	"github.com/hscells/classy/classifier"
	"github.com/hscells/classy/experiment"
	"github.com/hscells/classy/instance"
	"github.com/hscells/classy/parameter"
	"github.com/hscells/classy/stattest"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// overlapping creates two classes whose attributes overlap, so that every classifier makes some errors.
func overlapping(n int, seed int64) *instance.List {
	r := rand.New(rand.NewSource(seed))
	l := instance.NewList()
	for i := 0; i < n; i++ {
		l.Add(instance.New("a", r.NormFloat64(), r.NormFloat64()))
		l.Add(instance.New("b", 1+r.NormFloat64(), 1+r.NormFloat64()))
	}
	return l
}

func TestCompare(t *testing.T) {
	data := overlapping(60, 1)
	first := experiment.NewExperiment(&classifier.Lda{}, parameter.New(1), data)
	second := experiment.NewExperiment(&classifier.C45{}, parameter.NewC45(1, false, 0.2), data)

	c, err := classy.Compare(context.Background(), experiment.KFoldRun{K: 5}, stattest.PairedT{}, first, second)
	require.NoError(t, err)
	assert.Equal(t, 5, c.First.NumberOfExperiments())
	assert.Equal(t, 5, c.Second.NumberOfExperiments())
	assert.GreaterOrEqual(t, c.Result.PValue, 0.0)
	assert.LessOrEqual(t, c.Result.PValue, 1.0)
}

func TestCompareWithItself(t *testing.T) {
	data := overlapping(30, 2)
	first := experiment.NewExperiment(&classifier.Lda{}, parameter.New(1), data)
	second := experiment.NewExperiment(&classifier.Lda{}, parameter.New(1), data)

	c, err := classy.Compare(context.Background(), experiment.KFoldRun{K: 3}, stattest.PairedT{}, first, second)
	assert.True(t, errors.Is(err, stattest.ErrNotApplicable))
	assert.Equal(t, c.First.ErrorRates(), c.Second.ErrorRates())
}

func TestCompareFails(t *testing.T) {
	data := overlapping(30, 3)
	first := experiment.NewExperiment(&classifier.Lda{}, parameter.New(1), data)
	second := experiment.NewExperiment(&classifier.Lda{}, parameter.New(1), data)

	_, err := classy.Compare(context.Background(), experiment.KFoldRun{K: 1}, stattest.PairedT{}, first, second)
	assert.True(t, errors.Is(err, parameter.ErrInvalidConfiguration))
}
