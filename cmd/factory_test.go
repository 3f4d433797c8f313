package cmd_test

import (
	"testing"

	"github.com/hscells/classy/classifier"
	"github.com/hscells/classy/cmd"
	"github.com/hscells/classy/experiment"
	"github.com/hscells/classy/parameter"
	"github.com/hscells/classy/stattest"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClassifier(t *testing.T) {
	c, err := cmd.NewClassifier(parameter.BaggingAlgorithm, 3)
	require.NoError(t, err)
	assert.Equal(t, &classifier.Bagging{Workers: 3}, c)

	for _, algorithm := range []string{parameter.LinearPerceptronAlgorithm, parameter.AutoEncoderAlgorithm, parameter.C45Algorithm, parameter.LdaAlgorithm} {
		_, err := cmd.NewClassifier(algorithm, 0)
		assert.NoError(t, err, algorithm)
	}

	_, err = cmd.NewClassifier(parameter.MultiLayerPerceptronAlgorithm, 0)
	assert.True(t, errors.Is(err, parameter.ErrInvalidConfiguration))
}

func TestNewRun(t *testing.T) {
	r, err := cmd.NewRun(cmd.MxKFoldRunSeparateTest, 5, 2, false, true)
	require.NoError(t, err)
	assert.Equal(t, experiment.MxKFoldRunSeparateTest{M: 5, K: 2, AdvanceSeed: true}, r)

	r, err = cmd.NewRun(cmd.BootstrapRun, 30, 10, true, false)
	require.NoError(t, err)
	assert.Equal(t, experiment.BootstrapRun{NumberOfBootstraps: 30, OutOfBag: true}, r)

	r, err = cmd.NewRun(cmd.StratifiedKFoldRun, 1, 10, false, false)
	require.NoError(t, err)
	assert.Equal(t, experiment.KFoldRun{K: 10, Stratified: true}, r)

	r, err = cmd.NewRun(cmd.StratifiedMxKFoldRun, 5, 2, false, false)
	require.NoError(t, err)
	assert.Equal(t, experiment.MxKFoldRun{M: 5, K: 2, Stratified: true}, r)

	_, err = cmd.NewRun("leave-one-out", 1, 1, false, false)
	assert.True(t, errors.Is(err, parameter.ErrInvalidConfiguration))
}

func TestNewPairedTest(t *testing.T) {
	p, err := cmd.NewPairedTest(cmd.Combined5x2F)
	require.NoError(t, err)
	assert.Equal(t, stattest.Combined5x2F{}, p)

	_, err = cmd.NewPairedTest("wilcoxon")
	assert.True(t, errors.Is(err, parameter.ErrInvalidConfiguration))
}
