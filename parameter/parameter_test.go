package parameter_test

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/hscells/classy/parameter"
	"github.com/magiconair/properties"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	valid := []parameter.Parameter{
		parameter.New(0),
		parameter.NewLinearPerceptron(1, 0.1, 0.99, 0.2, 10),
		parameter.NewMultiLayerPerceptron(1, 0.1, 1, 0.2, 10, 4),
		parameter.NewBagging(1, 5),
		parameter.NewC45(1, true, 0.2),
		parameter.NewC45(1, false, 0),
	}
	for _, p := range valid {
		assert.NoError(t, p.Validate())
	}

	invalid := []parameter.Parameter{
		parameter.NewLinearPerceptron(1, 0.1, 0.99, 0.2, 0),
		parameter.NewLinearPerceptron(1, 0, 0.99, 0.2, 10),
		parameter.NewLinearPerceptron(1, 0.1, 1.5, 0.2, 10),
		parameter.NewLinearPerceptron(1, 0.1, 0.99, 1, 10),
		parameter.NewMultiLayerPerceptron(1, 0.1, 0.99, 0.2, 10, 0),
		parameter.NewMultiLayerPerceptron(1, 0.1, 0.99, 0.2, -1, 3),
		parameter.NewBagging(1, 0),
		parameter.NewBagging(1, -3),
		parameter.NewC45(1, true, 0),
	}
	for _, p := range invalid {
		err := p.Validate()
		assert.True(t, errors.Is(err, parameter.ErrInvalidConfiguration), "%#v", p)
	}
}

func TestAccessors(t *testing.T) {
	p := parameter.NewMultiLayerPerceptron(7, 0.05, 0.9, 0.25, 30, 6)
	assert.Equal(t, int64(7), p.Seed())
	assert.Equal(t, 0.05, p.LearningRate())
	assert.Equal(t, 0.9, p.EtaDecrease())
	assert.Equal(t, 0.25, p.CrossValidationRatio())
	assert.Equal(t, 30, p.Epoch())
	assert.Equal(t, 6, p.HiddenNodes())

	b := parameter.NewBagging(3, 50)
	assert.Equal(t, int64(3), b.Seed())
	assert.Equal(t, 50, b.EnsembleSize())
}

func TestLoad(t *testing.T) {
	p := properties.MustLoadString(`
seed = 42
learningRate = 0.01
etaDecrease = 0.95
epoch = 20
hiddenNodes = 8
ensembleSize = 7
`)

	param, err := parameter.Load(p, parameter.AutoEncoderAlgorithm)
	require.NoError(t, err)
	mlp, ok := param.(parameter.MultiLayerPerceptron)
	require.True(t, ok)
	assert.Equal(t, int64(42), mlp.Seed())
	assert.Equal(t, 0.01, mlp.LearningRate())
	assert.Equal(t, 0.95, mlp.EtaDecrease())
	assert.Equal(t, parameter.DefaultCrossValidationRatio, mlp.CrossValidationRatio())
	assert.Equal(t, 20, mlp.Epoch())
	assert.Equal(t, 8, mlp.HiddenNodes())

	param, err = parameter.Load(p, parameter.BaggingAlgorithm)
	require.NoError(t, err)
	assert.Equal(t, parameter.NewBagging(42, 7), param)

	param, err = parameter.Load(p, parameter.LdaAlgorithm)
	require.NoError(t, err)
	assert.Equal(t, int64(42), param.Seed())

	_, err = parameter.Load(p, "svm")
	assert.True(t, errors.Is(err, parameter.ErrInvalidConfiguration))

	_, err = parameter.Load(properties.MustLoadString("ensembleSize = 0"), parameter.BaggingAlgorithm)
	assert.True(t, errors.Is(err, parameter.ErrInvalidConfiguration))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lp.properties")
	require.NoError(t, ioutil.WriteFile(path, []byte("seed = 3\nepoch = 5\n"), 0644))

	param, err := parameter.LoadFile(path, parameter.LinearPerceptronAlgorithm)
	require.NoError(t, err)
	assert.Equal(t, parameter.NewLinearPerceptron(3, parameter.DefaultLearningRate, parameter.DefaultEtaDecrease,
		parameter.DefaultCrossValidationRatio, 5), param)

	_, err = parameter.LoadFile(filepath.Join(dir, "missing.properties"), parameter.LinearPerceptronAlgorithm)
	assert.Error(t, err)
}

func TestLoadMalformed(t *testing.T) {
	tests := []struct {
		properties string
		algorithm  string
	}{
		{"epoch = ten", parameter.LinearPerceptronAlgorithm},
		{"learningRate = fast", parameter.LinearPerceptronAlgorithm},
		{"seed = one", parameter.LdaAlgorithm},
		{"ensembleSize = 1e3", parameter.BaggingAlgorithm},
		{"hiddenNodes = 2.5", parameter.AutoEncoderAlgorithm},
		{"prune = maybe", parameter.C45Algorithm},
	}
	for _, tt := range tests {
		param, err := parameter.Load(properties.MustLoadString(tt.properties), tt.algorithm)
		assert.Nil(t, param, tt.properties)
		assert.True(t, errors.Is(err, parameter.ErrInvalidConfiguration), tt.properties)
	}

	param, err := parameter.Load(properties.MustLoadString("prune = off\ncrossValidationRatio = 0.3"), parameter.C45Algorithm)
	require.NoError(t, err)
	assert.Equal(t, parameter.NewC45(parameter.DefaultSeed, false, 0.3), param)
}
