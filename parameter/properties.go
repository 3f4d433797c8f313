package parameter

import (
	"strings"

	"github.com/magiconair/properties"
	"github.com/pkg/errors"
)

// Algorithms whose parameter bags can be loaded from properties.
const (
	LinearPerceptronAlgorithm     = "lp"
	MultiLayerPerceptronAlgorithm = "mlp"
	AutoEncoderAlgorithm          = "autoencoder"
	BaggingAlgorithm              = "bagging"
	C45Algorithm                  = "c45"
	LdaAlgorithm                  = "lda"
)

// Default values used for keys missing from a properties file.
const (
	DefaultSeed                 = 1
	DefaultLearningRate         = 0.1
	DefaultEtaDecrease          = 0.99
	DefaultCrossValidationRatio = 0.2
	DefaultEpoch                = 100
	DefaultHiddenNodes          = 3
	DefaultEnsembleSize         = 100
)

// LoadFile reads the parameters of an algorithm from a properties file, for example:
//
//	seed = 1
//	learningRate = 0.1
//	etaDecrease = 0.99
//	crossValidationRatio = 0.2
//	epoch = 100
//	hiddenNodes = 3
//	ensembleSize = 100
//	prune = true
func LoadFile(path, algorithm string) (Parameter, error) {
	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return nil, err
	}
	return Load(p, algorithm)
}

// Load creates the parameter bag of an algorithm from properties. Missing keys take the default values;
// a value that does not parse fails with ErrInvalidConfiguration. The resulting bag is validated.
func Load(p *properties.Properties, algorithm string) (Parameter, error) {
	r := reader{p: p}
	seed := r.int64("seed", DefaultSeed)
	lp := NewLinearPerceptron(seed,
		r.float64("learningRate", DefaultLearningRate),
		r.float64("etaDecrease", DefaultEtaDecrease),
		r.float64("crossValidationRatio", DefaultCrossValidationRatio),
		r.int("epoch", DefaultEpoch))

	var param Parameter
	switch algorithm {
	case LinearPerceptronAlgorithm:
		param = lp
	case MultiLayerPerceptronAlgorithm, AutoEncoderAlgorithm:
		param = MultiLayerPerceptron{
			LinearPerceptron: lp,
			hiddenNodes:      r.int("hiddenNodes", DefaultHiddenNodes),
		}
	case BaggingAlgorithm:
		param = NewBagging(seed, r.int("ensembleSize", DefaultEnsembleSize))
	case C45Algorithm:
		param = NewC45(seed, r.bool("prune", true), r.float64("crossValidationRatio", DefaultCrossValidationRatio))
	case LdaAlgorithm:
		param = New(seed)
	default:
		return nil, errors.Wrapf(ErrInvalidConfiguration, "unknown algorithm %q", algorithm)
	}

	if r.err != nil {
		return nil, r.err
	}
	if err := param.Validate(); err != nil {
		return nil, err
	}
	return param, nil
}

// reader parses typed values from properties, remembering the first value that does not parse.
type reader struct {
	p   *properties.Properties
	err error
}

func (r *reader) fail(key, value, kind string) {
	if r.err == nil {
		r.err = errors.Wrapf(ErrInvalidConfiguration, "%s = %q is not %s", key, value, kind)
	}
}

func (r *reader) int64(key string, def int64) int64 {
	value, ok := r.p.Get(key)
	if !ok {
		return def
	}
	v, err := r.p.GetParsedInt64(key)
	if err != nil {
		r.fail(key, value, "an integer")
		return def
	}
	return v
}

func (r *reader) int(key string, def int) int {
	value, ok := r.p.Get(key)
	if !ok {
		return def
	}
	v, err := r.p.GetParsedInt64(key)
	if err != nil {
		r.fail(key, value, "an integer")
		return def
	}
	return int(v)
}

func (r *reader) float64(key string, def float64) float64 {
	value, ok := r.p.Get(key)
	if !ok {
		return def
	}
	v, err := r.p.GetParsedFloat64(key)
	if err != nil {
		r.fail(key, value, "a number")
		return def
	}
	return v
}

func (r *reader) bool(key string, def bool) bool {
	value, ok := r.p.Get(key)
	if !ok {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	r.fail(key, value, "a boolean")
	return def
}
