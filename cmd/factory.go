package cmd

import (
	"sort"

	"github.com/hscells/classy/classifier"
	"github.com/hscells/classy/experiment"
	"github.com/hscells/classy/parameter"
	"github.com/hscells/classy/stattest"
	"github.com/pkg/errors"
)

// Names of the run strategies.
const (
	BootstrapRun           = "bootstrap"
	KFoldRun               = "kfold"
	StratifiedKFoldRun     = "stratified-kfold"
	KFoldRunSeparateTest   = "kfold-separate"
	MxKFoldRun             = "mxkfold"
	StratifiedMxKFoldRun   = "stratified-mxkfold"
	MxKFoldRunSeparateTest = "mxkfold-separate"
)

// Names of the paired tests.
const (
	PairedT      = "pairedt"
	Paired5x2T   = "5x2t"
	Combined5x2T = "combined5x2t"
	Combined5x2F = "combined5x2f"
	Sign         = "sign"
)

var pairedTests = map[string]stattest.PairedTest{
	PairedT:      stattest.PairedT{},
	Paired5x2T:   stattest.Paired5x2T{},
	Combined5x2T: stattest.Combined5x2T{},
	Combined5x2F: stattest.Combined5x2F{},
	Sign:         stattest.Sign{},
}

// NewClassifier creates the classifier of an algorithm, named as in the parameter package. workers only
// applies to bagging.
func NewClassifier(algorithm string, workers int) (classifier.Classifier, error) {
	switch algorithm {
	case parameter.LinearPerceptronAlgorithm:
		return &classifier.LinearPerceptron{}, nil
	case parameter.AutoEncoderAlgorithm:
		return &classifier.AutoEncoder{}, nil
	case parameter.BaggingAlgorithm:
		return &classifier.Bagging{Workers: workers}, nil
	case parameter.C45Algorithm:
		return &classifier.C45{}, nil
	case parameter.LdaAlgorithm:
		return &classifier.Lda{}, nil
	}
	return nil, errors.Wrapf(parameter.ErrInvalidConfiguration, "no classifier for algorithm %q", algorithm)
}

// NewRun creates a run strategy. repetitions is the number of bootstrap samples, or M for the MxK-fold
// runs; k is the number of folds.
func NewRun(name string, repetitions, k int, outOfBag, advanceSeed bool) (experiment.MultipleRun, error) {
	switch name {
	case BootstrapRun:
		return experiment.BootstrapRun{NumberOfBootstraps: repetitions, OutOfBag: outOfBag}, nil
	case KFoldRun:
		return experiment.KFoldRun{K: k}, nil
	case StratifiedKFoldRun:
		return experiment.KFoldRun{K: k, Stratified: true}, nil
	case KFoldRunSeparateTest:
		return experiment.KFoldRunSeparateTest{K: k}, nil
	case MxKFoldRun:
		return experiment.MxKFoldRun{M: repetitions, K: k, AdvanceSeed: advanceSeed}, nil
	case StratifiedMxKFoldRun:
		return experiment.MxKFoldRun{M: repetitions, K: k, AdvanceSeed: advanceSeed, Stratified: true}, nil
	case MxKFoldRunSeparateTest:
		return experiment.MxKFoldRunSeparateTest{M: repetitions, K: k, AdvanceSeed: advanceSeed}, nil
	}
	return nil, errors.Wrapf(parameter.ErrInvalidConfiguration, "unknown run %q", name)
}

// NewPairedTest returns the paired test with the name.
func NewPairedTest(name string) (stattest.PairedTest, error) {
	if t, ok := pairedTests[name]; ok {
		return t, nil
	}
	names := make([]string, 0, len(pairedTests))
	for n := range pairedTests {
		names = append(names, n)
	}
	sort.Strings(names)
	return nil, errors.Wrapf(parameter.ErrInvalidConfiguration, "unknown paired test %q, expected one of %v", name, names)
}
