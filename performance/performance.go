// Package performance records how well a trained classifier performed, both for a single test and
// accumulated over the repetitions of an experiment.
package performance

// Performance is the result of testing a trained model once. ErrorRate is non-negative and lower is
// better; for classifiers it is the fraction of misclassified instances and for auto encoders the mean
// squared reconstruction error. Confusion is only set for classification results.
type Performance struct {
	ErrorRate float64
	Confusion *ConfusionMatrix
}

// New creates a performance with only an error rate.
func New(errorRate float64) Performance {
	return Performance{ErrorRate: errorRate}
}

// NewClassification creates a classification performance from a confusion matrix.
func NewClassification(cm *ConfusionMatrix) Performance {
	return Performance{
		ErrorRate: 1 - cm.Accuracy(),
		Confusion: cm,
	}
}

// Accuracy is the fraction of correctly classified instances. The second return value is false when the
// performance does not come from a classification test.
func (p Performance) Accuracy() (float64, bool) {
	if p.Confusion == nil {
		return 0, false
	}
	return 1 - p.ErrorRate, true
}
