package performance

import (
	"sort"

	"github.com/xtgo/set"
)

// ConfusionMatrix counts (actual, predicted) class label pairs.
type ConfusionMatrix struct {
	counts map[string]map[string]int
	total  int
}

// NewConfusionMatrix creates an empty confusion matrix.
func NewConfusionMatrix() *ConfusionMatrix {
	return &ConfusionMatrix{counts: make(map[string]map[string]int)}
}

// Add records one classification.
func (cm *ConfusionMatrix) Add(actual, predicted string) {
	if _, ok := cm.counts[actual]; !ok {
		cm.counts[actual] = make(map[string]int)
	}
	cm.counts[actual][predicted]++
	cm.total++
}

// Count is the number of instances of class actual that were classified as predicted.
func (cm *ConfusionMatrix) Count(actual, predicted string) int {
	return cm.counts[actual][predicted]
}

// Total is the number of recorded classifications.
func (cm *ConfusionMatrix) Total() int {
	return cm.total
}

// ClassLabels are the sorted labels appearing as either actual or predicted classes.
func (cm *ConfusionMatrix) ClassLabels() []string {
	var labels []string
	for actual, row := range cm.counts {
		labels = append(labels, actual)
		for predicted := range row {
			labels = append(labels, predicted)
		}
	}
	sort.Strings(labels)
	return labels[:set.Uniq(sort.StringSlice(labels))]
}

// Accuracy is the fraction of classifications on the diagonal. An empty matrix has accuracy 0.
func (cm *ConfusionMatrix) Accuracy() float64 {
	if cm.total == 0 {
		return 0
	}
	correct := 0
	for label, row := range cm.counts {
		correct += row[label]
	}
	return float64(correct) / float64(cm.total)
}

// Precision of a class: correct predictions of the class over all predictions of the class.
func (cm *ConfusionMatrix) Precision(class string) float64 {
	predicted := 0
	for _, row := range cm.counts {
		predicted += row[class]
	}
	if predicted == 0 {
		return 0
	}
	return float64(cm.counts[class][class]) / float64(predicted)
}

// Recall of a class: correct predictions of the class over all instances of the class.
func (cm *ConfusionMatrix) Recall(class string) float64 {
	actual := 0
	for _, n := range cm.counts[class] {
		actual += n
	}
	if actual == 0 {
		return 0
	}
	return float64(cm.counts[class][class]) / float64(actual)
}
