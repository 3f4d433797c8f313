package model

import (
	"sort"

	"github.com/hscells/classy/instance"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DecisionTree is a binary classification tree over continuous attributes. Internal nodes send instances
// whose attribute value is at most the threshold to the left and the rest to the right; leaves predict
// the majority class of the training instances that reached them.
type DecisionTree struct {
	root        *decisionNode
	classLabels []string
	d           int
}

type decisionNode struct {
	leaf bool

	// counts[c] is the number of training instances of class c that reached the node.
	counts []float64
	class  int

	attribute int
	threshold float64
	left      *decisionNode
	right     *decisionNode
}

// NewDecisionTree grows a tree on the training set. A node is split on the attribute and threshold with
// the largest information gain; nodes that are pure, hold a single instance, or have no split with
// positive gain become leaves.
func NewDecisionTree(train *instance.List) (*DecisionTree, error) {
	d, err := dimension(train)
	if err != nil {
		return nil, err
	}
	t := &DecisionTree{
		classLabels: train.ClassLabels(),
		d:           d,
	}
	t.root = t.grow(train.Instances())
	return t, nil
}

func (t *DecisionTree) classIndex(label string) int {
	return sort.SearchStrings(t.classLabels, label)
}

func (t *DecisionTree) leaf(instances []*instance.Instance) *decisionNode {
	n := &decisionNode{
		leaf:   true,
		counts: make([]float64, len(t.classLabels)),
	}
	for _, inst := range instances {
		n.counts[t.classIndex(inst.ClassLabel())]++
	}
	n.class = argmax(n.counts)
	return n
}

// entropy of a class count distribution holding total instances.
func entropy(counts []float64, total float64) float64 {
	if total == 0 {
		return 0
	}
	p := make([]float64, len(counts))
	floats.ScaleTo(p, 1/total, counts)
	return stat.Entropy(p)
}

func (t *DecisionTree) grow(instances []*instance.Instance) *decisionNode {
	node := t.leaf(instances)
	total := float64(len(instances))
	if len(instances) < 2 || node.counts[node.class] == total {
		return node
	}

	var (
		bestGain      float64
		bestAttribute int
		bestThreshold float64
	)
	parentEntropy := entropy(node.counts, total)
	sorted := make([]*instance.Instance, len(instances))
	left := make([]float64, len(t.classLabels))
	right := make([]float64, len(t.classLabels))
	for a := 0; a < t.d; a++ {
		copy(sorted, instances)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Attribute(a) < sorted[j].Attribute(a)
		})
		for c := range left {
			left[c] = 0
		}
		copy(right, node.counts)

		for i := 0; i < len(sorted)-1; i++ {
			c := t.classIndex(sorted[i].ClassLabel())
			left[c]++
			right[c]--
			v, next := sorted[i].Attribute(a), sorted[i+1].Attribute(a)
			if v == next {
				continue
			}
			nl := float64(i + 1)
			nr := total - nl
			gain := parentEntropy - nl/total*entropy(left, nl) - nr/total*entropy(right, nr)
			if gain > bestGain+1e-12 {
				bestGain = gain
				bestAttribute = a
				bestThreshold = (v + next) / 2
			}
		}
	}

	if bestGain <= 0 {
		return node
	}

	var lhs, rhs []*instance.Instance
	for _, inst := range instances {
		if inst.Attribute(bestAttribute) <= bestThreshold {
			lhs = append(lhs, inst)
		} else {
			rhs = append(rhs, inst)
		}
	}
	node.leaf = false
	node.attribute = bestAttribute
	node.threshold = bestThreshold
	node.left = t.grow(lhs)
	node.right = t.grow(rhs)
	return node
}

// Predict returns the class of the leaf the instance reaches.
func (t *DecisionTree) Predict(inst *instance.Instance) (string, error) {
	if err := checkDimension(inst, t.d); err != nil {
		return "", err
	}
	n := t.root
	for !n.leaf {
		if inst.Attribute(n.attribute) <= n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return t.classLabels[n.class], nil
}

// Prune performs reduced-error pruning with the pruning set, bottom-up: an internal node is replaced by a
// leaf when the leaf misclassifies no more of the pruning instances reaching the node than its subtree.
func (t *DecisionTree) Prune(l *instance.List) error {
	if l.Size() == 0 {
		return errors.Wrap(instance.ErrInsufficientData, "empty pruning set")
	}
	for i := 0; i < l.Size(); i++ {
		if err := checkDimension(l.Get(i), t.d); err != nil {
			return err
		}
	}
	t.prune(t.root, l.Instances())
	return nil
}

// prune returns the number of instances the pruned subtree misclassifies.
func (t *DecisionTree) prune(n *decisionNode, instances []*instance.Instance) int {
	leafErrors := 0
	for _, inst := range instances {
		if inst.ClassLabel() != t.classLabels[n.class] {
			leafErrors++
		}
	}
	if n.leaf {
		return leafErrors
	}

	var lhs, rhs []*instance.Instance
	for _, inst := range instances {
		if inst.Attribute(n.attribute) <= n.threshold {
			lhs = append(lhs, inst)
		} else {
			rhs = append(rhs, inst)
		}
	}
	subtreeErrors := t.prune(n.left, lhs) + t.prune(n.right, rhs)
	if leafErrors <= subtreeErrors {
		n.leaf = true
		n.left, n.right = nil, nil
		return leafErrors
	}
	return subtreeErrors
}

// Leaves is the number of leaves in the tree.
func (t *DecisionTree) Leaves() int {
	var count func(n *decisionNode) int
	count = func(n *decisionNode) int {
		if n.leaf {
			return 1
		}
		return count(n.left) + count(n.right)
	}
	return count(t.root)
}

// ClassLabels are the sorted class labels the tree was trained on.
func (t *DecisionTree) ClassLabels() []string {
	l := make([]string, len(t.classLabels))
	copy(l, t.classLabels)
	return l
}
