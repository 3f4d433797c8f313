package parameter

// LinearPerceptron configures gradient descent training of a linear perceptron.
type LinearPerceptron struct {
	Base
	learningRate         float64
	etaDecrease          float64
	crossValidationRatio float64
	epoch                int
}

// NewLinearPerceptron creates the parameters of the linear perceptron. etaDecrease multiplies the learning
// rate after every epoch and crossValidationRatio is the fraction of the training data held out for
// selecting the best weights.
func NewLinearPerceptron(seed int64, learningRate, etaDecrease, crossValidationRatio float64, epoch int) LinearPerceptron {
	return LinearPerceptron{
		Base:                 New(seed),
		learningRate:         learningRate,
		etaDecrease:          etaDecrease,
		crossValidationRatio: crossValidationRatio,
		epoch:                epoch,
	}
}

func (p LinearPerceptron) LearningRate() float64 {
	return p.learningRate
}

func (p LinearPerceptron) EtaDecrease() float64 {
	return p.etaDecrease
}

func (p LinearPerceptron) CrossValidationRatio() float64 {
	return p.crossValidationRatio
}

func (p LinearPerceptron) Epoch() int {
	return p.epoch
}

func (p LinearPerceptron) Validate() error {
	switch {
	case p.epoch <= 0:
		return invalid("epoch must be positive, got %d", p.epoch)
	case p.learningRate <= 0:
		return invalid("learning rate must be positive, got %v", p.learningRate)
	case p.etaDecrease <= 0 || p.etaDecrease > 1:
		return invalid("eta decrease must be in (0, 1], got %v", p.etaDecrease)
	case p.crossValidationRatio <= 0 || p.crossValidationRatio >= 1:
		return invalid("cross-validation ratio must be in (0, 1), got %v", p.crossValidationRatio)
	}
	return nil
}

// MultiLayerPerceptron adds a hidden layer to the linear perceptron parameters. It configures the auto
// encoder.
type MultiLayerPerceptron struct {
	LinearPerceptron
	hiddenNodes int
}

// NewMultiLayerPerceptron creates the parameters of a network with one hidden layer of hiddenNodes units.
func NewMultiLayerPerceptron(seed int64, learningRate, etaDecrease, crossValidationRatio float64, epoch, hiddenNodes int) MultiLayerPerceptron {
	return MultiLayerPerceptron{
		LinearPerceptron: NewLinearPerceptron(seed, learningRate, etaDecrease, crossValidationRatio, epoch),
		hiddenNodes:      hiddenNodes,
	}
}

func (p MultiLayerPerceptron) HiddenNodes() int {
	return p.hiddenNodes
}

func (p MultiLayerPerceptron) Validate() error {
	if err := p.LinearPerceptron.Validate(); err != nil {
		return err
	}
	if p.hiddenNodes <= 0 {
		return invalid("hidden nodes must be positive, got %d", p.hiddenNodes)
	}
	return nil
}

// Bagging configures a bagged forest of decision trees.
type Bagging struct {
	Base
	ensembleSize int
}

// NewBagging creates the parameters of a forest of ensembleSize trees.
func NewBagging(seed int64, ensembleSize int) Bagging {
	return Bagging{
		Base:         New(seed),
		ensembleSize: ensembleSize,
	}
}

func (p Bagging) EnsembleSize() int {
	return p.ensembleSize
}

func (p Bagging) Validate() error {
	if p.ensembleSize <= 0 {
		return invalid("ensemble size must be positive, got %d", p.ensembleSize)
	}
	return nil
}

// C45 configures a single decision tree, optionally pruned on a held-out fraction of the training data.
type C45 struct {
	Base
	prune                bool
	crossValidationRatio float64
}

// NewC45 creates the parameters of a single decision tree.
func NewC45(seed int64, prune bool, crossValidationRatio float64) C45 {
	return C45{
		Base:                 New(seed),
		prune:                prune,
		crossValidationRatio: crossValidationRatio,
	}
}

func (p C45) Prune() bool {
	return p.prune
}

func (p C45) CrossValidationRatio() float64 {
	return p.crossValidationRatio
}

func (p C45) Validate() error {
	if p.prune && (p.crossValidationRatio <= 0 || p.crossValidationRatio >= 1) {
		return invalid("cross-validation ratio must be in (0, 1), got %v", p.crossValidationRatio)
	}
	return nil
}
