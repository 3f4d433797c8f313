package classifier

import (
	"context"

	"github.com/hscells/classy/instance"
	"github.com/hscells/classy/model"
	"github.com/hscells/classy/parameter"
	"github.com/hscells/classy/performance"
)

// Lda fits a linear discriminant model. Training has no tunable parameters, so any parameter bag is
// accepted.
type Lda struct {
	model *model.Lda
}

func (c *Lda) Train(ctx context.Context, trainSet *instance.List, p parameter.Parameter) error {
	if p == nil {
		return wrongParameter("lda", p)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	m, err := model.NewLda(trainSet)
	if err != nil {
		return err
	}
	c.model = m
	return nil
}

func (c *Lda) Test(testSet *instance.List) (performance.Performance, error) {
	if c.model == nil {
		return performance.Performance{}, ErrNotTrained
	}
	return testClassification(c.model, testSet)
}

// Model is the last trained model, or nil.
func (c *Lda) Model() *model.Lda {
	return c.model
}
