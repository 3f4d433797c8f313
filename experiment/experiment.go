// Package experiment repeats the training and testing of a classifier under a resampling strategy and
// accumulates the performance of every repetition.
package experiment

import (
	"io"

	"github.com/google/uuid"
	"github.com/hscells/classy/classifier"
	"github.com/hscells/classy/instance"
	"github.com/hscells/classy/parameter"
	"go.uber.org/zap"
)

// Experiment binds a classifier to the parameters it is trained with and the data set it is evaluated on.
// An experiment is not modified once created.
type Experiment struct {
	classifier classifier.Classifier
	parameter  parameter.Parameter
	dataSet    *instance.List

	id       uuid.UUID
	logger   *zap.SugaredLogger
	progress io.Writer
}

// Option configures the ambient parts of an experiment.
type Option func(e *Experiment)

// WithLogger logs the progress of runs to the logger.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(e *Experiment) {
		e.logger = logger
	}
}

// WithProgress draws a progress bar over the repetitions of a run to w.
func WithProgress(w io.Writer) Option {
	return func(e *Experiment) {
		e.progress = w
	}
}

// WithID sets the identifier of the experiment, which is otherwise random.
func WithID(id uuid.UUID) Option {
	return func(e *Experiment) {
		e.id = id
	}
}

// NewExperiment creates an experiment. Without options it has a random identifier, no logging and no
// progress bar.
func NewExperiment(c classifier.Classifier, p parameter.Parameter, dataSet *instance.List, options ...Option) Experiment {
	e := Experiment{
		classifier: c,
		parameter:  p,
		dataSet:    dataSet,
		id:         uuid.New(),
		logger:     zap.NewNop().Sugar(),
	}
	for _, option := range options {
		option(&e)
	}
	return e
}

func (e Experiment) Classifier() classifier.Classifier {
	return e.classifier
}

func (e Experiment) Parameter() parameter.Parameter {
	return e.parameter
}

func (e Experiment) DataSet() *instance.List {
	return e.dataSet
}

func (e Experiment) ID() uuid.UUID {
	return e.id
}
