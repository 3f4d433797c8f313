// Command classy evaluates a classifier on a data set under a resampling strategy and, optionally,
// compares it to a second classifier with a paired statistical test.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alexflint/go-arg"
	"github.com/go-errors/errors"
	"github.com/hscells/classy"
	"github.com/hscells/classy/cmd"
	"github.com/hscells/classy/experiment"
	"github.com/hscells/classy/instance"
	"github.com/hscells/classy/logging"
	"github.com/hscells/classy/output"
	"github.com/hscells/classy/parameter"
	"github.com/hscells/classy/performance"
	"github.com/magiconair/properties"
	"go.uber.org/zap"
)

var (
	name    = "classy"
	version = "19.Oct.2026"
)

type args struct {
	Data   string `help:"csv file containing the data set" arg:"required,positional"`
	Label  int    `help:"column of the class label, negative counts from the end"`
	Header bool   `help:"skip the first line of the data set"`

	Algorithm string `help:"algorithm to evaluate (lp, autoencoder, bagging, c45, lda)"`
	Config    string `help:"properties file with the parameters of the algorithm"`
	Workers   int    `help:"trees grown concurrently by bagging"`

	Run         string `help:"run strategy (bootstrap, kfold, stratified-kfold, kfold-separate, mxkfold, stratified-mxkfold, mxkfold-separate)"`
	Repetitions int    `help:"number of bootstrap samples, or M for the MxK-fold runs"`
	K           int    `help:"number of folds"`
	OutOfBag    bool   `help:"test bootstrap runs on the out-of-bag instances"`
	AdvanceSeed bool   `help:"shuffle every MxK-fold repetition with a new seed"`

	Compare       string  `help:"second algorithm to compare against"`
	CompareConfig string  `help:"properties file with the parameters of the second algorithm"`
	Test          string  `help:"paired test (pairedt, 5x2t, combined5x2t, combined5x2f, sign)"`
	Alpha         float64 `help:"significance level of the paired test"`

	LogLevel string `help:"log level (debug, info, warn, error)"`
	LogFile  string `help:"rotated log file"`
	Progress bool   `help:"draw a progress bar on stderr"`
	Format   string `help:"output format (json, csv)"`
}

func (args) Version() string {
	return version
}

func (args) Description() string {
	return fmt.Sprintf(`%s
# %s
Evaluate classifiers with resampling and compare them with paired tests.`, name, version)
}

type comparison struct {
	Test      string  `json:"test"`
	PValue    float64 `json:"pValue"`
	Alpha     float64 `json:"alpha"`
	OneTailed string  `json:"oneTailed"`
	TwoTailed string  `json:"twoTailed"`
	Better    string  `json:"better"`
}

type report struct {
	Run        string          `json:"run"`
	First      output.Summary  `json:"first"`
	Second     *output.Summary `json:"second,omitempty"`
	Comparison *comparison     `json:"comparison,omitempty"`
}

func loadParameter(path, algorithm string) (parameter.Parameter, error) {
	if len(path) == 0 {
		return parameter.Load(properties.NewProperties(), algorithm)
	}
	return parameter.LoadFile(path, algorithm)
}

func newExperiment(args args, algorithm, config string, logger *zap.SugaredLogger, data *instance.List) (experiment.Experiment, error) {
	c, err := cmd.NewClassifier(algorithm, args.Workers)
	if err != nil {
		return experiment.Experiment{}, err
	}
	p, err := loadParameter(config, algorithm)
	if err != nil {
		return experiment.Experiment{}, err
	}
	options := []experiment.Option{experiment.WithLogger(logger.With("algorithm", algorithm))}
	if args.Progress {
		options = append(options, experiment.WithProgress(os.Stderr))
	}
	return experiment.NewExperiment(c, p, data, options...), nil
}

func summarise(e experiment.Experiment, algorithm string, ep *performance.ExperimentPerformance) output.Summary {
	return output.Summarise(algorithm, e.ID().String(), ep)
}

func evaluate(ctx context.Context, args args, logger *zap.SugaredLogger) (report, error) {
	data, err := cmd.LoadCSVFile(args.Data, args.Label, args.Header)
	if err != nil {
		return report{}, err
	}
	logger.Infow("loaded data set", "path", args.Data, "instances", data.Size(), "classes", data.ClassLabels())

	run, err := cmd.NewRun(args.Run, args.Repetitions, args.K, args.OutOfBag, args.AdvanceSeed)
	if err != nil {
		return report{}, err
	}
	first, err := newExperiment(args, args.Algorithm, args.Config, logger, data)
	if err != nil {
		return report{}, err
	}

	if len(args.Compare) == 0 {
		ep, err := run.Execute(ctx, first)
		if err != nil {
			return report{}, err
		}
		return report{Run: args.Run, First: summarise(first, args.Algorithm, ep)}, nil
	}

	test, err := cmd.NewPairedTest(args.Test)
	if err != nil {
		return report{}, err
	}
	second, err := newExperiment(args, args.Compare, args.CompareConfig, logger, data)
	if err != nil {
		return report{}, err
	}
	c, err := classy.Compare(ctx, run, test, first, second)
	if err != nil {
		return report{}, err
	}

	secondSummary := summarise(second, args.Compare, c.Second)
	better := args.Compare
	if c.First.IsBetter(c.Second) {
		better = args.Algorithm
	}
	return report{
		Run:    args.Run,
		First:  summarise(first, args.Algorithm, c.First),
		Second: &secondSummary,
		Comparison: &comparison{
			Test:      args.Test,
			PValue:    c.Result.PValue,
			Alpha:     args.Alpha,
			OneTailed: c.Result.OneTailed(args.Alpha).String(),
			TwoTailed: c.Result.TwoTailed(args.Alpha).String(),
			Better:    better,
		},
	}, nil
}

func main() {
	args := args{
		Label:       -1,
		Algorithm:   parameter.LinearPerceptronAlgorithm,
		Run:         cmd.KFoldRun,
		Repetitions: 10,
		K:           10,
		Test:        cmd.PairedT,
		Alpha:       0.05,
		LogLevel:    "info",
		Format:      "json",
	}
	p := arg.MustParse(&args)
	if args.Format != "json" && args.Format != "csv" {
		p.Fail("format must be json or csv")
	}

	level, err := logging.ParseLevel(args.LogLevel)
	if err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
	lc := logging.DefaultConfig(os.Stderr)
	lc.Level = level
	lc.Path = args.LogFile
	logger, err := logging.NewSugaredLogger(name, lc)
	if err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r, err := evaluate(ctx, args, logger)
	if err != nil {
		logger.Errorw("evaluation failed", "error", err)
		printError(os.Stderr, err)
		logger.Sync()
		os.Exit(1)
	}

	if err := write(os.Stdout, r, args.Format); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError writes the error and its stack trace to w.
func printError(w io.Writer, err error) {
	fmt.Fprintln(w, errors.Wrap(err, 0).ErrorStack())
}

// write prints the report as JSON, or the per-repetition error rates as csv.
func write(w io.Writer, r report, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "csv":
		summaries := []output.Summary{r.First}
		if r.Second != nil {
			summaries = append(summaries, *r.Second)
		}
		s, err := output.CsvEvaluationFormatter(summaries...)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, s)
		return err
	}
	return fmt.Errorf("unknown output format %q", format)
}
