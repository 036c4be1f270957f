package conformance

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/wippyai/valuebridge/errors"
)

// Status is the outcome of one scenario.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusSkip Status = "skip"
)

// Result records one scenario run.
type Result struct {
	Err      error
	Name     string
	Status   Status
	Duration time.Duration
}

// Suite is the outcome of running scenarios against one target.
type Suite struct {
	Timestamp time.Time
	Name      string
	Results   []Result
}

// Failures counts failed scenarios.
func (s *Suite) Failures() int {
	n := 0
	for _, r := range s.Results {
		if r.Status == StatusFail {
			n++
		}
	}
	return n
}

// Skipped counts skipped scenarios.
func (s *Suite) Skipped() int {
	n := 0
	for _, r := range s.Results {
		if r.Status == StatusSkip {
			n++
		}
	}
	return n
}

// Run executes each scenario against a fresh target from factory.
// Scenarios failing with errors.ErrUnsupported are skipped.
func Run[V any](factory Factory[V], scenarios []Scenario[V]) *Suite {
	suite := &Suite{Timestamp: time.Now()}
	log := Logger()

	for _, sc := range scenarios {
		start := time.Now()
		name, err := runOne(factory, sc)
		if suite.Name == "" {
			suite.Name = name
		}

		r := Result{Name: sc.Name, Err: err, Duration: time.Since(start)}
		switch {
		case err == nil:
			r.Status = StatusPass
		case errors.Is(err, errors.ErrUnsupported):
			r.Status = StatusSkip
		default:
			r.Status = StatusFail
		}
		suite.Results = append(suite.Results, r)

		log.Debug("scenario finished",
			zap.String("scenario", sc.Name),
			zap.String("status", string(r.Status)),
			zap.Duration("duration", r.Duration),
			zap.Error(err))
	}

	log.Info("suite finished",
		zap.String("suite", suite.Name),
		zap.Int("tests", len(suite.Results)),
		zap.Int("failures", suite.Failures()),
		zap.Int("skipped", suite.Skipped()))
	return suite
}

func runOne[V any](factory Factory[V], sc Scenario[V]) (name string, err error) {
	t, err := factory()
	if err != nil {
		return "", err
	}
	if t.Close != nil {
		defer t.Close()
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return t.Name, sc.Run(t)
}
