package eta

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"
)

// ErrInvalidArgument is returned when a constructor or Update receives
// an argument outside its documented domain.
var ErrInvalidArgument = errors.New("invalid argument")

// Snapshot is the read-only counter state handed to a Strategy along
// with the sample log.
type Snapshot struct {
	CurrentIter  int
	TotalIters   int
	LastElapsed  time.Duration
	TotalElapsed time.Duration
}

// Strategy computes the current throughput estimate, in iterations per
// second, from the sample history and counters. Implementations may
// return Inf or NaN for degenerate input (zero elapsed time, empty
// history); callers must tolerate both.
type Strategy interface {
	IterationsPerSecond(log *Log, snap Snapshot) float64
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithClock replaces the wall-clock source. Tests use this to drive
// the estimator deterministically instead of sleeping.
func WithClock(now func() time.Time) Option {
	return func(e *Estimator) {
		e.now = now
	}
}

// WithOutput sets where ShowProgress writes.
// Default: os.Stdout
func WithOutput(w io.Writer) Option {
	return func(e *Estimator) {
		e.out = w
	}
}

// WithRenderOptions sets the options ShowProgress renders with.
func WithRenderOptions(opts RenderOptions) Option {
	return func(e *Estimator) {
		e.renderOpts = opts
	}
}

// Estimator tracks iteration progress and produces throughput and ETA
// estimates via a pluggable Strategy.
//
// An Estimator is owned by a single goroutine; concurrent updates need
// external synchronization.
type Estimator struct {
	strategy   Strategy
	now        func() time.Time
	out        io.Writer
	renderOpts RenderOptions

	currentIter int
	totalIters  int

	startTime    time.Time
	lastUpdate   time.Time
	lastElapsed  time.Duration
	totalElapsed time.Duration

	itersPerSecond float64
	eta            float64

	log Log
}

// New creates an Estimator for totalIters iterations. The clock is
// read once to capture the start time.
func New(totalIters int, strategy Strategy, opts ...Option) (*Estimator, error) {
	if totalIters <= 0 {
		return nil, fmt.Errorf("%w: total iterations must be positive, got %d", ErrInvalidArgument, totalIters)
	}
	if strategy == nil {
		return nil, fmt.Errorf("%w: strategy must not be nil", ErrInvalidArgument)
	}

	e := &Estimator{
		strategy:       strategy,
		now:            time.Now,
		out:            os.Stdout,
		totalIters:     totalIters,
		itersPerSecond: math.NaN(),
		eta:            math.NaN(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.startTime = e.now()
	e.lastUpdate = e.startTime
	return e, nil
}

// Update records that batch iterations completed since the previous
// call (or since construction) and recomputes throughput and ETA. An
// invalid batch leaves all state untouched.
//
// The iteration counter is allowed to overshoot the total; the ETA
// simply goes negative.
func (e *Estimator) Update(batch int) error {
	if batch <= 0 {
		return fmt.Errorf("%w: batch must be positive, got %d", ErrInvalidArgument, batch)
	}

	now := e.now()
	e.lastElapsed = now.Sub(e.lastUpdate)
	e.lastUpdate = now
	e.totalElapsed = now.Sub(e.startTime)
	e.currentIter += batch

	e.log.append(Sample{Elapsed: e.lastElapsed, Batch: batch})

	e.itersPerSecond = e.strategy.IterationsPerSecond(&e.log, e.snapshot())
	e.eta = float64(e.totalIters-e.currentIter) / e.itersPerSecond
	return nil
}

func (e *Estimator) snapshot() Snapshot {
	return Snapshot{
		CurrentIter:  e.currentIter,
		TotalIters:   e.totalIters,
		LastElapsed:  e.lastElapsed,
		TotalElapsed: e.totalElapsed,
	}
}

// CurrentIter returns the number of iterations reported so far.
func (e *Estimator) CurrentIter() int {
	return e.currentIter
}

// TotalIters returns the total iteration count fixed at construction.
func (e *Estimator) TotalIters() int {
	return e.totalIters
}

// IterationsPerSecond returns the throughput computed by the last
// Update, or NaN before the first one.
func (e *Estimator) IterationsPerSecond() float64 {
	return e.itersPerSecond
}

// ETA returns the estimated seconds remaining as of the last Update,
// or NaN before the first one. It can be negative after overshooting
// the total and infinite at zero throughput.
func (e *Estimator) ETA() float64 {
	return e.eta
}

// StartTime returns the clock reading captured at construction.
func (e *Estimator) StartTime() time.Time {
	return e.startTime
}

// LastElapsed returns the time between the two most recent updates.
func (e *Estimator) LastElapsed() time.Duration {
	return e.lastElapsed
}

// TotalElapsed returns the time between construction and the most
// recent update.
func (e *Estimator) TotalElapsed() time.Duration {
	return e.totalElapsed
}

// Log returns the sample history. The log remains owned by the
// Estimator; strategies and callers read it through its accessors.
func (e *Estimator) Log() *Log {
	return &e.log
}
