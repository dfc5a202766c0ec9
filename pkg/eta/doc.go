// Package eta estimates progress and time-remaining for iterative
// processes with a known total iteration count.
//
// An Estimator owns the iteration counters and an append-only log of
// timing samples; a pluggable Strategy turns that history into an
// iterations-per-second estimate, from which the shared ETA formula
// (iterations left / iterations per second) derives time remaining.
// Two strategies are provided: SimpleAverage, the cumulative mean over
// the whole run, and EWMA, an exponentially weighted moving average of
// per-iteration time that favors recent samples.
//
// # Usage
//
//	est, err := eta.New(1000, eta.SimpleAverage{})
//	if err != nil {
//	    return err
//	}
//
//	for i := 0; i < 1000; i++ {
//	    doWork()
//	    est.Update(1)
//	    est.ShowProgress()
//	}
//
// # Output Format
//
//	[=====     ] 500/1000 (50.0%) 95.12 it/s ETA 5.26s
//
// # Degenerate Timing
//
// Zero elapsed time and empty history never produce errors: the
// estimates become Inf or NaN and render as such. Only argument
// contracts are enforced, via ErrInvalidArgument: totals and batches
// must be positive, alpha in [0, 1], the EWMA prior positive.
//
// An Estimator belongs to one goroutine; it is not safe for concurrent
// use.
package eta
