package simulate

import (
	"errors"
	"math/rand"
	"time"

	"github.com/paceline/pace/pkg/eta"
)

// Workload produces exponentially distributed work-unit delays from a
// seeded source.
type Workload struct {
	rng  *rand.Rand
	mean time.Duration
}

// New creates a Workload with the given seed and mean delay per batch.
func New(seed int64, mean time.Duration) *Workload {
	return &Workload{
		rng:  rand.New(rand.NewSource(seed)),
		mean: mean,
	}
}

// NextDelay returns the next delay in the sequence.
func (w *Workload) NextDelay() time.Duration {
	return time.Duration(w.rng.ExpFloat64() * float64(w.mean))
}

// RunOptions configures a simulated run.
type RunOptions struct {
	// Total is the number of iterations to report.
	Total int

	// Batch is how many iterations each update covers.
	// Default: 1
	Batch int

	// Sleep waits out a generated delay. Tests inject a fake here;
	// the CLI passes time.Sleep.
	Sleep func(time.Duration)

	// After runs after each update, typically the progress display.
	After func()
}

// Run drives est through opts.Total iterations: for each step it
// sleeps a generated delay, reports one batch, and invokes the After
// hook. A final short batch is emitted when Batch does not divide
// Total evenly.
func (w *Workload) Run(est *eta.Estimator, opts RunOptions) error {
	if opts.Total <= 0 {
		return errors.New("simulate: total must be positive")
	}
	if opts.Batch == 0 {
		opts.Batch = 1
	}
	if opts.Batch < 0 {
		return errors.New("simulate: batch must be positive")
	}

	for done := 0; done < opts.Total; {
		batch := opts.Batch
		if remaining := opts.Total - done; batch > remaining {
			batch = remaining
		}

		if opts.Sleep != nil {
			opts.Sleep(w.NextDelay())
		}
		if err := est.Update(batch); err != nil {
			return err
		}
		done += batch

		if opts.After != nil {
			opts.After()
		}
	}
	return nil
}
