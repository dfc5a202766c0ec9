package eta

import "time"

// Sample records the time consumed by a single Update call covering
// Batch iterations.
type Sample struct {
	Elapsed time.Duration
	Batch   int
}

// Log is an append-only, time-ordered record of samples. Each Update
// call on the owning Estimator contributes exactly one entry. A Log is
// owned by one Estimator and shares its single-goroutine contract.
type Log struct {
	samples []Sample
}

func (l *Log) append(s Sample) {
	l.samples = append(l.samples, s)
}

// Len returns the number of recorded samples.
func (l *Log) Len() int {
	return len(l.samples)
}

// Samples returns a copy of the recorded samples in call order.
func (l *Log) Samples() []Sample {
	out := make([]Sample, len(l.samples))
	copy(out, l.samples)
	return out
}

// Elapsed returns the elapsed time of each sample in call order.
func (l *Log) Elapsed() []time.Duration {
	out := make([]time.Duration, len(l.samples))
	for i, s := range l.samples {
		out[i] = s.Elapsed
	}
	return out
}

// Batches returns the batch size of each sample in call order.
func (l *Log) Batches() []int {
	out := make([]int, len(l.samples))
	for i, s := range l.samples {
		out[i] = s.Batch
	}
	return out
}

// PerIteration expands batched samples into per-iteration times in
// seconds: a sample covering n iterations contributes n entries of
// Elapsed/n each, in call order.
func (l *Log) PerIteration() []float64 {
	var out []float64
	for _, s := range l.samples {
		per := s.Elapsed.Seconds() / float64(s.Batch)
		for i := 0; i < s.Batch; i++ {
			out = append(out, per)
		}
	}
	return out
}
