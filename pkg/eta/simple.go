package eta

// SimpleAverage estimates throughput as the cumulative average: total
// iterations over total elapsed time. It weighs the whole run equally,
// so it converges slowly after a change of pace.
//
// Division by zero is not special-cased: with no elapsed time the
// estimate is +Inf (or NaN at 0/0) and flows through ETA and rendering
// as such.
type SimpleAverage struct{}

func (SimpleAverage) IterationsPerSecond(_ *Log, snap Snapshot) float64 {
	return float64(snap.CurrentIter) / snap.TotalElapsed.Seconds()
}
