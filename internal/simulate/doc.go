// Package simulate generates deterministic synthetic workloads for
// driving an estimator, either in real time (the pace CLI) or against
// an injected sleep function (tests).
//
// # Usage
//
//	w := simulate.New(100, 10*time.Millisecond)
//	err := w.Run(est, simulate.RunOptions{
//	    Total: 1000,
//	    Batch: 1,
//	    Sleep: time.Sleep,
//	    After: est.ShowProgress,
//	})
//
// Delays are exponentially distributed around the configured mean,
// from a seeded source, so a given seed always produces the same
// sequence.
package simulate
