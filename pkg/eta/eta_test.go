package eta

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeClock stands in for time.Now so tests advance time explicitly
// instead of sleeping.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func TestNewInitialState(t *testing.T) {
	clk := newFakeClock()
	est, err := New(10, SimpleAverage{}, WithClock(clk.Now))
	require.NoError(t, err)

	require.Equal(t, 0, est.CurrentIter())
	require.Equal(t, 10, est.TotalIters())
	require.True(t, math.IsNaN(est.IterationsPerSecond()))
	require.True(t, math.IsNaN(est.ETA()))
	require.Equal(t, clk.Now(), est.StartTime())
	require.Zero(t, est.TotalElapsed())
	require.Equal(t, 0, est.Log().Len())
}

func TestNewInvalidTotal(t *testing.T) {
	for _, total := range []int{0, -3} {
		_, err := New(total, SimpleAverage{})
		require.ErrorIs(t, err, ErrInvalidArgument, "total=%d", total)
	}
}

func TestNewNilStrategy(t *testing.T) {
	_, err := New(10, nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestUpdateCountersAndLog(t *testing.T) {
	clk := newFakeClock()
	est, err := New(100, SimpleAverage{}, WithClock(clk.Now))
	require.NoError(t, err)

	batches := []int{1, 2, 5}
	sum := 0
	for _, batch := range batches {
		clk.Advance(time.Second)
		require.NoError(t, est.Update(batch))
		sum += batch
		require.Equal(t, sum, est.CurrentIter())
	}

	log := est.Log()
	require.Equal(t, len(batches), log.Len())
	require.Equal(t, batches, log.Batches())
	for i, elapsed := range log.Elapsed() {
		require.Equal(t, time.Second, elapsed, "sample %d", i)
	}
	require.Equal(t, 3*time.Second, est.TotalElapsed())
	require.Equal(t, time.Second, est.LastElapsed())
}

func TestUpdateInvalidBatchLeavesState(t *testing.T) {
	clk := newFakeClock()
	est, err := New(10, SimpleAverage{}, WithClock(clk.Now))
	require.NoError(t, err)

	clk.Advance(time.Second)
	require.NoError(t, est.Update(1))

	before := est.CurrentIter()
	ipsBefore := est.IterationsPerSecond()
	etaBefore := est.ETA()
	logBefore := est.Log().Len()

	clk.Advance(time.Second)
	for _, batch := range []int{0, -1} {
		err := est.Update(batch)
		require.ErrorIs(t, err, ErrInvalidArgument, "batch=%d", batch)
		require.Equal(t, before, est.CurrentIter())
		require.Equal(t, ipsBefore, est.IterationsPerSecond())
		require.Equal(t, etaBefore, est.ETA())
		require.Equal(t, logBefore, est.Log().Len())
	}
}

func TestSimpleAverageExact(t *testing.T) {
	clk := newFakeClock()
	est, err := New(100, SimpleAverage{}, WithClock(clk.Now))
	require.NoError(t, err)

	// 6 iterations over 4 seconds.
	for i := 0; i < 2; i++ {
		clk.Advance(2 * time.Second)
		require.NoError(t, est.Update(3))
	}

	require.Equal(t, 6.0/4.0, est.IterationsPerSecond())
	require.Equal(t, float64(100-6)/(6.0/4.0), est.ETA())
}

func TestSimpleAverageZeroElapsed(t *testing.T) {
	clk := newFakeClock()
	est, err := New(10, SimpleAverage{}, WithClock(clk.Now))
	require.NoError(t, err)

	// No clock movement: 1/0 throughput, and a finite remainder over
	// +Inf is a zero ETA.
	require.NoError(t, est.Update(1))
	require.True(t, math.IsInf(est.IterationsPerSecond(), 1))
	require.Equal(t, 0.0, est.ETA())
}

func TestEndToEndOneIterationPerSecond(t *testing.T) {
	clk := newFakeClock()
	est, err := New(10, SimpleAverage{}, WithClock(clk.Now))
	require.NoError(t, err)

	prevETA := math.Inf(1)
	for i := 1; i <= 10; i++ {
		clk.Advance(time.Second)
		require.NoError(t, est.Update(1))

		require.Equal(t, 1.0, est.IterationsPerSecond(), "after update %d", i)
		require.Equal(t, float64(10-i), est.ETA(), "after update %d", i)
		require.Less(t, est.ETA(), prevETA, "ETA must decrease")
		prevETA = est.ETA()
	}

	require.Equal(t, 10, est.CurrentIter())
	require.Equal(t, 0.0, est.ETA())
}

func TestUpdatePastTotal(t *testing.T) {
	clk := newFakeClock()
	est, err := New(2, SimpleAverage{}, WithClock(clk.Now))
	require.NoError(t, err)

	clk.Advance(time.Second)
	require.NoError(t, est.Update(2))
	clk.Advance(time.Second)
	require.NoError(t, est.Update(2))

	require.Equal(t, 4, est.CurrentIter())
	require.Negative(t, est.ETA())
}
