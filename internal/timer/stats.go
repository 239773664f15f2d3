package timer

import (
	"slices"
	"time"

	"github.com/samber/lo"
)

// Stats summarises a session. Results are ordered oldest first.
type Stats struct {
	Count    int
	Finished int
	Best     time.Duration // DNFDuration when nothing finished
	Worst    time.Duration
	Mean     time.Duration // mean of finished solves
	Ao5      time.Duration // current average of 5, zero when unavailable
	Ao12     time.Duration
	BestAo5  time.Duration
	BestAo12 time.Duration
}

// Summarize computes session statistics.
func Summarize(results []Result) Stats {
	st := Stats{Count: len(results)}
	if len(results) == 0 {
		return st
	}

	st.Best, _ = Best(results)
	st.Worst, _ = Worst(results)
	st.Mean, _ = Mean(results)
	st.Finished = len(results) - lo.CountBy(results, Result.DNF)
	st.Ao5, _ = AverageOf(results, 5)
	st.Ao12, _ = AverageOf(results, 12)
	st.BestAo5, _ = BestAverageOf(results, 5)
	st.BestAo12, _ = BestAverageOf(results, 12)
	return st
}

func effectives(results []Result) []time.Duration {
	return lo.Map(results, func(r Result, _ int) time.Duration {
		return r.Effective()
	})
}

// Best returns the fastest effective time.
func Best(results []Result) (time.Duration, bool) {
	if len(results) == 0 {
		return 0, false
	}
	return lo.Min(effectives(results)), true
}

// Worst returns the slowest effective time; a DNF is the worst possible.
func Worst(results []Result) (time.Duration, bool) {
	if len(results) == 0 {
		return 0, false
	}
	return lo.Max(effectives(results)), true
}

// Mean returns the mean of the finished solves, ignoring DNFs.
func Mean(results []Result) (time.Duration, bool) {
	finished := lo.Reject(results, func(r Result, _ int) bool {
		return r.DNF()
	})
	if len(finished) == 0 {
		return 0, false
	}
	return lo.Sum(effectives(finished)) / time.Duration(len(finished)), true
}

// trimCount returns how many results an average of n drops from each end:
// 5% rounded up, at least one.
func trimCount(n int) int {
	return max(1, (n+19)/20)
}

// average computes the WCA trimmed average of window. More DNFs than the
// trimmed count make the average a DNF.
func average(window []Result) time.Duration {
	trim := trimCount(len(window))
	if lo.CountBy(window, Result.DNF) > trim {
		return DNFDuration
	}

	times := effectives(window)
	slices.Sort(times)
	kept := times[trim : len(times)-trim]
	return lo.Sum(kept) / time.Duration(len(kept))
}

// AverageOf returns the trimmed average of the last n results. n must be at
// least 3 and there must be n results.
func AverageOf(results []Result, n int) (time.Duration, bool) {
	if n < 3 || len(results) < n {
		return 0, false
	}
	return average(results[len(results)-n:]), true
}

// BestAverageOf returns the best trimmed average over every window of n
// consecutive results.
func BestAverageOf(results []Result, n int) (time.Duration, bool) {
	if n < 3 || len(results) < n {
		return 0, false
	}

	best := DNFDuration
	for i := 0; i+n <= len(results); i++ {
		best = min(best, average(results[i:i+n]))
	}
	return best, true
}
