package bench

import (
	"math"
	"sort"
)

// Stats is the derived summary of one query's accumulated elapsed-time
// samples. First and Last preserve occurrence order; Min, Max, and Median
// come from a sorted copy. All fields are exactly 0 for an empty sequence.
type Stats struct {
	First    int64   `json:"first_ms"`
	Last     int64   `json:"last_ms"`
	Min      int64   `json:"min_ms"`
	Max      int64   `json:"max_ms"`
	Average  float64 `json:"avg_ms"`
	Median   float64 `json:"median_ms"`
	StdDev   float64 `json:"std_dev_ms"`
	Timeouts int     `json:"timeouts"`
}

// ComputeStats aggregates samples (elapsed ms, in execution order) against
// a timeout threshold. Samples at or above the threshold count as timeouts;
// true timeouts are encoded as exactly thresholdMS by the executor, so they
// are always caught.
func ComputeStats(samples []int64, thresholdMS int64) Stats {
	var s Stats
	for _, v := range samples {
		if v >= thresholdMS {
			s.Timeouts++
		}
	}
	if len(samples) == 0 {
		return s
	}

	s.First = samples[0]
	s.Last = samples[len(samples)-1]

	sorted := make([]int64, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]

	var sum int64
	for _, v := range samples {
		sum += v
	}
	s.Average = float64(sum) / float64(len(samples))

	n := len(sorted)
	if n%2 == 1 {
		s.Median = float64(sorted[n/2])
	} else {
		s.Median = (float64(sorted[n/2-1]) + float64(sorted[n/2])) / 2.0
	}

	// Population standard deviation (divisor n)
	var ss float64
	for _, v := range samples {
		d := float64(v) - s.Average
		ss += d * d
	}
	s.StdDev = math.Sqrt(ss / float64(len(samples)))

	return s
}
