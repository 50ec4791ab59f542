package bench

import (
	"math"
	"testing"
)

func TestComputeStatsBasic(t *testing.T) {
	s := ComputeStats([]int64{10, 20, 30}, 1000)

	if s.First != 10 {
		t.Errorf("First = %d, want 10", s.First)
	}
	if s.Last != 30 {
		t.Errorf("Last = %d, want 30", s.Last)
	}
	if s.Min != 10 {
		t.Errorf("Min = %d, want 10", s.Min)
	}
	if s.Max != 30 {
		t.Errorf("Max = %d, want 30", s.Max)
	}
	if s.Average != 20.0 {
		t.Errorf("Average = %f, want 20.0", s.Average)
	}
	if s.Median != 20.0 {
		t.Errorf("Median = %f, want 20.0", s.Median)
	}
	if s.Timeouts != 0 {
		t.Errorf("Timeouts = %d, want 0", s.Timeouts)
	}
}

func TestComputeStatsTimeouts(t *testing.T) {
	s := ComputeStats([]int64{5, 5, 1000, 1000}, 1000)

	if s.Timeouts != 2 {
		t.Errorf("Timeouts = %d, want 2", s.Timeouts)
	}
	if s.Max != 1000 {
		t.Errorf("Max = %d, want 1000", s.Max)
	}
	// Even count: median is the mean of the two central values
	if s.Median != 502.5 {
		t.Errorf("Median = %f, want 502.5", s.Median)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	s := ComputeStats(nil, 1000)

	if s.First != 0 || s.Last != 0 || s.Min != 0 || s.Max != 0 {
		t.Errorf("expected zero extremes, got %+v", s)
	}
	if s.Average != 0 || s.Median != 0 || s.StdDev != 0 {
		t.Errorf("expected zero aggregates, got %+v", s)
	}
	if s.Timeouts != 0 {
		t.Errorf("Timeouts = %d, want 0", s.Timeouts)
	}
}

func TestComputeStatsFirstLastKeepOccurrenceOrder(t *testing.T) {
	// First/Last come from occurrence order, not the sorted copy
	s := ComputeStats([]int64{500, 10, 900, 42}, 1000)

	if s.First != 500 {
		t.Errorf("First = %d, want 500", s.First)
	}
	if s.Last != 42 {
		t.Errorf("Last = %d, want 42", s.Last)
	}
	if s.Min != 10 {
		t.Errorf("Min = %d, want 10", s.Min)
	}
	if s.Max != 900 {
		t.Errorf("Max = %d, want 900", s.Max)
	}
}

func TestComputeStatsOrderingProperties(t *testing.T) {
	samples := [][]int64{
		{1},
		{3, 1, 4, 1, 5, 9, 2, 6},
		{100, 100, 100},
		{7, 200, 3, 3, 1000, 42, 9},
	}

	for _, in := range samples {
		s := ComputeStats(in, 1000)
		if float64(s.Min) > s.Median || s.Median > float64(s.Max) {
			t.Errorf("samples %v: want min <= median <= max, got %d / %f / %d",
				in, s.Min, s.Median, s.Max)
		}
		if float64(s.Min) > s.Average || s.Average > float64(s.Max) {
			t.Errorf("samples %v: want min <= avg <= max, got %d / %f / %d",
				in, s.Min, s.Average, s.Max)
		}
	}
}

func TestComputeStatsStdDevPopulation(t *testing.T) {
	// Population stddev (divisor n): for [2, 4, 4, 4, 5, 5, 7, 9] it is
	// exactly 2.
	s := ComputeStats([]int64{2, 4, 4, 4, 5, 5, 7, 9}, 1000)
	if math.Abs(s.StdDev-2.0) > 1e-9 {
		t.Errorf("StdDev = %f, want 2.0", s.StdDev)
	}

	// A single sample has zero deviation
	s = ComputeStats([]int64{123}, 1000)
	if s.StdDev != 0 {
		t.Errorf("StdDev = %f, want 0", s.StdDev)
	}
}

func TestComputeStatsMedianOdd(t *testing.T) {
	s := ComputeStats([]int64{9, 1, 5}, 1000)
	if s.Median != 5.0 {
		t.Errorf("Median = %f, want 5.0", s.Median)
	}
}

func TestComputeStatsDoesNotMutateInput(t *testing.T) {
	in := []int64{30, 10, 20}
	_ = ComputeStats(in, 1000)
	if in[0] != 30 || in[1] != 10 || in[2] != 20 {
		t.Errorf("input mutated: %v", in)
	}
}
