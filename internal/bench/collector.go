package bench

// Collector accumulates execution results per distinct query text across
// one database's benchmarking pass. Queries are bucketed by exact text, so
// two textually identical queries share one statistic bucket.
type Collector struct {
	thresholdMS int64
	buckets     map[string]*bucket
}

type bucket struct {
	samples  []int64
	rows     int64
	rowsSeen bool
}

// NewCollector creates a collector. thresholdMS is the timeout threshold
// applied when deriving statistics.
func NewCollector(thresholdMS int64) *Collector {
	return &Collector{
		thresholdMS: thresholdMS,
		buckets:     make(map[string]*bucket),
	}
}

// Record appends the result's elapsed time to the query's sample sequence
// in call order. The row count is stored the first time a non-timeout
// result is recorded and never overwritten afterwards.
func (c *Collector) Record(query string, res ExecutionResult) {
	b := c.buckets[query]
	if b == nil {
		b = &bucket{}
		c.buckets[query] = b
	}
	b.samples = append(b.samples, res.ElapsedMS)
	if !res.TimedOut && !b.rowsSeen {
		b.rows = res.Rows
		b.rowsSeen = true
	}
}

// StatsFor computes statistics fresh on each call from the accumulated
// sample sequence. Unknown queries yield all-zero stats.
func (c *Collector) StatsFor(query string) Stats {
	b := c.buckets[query]
	if b == nil {
		return ComputeStats(nil, c.thresholdMS)
	}
	return ComputeStats(b.samples, c.thresholdMS)
}

// RowsFor returns the first-observed row count for the query, if any
// non-timeout run completed.
func (c *Collector) RowsFor(query string) (int64, bool) {
	b := c.buckets[query]
	if b == nil || !b.rowsSeen {
		return 0, false
	}
	return b.rows, true
}

// Samples returns the number of recorded samples for a query.
func (c *Collector) Samples(query string) int {
	b := c.buckets[query]
	if b == nil {
		return 0
	}
	return len(b.samples)
}
