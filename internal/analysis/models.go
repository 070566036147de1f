package analysis

// AlgorithmRank holds one algorithm's position in a per-metric ranking.
type AlgorithmRank struct {
	SortName string
	// FinalAvg is the Avg statistic at the largest array size.
	FinalAvg float64
	// GrowthFactor is FinalAvg divided by the Avg at the smallest
	// size; NaN when the first value is zero.
	GrowthFactor float64
}

// MetricSummary ranks the algorithms for one metric, best (lowest
// FinalAvg) first.
type MetricSummary struct {
	Metric  string
	Ranking []AlgorithmRank
}

// Summary is the cross-size digest of a parsed report, consumed by the
// PDF generator.
type Summary struct {
	NumBlocks int
	Metrics   []MetricSummary
}
