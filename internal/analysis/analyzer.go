package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/user/sortbench_report/internal/parser"
)

// Summarize digests a parsed statistics table into per-metric rankings
// and growth factors. Only the Avg statistic feeds the summary; the
// per-stat detail stays in the charts.
func Summarize(table *parser.StatsTable) (*Summary, error) {
	if table == nil || table.NumBlocks() == 0 {
		return nil, fmt.Errorf("no parsed blocks to summarize")
	}

	summary := &Summary{NumBlocks: table.NumBlocks()}
	for _, metric := range parser.Metrics {
		ms := MetricSummary{Metric: metric}
		for _, sortName := range parser.SortNames {
			series, err := table.Series(metric, "Avg", sortName)
			if err != nil {
				return nil, err
			}
			if len(series) == 0 {
				return nil, fmt.Errorf("empty %s/Avg series for %s Sort", metric, sortName)
			}
			first, last := series[0], series[len(series)-1]
			growth := math.NaN()
			if first != 0 {
				growth = last / first
			}
			ms.Ranking = append(ms.Ranking, AlgorithmRank{
				SortName:     sortName,
				FinalAvg:     last,
				GrowthFactor: growth,
			})
		}
		// Stable sort keeps the fixed display order for ties.
		sort.SliceStable(ms.Ranking, func(i, j int) bool {
			return ms.Ranking[i].FinalAvg < ms.Ranking[j].FinalAvg
		})
		summary.Metrics = append(summary.Metrics, ms)
	}
	return summary, nil
}
