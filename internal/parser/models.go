package parser

import "fmt"

// Fixed vocabulary of the benchmark report. The input format, the chart
// set and the legend order are all derived from these lists, so order
// matters everywhere they are used.
var (
	SortNames = []string{"Bubble", "Merge", "Quick", "Heap"}
	Metrics   = []string{"Swaps", "Comps", "Cycles"}
	StatKinds = []string{"Min", "Max", "Median", "Avg"}
)

// ArraySizes is the x-axis of every chart. The report is assumed to
// contain one block per size, in this order. The parser does not read
// the size value back out of the "Array Size:" marker, so a report
// whose sizes diverge from this sequence is charted against the wrong
// x values.
var ArraySizes = []int{100, 200, 300, 400, 500, 600, 700, 800, 900, 1000}

// StatsTable holds one value series per (metric, stat kind, algorithm)
// triple: metric -> stat kind -> sort name -> values in block order.
// It is built once by the parser and read-only afterwards.
type StatsTable struct {
	series    map[string]map[string]map[string][]float64
	numBlocks int
}

// NewStatsTable returns a table with an empty series pre-created for
// every combination of the fixed name lists.
func NewStatsTable() *StatsTable {
	t := &StatsTable{
		series: make(map[string]map[string]map[string][]float64, len(Metrics)),
	}
	for _, metric := range Metrics {
		t.series[metric] = make(map[string]map[string][]float64, len(StatKinds))
		for _, stat := range StatKinds {
			t.series[metric][stat] = make(map[string][]float64, len(SortNames))
			for _, name := range SortNames {
				t.series[metric][stat][name] = make([]float64, 0, len(ArraySizes))
			}
		}
	}
	return t
}

// Series returns the values for one (metric, stat kind, algorithm)
// triple, in block order. Unknown names are an error rather than a nil
// map read.
func (t *StatsTable) Series(metric, statKind, sortName string) ([]float64, error) {
	byStat, ok := t.series[metric]
	if !ok {
		return nil, fmt.Errorf("unknown metric %q", metric)
	}
	bySort, ok := byStat[statKind]
	if !ok {
		return nil, fmt.Errorf("unknown stat kind %q", statKind)
	}
	values, ok := bySort[sortName]
	if !ok {
		return nil, fmt.Errorf("unknown sort name %q", sortName)
	}
	return values, nil
}

// NumBlocks reports how many array-size blocks were parsed.
func (t *StatsTable) NumBlocks() int {
	return t.numBlocks
}

// Validate checks the central table invariant: every series carries
// exactly one value per parsed block.
func (t *StatsTable) Validate() error {
	for _, metric := range Metrics {
		for _, stat := range StatKinds {
			for _, name := range SortNames {
				values := t.series[metric][stat][name]
				if len(values) != t.numBlocks {
					return fmt.Errorf("series %s/%s/%s has %d values, expected one per block (%d)",
						metric, stat, name, len(values), t.numBlocks)
				}
			}
		}
	}
	return nil
}

func (t *StatsTable) appendValue(metric, statKind, sortName string, v float64) {
	t.series[metric][statKind][sortName] = append(t.series[metric][statKind][sortName], v)
}
