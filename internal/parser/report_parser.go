package parser

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// blockMarker opens one array-size block in the report.
const blockMarker = "Array Size:"

// statLineRe extracts the four labeled statistics from one metric line,
// e.g. "Swaps:   Min=12 Max=388 Median=201.50 Avg=199.04". The metric
// label before "Min=" is deliberately not validated; metric identity
// comes from line position within the sub-block.
var statLineRe = regexp.MustCompile(`Min=(-?[0-9.]+)\s+Max=(-?[0-9.]+)\s+Median=(-?[0-9.]+)\s+Avg=(-?[0-9.]+)`)

// ParseResults reads the whole results file into memory and parses it
// into a StatsTable.
func ParseResults(path string) (*StatsTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read results file: %w", err)
	}
	return Parse(string(data))
}

// Parse walks the report text with a forward-only cursor. Each block
// must contain one sub-block per sort name in SortNames order, each
// sub-block one stat line per metric in Metrics order followed by a
// single blank separator line. Lines outside a block (dividers, run
// banners) are skipped. The first structural or pattern mismatch is
// returned as an error naming the offending line; there is no
// partial-result recovery.
func Parse(text string) (*StatsTable, error) {
	lines := strings.Split(text, "\n")
	table := NewStatsTable()

	i := 0
	for i < len(lines) {
		if !strings.HasPrefix(strings.TrimSpace(lines[i]), blockMarker) {
			i++
			continue
		}
		i++
		table.numBlocks++

		for _, sortName := range SortNames {
			want := sortName + " Sort:"
			if i >= len(lines) {
				return nil, fmt.Errorf("unexpected end of input: expected header %q", want)
			}
			header := strings.TrimSpace(lines[i])
			if !strings.HasPrefix(header, want) {
				return nil, fmt.Errorf("line %d: expected %q but got %q", i+1, want, header)
			}
			i++

			for _, metric := range Metrics {
				if i >= len(lines) {
					return nil, fmt.Errorf("unexpected end of input: expected %s line for %s Sort", metric, sortName)
				}
				statLine := strings.TrimSpace(lines[i])
				m := statLineRe.FindStringSubmatch(statLine)
				if m == nil {
					return nil, fmt.Errorf("line %d: could not parse stats from %q", i+1, statLine)
				}
				for k, stat := range StatKinds {
					v, err := strconv.ParseFloat(m[k+1], 64)
					if err != nil {
						return nil, fmt.Errorf("line %d: bad %s value in %q: %w", i+1, stat, statLine, err)
					}
					table.appendValue(metric, stat, sortName, v)
				}
				i++
			}

			// One blank separator line follows each algorithm sub-block.
			i++
		}
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}
