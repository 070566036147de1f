package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// statValue is the value the sample report carries for a given
// position, so tests can assert exact table contents.
func statValue(metricIdx, statIdx, sortIdx, blockIdx int) float64 {
	return float64(1000*metricIdx + 100*sortIdx + 10*statIdx + blockIdx)
}

// sampleReport builds a well-formed report in the emitter's format:
// marker line, per-algorithm header, three stat lines, one blank line
// per sub-block and a divider between blocks.
func sampleReport(blocks int) string {
	var b strings.Builder
	for k := 0; k < blocks; k++ {
		fmt.Fprintf(&b, "Array Size: %d\n", 100*(k+1))
		for si, name := range SortNames {
			fmt.Fprintf(&b, "%s Sort:\n", name)
			for mi, metric := range Metrics {
				fmt.Fprintf(&b, "%s:   Min=%.2f Max=%.2f Median=%.2f Avg=%.2f\n",
					metric,
					statValue(mi, 0, si, k),
					statValue(mi, 1, si, k),
					statValue(mi, 2, si, k),
					statValue(mi, 3, si, k))
			}
			b.WriteString("\n")
		}
		b.WriteString("-------------------------------\n")
	}
	return b.String()
}

func TestParseResultsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleReport(2)), 0o644))

	table, err := ParseResults(path)
	require.NoError(t, err)
	assert.Equal(t, 2, table.NumBlocks())

	values, err := table.Series("Swaps", "Min", "Bubble")
	require.NoError(t, err)
	assert.Equal(t, []float64{statValue(0, 0, 0, 0), statValue(0, 0, 0, 1)}, values)
}

func TestParseResultsMissingFile(t *testing.T) {
	_, err := ParseResults(filepath.Join(t.TempDir(), "no_such_results.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read results file")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseSingleBlock(t *testing.T) {
	table, err := Parse(sampleReport(1))
	require.NoError(t, err)
	require.Equal(t, 1, table.NumBlocks())

	for mi, metric := range Metrics {
		for sti, stat := range StatKinds {
			for si, name := range SortNames {
				values, err := table.Series(metric, stat, name)
				require.NoError(t, err)
				require.Len(t, values, 1, "%s/%s/%s", metric, stat, name)
				assert.Equal(t, statValue(mi, sti, si, 0), values[0])
			}
		}
	}
}

func TestParseTenBlocksInBlockOrder(t *testing.T) {
	table, err := Parse(sampleReport(10))
	require.NoError(t, err)
	require.Equal(t, 10, table.NumBlocks())
	require.NoError(t, table.Validate())

	values, err := table.Series("Cycles", "Avg", "Heap")
	require.NoError(t, err)
	require.Len(t, values, 10)
	for k := 0; k < 10; k++ {
		assert.Equal(t, statValue(2, 3, 3, k), values[k], "block %d", k)
	}
}

func TestParseIsDeterministic(t *testing.T) {
	text := sampleReport(10)
	first, err := Parse(text)
	require.NoError(t, err)
	second, err := Parse(text)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParseSkipsUnrelatedLines(t *testing.T) {
	text := "benchmark run of 2024-11-03\n\n" + sampleReport(2) + "\nall done\n"
	table, err := Parse(text)
	require.NoError(t, err)
	assert.Equal(t, 2, table.NumBlocks())
}

func TestParseWrongCaseHeader(t *testing.T) {
	text := strings.Replace(sampleReport(1), "Bubble Sort:", "Bubble sort:", 1)
	_, err := Parse(text)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Bubble Sort:"`)
	assert.Contains(t, err.Error(), `"Bubble sort:"`)
}

func TestParseMissingAvgField(t *testing.T) {
	bad := "Swaps:   Min=1.00 Max=2.00 Median=1.50"
	text := strings.Replace(sampleReport(1),
		fmt.Sprintf("Swaps:   Min=%.2f Max=%.2f Median=%.2f Avg=%.2f",
			statValue(0, 0, 0, 0), statValue(0, 1, 0, 0), statValue(0, 2, 0, 0), statValue(0, 3, 0, 0)),
		bad, 1)
	_, err := Parse(text)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)
}

func TestParseTruncatedBlock(t *testing.T) {
	_, err := Parse("Array Size: 100")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end of input")
	assert.Contains(t, err.Error(), "Bubble Sort:")

	// Cutting mid sub-block reports the line that failed to match.
	text := sampleReport(1)
	idx := strings.Index(text, "Quick Sort:")
	require.Greater(t, idx, 0)
	_, err = Parse(text[:idx])
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Quick Sort:"`)
}

func TestParseMalformedNumber(t *testing.T) {
	text := strings.Replace(sampleReport(1), "Min=0.00", "Min=0..0", 1)
	_, err := Parse(text)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Min")
}

func TestSeriesUnknownNames(t *testing.T) {
	table := NewStatsTable()

	_, err := table.Series("Latency", "Avg", "Heap")
	assert.ErrorContains(t, err, `unknown metric "Latency"`)
	_, err = table.Series("Swaps", "P99", "Heap")
	assert.ErrorContains(t, err, `unknown stat kind "P99"`)
	_, err = table.Series("Swaps", "Avg", "Bogo")
	assert.ErrorContains(t, err, `unknown sort name "Bogo"`)
}

func TestValidateDetectsShortSeries(t *testing.T) {
	table := NewStatsTable()
	table.numBlocks = 2
	table.appendValue("Swaps", "Min", "Bubble", 1)

	err := table.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Swaps/Min/Bubble")
}
