package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/user/sortbench_report/internal/parser"
)

// ChartFileName is the deterministic file name for a (metric, stat
// kind) chart, e.g. "swaps_min.png".
func ChartFileName(metric, statKind string) string {
	return strings.ToLower(metric) + "_" + strings.ToLower(statKind) + ".png"
}

// WriteAllCharts renders one line chart per (metric, stat kind) pair
// and writes each into outDir, overwriting existing files. One
// confirmation line is printed per chart. The rendered PNG bytes are
// returned keyed by file stem so the PDF generator can embed them
// without re-reading the files. The first error aborts the remaining
// charts; files already written stay on disk.
func WriteAllCharts(table *parser.StatsTable, outDir string) (map[string][]byte, error) {
	images := make(map[string][]byte, len(parser.Metrics)*len(parser.StatKinds))
	for _, metric := range parser.Metrics {
		for _, statKind := range parser.StatKinds {
			img, err := CreateLinePlot(table, metric, statKind)
			if err != nil {
				return nil, err
			}
			name := ChartFileName(metric, statKind)
			path := filepath.Join(outDir, name)
			if err := os.WriteFile(path, img, 0o644); err != nil {
				return nil, fmt.Errorf("failed to write chart: %w", err)
			}
			fmt.Printf("Saved plot: %s\n", path)
			images[strings.TrimSuffix(name, ".png")] = img
		}
	}
	return images, nil
}
