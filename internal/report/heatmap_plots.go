package report

import (
	"bytes"
	"fmt"

	"github.com/user/sortbench_report/internal/parser"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// avgGrid exposes one metric's Avg series as a plotter.GridXYZ:
// columns are array sizes, rows are algorithms in display order.
type avgGrid struct {
	z [][]float64 // [row][col]
}

func (g avgGrid) Dims() (c, r int)   { return len(parser.ArraySizes), len(g.z) }
func (g avgGrid) Z(c, r int) float64 { return g.z[r][c] }
func (g avgGrid) X(c int) float64    { return float64(parser.ArraySizes[c]) }
func (g avgGrid) Y(r int) float64    { return float64(r) }

// CreateHeatmapPlot renders an algorithm-by-size heatmap of the Avg
// statistic for one metric. It is embedded in the PDF report only and
// never written as a standalone chart file.
func CreateHeatmapPlot(table *parser.StatsTable, metric string) ([]byte, error) {
	grid := avgGrid{z: make([][]float64, 0, len(parser.SortNames))}
	for _, sortName := range parser.SortNames {
		series, err := table.Series(metric, "Avg", sortName)
		if err != nil {
			return nil, err
		}
		if len(series) != len(parser.ArraySizes) {
			return nil, fmt.Errorf("%s/Avg/%s: series has %d values for %d array sizes",
				metric, sortName, len(series), len(parser.ArraySizes))
		}
		grid.z = append(grid.z, series)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s (Avg) by Algorithm and Array Size", metric)
	p.X.Label.Text = "Array Size"
	p.Y.Label.Text = "Algorithm"

	hm := plotter.NewHeatMap(grid, palette.Heat(12, 255))
	p.Add(hm)

	yTicks := make([]plot.Tick, len(parser.SortNames))
	for i, name := range parser.SortNames {
		yTicks[i] = plot.Tick{Value: float64(i), Label: name}
	}
	p.Y.Tick.Marker = plot.ConstantTicks(yTicks)
	p.X.Tick.Marker = plot.ConstantTicks(sizeTicks())

	writer, err := p.WriterTo(8*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create heatmap writer: %w", err)
	}
	buf := new(bytes.Buffer)
	if _, err := writer.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to write heatmap to buffer: %w", err)
	}
	return buf.Bytes(), nil
}
