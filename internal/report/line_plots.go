package report

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/user/sortbench_report/internal/parser"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// plotColors is the fixed series palette; index matches the position of
// the algorithm in parser.SortNames.
var plotColors = []color.Color{
	color.RGBA{R: 214, G: 39, B: 40, A: 255},  // Red
	color.RGBA{R: 44, G: 160, B: 44, A: 255},  // Green
	color.RGBA{R: 31, G: 119, B: 180, A: 255}, // Blue
	color.RGBA{R: 255, G: 127, B: 14, A: 255}, // Orange
}

// CreateLinePlot renders one chart for a (metric, stat kind) pair: one
// line-with-markers series per algorithm, x axis fixed to ArraySizes.
// A series whose length does not match the size sequence is an error.
func CreateLinePlot(table *parser.StatsTable, metric, statKind string) ([]byte, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s %s vs Array Size", metric, statKind)
	p.X.Label.Text = "Array Size"
	p.Y.Label.Text = fmt.Sprintf("%s (%s)", metric, statKind)
	p.X.Tick.Marker = plot.ConstantTicks(sizeTicks())
	p.Add(plotter.NewGrid())

	for ci, sortName := range parser.SortNames {
		series, err := table.Series(metric, statKind, sortName)
		if err != nil {
			return nil, err
		}
		if len(series) != len(parser.ArraySizes) {
			return nil, fmt.Errorf("%s/%s/%s: series has %d values for %d array sizes",
				metric, statKind, sortName, len(series), len(parser.ArraySizes))
		}

		pts := make(plotter.XYs, len(series))
		for i, v := range series {
			pts[i] = plotter.XY{X: float64(parser.ArraySizes[i]), Y: v}
		}

		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return nil, fmt.Errorf("failed to create line for %s Sort: %w", sortName, err)
		}
		c := plotColors[ci%len(plotColors)]
		line.Color = c
		line.LineStyle.Width = vg.Points(1.5)
		points.Color = c

		p.Add(line, points)
		p.Legend.Add(sortName, line, points)
	}

	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.XOffs = vg.Points(10)

	writer, err := p.WriterTo(8*vg.Inch, 5*vg.Inch, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create plot writer: %w", err)
	}
	buf := new(bytes.Buffer)
	if _, err := writer.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to write plot to buffer: %w", err)
	}
	return buf.Bytes(), nil
}

func sizeTicks() []plot.Tick {
	ticks := make([]plot.Tick, len(parser.ArraySizes))
	for i, size := range parser.ArraySizes {
		ticks[i] = plot.Tick{Value: float64(size), Label: fmt.Sprintf("%d", size)}
	}
	return ticks
}
