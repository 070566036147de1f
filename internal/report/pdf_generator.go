package report

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/user/sortbench_report/internal/analysis"
	"github.com/user/sortbench_report/internal/parser"
)

const (
	inchToMm               = 25.4
	pdfPageWidthLandscape  = 11 * inchToMm // Letter landscape
	pdfPageHeightLandscape = 8.5 * inchToMm
	pdfMargin              = 0.5 * inchToMm
	pdfContentWidth        = pdfPageWidthLandscape - (2 * pdfMargin)
)

// pdfStyler holds reusable styling and flowing-content state.
type pdfStyler struct {
	pdf         *gofpdf.Fpdf
	styles      map[string]func()
	lineHeight  float64
	currentY    float64
	pageHeight  float64
	contentTopY float64
}

func newPDFStyler(pdf *gofpdf.Fpdf) *pdfStyler {
	s := &pdfStyler{
		pdf:         pdf,
		styles:      make(map[string]func()),
		lineHeight:  6,
		pageHeight:  pdfPageHeightLandscape - (2 * pdfMargin),
		contentTopY: pdfMargin,
	}
	s.currentY = s.contentTopY
	s.defineStyles()
	return s
}

func (s *pdfStyler) defineStyles() {
	s.styles["h1"] = func() {
		s.pdf.SetFont("Arial", "B", 16)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["h2"] = func() {
		s.pdf.SetFont("Arial", "B", 14)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["normal"] = func() {
		s.pdf.SetFont("Arial", "", 10)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableHeader"] = func() {
		s.pdf.SetFont("Arial", "B", 9)
		s.pdf.SetFillColor(200, 200, 200)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableCell"] = func() {
		s.pdf.SetFont("Arial", "", 9)
		s.pdf.SetTextColor(50, 50, 50)
	}
}

func (s *pdfStyler) applyStyle(styleName string) {
	if fn, ok := s.styles[styleName]; ok {
		fn()
	} else {
		s.styles["normal"]()
	}
}

func (s *pdfStyler) checkAddPage(neededHeight float64) {
	if s.currentY+neededHeight > s.pageHeight {
		s.pdf.AddPage()
		s.currentY = s.contentTopY
	}
}

func (s *pdfStyler) newPage() {
	s.pdf.AddPage()
	s.currentY = s.contentTopY
}

func (s *pdfStyler) writeParagraph(text string, styleName string, align string) {
	s.applyStyle(styleName)
	s.checkAddPage(s.lineHeight * 2)
	s.pdf.SetXY(pdfMargin, s.currentY)
	s.pdf.MultiCell(pdfContentWidth, s.lineHeight, text, "", align, false)
	s.currentY = s.pdf.GetY() + 1
}

func (s *pdfStyler) addSpacer(height float64) {
	s.checkAddPage(height)
	s.currentY += height
}

func (s *pdfStyler) addImage(imageBytes []byte, imageName string, width, height float64, caption string) {
	s.pdf.RegisterImageReader(imageName, "PNG", bytes.NewReader(imageBytes))

	if width > pdfContentWidth {
		ratio := pdfContentWidth / width
		width = pdfContentWidth
		height *= ratio
	}

	captionHeight := 0.0
	if caption != "" {
		captionHeight = s.lineHeight + 1
	}
	s.checkAddPage(height + captionHeight)

	s.pdf.Image(imageName, pdfMargin, s.currentY, width, height, false, "PNG", 0, "")
	s.currentY += height

	if caption != "" {
		s.addSpacer(1)
		s.writeParagraph(caption, "normal", "C")
	}
	s.addSpacer(2)
}

// writeTable emits one header row plus data rows as bordered, centered
// cells, breaking pages per row when needed.
func (s *pdfStyler) writeTable(headers []string, colWidthsRel []float64, rows [][]string) {
	colWidthsAbs := make([]float64, len(colWidthsRel))
	for i, rel := range colWidthsRel {
		colWidthsAbs[i] = rel * pdfContentWidth
	}

	s.checkAddPage(s.lineHeight * float64(len(rows)+1))

	sY := s.currentY
	sX := pdfMargin
	s.applyStyle("tableHeader")
	for i, header := range headers {
		s.pdf.SetXY(sX, sY)
		s.pdf.CellFormat(colWidthsAbs[i], s.lineHeight, header, "1", 0, "C", true, 0, "")
		sX += colWidthsAbs[i]
	}
	sY += s.lineHeight
	s.currentY = sY

	s.applyStyle("tableCell")
	for _, row := range rows {
		s.checkAddPage(s.lineHeight)
		sY = s.currentY
		sX = pdfMargin
		for i, cell := range row {
			s.pdf.SetXY(sX, sY)
			s.pdf.CellFormat(colWidthsAbs[i], s.lineHeight, cell, "1", 0, "C", false, 0, "")
			sX += colWidthsAbs[i]
		}
		sY += s.lineHeight
		s.currentY = sY
	}
}

// BuildPDFReport composes the full benchmark report: a summary section
// with per-metric rankings, then every line chart and heatmap.
// plotImages is keyed by chart file stem (e.g. "swaps_min") plus
// "<metric>_heatmap" entries.
func BuildPDFReport(path string, summary *analysis.Summary, plotImages map[string][]byte) error {
	if summary == nil || len(summary.Metrics) == 0 {
		return fmt.Errorf("no summary to report")
	}

	pdf := gofpdf.New("L", "mm", "Letter", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.AddPage()

	styler := newPDFStyler(pdf)

	smallest := parser.ArraySizes[0]
	largest := parser.ArraySizes[len(parser.ArraySizes)-1]

	styler.writeParagraph(fmt.Sprintf("Sorting Algorithm Benchmark Report (%d Array Sizes)", summary.NumBlocks), "h1", "C")
	styler.addSpacer(3)
	styler.writeParagraph(fmt.Sprintf("Algorithms: %s. Metrics: %s. Array sizes %d to %d.",
		strings.Join(parser.SortNames, ", "), strings.Join(parser.Metrics, ", "), smallest, largest), "normal", "L")
	styler.addSpacer(5)

	for _, ms := range summary.Metrics {
		styler.writeParagraph(fmt.Sprintf("%s: Algorithms Ranked by Avg at Size %d", ms.Metric, largest), "h2", "L")

		headers := []string{"Rank", "Algorithm", fmt.Sprintf("Avg at Size %d", largest), fmt.Sprintf("Growth (Size %d to %d)", smallest, largest)}
		rows := make([][]string, 0, len(ms.Ranking))
		for i, rank := range ms.Ranking {
			growth := "n/a"
			if !math.IsNaN(rank.GrowthFactor) {
				growth = fmt.Sprintf("%.2fx", rank.GrowthFactor)
			}
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				rank.SortName + " Sort",
				fmt.Sprintf("%.2f", rank.FinalAvg),
				growth,
			})
		}
		styler.writeTable(headers, []float64{0.1, 0.3, 0.3, 0.3}, rows)
		styler.addSpacer(5)
	}

	imgWidth := pdfContentWidth * 0.55
	imgHeight := imgWidth * (5.0 / 8.0)
	heatWidth := pdfContentWidth * 0.55
	heatHeight := heatWidth * (4.0 / 8.0)

	for _, metric := range parser.Metrics {
		styler.newPage()
		styler.writeParagraph(fmt.Sprintf("Charts: %s", metric), "h2", "L")

		for _, statKind := range parser.StatKinds {
			key := strings.TrimSuffix(ChartFileName(metric, statKind), ".png")
			if imgBytes, ok := plotImages[key]; ok && len(imgBytes) > 0 {
				styler.addImage(imgBytes, key, imgWidth, imgHeight, fmt.Sprintf("%s %s vs Array Size", metric, statKind))
			} else {
				styler.writeParagraph(fmt.Sprintf("Chart %s not available.", key), "normal", "L")
			}
		}

		heatKey := strings.ToLower(metric) + "_heatmap"
		if imgBytes, ok := plotImages[heatKey]; ok && len(imgBytes) > 0 {
			styler.addImage(imgBytes, heatKey, heatWidth, heatHeight, fmt.Sprintf("%s (Avg) heatmap", metric))
		}
	}

	return pdf.OutputFileAndClose(path)
}
