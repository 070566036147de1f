package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/user/sortbench_report/internal/analysis"
	"github.com/user/sortbench_report/internal/parser"
	"github.com/user/sortbench_report/internal/report"
)

func main() {
	var input, outDir, pdfPath string
	flag.StringVar(&input, "input", "results.txt", "benchmark results file")
	flag.StringVar(&outDir, "outdir", ".", "directory for chart PNG files")
	flag.StringVar(&pdfPath, "pdf", "sortbench_report.pdf", "PDF report path (empty to skip)")
	flag.Parse()

	table, err := parser.ParseResults(input)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", input, err)
	}

	images, err := report.WriteAllCharts(table, outDir)
	if err != nil {
		log.Fatalf("Error rendering charts: %v", err)
	}

	if pdfPath == "" {
		return
	}

	for _, metric := range parser.Metrics {
		img, err := report.CreateHeatmapPlot(table, metric)
		if err != nil {
			log.Fatalf("Error rendering %s heatmap: %v", metric, err)
		}
		images[strings.ToLower(metric)+"_heatmap"] = img
	}

	summary, err := analysis.Summarize(table)
	if err != nil {
		log.Fatalf("Error summarizing results: %v", err)
	}
	if err := report.BuildPDFReport(pdfPath, summary, images); err != nil {
		log.Fatalf("Error generating PDF report: %v", err)
	}
	fmt.Printf("Saved report: %s\n", pdfPath)
}
