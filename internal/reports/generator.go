package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/dkurbatov/mindful-hub/internal/moods"
	"github.com/dkurbatov/mindful-hub/internal/storage"
	"github.com/jung-kurt/gofpdf"
)

// MoodsStorage interface for generator
type MoodsStorage interface {
	ListEntriesRange(ctx context.Context, from, to string) ([]moods.Entry, error)
}

// Generator generates PDF/CSV reports
type Generator struct {
	moodsStorage   MoodsStorage
	resultsStorage storage.ResultsStorage
}

// NewGenerator creates a new report generator
func NewGenerator(moodsStorage MoodsStorage, resultsStorage storage.ResultsStorage) *Generator {
	return &Generator{
		moodsStorage:   moodsStorage,
		resultsStorage: resultsStorage,
	}
}

// GenerateReport generates a report and returns the data
func (g *Generator) GenerateReport(ctx context.Context, req CreateReportRequest) ([]byte, error) {
	entries, err := g.moodsStorage.ListEntriesRange(ctx, req.From, req.To)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mood entries: %w", err)
	}

	results, err := g.resultsInRange(ctx, req.From, req.To)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assessment results: %w", err)
	}

	switch req.Format {
	case FormatPDF:
		return g.generatePDF(req, entries, results)
	case FormatCSV:
		return g.generateCSV(entries)
	default:
		return nil, fmt.Errorf("unsupported format: %s", req.Format)
	}
}

// resultsInRange фильтрует историю результатов по дате завершения
func (g *Generator) resultsInRange(ctx context.Context, from, to string) ([]storage.AssessmentResult, error) {
	all, err := g.resultsStorage.ListAssessmentResults(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]storage.AssessmentResult, 0, len(all))
	for _, res := range all {
		day := res.CompletedAt.Format("2006-01-02")
		if day >= from && day <= to {
			filtered = append(filtered, res)
		}
	}
	return filtered, nil
}

// generateCSV generates a CSV export of the mood log
func (g *Generator) generateCSV(entries []moods.Entry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"date", "mood", "intensity", "intensity_label", "note"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	// ListEntriesRange returns newest first; export oldest first
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		row := []string{
			e.Date,
			e.Mood,
			strconv.Itoa(e.Intensity),
			moods.IntensityLabels[e.Intensity],
			e.Note,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// generatePDF generates a PDF report
func (g *Generator) generatePDF(req CreateReportRequest, entries []moods.Entry, results []storage.AssessmentResult) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	fontName := "Arial"

	pdf.SetFont(fontName, "", 16)
	pdf.AddPage()

	pdf.Cell(0, 10, "Wellness Report")
	pdf.Ln(8)

	pdf.SetFont(fontName, "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s - %s", req.From, req.To))
	pdf.Ln(12)

	stats := moods.ComputeStats(entries, time.Now())

	// Summary section
	pdf.SetFont(fontName, "", 14)
	pdf.Cell(0, 8, "Mood Summary")
	pdf.Ln(8)

	pdf.SetFont(fontName, "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Entries logged: %d", stats.TotalEntries))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Average intensity: %s", formatAverage(stats)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Most common mood: %s", formatMood(stats.MostCommonMood)))
	pdf.Ln(8)

	// Distribution in catalog order, skipping zero counts
	if stats.TotalEntries > 0 {
		pdf.SetFont(fontName, "", 12)
		pdf.Cell(0, 7, "Mood distribution")
		pdf.Ln(6)
		pdf.SetFont(fontName, "", 10)
		for _, mood := range moods.ValidMoods {
			count := stats.MoodDistribution[mood]
			if count == 0 {
				continue
			}
			pdf.Cell(0, 6, fmt.Sprintf("%s: %d", moods.MoodLabels[mood], count))
			pdf.Ln(5)
		}
		pdf.Ln(4)
	}

	// Recent days table
	pdf.SetFont(fontName, "", 14)
	pdf.Cell(0, 8, "Recent Days")
	pdf.Ln(8)
	g.drawRecentDaysTable(pdf, entries, fontName)
	pdf.Ln(6)

	// Assessments taken during the period
	pdf.SetFont(fontName, "", 14)
	pdf.Cell(0, 8, "Assessments")
	pdf.Ln(8)
	g.drawAssessmentsTable(pdf, results, fontName)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return buf.Bytes(), nil
}

// drawRecentDaysTable draws a table of recent mood entries (up to 14)
func (g *Generator) drawRecentDaysTable(pdf *gofpdf.Fpdf, entries []moods.Entry, fontName string) {
	limit := 14
	recent := entries
	if len(recent) > limit {
		recent = recent[:limit]
	}

	pdf.SetFont(fontName, "", 8)

	pdf.CellFormat(25, 6, "Date", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Mood", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 6, "Intensity", "1", 0, "C", false, 0, "")
	pdf.CellFormat(100, 6, "Note", "1", 1, "C", false, 0, "")

	for _, e := range recent {
		note := truncateNote(e.Note, 60)
		pdf.CellFormat(25, 6, e.Date, "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, moods.MoodLabels[e.Mood], "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 6, strconv.Itoa(e.Intensity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(100, 6, note, "1", 1, "L", false, 0, "")
	}
}

// drawAssessmentsTable draws the assessment results taken in the period
func (g *Generator) drawAssessmentsTable(pdf *gofpdf.Fpdf, results []storage.AssessmentResult, fontName string) {
	pdf.SetFont(fontName, "", 8)

	if len(results) == 0 {
		pdf.Cell(0, 6, "No assessments taken during this period")
		pdf.Ln(5)
		return
	}

	pdf.CellFormat(25, 6, "Date", "1", 0, "C", false, 0, "")
	pdf.CellFormat(60, 6, "Assessment", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 6, "Score", "1", 0, "C", false, 0, "")
	pdf.CellFormat(70, 6, "Result", "1", 1, "C", false, 0, "")

	for _, res := range results {
		pdf.CellFormat(25, 6, res.CompletedAt.Format("2006-01-02"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(60, 6, res.AssessmentTitle, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%d/%d", res.Score, res.MaxScore), "1", 0, "C", false, 0, "")
		pdf.CellFormat(70, 6, res.ResultTitle, "1", 1, "L", false, 0, "")
	}
}

// Helper functions
// truncateNote обрезает заметку до max символов (по рунам, не байтам)
func truncateNote(note string, max int) string {
	runes := []rune(note)
	if len(runes) <= max {
		return note
	}
	return string(runes[:max-3]) + "..."
}

func formatAverage(stats moods.Stats) string {
	if stats.TotalEntries == 0 {
		return "No data"
	}
	return fmt.Sprintf("%.1f / %d", stats.AverageIntensity, moods.MaxIntensity)
}

func formatMood(mood string) string {
	if mood == "" {
		return "No data"
	}
	if label, ok := moods.MoodLabels[mood]; ok {
		return label
	}
	return mood
}
