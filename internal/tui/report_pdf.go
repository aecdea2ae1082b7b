package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/countdial/internal/database"
	"github.com/akyairhashvil/countdial/internal/models"
	"github.com/go-pdf/fpdf"
)

// reportLimit caps how many countdowns a report lists.
const reportLimit = 200

// ReportSource is the read side of the history used by reports.
type ReportSource interface {
	ListCountdowns(ctx context.Context, limit int) ([]models.CountdownRecord, error)
	GetCountdownStats(ctx context.Context) (database.CountdownStats, error)
}

// GeneratePDFReport writes the countdown history to dir and returns the file path.
func GeneratePDFReport(ctx context.Context, src ReportSource, dir string, now time.Time) (string, error) {
	records, err := src.ListCountdowns(ctx, reportLimit)
	if err != nil {
		return "", fmt.Errorf("list countdowns: %w", err)
	}
	stats, err := src.GetCountdownStats(ctx)
	if err != nil {
		return "", fmt.Errorf("countdown stats: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Countdown Report: %s", now.Format("2006-01-02")))
	pdf.Ln(12)

	// Summary
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Countdowns: %d", stats.Total))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Completed: %d (%d minutes)", stats.Completed, stats.MinutesCompleted))
	pdf.Ln(10)

	// History
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "History")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	if len(records) == 0 {
		pdf.Cell(0, 8, "  - No countdowns recorded.")
		pdf.Ln(8)
	}
	for _, r := range records {
		line := fmt.Sprintf("[%s] %3d min  %-11s", r.StartedAt.Format("2006-01-02 15:04"), r.StartMinutes, r.Status)
		if r.Status.IsFinal() {
			line += fmt.Sprintf("  ran %s", r.Elapsed(now).Round(time.Second))
		}
		if r.Status != models.CountdownCompleted && r.Remaining > 0 {
			line += fmt.Sprintf("  (%d left)", r.Remaining)
		}
		pdf.Cell(0, 8, line)
		pdf.Ln(6)
	}
	if pdf.Err() {
		return "", fmt.Errorf("render report: %w", pdf.Error())
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}
	filename := filepath.Join(dir, fmt.Sprintf("countdial_report_%s.pdf", now.Format("20060102_150405")))
	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	absPath, err := filepath.Abs(filename)
	if err != nil {
		return filename, nil
	}
	return absPath, nil
}
