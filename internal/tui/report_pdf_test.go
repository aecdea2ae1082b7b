package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/countdial/internal/database"
	"github.com/akyairhashvil/countdial/internal/models"
	"github.com/akyairhashvil/countdial/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/mock/gomock"
)

func TestGeneratePDFReportWritesFile(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	id, err := db.StartCountdown(ctx, 12, 72, fixedNow.Add(-time.Hour))
	if err != nil {
		t.Fatalf("StartCountdown failed: %v", err)
	}
	if err := db.FinishCountdown(ctx, id, models.CountdownCompleted, 0, fixedNow.Add(-48*time.Minute)); err != nil {
		t.Fatalf("FinishCountdown failed: %v", err)
	}
	if _, err := db.StartCountdown(ctx, 5, 30, fixedNow); err != nil {
		t.Fatalf("StartCountdown failed: %v", err)
	}

	dir := filepath.Join(t.TempDir(), "reports")
	path, err := GeneratePDFReport(ctx, db, dir, fixedNow)
	if err != nil {
		t.Fatalf("GeneratePDFReport failed: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), "countdial_report_20260314") {
		t.Fatalf("unexpected report name %q", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat report: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("report is empty")
	}
}

func TestGeneratePDFReportListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := NewMockDatabase(ctrl)
	db.EXPECT().ListCountdowns(gomock.Any(), reportLimit).Return(nil, errors.New("boom"))

	if _, err := GeneratePDFReport(context.Background(), db, t.TempDir(), fixedNow); err == nil {
		t.Fatalf("expected error")
	}
}

func TestGeneratePDFReportFromMock(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := NewMockDatabase(ctrl)
	records := []models.CountdownRecord{
		testutil.NewCountdown().WithID("a").StartedAt(fixedNow).WithMinutes(25).Build(),
		testutil.NewCountdown().WithID("b").StartedAt(fixedNow.Add(-time.Hour)).WithMinutes(10).
			WithStatus(models.CountdownCompleted).Build(),
		testutil.NewCountdown().WithID("c").StartedAt(fixedNow.Add(-2 * time.Hour)).WithMinutes(40).
			WithStatus(models.CountdownSuperseded).Build(),
	}
	db.EXPECT().ListCountdowns(gomock.Any(), reportLimit).Return(records, nil)
	db.EXPECT().GetCountdownStats(gomock.Any()).Return(database.CountdownStats{Total: 3, Completed: 1, MinutesCompleted: 10}, nil)

	path, err := GeneratePDFReport(context.Background(), db, t.TempDir(), fixedNow)
	if err != nil {
		t.Fatalf("GeneratePDFReport failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat report: %v", err)
	}
}

func TestReportKeyProducesReportMsg(t *testing.T) {
	m := setupTestDialModel(t, setupTestDB(t))
	next, cmd := m.Update(keyMsg("p"))
	m = next.(DialModel)
	if cmd == nil {
		t.Fatalf("expected report command")
	}
	msg, ok := cmd().(ReportMsg)
	if !ok {
		t.Fatalf("expected ReportMsg")
	}
	if msg.Err != nil {
		t.Fatalf("report failed: %v", msg.Err)
	}
	next, _ = m.Update(msg)
	m = next.(DialModel)
	if !strings.Contains(m.Message, msg.Path) {
		t.Fatalf("Message = %q", m.Message)
	}
}

func TestReportKeyIgnoredWhileDragging(t *testing.T) {
	m := setupTestDialModel(t, setupTestDB(t))
	next, _ := m.Update(mouse(m, tea.MouseActionPress, 0))
	m = next.(DialModel)
	if _, cmd := m.Update(keyMsg("p")); cmd != nil {
		t.Fatalf("report started during a drag")
	}
}
