package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akyairhashvil/countdial/internal/models"
)

func TestCountdownLifecycle(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	id, err := db.StartCountdown(ctx, 31, 180, start)
	if err != nil {
		t.Fatalf("StartCountdown failed: %v", err)
	}
	if id == "" {
		t.Fatalf("expected generated ID")
	}
	if err := db.UpdateCountdownRemaining(ctx, id, 12); err != nil {
		t.Fatalf("UpdateCountdownRemaining failed: %v", err)
	}
	if err := db.FinishCountdown(ctx, id, models.CountdownCompleted, 0, start.Add(31*time.Second)); err != nil {
		t.Fatalf("FinishCountdown failed: %v", err)
	}

	rec, err := db.GetCountdown(ctx, id)
	if err != nil {
		t.Fatalf("GetCountdown failed: %v", err)
	}
	if rec.Status != models.CountdownCompleted || rec.StartMinutes != 31 || rec.StartAngle != 180 {
		t.Fatalf("unexpected record %+v", rec)
	}
	if rec.FinishedAt == nil {
		t.Fatalf("expected finished time")
	}
	if got := rec.Elapsed(time.Now()); got != 31*time.Second {
		t.Fatalf("Elapsed = %v, want 31s", got)
	}

	if err := db.FinishCountdown(ctx, id, models.CountdownSuperseded, 0, time.Now()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("finishing twice should report ErrNotFound, got %v", err)
	}
	if err := db.UpdateCountdownRemaining(ctx, id, 3); !errors.Is(err, ErrNotFound) {
		t.Fatalf("updating a finished countdown should fail, got %v", err)
	}
}

func TestFinishCountdownRejectsActiveStatus(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	id, err := db.StartCountdown(ctx, 2, 12, time.Now())
	if err != nil {
		t.Fatalf("StartCountdown failed: %v", err)
	}
	if err := db.FinishCountdown(ctx, id, models.CountdownActive, 2, time.Now()); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestGetCountdownNotFound(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if _, err := db.GetCountdown(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListCountdownsNewestFirst(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	var ids []string
	for i := 0; i < 3; i++ {
		id, err := db.StartCountdown(ctx, i+1, float64(i*6), base.Add(time.Duration(i)*time.Minute))
		if err != nil {
			t.Fatalf("StartCountdown failed: %v", err)
		}
		ids = append(ids, id)
	}

	all, err := db.ListCountdowns(ctx, 0)
	if err != nil {
		t.Fatalf("ListCountdowns failed: %v", err)
	}
	if len(all) != 3 || all[0].ID != ids[2] || all[2].ID != ids[0] {
		t.Fatalf("unexpected order: %+v", all)
	}
	limited, err := db.ListCountdowns(ctx, 2)
	if err != nil {
		t.Fatalf("ListCountdowns limited failed: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected 2 records, got %d", len(limited))
	}
}

func TestInterruptActiveAndStats(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	now := time.Now()
	done, err := db.StartCountdown(ctx, 10, 60, now)
	if err != nil {
		t.Fatalf("StartCountdown failed: %v", err)
	}
	if err := db.FinishCountdown(ctx, done, models.CountdownCompleted, 0, now); err != nil {
		t.Fatalf("FinishCountdown failed: %v", err)
	}
	left, err := db.StartCountdown(ctx, 5, 30, now)
	if err != nil {
		t.Fatalf("StartCountdown failed: %v", err)
	}

	n, err := db.InterruptActiveCountdowns(ctx, now)
	if err != nil {
		t.Fatalf("InterruptActiveCountdowns failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("interrupted %d countdowns, want 1", n)
	}
	rec, err := db.GetCountdown(ctx, left)
	if err != nil {
		t.Fatalf("GetCountdown failed: %v", err)
	}
	if rec.Status != models.CountdownInterrupted {
		t.Fatalf("status = %q, want interrupted", rec.Status)
	}

	stats, err := db.GetCountdownStats(ctx)
	if err != nil {
		t.Fatalf("GetCountdownStats failed: %v", err)
	}
	if stats.Total != 2 || stats.Completed != 1 || stats.MinutesCompleted != 10 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}
