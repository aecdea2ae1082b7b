package models

import (
	"testing"
	"time"
)

func TestCountdownStatusConstants(t *testing.T) {
	if CountdownActive != "active" {
		t.Fatalf("CountdownActive = %q", CountdownActive)
	}
	if CountdownCompleted != "completed" {
		t.Fatalf("CountdownCompleted = %q", CountdownCompleted)
	}
	if CountdownInterrupted != "interrupted" {
		t.Fatalf("CountdownInterrupted = %q", CountdownInterrupted)
	}
	if CountdownActive.IsFinal() {
		t.Fatalf("active countdown must not be final")
	}
	if !CountdownSuperseded.IsFinal() {
		t.Fatalf("superseded countdown must be final")
	}
}

func TestCountdownRecordElapsed(t *testing.T) {
	start := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	finish := start.Add(90 * time.Second)
	r := CountdownRecord{StartedAt: start, FinishedAt: &finish}
	if got := r.Elapsed(start.Add(time.Hour)); got != 90*time.Second {
		t.Fatalf("Elapsed = %v, want 90s", got)
	}

	open := CountdownRecord{StartedAt: start}
	if got := open.Elapsed(start.Add(5 * time.Second)); got != 5*time.Second {
		t.Fatalf("Elapsed for active = %v, want 5s", got)
	}
	if got := open.Elapsed(start.Add(-time.Second)); got != 0 {
		t.Fatalf("Elapsed before start = %v, want 0", got)
	}
}
