package models

import "time"

// CountdownStatus enumerates how a countdown ended.
type CountdownStatus string

const (
	CountdownActive      CountdownStatus = "active"
	CountdownCompleted   CountdownStatus = "completed"
	CountdownInterrupted CountdownStatus = "interrupted"
	CountdownSuperseded  CountdownStatus = "superseded"
)

// IsFinal reports whether the countdown can no longer change.
func (s CountdownStatus) IsFinal() bool {
	switch s {
	case CountdownCompleted, CountdownInterrupted, CountdownSuperseded:
		return true
	default:
		return false
	}
}

// DialState is the part of the dial that survives a restart.
type DialState struct {
	BaseAngle   float64
	OffsetAngle float64
}

// CountdownRecord is one countdown started by releasing the dial.
type CountdownRecord struct {
	ID           string
	StartMinutes int
	StartAngle   float64
	Status       CountdownStatus
	Remaining    int
	StartedAt    time.Time
	FinishedAt   *time.Time
}

// Elapsed is how long the countdown ran, measured to now if it is still active.
func (r CountdownRecord) Elapsed(now time.Time) time.Duration {
	end := now
	if r.FinishedAt != nil {
		end = *r.FinishedAt
	}
	if end.Before(r.StartedAt) {
		return 0
	}
	return end.Sub(r.StartedAt)
}
