package testutil

import (
	"math"
	"time"

	"github.com/akyairhashvil/countdial/internal/dial"
	"github.com/akyairhashvil/countdial/internal/models"
)

// PointAt returns the point radius units from pivot at the given clockwise
// bearing from 12 o'clock.
func PointAt(pivot dial.Point, degrees, radius float64) dial.Point {
	rad := degrees * math.Pi / 180
	return dial.Point{
		X: pivot.X + int(math.Round(radius*math.Sin(rad))),
		Y: pivot.Y - int(math.Round(radius*math.Cos(rad))),
	}
}

// GestureBuilder provides fluent API for a drag around a pivot.
type GestureBuilder struct {
	pivot  dial.Point
	radius float64
	points []dial.Point
}

func NewGesture(pivot dial.Point) *GestureBuilder {
	return &GestureBuilder{pivot: pivot, radius: 100}
}

// Through appends a touch sample at each bearing.
func (b *GestureBuilder) Through(degrees ...float64) *GestureBuilder {
	for _, d := range degrees {
		b.points = append(b.points, PointAt(b.pivot, d, b.radius))
	}
	return b
}

// Build returns the samples: first is the press, last the release.
func (b *GestureBuilder) Build() []dial.Point {
	return append([]dial.Point(nil), b.points...)
}

// CountdownBuilder provides fluent API for creating test countdown records.
type CountdownBuilder struct {
	record models.CountdownRecord
}

func NewCountdown() *CountdownBuilder {
	return &CountdownBuilder{
		record: models.CountdownRecord{
			ID:           "test-countdown",
			StartMinutes: 5,
			StartAngle:   30,
			Status:       models.CountdownActive,
			Remaining:    5,
			StartedAt:    time.Now(),
		},
	}
}

func (b *CountdownBuilder) WithID(id string) *CountdownBuilder {
	b.record.ID = id
	return b
}

func (b *CountdownBuilder) WithMinutes(m int) *CountdownBuilder {
	b.record.StartMinutes = m
	b.record.Remaining = m
	b.record.StartAngle = dial.AngleForMinutes(m)
	return b
}

func (b *CountdownBuilder) WithStatus(s models.CountdownStatus) *CountdownBuilder {
	b.record.Status = s
	if s.IsFinal() && b.record.FinishedAt == nil {
		finished := b.record.StartedAt.Add(time.Duration(b.record.StartMinutes) * time.Minute)
		b.record.FinishedAt = &finished
	}
	if s == models.CountdownCompleted {
		b.record.Remaining = 0
	}
	return b
}

func (b *CountdownBuilder) StartedAt(t time.Time) *CountdownBuilder {
	b.record.StartedAt = t
	return b
}

func (b *CountdownBuilder) Build() models.CountdownRecord {
	return b.record
}
