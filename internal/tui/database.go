package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/countdial/internal/database"
	"github.com/akyairhashvil/countdial/internal/models"
)

// Database defines the persistence methods the TUI requires.
//
//go:generate mockgen -source=database.go -destination=mock_database_test.go -package=tui
type Database interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error

	SaveDialState(ctx context.Context, state models.DialState) error
	LoadDialState(ctx context.Context) (models.DialState, bool, error)

	StartCountdown(ctx context.Context, minutes int, angle float64, startedAt time.Time) (string, error)
	UpdateCountdownRemaining(ctx context.Context, id string, remaining int) error
	FinishCountdown(ctx context.Context, id string, status models.CountdownStatus, remaining int, finishedAt time.Time) error
	ListCountdowns(ctx context.Context, limit int) ([]models.CountdownRecord, error)
	GetCountdownStats(ctx context.Context) (database.CountdownStats, error)
}

var _ Database = (*database.Database)(nil)
