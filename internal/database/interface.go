package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/countdial/internal/models"
)

// SettingsRepository stores free-form key/value settings.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error
}

// DialStateRepository stores the angles restored on start-up.
type DialStateRepository interface {
	SaveDialState(ctx context.Context, state models.DialState) error
	LoadDialState(ctx context.Context) (models.DialState, bool, error)
	ClearDialState(ctx context.Context) error
}

// CountdownRepository stores countdown history.
type CountdownRepository interface {
	StartCountdown(ctx context.Context, minutes int, angle float64, startedAt time.Time) (string, error)
	UpdateCountdownRemaining(ctx context.Context, id string, remaining int) error
	FinishCountdown(ctx context.Context, id string, status models.CountdownStatus, remaining int, finishedAt time.Time) error
	InterruptActiveCountdowns(ctx context.Context, at time.Time) (int64, error)
	GetCountdown(ctx context.Context, id string) (models.CountdownRecord, error)
	ListCountdowns(ctx context.Context, limit int) ([]models.CountdownRecord, error)
	GetCountdownStats(ctx context.Context) (CountdownStats, error)
}

// Repository combines all repository interfaces.
type Repository interface {
	SettingsRepository
	DialStateRepository
	CountdownRepository
}

var _ Repository = (*Database)(nil)
