package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/akyairhashvil/countdial/internal/models"
	"github.com/google/uuid"
)

const countdownColumns = "id, start_minutes, start_angle, status, remaining, started_at, finished_at"

// StartCountdown records a new active countdown and returns its ID.
func (d *Database) StartCountdown(ctx context.Context, minutes int, angle float64, startedAt time.Time) (string, error) {
	id := uuid.NewString()
	err := d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx,
			"INSERT INTO countdowns (id, start_minutes, start_angle, status, remaining, started_at) VALUES (?, ?, ?, ?, ?, ?)",
			id, minutes, angle, string(models.CountdownActive), minutes, startedAt.UTC())
		return err
	})
	if err != nil {
		return "", wrapErr(EntityCountdown, "start", id, err)
	}
	return id, nil
}

// UpdateCountdownRemaining records progress of an active countdown.
func (d *Database) UpdateCountdownRemaining(ctx context.Context, id string, remaining int) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		res, err := d.DB.ExecContext(ctx, "UPDATE countdowns SET remaining = ? WHERE id = ? AND status = ?", remaining, id, string(models.CountdownActive))
		return wrapErr(EntityCountdown, "update", id, requireRow(res, err))
	})
}

// FinishCountdown moves an active countdown to a final status.
func (d *Database) FinishCountdown(ctx context.Context, id string, status models.CountdownStatus, remaining int, finishedAt time.Time) error {
	if !status.IsFinal() {
		return wrapErr(EntityCountdown, "finish", id, ErrInvalidStatus)
	}
	return d.withDBContext(ctx, func(ctx context.Context) error {
		res, err := d.DB.ExecContext(ctx,
			"UPDATE countdowns SET status = ?, remaining = ?, finished_at = ? WHERE id = ? AND status = ?",
			string(status), remaining, finishedAt.UTC(), id, string(models.CountdownActive))
		return wrapErr(EntityCountdown, "finish", id, requireRow(res, err))
	})
}

// InterruptActiveCountdowns closes countdowns left active by a previous run.
func (d *Database) InterruptActiveCountdowns(ctx context.Context, at time.Time) (int64, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (int64, error) {
		res, err := d.DB.ExecContext(ctx,
			"UPDATE countdowns SET status = ?, finished_at = ? WHERE status = ?",
			string(models.CountdownInterrupted), at.UTC(), string(models.CountdownActive))
		if err != nil {
			return 0, wrapErr(EntityCountdown, "interrupt", "", err)
		}
		return res.RowsAffected()
	})
}

func (d *Database) GetCountdown(ctx context.Context, id string) (models.CountdownRecord, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (models.CountdownRecord, error) {
		row := d.DB.QueryRowContext(ctx, "SELECT "+countdownColumns+" FROM countdowns WHERE id = ?", id)
		rec, err := scanCountdown(row)
		if errors.Is(err, sql.ErrNoRows) {
			return rec, wrapErr(EntityCountdown, "get", id, ErrNotFound)
		}
		return rec, wrapErr(EntityCountdown, "get", id, err)
	})
}

// ListCountdowns returns the newest countdowns first. limit <= 0 means all.
func (d *Database) ListCountdowns(ctx context.Context, limit int) ([]models.CountdownRecord, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.CountdownRecord, error) {
		query := "SELECT " + countdownColumns + " FROM countdowns ORDER BY started_at DESC, rowid DESC"
		args := []any{}
		if limit > 0 {
			query += " LIMIT ?"
			args = append(args, limit)
		}
		rows, err := d.DB.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, wrapErr(EntityCountdown, "list", "", err)
		}
		defer rows.Close()

		var out []models.CountdownRecord
		for rows.Next() {
			rec, err := scanCountdown(rows)
			if err != nil {
				return nil, wrapErr(EntityCountdown, "list", "", err)
			}
			out = append(out, rec)
		}
		if err := rows.Err(); err != nil {
			return nil, wrapErr(EntityCountdown, "list", "", err)
		}
		return out, nil
	})
}

// CountdownStats summarises the history.
type CountdownStats struct {
	Total            int
	Completed        int
	MinutesCompleted int
}

func (d *Database) GetCountdownStats(ctx context.Context) (CountdownStats, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (CountdownStats, error) {
		var s CountdownStats
		err := d.DB.QueryRowContext(ctx, `
			SELECT COUNT(1),
			       COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
			       COALESCE(SUM(CASE WHEN status = ? THEN start_minutes ELSE 0 END), 0)
			FROM countdowns`,
			string(models.CountdownCompleted), string(models.CountdownCompleted)).
			Scan(&s.Total, &s.Completed, &s.MinutesCompleted)
		return s, wrapErr(EntityCountdown, "stats", "", err)
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCountdown(row rowScanner) (models.CountdownRecord, error) {
	var (
		rec      models.CountdownRecord
		status   string
		finished sql.NullTime
	)
	if err := row.Scan(&rec.ID, &rec.StartMinutes, &rec.StartAngle, &status, &rec.Remaining, &rec.StartedAt, &finished); err != nil {
		return models.CountdownRecord{}, err
	}
	rec.Status = models.CountdownStatus(status)
	rec.FinishedAt = nullTimePtr(finished)
	return rec, nil
}
