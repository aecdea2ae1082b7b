package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/akyairhashvil/countdial/internal/config"
	"github.com/akyairhashvil/countdial/internal/models"
	"github.com/akyairhashvil/countdial/internal/util"
)

// SaveDialState stores both angles atomically.
func (d *Database) SaveDialState(ctx context.Context, state models.DialState) error {
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		if err := setSetting(ctx, tx, config.SettingBaseAngle, util.FormatFloat(state.BaseAngle)); err != nil {
			return err
		}
		return setSetting(ctx, tx, config.SettingOffsetAngle, util.FormatFloat(state.OffsetAngle))
	})
	return wrapErr(EntityDialState, "save", "", err)
}

// LoadDialState returns the saved angles; ok is false when nothing was saved.
func (d *Database) LoadDialState(ctx context.Context) (models.DialState, bool, error) {
	type result struct {
		state models.DialState
		ok    bool
	}
	r, err := withDBContextResult(d, ctx, func(ctx context.Context) (result, error) {
		base, okBase, err := getSetting(ctx, d.DB, config.SettingBaseAngle)
		if err != nil {
			return result{}, err
		}
		offset, okOffset, err := getSetting(ctx, d.DB, config.SettingOffsetAngle)
		if err != nil {
			return result{}, err
		}
		if !okBase && !okOffset {
			return result{}, nil
		}
		var state models.DialState
		if okBase {
			if state.BaseAngle, err = parseAngle(config.SettingBaseAngle, base); err != nil {
				return result{}, err
			}
		}
		if okOffset {
			if state.OffsetAngle, err = parseAngle(config.SettingOffsetAngle, offset); err != nil {
				return result{}, err
			}
		}
		return result{state: state, ok: true}, nil
	})
	if err != nil {
		return models.DialState{}, false, wrapErr(EntityDialState, "load", "", err)
	}
	return r.state, r.ok, nil
}

// ClearDialState forgets the saved angles.
func (d *Database) ClearDialState(ctx context.Context) error {
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, "DELETE FROM settings WHERE key IN (?, ?)", config.SettingBaseAngle, config.SettingOffsetAngle)
		return err
	})
	return wrapErr(EntityDialState, "clear", "", err)
}

func parseAngle(key, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", key, raw, err)
	}
	return v, nil
}
