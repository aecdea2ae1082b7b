package database

import (
	"context"
	"testing"

	"github.com/akyairhashvil/countdial/internal/config"
	"github.com/akyairhashvil/countdial/internal/models"
)

func TestDialStateRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	if _, ok, err := db.LoadDialState(ctx); err != nil || ok {
		t.Fatalf("expected no saved state, got ok=%v err=%v", ok, err)
	}

	want := models.DialState{BaseAngle: -90, OffsetAngle: 12.5}
	if err := db.SaveDialState(ctx, want); err != nil {
		t.Fatalf("SaveDialState failed: %v", err)
	}
	got, ok, err := db.LoadDialState(ctx)
	if err != nil || !ok {
		t.Fatalf("LoadDialState failed: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("LoadDialState = %+v, want %+v", got, want)
	}

	if err := db.ClearDialState(ctx); err != nil {
		t.Fatalf("ClearDialState failed: %v", err)
	}
	if _, ok, _ := db.LoadDialState(ctx); ok {
		t.Fatalf("expected state to be cleared")
	}
}

func TestDialStateCorruptValue(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.SetSetting(ctx, config.SettingBaseAngle, "north"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if _, _, err := db.LoadDialState(ctx); err == nil {
		t.Fatalf("expected parse error for corrupt angle")
	}
}
