package collections_test

import (
	"testing"

	"quotecraft/collections"
	"quotecraft/testhelpers"
)

func TestMigrateDefaultProductionDays_Backfills(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	stale := testhelpers.CreateTestQuote(t, app, "Legacy Quote", "build")
	testhelpers.SetQuoteFields(t, app, stale, map[string]any{"production_days": 0})

	fresh := testhelpers.CreateTestQuote(t, app, "Current Quote", "build")
	testhelpers.SetQuoteFields(t, app, fresh, map[string]any{"production_days": 3})

	if err := collections.MigrateDefaultProductionDays(app); err != nil {
		t.Fatalf("MigrateDefaultProductionDays() error: %v", err)
	}

	migrated, err := app.FindRecordById("quotes", stale.Id)
	if err != nil {
		t.Fatalf("reload stale quote: %v", err)
	}
	if got := migrated.GetInt("production_days"); got != 1 {
		t.Errorf("backfilled production_days = %d, want 1", got)
	}

	untouched, err := app.FindRecordById("quotes", fresh.Id)
	if err != nil {
		t.Fatalf("reload fresh quote: %v", err)
	}
	if got := untouched.GetInt("production_days"); got != 3 {
		t.Errorf("fresh production_days = %d, want 3", got)
	}
}

func TestMigrateDefaultProductionDays_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	quote := testhelpers.CreateTestQuote(t, app, "Legacy Quote", "build")
	testhelpers.SetQuoteFields(t, app, quote, map[string]any{"production_days": 0})

	if err := collections.MigrateDefaultProductionDays(app); err != nil {
		t.Fatalf("first run error: %v", err)
	}
	if err := collections.MigrateDefaultProductionDays(app); err != nil {
		t.Fatalf("second run error: %v", err)
	}

	migrated, _ := app.FindRecordById("quotes", quote.Id)
	if got := migrated.GetInt("production_days"); got != 1 {
		t.Errorf("production_days = %d, want 1", got)
	}
}
