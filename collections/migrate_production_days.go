package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
)

// MigrateDefaultProductionDays backfills production_days on legacy quote
// records where the field is missing or zero. The pricing engine treats a
// missing value as a single day; persisting the default keeps stored records
// self-describing. Safe to call on every startup -- returns early if nothing
// to migrate.
func MigrateDefaultProductionDays(app *pocketbase.PocketBase) error {
	quotesCol, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		return fmt.Errorf("migrate: could not find quotes collection: %w", err)
	}

	stale, err := app.FindRecordsByFilter(
		quotesCol,
		"production_days < 1",
		"",
		0,
		0,
		nil,
	)
	if err != nil {
		return fmt.Errorf("migrate: could not query quotes without production days: %w", err)
	}

	if len(stale) == 0 {
		return nil
	}

	log.Printf("migrate: found %d quote(s) without production days -- backfilling...\n", len(stale))

	for _, quote := range stale {
		quote.Set("production_days", 1)
		if err := app.Save(quote); err != nil {
			log.Printf("migrate: failed to backfill quote %q (%s): %v\n", quote.GetString("label"), quote.Id, err)
			continue
		}
	}

	log.Println("migrate: production days backfill complete.")
	return nil
}
