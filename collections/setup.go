package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// QuoteTypeValues are the persisted quote_type enum values. "scale" is a
// legacy alias that prices against the Build tier.
var QuoteTypeValues = []string{"build", "launch", "scale", "fundraising"}

// Setup programmatically creates/ensures the quotes collection exists.
// The collection persists the serializable quote record: selection maps are
// stored as JSON fields, mode flags as booleans, and deletion is soft via
// the deleted flag.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "quotes", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "label", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "quote_type",
			Required:  true,
			Values:    QuoteTypeValues,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.BoolField{Name: "include_launch"})
		c.Fields.Add(&core.JSONField{Name: "selected_addons"})
		c.Fields.Add(&core.JSONField{Name: "slider_values"})
		c.Fields.Add(&core.JSONField{Name: "tier_selections"})
		c.Fields.Add(&core.JSONField{Name: "location_days"})
		c.Fields.Add(&core.NumberField{Name: "photo_count"})
		c.Fields.Add(&core.NumberField{Name: "production_days"})
		c.Fields.Add(&core.BoolField{Name: "crowdfunding_enabled"})
		c.Fields.Add(&core.NumberField{Name: "crowdfunding_tier"})
		c.Fields.Add(&core.BoolField{Name: "fundraising_enabled"})
		c.Fields.Add(&core.BoolField{Name: "defer_payment"})
		c.Fields.Add(&core.NumberField{Name: "friendly_discount_pct"})
		c.Fields.Add(&core.BoolField{Name: "is_locked"})
		c.Fields.Add(&core.BoolField{Name: "recommended"})
		c.Fields.Add(&core.BoolField{Name: "deleted"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
