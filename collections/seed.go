package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// quoteDef describes one seeded quote option.
type quoteDef struct {
	label          string
	quoteType      string
	includeLaunch  bool
	selectedAddons map[string]int
	sliderValues   map[string]float64
	tierSelections map[string]string
	locationDays   map[string][]int
	photoCount     int
	productionDays int
	recommended    bool
	locked         bool
}

// Seed inserts the agency's recommended quote options. It is safe to call on
// every startup because it returns early if any quote records already exist.
func Seed(app *pocketbase.PocketBase) error {
	quotesCol, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		return fmt.Errorf("seed: could not find quotes collection: %w", err)
	}
	existing, err := app.FindAllRecords(quotesCol)
	if err != nil {
		return fmt.Errorf("seed: could not query quotes: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: quotes collection is empty – inserting recommended quotes …")

	defs := []quoteDef{
		{
			label:     "Recommended — Build",
			quoteType: "build",
			selectedAddons: map[string]int{
				"producer":        1,
				"cinematographer": 1,
				"sound-engineer":  1,
				"actors":          2,
				"locations":       2,
				"editing-suite":   1,
			},
			sliderValues: map[string]float64{
				"producer":        1200,
				"cinematographer": 1500,
				"sound-engineer":  800,
				"locations:0":     500,
				"locations:1":     750,
			},
			tierSelections: map[string]string{"editing-suite": "basic"},
			productionDays: 2,
			recommended:    true,
			locked:         true,
		},
		{
			label:     "Recommended — Launch",
			quoteType: "launch",
			selectedAddons: map[string]int{
				"media-buy":           1,
				"social-cutdowns":     4,
				"pr-outreach":         1,
				"analytics-dashboard": 1,
			},
			sliderValues:   map[string]float64{"pr-outreach": 1500},
			productionDays: 1,
			recommended:    true,
			locked:         true,
		},
		{
			label:     "Recommended — Build + Launch",
			quoteType: "build",
			includeLaunch: true,
			selectedAddons: map[string]int{
				"producer":        1,
				"cinematographer": 1,
				"locations":       1,
				"media-buy":       1,
				"social-cutdowns": 3,
			},
			sliderValues: map[string]float64{
				"producer":        1200,
				"cinematographer": 1500,
				"locations:0":     500,
			},
			productionDays: 2,
			recommended:    true,
			locked:         true,
		},
		{
			label:     "Recommended — Fundraising",
			quoteType: "fundraising",
			selectedAddons: map[string]int{
				"pledge-video":      1,
				"volunteer-toolkit": 1,
				"fundraising-crew":  2,
			},
			sliderValues:   map[string]float64{"pledge-video": 1500},
			productionDays: 1,
			recommended:    true,
			locked:         true,
		},
	}

	for _, def := range defs {
		if err := createQuote(app, quotesCol, def); err != nil {
			return err
		}
	}

	log.Printf("seed: inserted %d recommended quote(s).\n", len(defs))
	return nil
}

func createQuote(app *pocketbase.PocketBase, col *core.Collection, def quoteDef) error {
	record := core.NewRecord(col)
	record.Set("label", def.label)
	record.Set("quote_type", def.quoteType)
	record.Set("include_launch", def.includeLaunch)
	record.Set("selected_addons", orEmptyInt(def.selectedAddons))
	record.Set("slider_values", orEmptyFloat(def.sliderValues))
	record.Set("tier_selections", orEmptyString(def.tierSelections))
	record.Set("location_days", orEmptyDays(def.locationDays))
	record.Set("photo_count", def.photoCount)
	record.Set("production_days", def.productionDays)
	record.Set("fundraising_enabled", def.quoteType == "fundraising")
	record.Set("is_locked", def.locked)
	record.Set("recommended", def.recommended)

	if err := app.Save(record); err != nil {
		return fmt.Errorf("seed: save quote %q: %w", def.label, err)
	}
	return nil
}

func orEmptyInt(m map[string]int) map[string]int {
	if m == nil {
		return map[string]int{}
	}
	return m
}

func orEmptyFloat(m map[string]float64) map[string]float64 {
	if m == nil {
		return map[string]float64{}
	}
	return m
}

func orEmptyString(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}

func orEmptyDays(m map[string][]int) map[string][]int {
	if m == nil {
		return map[string][]int{}
	}
	return m
}
