package handlers

import (
	"fmt"
	"log"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotecraft/catalog"
	"quotecraft/services"
	"quotecraft/templates"
)

// HandleQuoteList returns a handler that renders the quote list page. Totals
// are recomputed from each stored record; nothing priced is ever read back
// from storage.
func HandleQuoteList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := buildQuoteListData(app)
		if err != nil {
			log.Printf("quote_list: %v", err)
			return e.String(500, "Internal error")
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.QuoteListContent(data)
		} else {
			component = templates.QuoteListPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// buildQuoteListData loads every live quote and recomputes its totals.
func buildQuoteListData(app *pocketbase.PocketBase) (templates.QuoteListData, error) {
	quotesCol, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		return templates.QuoteListData{}, fmt.Errorf("could not find quotes collection: %w", err)
	}

	records, err := app.FindRecordsByFilter(quotesCol, "deleted = false", "-updated", 0, 0, nil)
	if err != nil {
		return templates.QuoteListData{}, fmt.Errorf("could not query quotes: %w", err)
	}

	cat := catalog.Default()
	var data templates.QuoteListData
	for _, record := range records {
		rec := recordToQuoteRecord(record)
		b := services.Compute(cat, services.Reconcile(rec))
		data.Quotes = append(data.Quotes, templates.QuoteListItem{
			ID:          record.Id,
			Label:       rec.Label,
			QuoteType:   rec.QuoteType,
			Total:       services.FormatUSD(b.Total),
			Deposit:     services.FormatUSD(b.Deposit),
			UpdatedDate: formatRecordDate(record, "updated"),
			Locked:      record.GetBool("is_locked"),
			Recommended: record.GetBool("recommended"),
		})
	}
	return data, nil
}
