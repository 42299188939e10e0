package handlers

import (
	"log"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotecraft/catalog"
	"quotecraft/services"
	"quotecraft/templates"
)

// HandleQuoteView returns a handler that renders the quote detail page with
// the recomputed breakdown.
func HandleQuoteView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(400, "Missing quote ID")
		}

		record, rec, err := loadQuoteRecord(app, quoteID)
		if err != nil {
			log.Printf("quote_view: %v", err)
			return e.String(404, "Quote not found")
		}

		b := services.Compute(catalog.Default(), services.Reconcile(rec))

		data := templates.QuoteViewData{
			ID:          record.Id,
			Label:       rec.Label,
			QuoteType:   rec.QuoteType,
			CreatedDate: formatRecordDate(record, "created"),
			Locked:      rec.IsLocked,
			Breakdown:   buildBreakdownView(b),
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.QuoteViewContent(data)
		} else {
			component = templates.QuoteViewPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
