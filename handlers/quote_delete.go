package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotecraft/templates"
)

// HandleQuoteDelete returns a handler that soft-deletes a quote. The record
// stays in storage with the deleted flag set; every query filters it out.
// Locked quotes cannot be deleted.
func HandleQuoteDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(400, "Missing quote ID")
		}

		record, rec, err := loadQuoteRecord(app, quoteID)
		if err != nil {
			log.Printf("quote_delete: %v", err)
			return e.String(404, "Quote not found")
		}
		if rec.IsLocked {
			return ErrorToast(e, http.StatusForbidden, "Locked quotes cannot be deleted")
		}

		record.Set("deleted", true)
		if err := app.Save(record); err != nil {
			log.Printf("quote_delete: could not delete quote %s: %v", quoteID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Quote deleted")

		// HTMX delete buttons swap the refreshed list into #content.
		if e.Request.Header.Get("HX-Request") == "true" {
			data, err := buildQuoteListData(app)
			if err != nil {
				log.Printf("quote_delete: %v", err)
				return e.String(500, "Internal error")
			}
			return templates.QuoteListContent(data).Render(e.Request.Context(), e.Response)
		}
		return e.Redirect(http.StatusFound, "/quotes")
	}
}
