package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotecraft/collections"
	"quotecraft/services"
	"quotecraft/templates"
)

// HandleQuoteCreateForm returns a handler that renders the new-quote form.
func HandleQuoteCreateForm(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.QuoteCreateData{
			QuoteType:  services.QuoteTypeBuild,
			QuoteTypes: collections.QuoteTypeValues,
			Errors:     make(map[string]string),
		}
		component := templates.QuoteCreatePage(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleQuoteSave returns a handler that validates the new-quote form and
// creates the record. A fresh quote starts from the empty selection of its
// type; everything else is configured on the edit page.
func HandleQuoteSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		label := strings.TrimSpace(e.Request.FormValue("label"))
		quoteType := strings.TrimSpace(e.Request.FormValue("quote_type"))

		errors := make(map[string]string)
		if label == "" {
			errors["label"] = "Label is required"
		}

		validType := false
		for _, qt := range collections.QuoteTypeValues {
			if quoteType == qt {
				validType = true
				break
			}
		}
		if !validType {
			errors["quote_type"] = "Unknown quote type"
		}

		if label != "" {
			existing, _ := app.FindRecordsByFilter(
				"quotes",
				"label = {:label} && deleted = false",
				"", 1, 0,
				map[string]any{"label": label},
			)
			if len(existing) > 0 {
				errors["label"] = "A quote with this label already exists"
			}
		}

		if len(errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			data := templates.QuoteCreateData{
				Label:      label,
				QuoteType:  quoteType,
				QuoteTypes: collections.QuoteTypeValues,
				Errors:     errors,
			}
			component := templates.QuoteCreatePage(data)
			return component.Render(e.Request.Context(), e.Response)
		}

		quotesCol, err := app.FindCollectionByNameOrId("quotes")
		if err != nil {
			log.Printf("quote_create: could not find quotes collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		sel := services.NewSelection()
		switch quoteType {
		case services.QuoteTypeLaunch:
			sel.BuildTier = false
			sel.LaunchTier = true
		case services.QuoteTypeFundraising:
			sel.BuildTier = false
			sel.Fundraising = true
		}
		rec := services.Serialize(sel, label, false)
		// "scale" is a legacy alias for build; keep what the user picked.
		rec.QuoteType = quoteType

		record := core.NewRecord(quotesCol)
		record.Set("label", rec.Label)
		record.Set("is_locked", false)
		record.Set("recommended", false)
		if err := storeQuoteRecord(app, record, rec); err != nil {
			log.Printf("quote_create: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Quote created")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/quotes/"+record.Id+"/edit")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/quotes/"+record.Id+"/edit")
	}
}
