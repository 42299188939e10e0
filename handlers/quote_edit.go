package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotecraft/catalog"
	"quotecraft/services"
	"quotecraft/templates"
)

// HandleQuoteEdit returns a handler that renders the quote edit page: the
// catalog rows of every active tier next to the live breakdown panel.
func HandleQuoteEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(400, "Missing quote ID")
		}

		record, rec, err := loadQuoteRecord(app, quoteID)
		if err != nil {
			log.Printf("quote_edit: %v", err)
			return e.String(404, "Quote not found")
		}

		cat := catalog.Default()
		sel := services.Reconcile(rec)
		b := services.Compute(cat, sel)

		data := templates.QuoteEditData{
			ID:             record.Id,
			Label:          rec.Label,
			QuoteType:      rec.QuoteType,
			ProductionDays: sel.Days(),
			Breakdown:      buildBreakdownView(b),
			Errors:         make(map[string]string),
		}
		for _, tier := range sel.ActiveTiers() {
			data.Tiers = append(data.Tiers, buildEditTier(cat, tier, sel))
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.QuoteEditContent(data)
		} else {
			component = templates.QuoteEditPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// buildEditTier formats one tier's catalog rows for the edit page.
func buildEditTier(cat services.Catalog, tier services.Tier, sel services.Selection) templates.EditTier {
	et := templates.EditTier{Name: services.TierDisplayName(tier)}
	for _, addon := range cat.TierAddOns(tier) {
		if _, isFreebie := addon.Shape.(services.Freebie); isFreebie && !sel.Fundraising {
			continue
		}
		et.AddOns = append(et.AddOns, templates.EditAddOn{
			ID:           addon.ID,
			Name:         addon.Name,
			DisplayPrice: addon.DisplayPrice,
			Selected:     sel.IsSelected(addon.ID),
			Included:     addon.Included,
			ValueSummary: valueSummary(addon, sel),
		})
	}
	return et
}

// valueSummary renders the current configured value of a selected add-on.
func valueSummary(addon services.AddOn, sel services.Selection) string {
	if !sel.IsSelected(addon.ID) && !addon.Included {
		return ""
	}
	switch shape := addon.Shape.(type) {
	case services.Quantity:
		count := sel.Quantities[addon.ID]
		if count <= 0 {
			count = shape.Default
		}
		return fmt.Sprintf("× %d", count)
	case services.Slider:
		v, ok := sel.SliderValues[addon.ID]
		if !ok {
			v = shape.Default
		}
		return services.FormatUSD(v)
	case services.MultiSlider:
		count := sel.Quantities[addon.ID]
		if count < 1 {
			count = 1
		}
		if count > shape.MaxUnits {
			count = shape.MaxUnits
		}
		if count == 1 {
			return "1 unit"
		}
		return fmt.Sprintf("%d units", count)
	case services.PhotoSlider:
		count := sel.PhotoCount
		if count < shape.IncludedPhotos {
			count = shape.IncludedPhotos
		}
		if count > shape.MaxPhotos {
			count = shape.MaxPhotos
		}
		return fmt.Sprintf("%d photos", count)
	case services.TierToggle:
		if sel.TierChoices[addon.ID] == services.ChoicePremium {
			return "Premium"
		}
		return "Basic"
	}
	return ""
}

// HandleQuoteFieldPatch returns the handler behind every edit-page control.
// Each request patches a single selection field, re-serializes the record,
// saves it, and responds with the recomputed breakdown fragment.
func HandleQuoteFieldPatch(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(400, "Missing quote ID")
		}

		record, rec, err := loadQuoteRecord(app, quoteID)
		if err != nil {
			log.Printf("quote_fields: %v", err)
			return e.String(404, "Quote not found")
		}
		if rec.IsLocked {
			return ErrorToast(e, http.StatusForbidden, "This quote is locked and cannot be edited")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		cat := catalog.Default()
		sel := services.Reconcile(rec)
		if err := applyFieldPatch(cat, &sel, e.Request.FormValue); err != nil {
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		next := services.Serialize(sel, rec.Label, rec.IsLocked)
		if err := storeQuoteRecord(app, record, next); err != nil {
			log.Printf("quote_fields: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		b := services.Compute(cat, sel)
		return templates.BreakdownPanel(buildBreakdownView(b)).Render(e.Request.Context(), e.Response)
	}
}

// applyFieldPatch mutates the selection according to one edit-page operation.
// Mode transitions go through the mode machine; value fields write directly.
func applyFieldPatch(cat services.Catalog, sel *services.Selection, formValue func(string) string) error {
	field := formValue("field")
	modes := services.NewModeMachine(cat, sel)

	switch field {
	case "select":
		addon, ok := cat.FindAddOn(formValue("addon"))
		if !ok {
			return fmt.Errorf("unknown add-on %q", formValue("addon"))
		}
		count := 1
		if q, isQty := addon.Shape.(services.Quantity); isQty && q.Default > 0 {
			count = q.Default
		}
		sel.Quantities[addon.ID] = count

	case "deselect":
		delete(sel.Quantities, formValue("addon"))

	case "quantity":
		addon, ok := cat.FindAddOn(formValue("addon"))
		if !ok {
			return fmt.Errorf("unknown add-on %q", formValue("addon"))
		}
		count, err := strconv.Atoi(formValue("value"))
		if err != nil {
			return fmt.Errorf("invalid quantity %q", formValue("value"))
		}
		sel.Quantities[addon.ID] = count

	case "slider":
		key := formValue("key")
		if key == "" {
			key = formValue("addon")
		}
		v, err := strconv.ParseFloat(formValue("value"), 64)
		if err != nil {
			return fmt.Errorf("invalid slider value %q", formValue("value"))
		}
		sel.SliderValues[key] = v

	case "tier_choice":
		choice := services.TierChoice(formValue("value"))
		if choice != services.ChoiceBasic && choice != services.ChoicePremium {
			return fmt.Errorf("invalid tier choice %q", formValue("value"))
		}
		sel.TierChoices[formValue("addon")] = choice

	case "location_days":
		days, err := parseDayList(formValue("value"))
		if err != nil {
			return err
		}
		sel.ActiveDays[formValue("key")] = days

	case "photo_count":
		count, err := strconv.Atoi(formValue("value"))
		if err != nil {
			return fmt.Errorf("invalid photo count %q", formValue("value"))
		}
		sel.PhotoCount = count

	case "production_days":
		days, err := strconv.Atoi(formValue("production_days"))
		if err != nil {
			days, err = strconv.Atoi(formValue("value"))
		}
		if err != nil {
			return fmt.Errorf("invalid production days")
		}
		if days < 1 {
			days = 1
		}
		sel.ProductionDays = days

	case "tiers":
		modes.SelectTiers(formValue("build") == "true", formValue("launch") == "true")

	case "fundraising":
		if formValue("value") == "true" {
			modes.EnterFundraising()
		} else {
			modes.LeaveFundraising()
		}

	case "crowdfunding":
		tierIndex, _ := strconv.Atoi(formValue("tier"))
		modes.SetCrowdfunding(formValue("value") == "true", tierIndex)

	case "defer_payment":
		sel.DeferPayment = sel.Crowdfunding && formValue("value") == "true"

	case "friendly_discount":
		pct, err := strconv.Atoi(formValue("value"))
		if err != nil {
			return fmt.Errorf("invalid discount percent %q", formValue("value"))
		}
		modes.SetFriendlyDiscount(pct)

	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}

// parseDayList parses a comma-separated day list like "1,3".
func parseDayList(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var days []int
	for _, part := range strings.Split(raw, ",") {
		d, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid day %q", part)
		}
		days = append(days, d)
	}
	return days, nil
}
