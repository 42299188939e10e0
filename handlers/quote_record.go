package handlers

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotecraft/services"
	"quotecraft/templates"
)

// loadQuoteRecord fetches a quote by id and maps it onto the wire shape the
// pricing engine reconciles. Soft-deleted quotes behave as missing.
func loadQuoteRecord(app core.App, quoteID string) (*core.Record, services.QuoteRecord, error) {
	record, err := app.FindRecordById("quotes", quoteID)
	if err != nil {
		return nil, services.QuoteRecord{}, fmt.Errorf("quote %s not found: %w", quoteID, err)
	}
	if record.GetBool("deleted") {
		return nil, services.QuoteRecord{}, fmt.Errorf("quote %s is deleted", quoteID)
	}
	return record, recordToQuoteRecord(record), nil
}

// recordToQuoteRecord maps a stored quote onto the engine's wire shape. JSON
// fields that fail to unmarshal are left nil; reconciliation treats them as
// empty maps.
func recordToQuoteRecord(record *core.Record) services.QuoteRecord {
	rec := services.QuoteRecord{
		Label:               record.GetString("label"),
		QuoteType:           record.GetString("quote_type"),
		IncludeLaunch:       record.GetBool("include_launch"),
		PhotoCount:          record.GetInt("photo_count"),
		ProductionDays:      record.GetInt("production_days"),
		CrowdfundingEnabled: record.GetBool("crowdfunding_enabled"),
		CrowdfundingTier:    record.GetInt("crowdfunding_tier"),
		FundraisingEnabled:  record.GetBool("fundraising_enabled"),
		DeferPayment:        record.GetBool("defer_payment"),
		FriendlyDiscountPct: record.GetInt("friendly_discount_pct"),
		IsLocked:            record.GetBool("is_locked"),
	}

	if err := record.UnmarshalJSONField("selected_addons", &rec.SelectedAddOns); err != nil {
		log.Printf("quote_record: bad selected_addons on %s: %v", record.Id, err)
	}
	if err := record.UnmarshalJSONField("slider_values", &rec.SliderValues); err != nil {
		log.Printf("quote_record: bad slider_values on %s: %v", record.Id, err)
	}
	if err := record.UnmarshalJSONField("tier_selections", &rec.TierSelections); err != nil {
		log.Printf("quote_record: bad tier_selections on %s: %v", record.Id, err)
	}
	if err := record.UnmarshalJSONField("location_days", &rec.LocationDays); err != nil {
		log.Printf("quote_record: bad location_days on %s: %v", record.Id, err)
	}

	return rec
}

// storeQuoteRecord writes a wire-shape record back onto the stored quote and
// saves it. Label, lock state and the recommended flag are not touched here.
func storeQuoteRecord(app *pocketbase.PocketBase, record *core.Record, rec services.QuoteRecord) error {
	record.Set("quote_type", rec.QuoteType)
	record.Set("include_launch", rec.IncludeLaunch)
	record.Set("selected_addons", rec.SelectedAddOns)
	record.Set("slider_values", rec.SliderValues)
	record.Set("tier_selections", rec.TierSelections)
	record.Set("location_days", rec.LocationDays)
	record.Set("photo_count", rec.PhotoCount)
	record.Set("production_days", rec.ProductionDays)
	record.Set("crowdfunding_enabled", rec.CrowdfundingEnabled)
	record.Set("crowdfunding_tier", rec.CrowdfundingTier)
	record.Set("fundraising_enabled", rec.FundraisingEnabled)
	record.Set("defer_payment", rec.DeferPayment)
	record.Set("friendly_discount_pct", rec.FriendlyDiscountPct)

	if err := app.Save(record); err != nil {
		return fmt.Errorf("save quote %s: %w", record.Id, err)
	}
	return nil
}

// buildBreakdownView formats a computed breakdown for the panel template.
func buildBreakdownView(b services.Breakdown) templates.BreakdownView {
	view := templates.BreakdownView{
		Subtotal:       services.FormatUSD(b.Subtotal),
		Overhead:       services.FormatUSD(b.Overhead),
		OverheadWaived: b.OverheadWaived,
		DeferredFee:    services.FormatUSD(b.DeferredFee),
		HasDeferred:    b.DeferredFee > 0,
		HasDiscount:    b.DiscountAmount > 0,
		Discount:       services.FormatUSD(b.DiscountAmount),
		Total:          services.FormatUSD(b.Total),
		DepositLabel:   fmt.Sprintf("Deposit Due (%d%%)", b.DepositPercent),
		Deposit:        services.FormatUSD(b.Deposit),
	}

	switch b.DiscountProgram {
	case services.DiscountCrowdfunding:
		view.DiscountLabel = fmt.Sprintf("Crowdfunding Discount (%d%%)", b.DiscountPercent)
	case services.DiscountFriendly:
		view.DiscountLabel = fmt.Sprintf("Friendly Discount (%d%%)", b.DiscountPercent)
	}

	for _, tier := range b.Tiers {
		tv := templates.BreakdownTier{
			Name:     services.TierDisplayName(tier.Tier),
			BaseFee:  services.FormatUSD(tier.BaseFee),
			Subtotal: services.FormatUSD(tier.Subtotal),
		}
		for _, line := range tier.Lines {
			tv.Lines = append(tv.Lines, templates.BreakdownLine{
				Name:     line.Name,
				Price:    services.FormatUSD(line.Price),
				Included: line.Included,
			})
		}
		view.Tiers = append(view.Tiers, tv)
	}
	return view
}

// formatRecordDate renders a record datetime field for display.
func formatRecordDate(record *core.Record, field string) string {
	if dt := record.GetDateTime(field); !dt.IsZero() {
		return dt.Time().Format("02 Jan 2006")
	}
	return "—"
}
