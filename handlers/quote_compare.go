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

// HandleQuoteCompare returns a handler that renders a quote side by side with
// a reference quote. The reference defaults to the recommended quote of the
// same type; a ?ref=<id> query parameter overrides it.
func HandleQuoteCompare(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(400, "Missing quote ID")
		}

		candRecord, candRec, err := loadQuoteRecord(app, quoteID)
		if err != nil {
			log.Printf("quote_compare: %v", err)
			return e.String(404, "Quote not found")
		}

		refRec, ok := findReferenceQuote(app, candRecord.Id, candRec.QuoteType, e.Request.URL.Query().Get("ref"))
		if !ok {
			// Nothing to compare against; diff the quote against itself so
			// the page still renders a stable two-column view.
			refRec = candRec
		}

		cat := catalog.Default()
		reference := services.Compute(cat, services.Reconcile(refRec))
		candidate := services.Compute(cat, services.Reconcile(candRec))
		cmp := services.Diff(reference, candidate)

		data := buildCompareData(candRecord.Id, refRec.Label, candRec.Label, cmp)

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.CompareContent(data)
		} else {
			component = templates.ComparePage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// findReferenceQuote resolves the comparison reference: the explicit ref id
// when given, otherwise the recommended quote of the same type.
func findReferenceQuote(app *pocketbase.PocketBase, candidateID, quoteType, refID string) (services.QuoteRecord, bool) {
	if refID != "" && refID != candidateID {
		if _, rec, err := loadQuoteRecord(app, refID); err == nil {
			return rec, true
		}
		log.Printf("quote_compare: reference %s not found, falling back to recommended", refID)
	}

	records, err := app.FindRecordsByFilter(
		"quotes",
		"recommended = true && quote_type = {:quoteType} && deleted = false && id != {:candidateId}",
		"-updated", 1, 0,
		map[string]any{"quoteType": quoteType, "candidateId": candidateID},
	)
	if err != nil || len(records) == 0 {
		return services.QuoteRecord{}, false
	}
	return recordToQuoteRecord(records[0]), true
}

// buildCompareData formats an aligned comparison for the template.
func buildCompareData(candidateID, refLabel, candLabel string, cmp services.Comparison) templates.CompareData {
	data := templates.CompareData{
		CandidateID:    candidateID,
		ReferenceLabel: refLabel,
		CandidateLabel: candLabel,
	}

	for _, tier := range cmp.Tiers {
		ct := templates.CompareTier{Name: services.TierDisplayName(tier.Tier)}
		if tier.InReference {
			ct.ReferenceBaseFee = services.FormatUSD(tier.ReferenceBaseFee)
		}
		if tier.InCandidate {
			ct.CandidateBaseFee = services.FormatUSD(tier.CandidateBaseFee)
		}
		for _, line := range tier.Lines {
			cl := templates.CompareLine{Name: line.Name, Status: string(line.Status)}
			if line.InReference {
				cl.ReferencePrice = services.FormatUSD(line.ReferencePrice)
			}
			if line.InCandidate {
				cl.CandidatePrice = services.FormatUSD(line.CandidatePrice)
			}
			ct.Lines = append(ct.Lines, cl)
		}
		data.Tiers = append(data.Tiers, ct)
	}

	data.Summary = []templates.CompareSummaryRow{
		{
			Label:     "Production Overhead",
			Reference: overheadCell(cmp.Overhead.Reference, cmp.Overhead.ReferenceWaived),
			Candidate: overheadCell(cmp.Overhead.Candidate, cmp.Overhead.CandidateWaived),
		},
		{
			Label:     "Discount",
			Reference: services.FormatUSD(cmp.Discount.Reference),
			Candidate: services.FormatUSD(cmp.Discount.Candidate),
		},
		{
			Label:     "Total",
			Reference: services.FormatUSD(cmp.Total.Reference),
			Candidate: services.FormatUSD(cmp.Total.Candidate),
		},
		{
			Label:     "Deposit",
			Reference: services.FormatUSD(cmp.Deposit.Reference),
			Candidate: services.FormatUSD(cmp.Deposit.Candidate),
		},
	}
	return data
}

func overheadCell(amount float64, waived bool) string {
	if waived {
		return "Waived"
	}
	return services.FormatUSD(amount)
}
