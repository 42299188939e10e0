package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// CompareLine is one aligned line item row of the comparison table.
type CompareLine struct {
	Name           string
	ReferencePrice string // empty when the line is candidate-only
	CandidatePrice string // empty when the line is reference-only
	Status         string // unchanged/added/removed/increased/decreased
}

// CompareTier is one aligned tier block.
type CompareTier struct {
	Name             string
	ReferenceBaseFee string
	CandidateBaseFee string
	Lines            []CompareLine
}

// CompareSummaryRow is a single top-level comparison row (overhead,
// discount, total, deposit).
type CompareSummaryRow struct {
	Label     string
	Reference string
	Candidate string
}

// CompareData backs the side-by-side comparison page.
type CompareData struct {
	CandidateID    string
	ReferenceLabel string
	CandidateLabel string
	Tiers          []CompareTier
	Summary        []CompareSummaryRow
}

// CompareContent renders the two-column comparison fragment. Row order comes
// from the comparison engine and is preserved as-is so both columns stay
// visually aligned.
func CompareContent(data CompareData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<div id="quote-compare"><h2>Quote Comparison</h2>`)
		fmt.Fprintf(w, `<table class="compare"><thead><tr><th>Item</th><th>%s</th><th>%s</th></tr></thead><tbody>`,
			esc(data.ReferenceLabel), esc(data.CandidateLabel))

		for _, tier := range data.Tiers {
			fmt.Fprintf(w, `<tr class="tier-header"><td>%s — Base Fee</td><td>%s</td><td>%s</td></tr>`,
				esc(tier.Name), esc(tier.ReferenceBaseFee), esc(tier.CandidateBaseFee))
			for _, line := range tier.Lines {
				fmt.Fprintf(w, `<tr class="line %s"><td>%s</td><td>%s</td><td>%s</td></tr>`,
					esc(line.Status), esc(line.Name), esc(line.ReferencePrice), esc(line.CandidatePrice))
			}
		}

		for _, row := range data.Summary {
			fmt.Fprintf(w, `<tr class="summary"><td>%s</td><td>%s</td><td>%s</td></tr>`,
				esc(row.Label), esc(row.Reference), esc(row.Candidate))
		}

		_, err := io.WriteString(w, `</tbody></table></div>`)
		return err
	})
}

// ComparePage renders the full comparison page.
func ComparePage(data CompareData) templ.Component {
	return Page("Compare "+data.CandidateLabel, CompareContent(data))
}
