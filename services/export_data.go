package services

import "fmt"

// ExportRowKind distinguishes the row styles of an exported breakdown.
type ExportRowKind int

const (
	RowTierHeader ExportRowKind = iota // tier name + base fee
	RowLineItem                        // resolved add-on line
	RowIncluded                        // included add-on, no amount
)

// ExportRow is a single row of the exported quote document.
type ExportRow struct {
	Kind   ExportRowKind
	Label  string
	Amount float64
}

// ExportData holds everything the document generators need for one quote.
type ExportData struct {
	Label       string
	QuoteType   string
	CreatedDate string

	Rows []ExportRow

	Subtotal       float64
	Overhead       float64
	OverheadWaived bool
	DeferredFee    float64
	DiscountLabel  string // empty when no discount applied
	DiscountAmount float64
	Total          float64
	DepositPercent int
	Deposit        float64
}

// BuildExportData flattens a computed breakdown into the row list consumed
// by the Excel and PDF generators. The export layer never recomputes prices.
func BuildExportData(label, quoteType, createdDate string, b Breakdown) ExportData {
	data := ExportData{
		Label:          label,
		QuoteType:      quoteType,
		CreatedDate:    createdDate,
		Subtotal:       b.Subtotal,
		Overhead:       b.Overhead,
		OverheadWaived: b.OverheadWaived,
		DeferredFee:    b.DeferredFee,
		DiscountAmount: b.DiscountAmount,
		Total:          b.Total,
		DepositPercent: b.DepositPercent,
		Deposit:        b.Deposit,
	}

	switch b.DiscountProgram {
	case DiscountCrowdfunding:
		data.DiscountLabel = fmt.Sprintf("Crowdfunding Discount (%d%%)", b.DiscountPercent)
	case DiscountFriendly:
		data.DiscountLabel = fmt.Sprintf("Friendly Discount (%d%%)", b.DiscountPercent)
	}

	for _, tier := range b.Tiers {
		data.Rows = append(data.Rows, ExportRow{
			Kind:   RowTierHeader,
			Label:  TierDisplayName(tier.Tier) + " — Base Fee",
			Amount: tier.BaseFee,
		})
		for _, line := range tier.Lines {
			kind := RowLineItem
			if line.Included {
				kind = RowIncluded
			}
			data.Rows = append(data.Rows, ExportRow{Kind: kind, Label: line.Name, Amount: line.Price})
		}
	}
	return data
}

// TierDisplayName renders a tier id for documents and views.
func TierDisplayName(tier Tier) string {
	switch tier {
	case TierBuild:
		return "Build"
	case TierLaunch:
		return "Launch"
	case TierFundraising:
		return "Fundraising"
	}
	return string(tier)
}
