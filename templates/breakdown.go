package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// BreakdownLine is one formatted line item row.
type BreakdownLine struct {
	Name     string
	Price    string
	Included bool
}

// BreakdownTier is one formatted tier block of the breakdown panel.
type BreakdownTier struct {
	Name     string
	BaseFee  string
	Lines    []BreakdownLine
	Subtotal string
}

// BreakdownView is the fully formatted breakdown panel data. All amounts
// arrive preformatted; the component only lays them out.
type BreakdownView struct {
	Tiers []BreakdownTier

	Subtotal       string
	Overhead       string
	OverheadWaived bool
	DeferredFee    string
	HasDeferred    bool
	DiscountLabel  string
	Discount       string
	HasDiscount    bool
	Total          string
	DepositLabel   string
	Deposit        string
}

// BreakdownPanel renders the priced breakdown of one quote. It is also used
// as the HTMX swap target after every field patch.
func BreakdownPanel(v BreakdownView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div id="breakdown" class="breakdown">`); err != nil {
			return err
		}
		for _, tier := range v.Tiers {
			fmt.Fprintf(w, `<section class="breakdown-tier"><h3>%s</h3>`, esc(tier.Name))
			fmt.Fprintf(w, `<div class="row base-fee"><span>Base Fee</span><span>%s</span></div>`, esc(tier.BaseFee))
			for _, line := range tier.Lines {
				price := esc(line.Price)
				if line.Included {
					price = "Included"
				}
				fmt.Fprintf(w, `<div class="row line"><span>%s</span><span>%s</span></div>`, esc(line.Name), price)
			}
			fmt.Fprintf(w, `<div class="row tier-subtotal"><span>Add-ons</span><span>%s</span></div></section>`, esc(tier.Subtotal))
		}

		fmt.Fprintf(w, `<div class="row subtotal"><span>Subtotal</span><span>%s</span></div>`, esc(v.Subtotal))
		if v.OverheadWaived {
			io.WriteString(w, `<div class="row overhead waived"><span>Production Overhead</span><span>Waived</span></div>`)
		} else {
			fmt.Fprintf(w, `<div class="row overhead"><span>Production Overhead</span><span>%s</span></div>`, esc(v.Overhead))
		}
		if v.HasDeferred {
			fmt.Fprintf(w, `<div class="row deferred"><span>Deferred Payment Fee</span><span>%s</span></div>`, esc(v.DeferredFee))
		}
		if v.HasDiscount {
			fmt.Fprintf(w, `<div class="row discount"><span>%s</span><span>-%s</span></div>`, esc(v.DiscountLabel), esc(v.Discount))
		}
		fmt.Fprintf(w, `<div class="row total"><span>Total</span><span>%s</span></div>`, esc(v.Total))
		fmt.Fprintf(w, `<div class="row deposit"><span>%s</span><span>%s</span></div>`, esc(v.DepositLabel), esc(v.Deposit))

		_, err := io.WriteString(w, `</div>`)
		return err
	})
}
