package services

import "math"

// DiscountProgram identifies which (if any) of the mutually exclusive
// discount programs applied to a breakdown.
type DiscountProgram string

const (
	DiscountNone         DiscountProgram = "none"
	DiscountCrowdfunding DiscountProgram = "crowdfunding"
	DiscountFriendly     DiscountProgram = "friendly"
)

// crowdfundingDiscountPcts maps the crowdfunding discount tier index to its
// discount percentage.
var crowdfundingDiscountPcts = [4]int{0, 10, 20, 30}

// TierBreakdown is the priced result of one active tier.
type TierBreakdown struct {
	Tier     Tier
	BaseFee  float64
	Lines    []LineItem
	Subtotal float64 // add-on lines only, excludes the base fee
}

// Breakdown is the complete computed output of the pricing engine for one
// selection state. It is ephemeral: never persisted, always re-derivable.
type Breakdown struct {
	Tiers []TierBreakdown

	Subtotal       float64 // base fees + all tier subtotals
	Overhead       float64
	OverheadWaived bool
	DeferredFee    float64

	DiscountProgram DiscountProgram
	DiscountPercent int
	DiscountAmount  float64

	Total          float64
	DepositPercent int
	Deposit        float64
}

// Compute turns a catalog and a selection state into a complete priced
// breakdown. It is pure, deterministic and total: malformed or partial
// selections resolve to defaults and never fail.
func Compute(cat Catalog, sel Selection) Breakdown {
	var b Breakdown
	var protected float64
	anyAddOns := false

	for _, tier := range sel.ActiveTiers() {
		res := ResolveTier(cat, tier, sel)
		tb := TierBreakdown{
			Tier:     tier,
			BaseFee:  cat.BaseFee(tier),
			Lines:    res.Lines,
			Subtotal: res.Subtotal,
		}
		b.Tiers = append(b.Tiers, tb)
		b.Subtotal += tb.BaseFee + tb.Subtotal
		protected += res.ProtectedSubtotal
		if res.Subtotal > 0 {
			anyAddOns = true
		}
	}

	// Overhead is waived when no add-ons were purchased in any active tier.
	if anyAddOns {
		b.Overhead = math.Round(b.Subtotal * cat.OverheadRate)
	} else {
		b.OverheadWaived = true
	}

	crowdfunding := sel.Crowdfunding && !sel.Fundraising
	tierIndex := clampInt(sel.CrowdfundingTier, 0, 3)

	if crowdfunding && sel.DeferPayment {
		pct := 0.05
		if tierIndex == 0 {
			pct = 0.10
		}
		b.DeferredFee = math.Round((b.Subtotal + b.Overhead) * pct)
	}

	discountableBase := b.Subtotal + b.Overhead + b.DeferredFee - protected

	switch {
	case crowdfunding:
		b.DiscountProgram = DiscountCrowdfunding
		b.DiscountPercent = crowdfundingDiscountPcts[tierIndex]
	case !sel.Fundraising && sel.FriendlyDiscountPct > 0:
		b.DiscountProgram = DiscountFriendly
		b.DiscountPercent = clampInt(sel.FriendlyDiscountPct, 0, 20)
	default:
		b.DiscountProgram = DiscountNone
	}
	if b.DiscountPercent > 0 {
		b.DiscountAmount = math.Round(discountableBase * float64(b.DiscountPercent) / 100)
	} else {
		b.DiscountProgram = DiscountNone
	}

	rawTotal := b.Subtotal + b.Overhead + b.DeferredFee - b.DiscountAmount

	// Discounted totals round up to the next multiple of 50; undiscounted
	// totals stay exact.
	if b.DiscountAmount > 0 {
		b.Total = ceilTo50(rawTotal)
	} else {
		b.Total = rawTotal
	}

	b.DepositPercent = 40
	if sel.Fundraising {
		b.DepositPercent = 20
	}
	rawDeposit := math.Round(b.Total * float64(b.DepositPercent) / 100)
	if b.DiscountAmount > 0 {
		b.Deposit = ceilTo50(rawDeposit)
	} else {
		b.Deposit = rawDeposit
	}

	return b
}

// ceilTo50 rounds an amount up to the next multiple of 50.
func ceilTo50(amount float64) float64 {
	return math.Ceil(amount/50) * 50
}
