package services

// DiffStatus classifies a line item within an aligned comparison.
type DiffStatus string

const (
	DiffUnchanged DiffStatus = "unchanged"
	DiffAdded     DiffStatus = "added"     // present only in the candidate
	DiffRemoved   DiffStatus = "removed"   // present only in the reference
	DiffIncreased DiffStatus = "increased" // candidate priced above the reference
	DiffDecreased DiffStatus = "decreased" // candidate priced below the reference
)

// LineDiff is one aligned line item row of the comparison.
type LineDiff struct {
	Key            string
	Name           string
	InReference    bool
	InCandidate    bool
	ReferencePrice float64
	CandidatePrice float64
	Status         DiffStatus
}

// TierDiff is the aligned comparison of one tier block.
type TierDiff struct {
	Tier              Tier
	InReference       bool
	InCandidate       bool
	ReferenceBaseFee  float64
	CandidateBaseFee  float64
	Lines             []LineDiff
	ReferenceSubtotal float64
	CandidateSubtotal float64
}

// AmountDiff is a single top-level comparison row (overhead, discount,
// total, deposit). Waived marks an overhead that was waived on that side.
type AmountDiff struct {
	Reference       float64
	Candidate       float64
	ReferenceWaived bool
	CandidateWaived bool
}

// Comparison is the aligned diff of two breakdowns, shaped for paired
// two-column display.
type Comparison struct {
	Tiers    []TierDiff
	Overhead AmountDiff
	Discount AmountDiff
	Total    AmountDiff
	Deposit  AmountDiff
}

// Diff aligns a candidate breakdown against a reference breakdown (typically
// the agency's recommended quote). Within each tier block the reference's
// line order is preserved and candidate-only lines are appended at the end,
// which keeps the two columns visually stable. Overhead, discount, total and
// deposit are diffed as single top-level rows, not as line items.
func Diff(reference, candidate Breakdown) Comparison {
	cmp := Comparison{
		Overhead: AmountDiff{
			Reference:       reference.Overhead,
			Candidate:       candidate.Overhead,
			ReferenceWaived: reference.OverheadWaived,
			CandidateWaived: candidate.OverheadWaived,
		},
		Discount: AmountDiff{Reference: reference.DiscountAmount, Candidate: candidate.DiscountAmount},
		Total:    AmountDiff{Reference: reference.Total, Candidate: candidate.Total},
		Deposit:  AmountDiff{Reference: reference.Deposit, Candidate: candidate.Deposit},
	}

	candTiers := map[Tier]TierBreakdown{}
	for _, tb := range candidate.Tiers {
		candTiers[tb.Tier] = tb
	}

	seen := map[Tier]bool{}
	for _, ref := range reference.Tiers {
		cand, inCand := candTiers[ref.Tier]
		cmp.Tiers = append(cmp.Tiers, diffTier(&ref, &cand, true, inCand))
		seen[ref.Tier] = true
	}
	for _, cand := range candidate.Tiers {
		if !seen[cand.Tier] {
			cmp.Tiers = append(cmp.Tiers, diffTier(nil, &cand, false, true))
		}
	}
	return cmp
}

func diffTier(ref, cand *TierBreakdown, inRef, inCand bool) TierDiff {
	td := TierDiff{InReference: inRef, InCandidate: inCand}

	var candLines []LineItem
	if inCand {
		td.Tier = cand.Tier
		td.CandidateBaseFee = cand.BaseFee
		td.CandidateSubtotal = cand.Subtotal
		candLines = cand.Lines
	}
	var refLines []LineItem
	if inRef {
		td.Tier = ref.Tier
		td.ReferenceBaseFee = ref.BaseFee
		td.ReferenceSubtotal = ref.Subtotal
		refLines = ref.Lines
	}

	candByKey := map[string]LineItem{}
	for _, line := range candLines {
		candByKey[line.Key] = line
	}

	matched := map[string]bool{}
	for _, refLine := range refLines {
		ld := LineDiff{
			Key:            refLine.Key,
			Name:           refLine.Name,
			InReference:    true,
			ReferencePrice: refLine.Price,
		}
		if candLine, ok := candByKey[refLine.Key]; ok {
			matched[refLine.Key] = true
			ld.InCandidate = true
			ld.CandidatePrice = candLine.Price
			switch {
			case candLine.Price > refLine.Price:
				ld.Status = DiffIncreased
			case candLine.Price < refLine.Price:
				ld.Status = DiffDecreased
			default:
				ld.Status = DiffUnchanged
			}
		} else {
			ld.Status = DiffRemoved
		}
		td.Lines = append(td.Lines, ld)
	}

	// Candidate-only lines append after the reference block, in candidate order.
	for _, candLine := range candLines {
		if matched[candLine.Key] {
			continue
		}
		td.Lines = append(td.Lines, LineDiff{
			Key:            candLine.Key,
			Name:           candLine.Name,
			InCandidate:    true,
			CandidatePrice: candLine.Price,
			Status:         DiffAdded,
		})
	}
	return td
}
