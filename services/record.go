package services

// Quote type values as persisted by the storage layer. "scale" is a legacy
// alias that prices against the Build tier.
const (
	QuoteTypeBuild       = "build"
	QuoteTypeLaunch      = "launch"
	QuoteTypeScale       = "scale"
	QuoteTypeFundraising = "fundraising"
)

// QuoteRecord is the serializable wire shape of a quote option: the same
// fields as Selection but in plain structures, plus display metadata. It is
// what the storage collaborator persists and what Reconcile consumes.
type QuoteRecord struct {
	Label         string `json:"label"`
	QuoteType     string `json:"quote_type"`
	IncludeLaunch bool   `json:"include_launch"` // Build+Launch combination, only with quote_type=build

	SelectedAddOns map[string]int     `json:"selected_addons"`
	SliderValues   map[string]float64 `json:"slider_values"`
	TierSelections map[string]string  `json:"tier_selections"`
	LocationDays   map[string][]int   `json:"location_days"`

	PhotoCount     int `json:"photo_count"`
	ProductionDays int `json:"production_days"`

	CrowdfundingEnabled bool `json:"crowdfunding_enabled"`
	CrowdfundingTier    int  `json:"crowdfunding_tier"`
	FundraisingEnabled  bool `json:"fundraising_enabled"`
	DeferPayment        bool `json:"defer_payment"`
	FriendlyDiscountPct int  `json:"friendly_discount_pct"`

	IsLocked bool `json:"is_locked"`
}

// Reconcile converts a stored record into the canonical selection state so
// the calculator applies unchanged to saved quotes. Partial or older records
// reconcile without error: missing maps become empty maps, unusable numbers
// are dropped so the shape defaults apply, and mode flags are normalized to
// the documented exclusivity rules.
func Reconcile(rec QuoteRecord) Selection {
	sel := NewSelection()

	switch rec.QuoteType {
	case QuoteTypeLaunch:
		sel.BuildTier = false
		sel.LaunchTier = true
	case QuoteTypeFundraising:
		sel.BuildTier = false
		sel.Fundraising = true
	default:
		// build, scale and anything unrecognized price against Build.
		sel.BuildTier = true
		sel.LaunchTier = rec.QuoteType == QuoteTypeBuild && rec.IncludeLaunch
	}

	for id, count := range rec.SelectedAddOns {
		if count < 0 {
			count = 0
		}
		sel.Quantities[id] = count
	}
	for key, v := range rec.SliderValues {
		if isUsableNumber(v) {
			sel.SliderValues[key] = v
		}
	}
	for id, choice := range rec.TierSelections {
		switch TierChoice(choice) {
		case ChoiceBasic, ChoicePremium:
			sel.TierChoices[id] = TierChoice(choice)
		}
	}
	for key, days := range rec.LocationDays {
		sel.ActiveDays[key] = append([]int(nil), days...)
	}

	if rec.PhotoCount > 0 {
		sel.PhotoCount = rec.PhotoCount
	}
	if rec.ProductionDays >= 1 {
		sel.ProductionDays = rec.ProductionDays
	}

	if !sel.Fundraising {
		sel.Crowdfunding = rec.CrowdfundingEnabled
		sel.CrowdfundingTier = clampInt(rec.CrowdfundingTier, 0, 3)
		sel.DeferPayment = rec.CrowdfundingEnabled && rec.DeferPayment
		if !sel.Crowdfunding {
			sel.FriendlyDiscountPct = clampInt(rec.FriendlyDiscountPct, 0, 20)
		}
	}

	return sel
}

// Serialize converts a canonical selection state back into the wire shape.
// Reconcile(Serialize(s)) computes the same breakdown as s for any state s.
func Serialize(sel Selection, label string, locked bool) QuoteRecord {
	rec := QuoteRecord{
		Label:               label,
		SelectedAddOns:      map[string]int{},
		SliderValues:        map[string]float64{},
		TierSelections:      map[string]string{},
		LocationDays:        map[string][]int{},
		PhotoCount:          sel.PhotoCount,
		ProductionDays:      sel.Days(),
		CrowdfundingEnabled: sel.Crowdfunding,
		CrowdfundingTier:    clampInt(sel.CrowdfundingTier, 0, 3),
		FundraisingEnabled:  sel.Fundraising,
		DeferPayment:        sel.Crowdfunding && sel.DeferPayment,
		FriendlyDiscountPct: clampInt(sel.FriendlyDiscountPct, 0, 20),
		IsLocked:            locked,
	}

	switch {
	case sel.Fundraising:
		rec.QuoteType = QuoteTypeFundraising
	case sel.BuildTier && sel.LaunchTier:
		rec.QuoteType = QuoteTypeBuild
		rec.IncludeLaunch = true
	case sel.LaunchTier:
		rec.QuoteType = QuoteTypeLaunch
	default:
		rec.QuoteType = QuoteTypeBuild
	}

	for id, count := range sel.Quantities {
		rec.SelectedAddOns[id] = count
	}
	for key, v := range sel.SliderValues {
		rec.SliderValues[key] = v
	}
	for id, choice := range sel.TierChoices {
		rec.TierSelections[id] = string(choice)
	}
	for key, days := range sel.ActiveDays {
		rec.LocationDays[key] = append([]int(nil), days...)
	}

	return rec
}
