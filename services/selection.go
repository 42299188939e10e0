package services

import (
	"fmt"
	"math"
)

// TierChoice names one of the two price points of a TierToggle add-on.
type TierChoice string

const (
	ChoiceBasic   TierChoice = "basic"
	ChoicePremium TierChoice = "premium"
)

// Selection is the canonical, shape-agnostic representation of a user's
// current choices. It is the only state type the calculator ever sees,
// whether the choices came from live interaction or from a stored record.
//
// Presence of an add-on id in Quantities marks the add-on as selected,
// regardless of its shape. Missing entries in any map resolve to the shape's
// declared default, never to an error.
type Selection struct {
	BuildTier  bool
	LaunchTier bool

	Quantities   map[string]int        // addon id → count
	SliderValues map[string]float64    // addon id or id:index → value
	TierChoices  map[string]TierChoice // addon id → basic|premium
	ActiveDays   map[string][]int      // id:index → 1-based day numbers

	PhotoCount     int
	ProductionDays int

	Crowdfunding        bool
	CrowdfundingTier    int // 0–3
	Fundraising         bool
	DeferPayment        bool
	FriendlyDiscountPct int // 0–20
}

// NewSelection returns an empty selection with the Build tier active and a
// single production day.
func NewSelection() Selection {
	return Selection{
		BuildTier:      true,
		Quantities:     map[string]int{},
		SliderValues:   map[string]float64{},
		TierChoices:    map[string]TierChoice{},
		ActiveDays:     map[string][]int{},
		ProductionDays: 1,
	}
}

// SubUnitKey builds the map key for one sub-unit of a multi-slider add-on.
func SubUnitKey(id string, index int) string {
	return fmt.Sprintf("%s:%d", id, index)
}

// ActiveTiers resolves the mode flags into the exclusive active tier
// combination: Fundraising alone, Build+Launch, Launch alone, or Build alone.
// A selection with no tier flag at all falls back to Build.
func (s Selection) ActiveTiers() []Tier {
	if s.Fundraising {
		return []Tier{TierFundraising}
	}
	if s.BuildTier && s.LaunchTier {
		return []Tier{TierBuild, TierLaunch}
	}
	if s.LaunchTier {
		return []Tier{TierLaunch}
	}
	return []Tier{TierBuild}
}

// Days returns the production-day count, never less than 1.
func (s Selection) Days() int {
	if s.ProductionDays < 1 {
		return 1
	}
	return s.ProductionDays
}

// IsSelected reports whether the add-on id is present in the selection.
func (s Selection) IsSelected(id string) bool {
	_, ok := s.Quantities[id]
	return ok
}

// quantity resolves the count for a quantity-shaped add-on: the stored count
// when present and positive, the shape default otherwise, clamped to the
// shape's bounds.
func (s Selection) quantity(id string, q Quantity) int {
	count, ok := s.Quantities[id]
	if !ok || count <= 0 {
		count = q.Default
	}
	if count <= 0 {
		count = 1
	}
	return clampInt(count, q.Min, q.Max)
}

// sliderValue resolves a slider value by key: the stored value when present
// and usable, the slider default otherwise, clamped to the slider bounds.
func (s Selection) sliderValue(key string, sl Slider) float64 {
	v, ok := s.SliderValues[key]
	if !ok || !isUsableNumber(v) {
		v = sl.Default
	}
	return clampFloat(v, sl.Min, sl.Max)
}

// tierChoice resolves the basic/premium choice for a tier-toggle add-on,
// defaulting to basic.
func (s Selection) tierChoice(id string) TierChoice {
	if s.TierChoices[id] == ChoicePremium {
		return ChoicePremium
	}
	return ChoiceBasic
}

// activeDays resolves the active production days for a multi-slider sub-unit.
// Absence means every production day is active. Stored day numbers outside
// [1..productionDays] are dropped; an entry that ends up empty also falls
// back to all days.
func (s Selection) activeDays(key string) []int {
	total := s.Days()
	stored, ok := s.ActiveDays[key]
	if !ok {
		return allDays(total)
	}
	var days []int
	seen := map[int]bool{}
	for _, d := range stored {
		if d >= 1 && d <= total && !seen[d] {
			days = append(days, d)
			seen[d] = true
		}
	}
	if len(days) == 0 {
		return allDays(total)
	}
	return days
}

// photoCount resolves the photo count for a photo-slider add-on, clamped to
// [IncludedPhotos..MaxPhotos].
func (s Selection) photoCount(ps PhotoSlider) int {
	count := s.PhotoCount
	if count <= 0 {
		count = ps.IncludedPhotos
	}
	return clampInt(count, ps.IncludedPhotos, ps.MaxPhotos)
}

func allDays(total int) []int {
	days := make([]int, total)
	for i := range days {
		days[i] = i + 1
	}
	return days
}

// isUsableNumber rejects the values a stale or hand-edited record can carry:
// NaN, infinities and negatives all fall back to the shape default.
func isUsableNumber(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func clampInt(v, min, max int) int {
	if max > 0 && v > max {
		v = max
	}
	if v < min {
		v = min
	}
	return v
}

func clampFloat(v, min, max float64) float64 {
	if max > 0 && v > max {
		v = max
	}
	if v < min {
		v = min
	}
	return v
}
