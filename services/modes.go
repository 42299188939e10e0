package services

// ModeMachine enforces the mode transition rules for the layer driving a
// selection: crowdfunding and fundraising are mutually exclusive, entering
// fundraising remembers the prior tier combination, and fundraising-only
// selections are cleared whenever fundraising is left. The calculator never
// sees this type; it only receives the already-resolved flags.
type ModeMachine struct {
	cat Catalog
	sel *Selection

	rememberedBuild  bool
	rememberedLaunch bool
}

// NewModeMachine wraps a selection with the mode transition rules.
func NewModeMachine(cat Catalog, sel *Selection) *ModeMachine {
	return &ModeMachine{cat: cat, sel: sel, rememberedBuild: sel.BuildTier, rememberedLaunch: sel.LaunchTier}
}

// EnterFundraising activates fundraising mode: crowdfunding turns off, the
// prior Build/Launch combination is remembered for when fundraising is left,
// and the friendly discount is cleared.
func (m *ModeMachine) EnterFundraising() {
	if m.sel.Fundraising {
		return
	}
	m.rememberedBuild = m.sel.BuildTier
	m.rememberedLaunch = m.sel.LaunchTier
	m.sel.Fundraising = true
	m.sel.BuildTier = false
	m.sel.LaunchTier = false
	m.sel.Crowdfunding = false
	m.sel.DeferPayment = false
	m.sel.FriendlyDiscountPct = 0
}

// SelectTiers activates a Build/Launch combination. Leaving the fundraising
// tab this way turns fundraising off and clears fundraising-only selections.
func (m *ModeMachine) SelectTiers(build, launch bool) {
	if m.sel.Fundraising {
		m.sel.Fundraising = false
		m.clearFundraisingSelections()
	}
	if !build && !launch {
		build = true
	}
	m.sel.BuildTier = build
	m.sel.LaunchTier = launch
	m.rememberedBuild = build
	m.rememberedLaunch = launch
}

// LeaveFundraising restores the tier combination remembered on entry.
func (m *ModeMachine) LeaveFundraising() {
	if !m.sel.Fundraising {
		return
	}
	build, launch := m.rememberedBuild, m.rememberedLaunch
	if !build && !launch {
		build = true
	}
	m.SelectTiers(build, launch)
}

// SetCrowdfunding toggles the crowdfunding program. Enabling it forces
// fundraising off (clearing fundraising-only selections) and clears the
// friendly discount; disabling it also drops the deferred-payment option.
func (m *ModeMachine) SetCrowdfunding(enabled bool, tierIndex int) {
	if enabled {
		if m.sel.Fundraising {
			m.LeaveFundraising()
		}
		m.sel.Crowdfunding = true
		m.sel.CrowdfundingTier = clampInt(tierIndex, 0, 3)
		m.sel.FriendlyDiscountPct = 0
		return
	}
	m.sel.Crowdfunding = false
	m.sel.DeferPayment = false
}

// SetFriendlyDiscount applies a manual 0–20% discount. It is ignored while
// either crowdfunding or fundraising is active.
func (m *ModeMachine) SetFriendlyDiscount(pct int) {
	if m.sel.Crowdfunding || m.sel.Fundraising {
		return
	}
	m.sel.FriendlyDiscountPct = clampInt(pct, 0, 20)
}

// clearFundraisingSelections removes every selection entry that belongs to a
// fundraising-tier add-on.
func (m *ModeMachine) clearFundraisingSelections() {
	for _, addon := range m.cat.TierAddOns(TierFundraising) {
		delete(m.sel.Quantities, addon.ID)
		delete(m.sel.TierChoices, addon.ID)
		delete(m.sel.SliderValues, addon.ID)
		if ms, ok := addon.Shape.(MultiSlider); ok {
			for i := 0; i < ms.MaxUnits; i++ {
				key := SubUnitKey(addon.ID, i)
				delete(m.sel.SliderValues, key)
				delete(m.sel.ActiveDays, key)
			}
		}
	}
}
