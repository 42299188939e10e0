package services

import "testing"

func TestEnterFundraisingClearsPrograms(t *testing.T) {
	cat := testCatalog()
	sel := NewSelection()
	sel.LaunchTier = true
	sel.Crowdfunding = true
	sel.CrowdfundingTier = 2
	sel.DeferPayment = true

	m := NewModeMachine(cat, &sel)
	m.EnterFundraising()

	if !sel.Fundraising {
		t.Fatal("fundraising not active")
	}
	if sel.BuildTier || sel.LaunchTier {
		t.Error("tier flags not cleared")
	}
	if sel.Crowdfunding || sel.DeferPayment {
		t.Error("crowdfunding flags not cleared")
	}
	if sel.FriendlyDiscountPct != 0 {
		t.Error("friendly discount not cleared")
	}
}

func TestLeaveFundraisingRestoresTiers(t *testing.T) {
	cat := testCatalog()
	sel := NewSelection()
	sel.LaunchTier = true

	m := NewModeMachine(cat, &sel)
	m.EnterFundraising()
	m.LeaveFundraising()

	if sel.Fundraising {
		t.Fatal("fundraising still active")
	}
	if !sel.BuildTier || !sel.LaunchTier {
		t.Errorf("tiers = build %v launch %v, want both restored", sel.BuildTier, sel.LaunchTier)
	}
}

func TestLeaveFundraisingDefaultsToBuild(t *testing.T) {
	cat := testCatalog()
	sel := NewSelection()
	sel.BuildTier = false
	sel.Fundraising = true

	m := NewModeMachine(cat, &sel)
	m.LeaveFundraising()

	if !sel.BuildTier || sel.LaunchTier {
		t.Errorf("tiers = build %v launch %v, want build only", sel.BuildTier, sel.LaunchTier)
	}
}

func TestSelectTiersClearsFundraisingSelections(t *testing.T) {
	cat := testCatalog()
	sel := NewSelection()
	sel.Quantities["workshop"] = 1

	m := NewModeMachine(cat, &sel)
	m.EnterFundraising()
	sel.Quantities["pledge"] = 1
	sel.SliderValues["pledge"] = 2000
	sel.Quantities["crew"] = 3

	m.SelectTiers(true, false)

	if sel.Fundraising {
		t.Fatal("fundraising still active")
	}
	if _, ok := sel.Quantities["pledge"]; ok {
		t.Error("fundraising selection survived")
	}
	if _, ok := sel.SliderValues["pledge"]; ok {
		t.Error("fundraising slider value survived")
	}
	if _, ok := sel.Quantities["crew"]; ok {
		t.Error("fundraising quantity survived")
	}
	if _, ok := sel.Quantities["workshop"]; !ok {
		t.Error("build selection wrongly cleared")
	}
}

func TestSelectTiersNeverEmpty(t *testing.T) {
	cat := testCatalog()
	sel := NewSelection()

	m := NewModeMachine(cat, &sel)
	m.SelectTiers(false, false)

	if !sel.BuildTier {
		t.Error("empty tier combination did not fall back to build")
	}
}

func TestSetCrowdfundingExclusive(t *testing.T) {
	cat := testCatalog()
	sel := NewSelection()
	sel.BuildTier = false
	sel.Fundraising = true

	m := NewModeMachine(cat, &sel)
	m.SetCrowdfunding(true, 2)

	if sel.Fundraising {
		t.Error("fundraising survived crowdfunding activation")
	}
	if !sel.Crowdfunding || sel.CrowdfundingTier != 2 {
		t.Errorf("crowdfunding = %v tier %d", sel.Crowdfunding, sel.CrowdfundingTier)
	}

	m.SetCrowdfunding(false, 0)
	if sel.Crowdfunding {
		t.Error("crowdfunding still active")
	}
	if sel.DeferPayment {
		t.Error("deferral survived crowdfunding deactivation")
	}
}

func TestSetCrowdfundingClampsTier(t *testing.T) {
	cat := testCatalog()
	sel := NewSelection()

	m := NewModeMachine(cat, &sel)
	m.SetCrowdfunding(true, 99)
	if sel.CrowdfundingTier != 3 {
		t.Errorf("CrowdfundingTier = %d, want 3", sel.CrowdfundingTier)
	}
}

func TestSetFriendlyDiscount(t *testing.T) {
	cat := testCatalog()
	sel := NewSelection()

	m := NewModeMachine(cat, &sel)
	m.SetFriendlyDiscount(15)
	if sel.FriendlyDiscountPct != 15 {
		t.Errorf("FriendlyDiscountPct = %d, want 15", sel.FriendlyDiscountPct)
	}

	m.SetFriendlyDiscount(99)
	if sel.FriendlyDiscountPct != 20 {
		t.Errorf("FriendlyDiscountPct = %d, want clamped 20", sel.FriendlyDiscountPct)
	}

	// Ignored while a program is active.
	m.SetCrowdfunding(true, 1)
	m.SetFriendlyDiscount(10)
	if sel.FriendlyDiscountPct != 0 {
		t.Errorf("FriendlyDiscountPct = %d, want 0 under crowdfunding", sel.FriendlyDiscountPct)
	}

	m.SetCrowdfunding(false, 0)
	m.EnterFundraising()
	m.SetFriendlyDiscount(10)
	if sel.FriendlyDiscountPct != 0 {
		t.Errorf("FriendlyDiscountPct = %d, want 0 under fundraising", sel.FriendlyDiscountPct)
	}
}
