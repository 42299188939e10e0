package services

import (
	"math"
	"testing"
)

func TestResolveTierShapes(t *testing.T) {
	cat := testCatalog()

	tests := []struct {
		name      string
		setup     func(*Selection)
		key       string
		wantName  string
		wantPrice float64
	}{
		{
			"toggle flat price ignores days",
			func(s *Selection) {
				s.Quantities["workshop"] = 1
				s.ProductionDays = 3
			},
			"workshop", "Strategy Workshop", 1500,
		},
		{
			"toggle per day multiplies",
			func(s *Selection) {
				s.Quantities["drone"] = 1
				s.ProductionDays = 2
			},
			"drone", "Drone Coverage", 1500,
		},
		{
			"quantity counts and days",
			func(s *Selection) {
				s.Quantities["actors"] = 3
				s.ProductionDays = 2
			},
			"actors", "Actors × 3", 2400,
		},
		{
			"quantity zero falls back to default",
			func(s *Selection) {
				s.Quantities["actors"] = 0
				s.ProductionDays = 2
			},
			"actors", "Actors", 800,
		},
		{
			"quantity clamped to max",
			func(s *Selection) { s.Quantities["actors"] = 99 },
			"actors", "Actors × 10", 4000,
		},
		{
			"slider uses stored value",
			func(s *Selection) {
				s.Quantities["producer"] = 1
				s.SliderValues["producer"] = 1000
			},
			"producer", "Producer", 1000,
		},
		{
			"slider missing value uses default",
			func(s *Selection) { s.Quantities["producer"] = 1 },
			"producer", "Producer", 1200,
		},
		{
			"slider clamped to max",
			func(s *Selection) {
				s.Quantities["producer"] = 1
				s.SliderValues["producer"] = 99999
			},
			"producer", "Producer", 2500,
		},
		{
			"slider NaN falls back to default",
			func(s *Selection) {
				s.Quantities["producer"] = 1
				s.SliderValues["producer"] = math.NaN()
			},
			"producer", "Producer", 1200,
		},
		{
			"slider negative falls back to default",
			func(s *Selection) {
				s.Quantities["producer"] = 1
				s.SliderValues["producer"] = -500
			},
			"producer", "Producer", 1200,
		},
		{
			"tier toggle defaults to basic",
			func(s *Selection) {
				s.Quantities["editing"] = 1
				s.ProductionDays = 2
			},
			"editing", "Editing Suite (Basic)", 700,
		},
		{
			"tier toggle premium",
			func(s *Selection) {
				s.Quantities["editing"] = 1
				s.TierChoices["editing"] = ChoicePremium
				s.ProductionDays = 2
			},
			"editing", "Editing Suite (Premium)", 1400,
		},
		{
			"photo slider bills extras beyond included",
			func(s *Selection) {
				s.Quantities["photos"] = 1
				s.PhotoCount = 40
				s.ProductionDays = 2
			},
			"photos", "Photography Package (40 photos)", 1000,
		},
		{
			"photo slider clamps to max photos",
			func(s *Selection) {
				s.Quantities["photos"] = 1
				s.PhotoCount = 500
			},
			"photos", "Photography Package (200 photos)", 3050,
		},
		{
			"photo slider never below included",
			func(s *Selection) {
				s.Quantities["photos"] = 1
				s.PhotoCount = 5
			},
			"photos", "Photography Package (20 photos)", 350,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := NewSelection()
			tt.setup(&sel)

			res := ResolveTier(cat, TierBuild, sel)
			line, ok := findLine(res.Lines, tt.key)
			if !ok {
				t.Fatalf("line %q not resolved, got %+v", tt.key, res.Lines)
			}
			if line.Name != tt.wantName {
				t.Errorf("name = %q, want %q", line.Name, tt.wantName)
			}
			if !floatClose(line.Price, tt.wantPrice) {
				t.Errorf("price = %v, want %v", line.Price, tt.wantPrice)
			}
		})
	}
}

func TestResolveTierMultiSlider(t *testing.T) {
	cat := testCatalog()
	sel := NewSelection()
	sel.ProductionDays = 2
	sel.Quantities["locations"] = 2
	sel.SliderValues[SubUnitKey("locations", 0)] = 500
	sel.SliderValues[SubUnitKey("locations", 1)] = 750
	// Day 3 is out of range for a 2-day production and must be dropped.
	sel.ActiveDays[SubUnitKey("locations", 1)] = []int{1, 3}

	res := ResolveTier(cat, TierBuild, sel)

	first, ok := findLine(res.Lines, "locations:0")
	if !ok {
		t.Fatal("locations:0 not resolved")
	}
	if first.Name != "Location 1" {
		t.Errorf("first name = %q, want %q", first.Name, "Location 1")
	}
	if !floatClose(first.Price, 1000) {
		t.Errorf("first price = %v, want 1000", first.Price)
	}

	second, ok := findLine(res.Lines, "locations:1")
	if !ok {
		t.Fatal("locations:1 not resolved")
	}
	if second.Name != "Location 2 (Day 1)" {
		t.Errorf("second name = %q, want %q", second.Name, "Location 2 (Day 1)")
	}
	if !floatClose(second.Price, 750) {
		t.Errorf("second price = %v, want 750", second.Price)
	}

	if !floatClose(res.Subtotal, 1750) {
		t.Errorf("subtotal = %v, want 1750", res.Subtotal)
	}
}

func TestResolveTierMultiSliderClampsUnits(t *testing.T) {
	cat := testCatalog()
	sel := NewSelection()
	sel.Quantities["locations"] = 99

	res := ResolveTier(cat, TierBuild, sel)

	count := 0
	for _, line := range res.Lines {
		if line.Key == "locations:0" || line.Key == "locations:1" || line.Key == "locations:2" {
			count++
		}
	}
	if count != 3 {
		t.Errorf("resolved %d location units, want 3", count)
	}
}

func TestResolveTierSingleUnitNoDaySuffix(t *testing.T) {
	cat := testCatalog()
	sel := NewSelection()
	sel.ProductionDays = 2
	sel.Quantities["locations"] = 1

	res := ResolveTier(cat, TierBuild, sel)
	line, ok := findLine(res.Lines, "locations:0")
	if !ok {
		t.Fatal("locations:0 not resolved")
	}
	if line.Name != "Location" {
		t.Errorf("name = %q, want %q", line.Name, "Location")
	}
	// All days active: default value times both days.
	if !floatClose(line.Price, 1000) {
		t.Errorf("price = %v, want 1000", line.Price)
	}
}

func TestResolveTierIncludedAlwaysEmitted(t *testing.T) {
	cat := testCatalog()
	res := ResolveTier(cat, TierBuild, NewSelection())

	line, ok := findLine(res.Lines, "brand-script")
	if !ok {
		t.Fatal("included add-on missing from empty selection")
	}
	if !line.Included {
		t.Error("line not marked included")
	}
	if line.Price != 0 {
		t.Errorf("included line price = %v, want 0", line.Price)
	}
	if res.Subtotal != 0 {
		t.Errorf("subtotal = %v, want 0 for included-only resolution", res.Subtotal)
	}
}

func TestResolveTierFreebies(t *testing.T) {
	cat := testCatalog()

	sel := NewSelection()
	res := ResolveTier(cat, TierFundraising, sel)
	if _, ok := findLine(res.Lines, "donor-wall"); ok {
		t.Error("freebie emitted outside fundraising mode")
	}

	sel.Fundraising = true
	sel.BuildTier = false
	res = ResolveTier(cat, TierFundraising, sel)
	line, ok := findLine(res.Lines, "donor-wall")
	if !ok {
		t.Fatal("freebie missing in fundraising mode")
	}
	if line.Price != 0 {
		t.Errorf("freebie price = %v, want 0", line.Price)
	}
}

func TestResolveTierUnselectedSkipped(t *testing.T) {
	cat := testCatalog()
	sel := NewSelection()
	sel.Quantities["drone"] = 1

	res := ResolveTier(cat, TierBuild, sel)
	if _, ok := findLine(res.Lines, "workshop"); ok {
		t.Error("unselected add-on resolved")
	}
	if _, ok := findLine(res.Lines, "drone"); !ok {
		t.Error("selected add-on missing")
	}
}

func TestResolveTierProtectedSubtotal(t *testing.T) {
	cat := testCatalog()
	sel := NewSelection()
	sel.Quantities["drone"] = 1  // 750, unprotected
	sel.Quantities["actors"] = 2 // 800, cast-crew

	res := ResolveTier(cat, TierBuild, sel)
	if !floatClose(res.Subtotal, 1550) {
		t.Errorf("subtotal = %v, want 1550", res.Subtotal)
	}
	if !floatClose(res.ProtectedSubtotal, 800) {
		t.Errorf("protected subtotal = %v, want 800", res.ProtectedSubtotal)
	}
}
