package services

import (
	"bytes"
	"math"
)

// bytesReader wraps a byte slice in a bytes.Reader for use with excelize.OpenReader.
func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

func floatClose(a, b float64) bool {
	return math.Abs(a-b) < 0.001
}

// testCatalog returns a small fixed catalog exercising every selection shape.
func testCatalog() Catalog {
	return Catalog{
		AddOns: []AddOn{
			{ID: "brand-script", Name: "Brand Script", Tier: TierBuild, Included: true, Shape: Toggle{}},
			{ID: "workshop", Name: "Strategy Workshop", Tier: TierBuild, UnitPrice: 1500, Shape: Toggle{}},
			{ID: "drone", Name: "Drone Coverage", Tier: TierBuild, UnitPrice: 750, PerDay: true, Shape: Toggle{}},
			{
				ID: "actors", Name: "Actors", Tier: TierBuild, UnitPrice: 400, PerDay: true,
				Category: "cast-crew",
				Shape:    Quantity{Min: 1, Max: 10, Default: 1},
			},
			{
				ID: "producer", Name: "Producer", Tier: TierBuild, PerDay: true,
				Category: "cast-crew",
				Shape:    Slider{Min: 800, Max: 2500, Step: 50, Default: 1200},
			},
			{
				ID: "locations", Name: "Location", Tier: TierBuild, PerDay: true,
				Shape: MultiSlider{MaxUnits: 3, Value: Slider{Min: 250, Max: 2000, Step: 50, Default: 500}},
			},
			{
				ID: "photos", Name: "Photography Package", Tier: TierBuild, UnitPrice: 350,
				Shape: PhotoSlider{IncludedPhotos: 20, MaxPhotos: 200, ExtraPhotoPrice: 15},
			},
			{
				ID: "editing", Name: "Editing Suite", Tier: TierBuild, PerDay: true,
				Shape: TierToggle{BasicRate: 350, PremiumRate: 700},
			},

			{ID: "boost", Name: "Launch Boost", Tier: TierLaunch, UnitPrice: 500, PerDay: true, Shape: Toggle{}},
			{ID: "cutdowns", Name: "Social Cutdown", Tier: TierLaunch, UnitPrice: 250, Shape: Quantity{Min: 1, Max: 12, Default: 3}},

			{ID: "pledge", Name: "Pledge Video", Tier: TierFundraising, Shape: Slider{Min: 500, Max: 3000, Step: 100, Default: 1000}},
			{
				ID: "crew", Name: "Event Crew", Tier: TierFundraising, UnitPrice: 350, PerDay: true,
				Category: "cast-crew",
				Shape:    Quantity{Min: 1, Max: 8, Default: 2},
			},
			{ID: "donor-wall", Name: "Donor Wall", Tier: TierFundraising, Shape: Freebie{}},
		},
		BaseFees: map[Tier]float64{
			TierBuild:       5000,
			TierLaunch:      10000,
			TierFundraising: 15000,
		},
		OverheadRate:        0.10,
		ProtectedCategories: map[string]bool{"cast-crew": true},
	}
}

// findLine returns the resolved line with the given key.
func findLine(lines []LineItem, key string) (LineItem, bool) {
	for _, line := range lines {
		if line.Key == key {
			return line, true
		}
	}
	return LineItem{}, false
}
