// Package catalog holds the agency's static add-on catalog: every sellable
// offering, its tier, price and selection shape. The data is read-only and
// loaded once; content management happens outside this application.
package catalog

import "quotecraft/services"

// CategoryCastCrew marks line items exempt from discount programs.
const CategoryCastCrew = "cast-crew"

// Default returns the agency catalog with the standard base fees, the 10%
// production overhead rate, and the cast-and-crew discount carve-out.
func Default() services.Catalog {
	return services.Catalog{
		AddOns: defaultAddOns,
		BaseFees: map[services.Tier]float64{
			services.TierBuild:       5000,
			services.TierLaunch:      10000,
			services.TierFundraising: 15000,
		},
		OverheadRate:        0.10,
		ProtectedCategories: map[string]bool{CategoryCastCrew: true},
	}
}

var defaultAddOns = []services.AddOn{
	// ── Build tier ───────────────────────────────────────────────────────
	{
		ID: "brand-script", Name: "Brand Script & Creative Direction",
		Tier: services.TierBuild, Included: true, DisplayPrice: "Included",
		Shape: services.Toggle{},
	},
	{
		ID: "strategy-workshop", Name: "Strategy Workshop",
		Tier: services.TierBuild, UnitPrice: 1500, DisplayPrice: "$1,500",
		Shape: services.Toggle{},
	},
	{
		ID: "producer", Name: "Producer",
		Tier: services.TierBuild, PerDay: true, Category: CategoryCastCrew,
		DisplayPrice: "$800–$2,500/day",
		Shape:        services.Slider{Min: 800, Max: 2500, Step: 50, Default: 1200},
	},
	{
		ID: "cinematographer", Name: "Cinematographer",
		Tier: services.TierBuild, PerDay: true, Category: CategoryCastCrew,
		DisplayPrice: "$600–$3,000/day",
		Shape:        services.Slider{Min: 600, Max: 3000, Step: 50, Default: 1500},
	},
	{
		ID: "sound-engineer", Name: "Sound Engineer",
		Tier: services.TierBuild, PerDay: true, Category: CategoryCastCrew,
		DisplayPrice: "$400–$1,500/day",
		Shape:        services.Slider{Min: 400, Max: 1500, Step: 50, Default: 800},
	},
	{
		ID: "actors", Name: "Actors",
		Tier: services.TierBuild, UnitPrice: 400, PerDay: true, Category: CategoryCastCrew,
		DisplayPrice: "$400/day each",
		Shape:        services.Quantity{Min: 1, Max: 10, Default: 1},
	},
	{
		ID: "locations", Name: "Location",
		Tier: services.TierBuild, PerDay: true,
		DisplayPrice: "$250–$2,000/day each",
		Shape: services.MultiSlider{
			MaxUnits: 5,
			Value:    services.Slider{Min: 250, Max: 2000, Step: 50, Default: 500},
		},
	},
	{
		ID: "photo-package", Name: "Photography Package",
		Tier: services.TierBuild, UnitPrice: 350, DisplayPrice: "$350/day + extras",
		Shape: services.PhotoSlider{IncludedPhotos: 20, MaxPhotos: 200, ExtraPhotoPrice: 15},
	},
	{
		ID: "editing-suite", Name: "Editing Suite",
		Tier: services.TierBuild, PerDay: true,
		DisplayPrice: "$350 or $700/day",
		Shape:        services.TierToggle{BasicRate: 350, PremiumRate: 700},
	},
	{
		ID: "drone-coverage", Name: "Drone Coverage",
		Tier: services.TierBuild, UnitPrice: 750, PerDay: true,
		DisplayPrice: "$750/day",
		Shape:        services.Toggle{},
	},

	// ── Launch tier ──────────────────────────────────────────────────────
	{
		ID: "campaign-page", Name: "Campaign Landing Page",
		Tier: services.TierLaunch, Included: true, DisplayPrice: "Included",
		Shape: services.Toggle{},
	},
	{
		ID: "media-buy", Name: "Media Buy Management",
		Tier: services.TierLaunch, UnitPrice: 2000, DisplayPrice: "$2,000",
		Shape: services.Toggle{},
	},
	{
		ID: "social-cutdowns", Name: "Social Cutdown",
		Tier: services.TierLaunch, UnitPrice: 250, DisplayPrice: "$250 each",
		Shape: services.Quantity{Min: 1, Max: 12, Default: 3},
	},
	{
		ID: "pr-outreach", Name: "PR Outreach",
		Tier: services.TierLaunch,
		DisplayPrice: "$500–$5,000",
		Shape:        services.Slider{Min: 500, Max: 5000, Step: 100, Default: 1000},
	},
	{
		ID: "email-sequence", Name: "Email Launch Sequence",
		Tier: services.TierLaunch, UnitPrice: 900, DisplayPrice: "$900",
		Shape: services.Toggle{},
	},
	{
		ID: "analytics-dashboard", Name: "Analytics Dashboard",
		Tier: services.TierLaunch, UnitPrice: 600, DisplayPrice: "$600",
		Shape: services.Toggle{},
	},

	// ── Fundraising tier ─────────────────────────────────────────────────
	{
		ID: "fundraising-page", Name: "Fundraising Campaign Page",
		Tier: services.TierFundraising, Included: true, DisplayPrice: "Included",
		Shape: services.Toggle{},
	},
	{
		ID: "pledge-video", Name: "Pledge Drive Video",
		Tier: services.TierFundraising,
		DisplayPrice: "$500–$3,000",
		Shape:        services.Slider{Min: 500, Max: 3000, Step: 100, Default: 1000},
	},
	{
		ID: "volunteer-toolkit", Name: "Volunteer Toolkit",
		Tier: services.TierFundraising, UnitPrice: 400, DisplayPrice: "$400",
		Shape: services.Toggle{},
	},
	{
		ID: "fundraising-crew", Name: "Event Crew",
		Tier: services.TierFundraising, UnitPrice: 350, PerDay: true, Category: CategoryCastCrew,
		DisplayPrice: "$350/day each",
		Shape:        services.Quantity{Min: 1, Max: 8, Default: 2},
	},
	{
		ID: "donor-wall", Name: "Donor Wall",
		Tier: services.TierFundraising, DisplayPrice: "Free",
		Shape: services.Freebie{},
	},
	{
		ID: "matching-kit", Name: "Matching Campaign Kit",
		Tier: services.TierFundraising, DisplayPrice: "Free",
		Shape: services.Freebie{},
	},
}
