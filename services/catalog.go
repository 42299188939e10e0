// Package services provides the pricing engine for quote options: catalog
// types, the canonical selection state, the line item resolver, the quote
// total calculator, record reconciliation and breakdown comparison.
package services

// Tier identifies one of the pricing tracks an add-on belongs to.
type Tier string

const (
	TierBuild       Tier = "build"
	TierLaunch      Tier = "launch"
	TierFundraising Tier = "fundraising"
)

// Shape is the selection-shape variant of an add-on. Exactly one shape is
// attached to each catalog entry; the resolver dispatches on the concrete type.
type Shape interface {
	shape()
}

// Toggle is a plain on/off add-on priced at the unit price.
type Toggle struct{}

// Quantity is an on/off add-on with an integer count bounded by [Min,Max].
type Quantity struct {
	Min     int
	Max     int
	Default int
}

// Slider is an on/off add-on whose price contribution is a continuous value
// bounded by [Min,Max] in increments of Step.
type Slider struct {
	Min     float64
	Max     float64
	Step    float64
	Default float64
}

// MultiSlider is a repeatable slider: up to MaxUnits sub-units, each carrying
// its own slider value and an optional subset of active production days.
type MultiSlider struct {
	MaxUnits int
	Value    Slider
}

// PhotoSlider bills a photo count in [IncludedPhotos..MaxPhotos]: the unit
// price covers the included photos, excess photos bill at ExtraPhotoPrice.
type PhotoSlider struct {
	IncludedPhotos  int
	MaxPhotos       int
	ExtraPhotoPrice float64
}

// TierToggle is an on/off add-on with a choice between two named day-rates.
type TierToggle struct {
	BasicRate   float64
	PremiumRate float64
}

// Freebie is a zero-cost, display-only add-on shown only while fundraising
// mode is active.
type Freebie struct{}

func (Toggle) shape()      {}
func (Quantity) shape()    {}
func (Slider) shape()      {}
func (MultiSlider) shape() {}
func (PhotoSlider) shape() {}
func (TierToggle) shape()  {}
func (Freebie) shape()     {}

// AddOn is a single sellable catalog entry.
type AddOn struct {
	ID           string
	Name         string
	Tier         Tier
	UnitPrice    float64
	DisplayPrice string
	Included     bool   // always-on, contributes 0 to the subtotal
	Category     string // optional grouping, also drives discount carve-outs
	PerDay       bool   // price multiplies by the production-day count
	Shape        Shape
}

// Catalog is the static, read-only input of the engine: every sellable
// add-on plus the pricing constants that frame them.
type Catalog struct {
	AddOns              []AddOn
	BaseFees            map[Tier]float64
	OverheadRate        float64
	ProtectedCategories map[string]bool
}

// TierAddOns returns the catalog entries owned by the given tier, in
// catalog order.
func (c Catalog) TierAddOns(tier Tier) []AddOn {
	var out []AddOn
	for _, a := range c.AddOns {
		if a.Tier == tier {
			out = append(out, a)
		}
	}
	return out
}

// FindAddOn looks up a catalog entry by id.
func (c Catalog) FindAddOn(id string) (AddOn, bool) {
	for _, a := range c.AddOns {
		if a.ID == id {
			return a, true
		}
	}
	return AddOn{}, false
}

// BaseFee returns the fixed starting price of a tier before add-ons.
func (c Catalog) BaseFee(tier Tier) float64 {
	return c.BaseFees[tier]
}

func (c Catalog) isProtected(category string) bool {
	return category != "" && c.ProtectedCategories[category]
}
