package services

import (
	"fmt"
	"strconv"
	"strings"
)

// LineItem is one resolved row of a tier's breakdown.
type LineItem struct {
	Key      string // addon id, or id:index for multi-slider sub-units
	Name     string
	Price    float64
	Included bool
}

// TierResolution is the output of resolving one tier's selected add-ons.
// ProtectedSubtotal accumulates lines whose category is exempt from discount
// programs; it is carved out of the discountable base by the calculator.
type TierResolution struct {
	Lines             []LineItem
	Subtotal          float64
	ProtectedSubtotal float64
}

// ResolveTier computes the price contribution and display label of every
// selected add-on of one tier. It is total: missing or malformed selection
// entries resolve to the shape defaults.
func ResolveTier(cat Catalog, tier Tier, sel Selection) TierResolution {
	var res TierResolution
	days := sel.Days()

	for _, addon := range cat.TierAddOns(tier) {
		switch shape := addon.Shape.(type) {
		case Freebie:
			if sel.Fundraising {
				res.Lines = append(res.Lines, LineItem{Key: addon.ID, Name: addon.Name})
			}

		case MultiSlider:
			if !addon.Included && !sel.IsSelected(addon.ID) {
				continue
			}
			count := clampInt(sel.Quantities[addon.ID], 1, shape.MaxUnits)
			for i := 0; i < count; i++ {
				key := SubUnitKey(addon.ID, i)
				value := sel.sliderValue(key, shape.Value)
				price := value
				name := addon.Name
				if count > 1 {
					name = fmt.Sprintf("%s %d", addon.Name, i+1)
				}
				if addon.PerDay {
					active := sel.activeDays(key)
					price = value * float64(len(active))
					if len(active) < days {
						name += " (" + formatDayList(active) + ")"
					}
				}
				res.add(cat, addon, LineItem{Key: key, Name: name, Price: price})
			}

		default:
			if !addon.Included && !sel.IsSelected(addon.ID) {
				continue
			}
			line := resolveSingle(addon, sel, days)
			res.add(cat, addon, line)
		}
	}
	return res
}

// resolveSingle prices every shape that yields exactly one line item.
func resolveSingle(addon AddOn, sel Selection, days int) LineItem {
	dayFactor := 1.0
	if addon.PerDay {
		dayFactor = float64(days)
	}

	line := LineItem{Key: addon.ID, Name: addon.Name}
	switch shape := addon.Shape.(type) {
	case Toggle:
		line.Price = addon.UnitPrice * dayFactor

	case Quantity:
		count := sel.quantity(addon.ID, shape)
		line.Price = addon.UnitPrice * float64(count) * dayFactor
		if count != 1 {
			line.Name = fmt.Sprintf("%s × %d", addon.Name, count)
		}

	case Slider:
		line.Price = sel.sliderValue(addon.ID, shape) * dayFactor

	case PhotoSlider:
		count := sel.photoCount(shape)
		extra := count - shape.IncludedPhotos
		if extra < 0 {
			extra = 0
		}
		line.Price = addon.UnitPrice*float64(days) + float64(extra)*shape.ExtraPhotoPrice
		line.Name = fmt.Sprintf("%s (%d photos)", addon.Name, count)

	case TierToggle:
		choice := sel.tierChoice(addon.ID)
		rate := shape.BasicRate
		label := "Basic"
		if choice == ChoicePremium {
			rate = shape.PremiumRate
			label = "Premium"
		}
		line.Price = rate * dayFactor
		line.Name = fmt.Sprintf("%s (%s)", addon.Name, label)
	}
	return line
}

// add appends a line and accumulates the subtotals. Included lines are
// display-only: their price never reaches the subtotal.
func (r *TierResolution) add(cat Catalog, addon AddOn, line LineItem) {
	if addon.Included {
		line.Price = 0
		line.Included = true
	}
	r.Lines = append(r.Lines, line)
	r.Subtotal += line.Price
	if cat.isProtected(addon.Category) {
		r.ProtectedSubtotal += line.Price
	}
}

// formatDayList renders active day numbers as "Day 2" or "Days 1, 3".
func formatDayList(days []int) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(d)
	}
	if len(days) == 1 {
		return "Day " + parts[0]
	}
	return "Days " + strings.Join(parts, ", ")
}
