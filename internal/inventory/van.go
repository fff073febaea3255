// Package inventory holds the van's cargo and its volume/budget accounting.
// Limits are advisory: adding never fails because the van is full or the
// budget is spent, and the remaining quantities may go negative.
package inventory

import (
	"cmp"
	"slices"

	"coffee-van/internal/model"
)

// Van is an ordered collection of products with capacity and budget limits.
type Van struct {
	maxVolume float64
	maxBudget float64
	cargo     []model.Product
}

// Summary is a snapshot of the van's accounting.
type Summary struct {
	MaxVolume       float64
	MaxBudget       float64
	TotalVolume     float64
	TotalCost       float64
	RemainingVolume float64
	RemainingBudget float64
	Count           int
}

// New creates an empty van.
func New(maxVolume, maxBudget float64) *Van {
	return &Van{
		maxVolume: maxVolume,
		maxBudget: maxBudget,
	}
}

// MaxVolume returns the volume limit in millilitres.
func (v *Van) MaxVolume() float64 {
	return v.maxVolume
}

// MaxBudget returns the budget limit.
func (v *Van) MaxBudget() float64 {
	return v.maxBudget
}

// Add appends p to the cargo. Pointer variants are stored by value.
// Returns model.ErrNilProduct if p is nil or a nil pointer.
func (v *Van) Add(p model.Product) error {
	p, err := model.Value(p)
	if err != nil {
		return err
	}
	v.cargo = append(v.cargo, p)
	return nil
}

// RemoveByID removes the first product with the given ID and reports
// whether one was found.
func (v *Van) RemoveByID(id string) bool {
	idx := slices.IndexFunc(v.cargo, func(p model.Product) bool {
		return p.Common().ID == id
	})
	if idx < 0 {
		return false
	}
	v.cargo = slices.Delete(v.cargo, idx, idx+1)
	return true
}

// Len returns the number of products carried.
func (v *Van) Len() int {
	return len(v.cargo)
}

// Products returns a copy of the cargo in its current order.
func (v *Van) Products() []model.Product {
	return slices.Clone(v.cargo)
}

// TotalVolume sums the packaging volume of every product.
func (v *Van) TotalVolume() float64 {
	var total float64
	for _, p := range v.cargo {
		total += p.TotalVolume()
	}
	return total
}

// TotalCost sums the price of every product.
func (v *Van) TotalCost() float64 {
	var total float64
	for _, p := range v.cargo {
		total += p.Common().Price
	}
	return total
}

// RemainingVolume returns MaxVolume minus TotalVolume.
func (v *Van) RemainingVolume() float64 {
	return v.maxVolume - v.TotalVolume()
}

// RemainingBudget returns MaxBudget minus TotalCost.
func (v *Van) RemainingBudget() float64 {
	return v.maxBudget - v.TotalCost()
}

// SortByPriceToWeightRatio orders the cargo by ascending price per gram.
// Products with equal ratios keep their relative order.
func (v *Van) SortByPriceToWeightRatio() {
	slices.SortStableFunc(v.cargo, func(a, b model.Product) int {
		return cmp.Compare(a.PriceToWeightRatio(), b.PriceToWeightRatio())
	})
}

// FindByQuality returns the products whose scores fall within r, in cargo order.
func (v *Van) FindByQuality(r model.QualityRange) []model.Product {
	var found []model.Product
	for _, p := range v.cargo {
		if p.Common().Quality.IsInRange(r) {
			found = append(found, p)
		}
	}
	return found
}

// Summary returns the current limits, totals and remaining capacity.
func (v *Van) Summary() Summary {
	totalVolume := v.TotalVolume()
	totalCost := v.TotalCost()
	return Summary{
		MaxVolume:       v.maxVolume,
		MaxBudget:       v.maxBudget,
		TotalVolume:     totalVolume,
		TotalCost:       totalCost,
		RemainingVolume: v.maxVolume - totalVolume,
		RemainingBudget: v.maxBudget - totalCost,
		Count:           len(v.cargo),
	}
}
