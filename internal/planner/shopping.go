package planner

import (
	"sort"
	"time"
)

type shoppingKey struct {
	ingredientID int64
	unit         string
}

// AggregateShopping sums composition lines over every meal planned in
// [start, end] inclusive. A dish eaten four times contributes its lines
// four times. Totals group by (ingredient, unit) with no unit
// conversion: 200 "g" and 0.2 "kg" stay separate items. Dishes or
// ingredients that no longer exist are skipped silently.
func AggregateShopping(start, end time.Time, snap PantrySnapshot) *ShoppingList {
	var usedDishIDs []int64
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		refs := slotRefsFor(day, snap.Snapshot)
		for _, id := range []*int64{refs.BreakfastDishID, refs.LunchDishID, refs.SnackDishID, refs.DinnerDishID} {
			if id != nil {
				usedDishIDs = append(usedDishIDs, *id)
			}
		}
	}

	totals := make(map[shoppingKey]*ShoppingItem)
	for _, dishID := range usedDishIDs {
		if _, ok := snap.Dishes[dishID]; !ok {
			continue
		}
		for _, line := range snap.Lines[dishID] {
			ing, ok := snap.Ingredients[line.IngredientID]
			if !ok {
				continue
			}

			key := shoppingKey{ingredientID: ing.ID, unit: line.Unit}
			item, ok := totals[key]
			if !ok {
				item = &ShoppingItem{
					IngredientID:   ing.ID,
					IngredientName: ing.Name,
					Unit:           line.Unit,
					UnitPrice:      ing.UnitPrice,
					PriceCurrency:  ing.PriceCurrency,
				}
				totals[key] = item
			}
			item.Amount += line.Amount
		}
	}

	items := make([]ShoppingItem, 0, len(totals))
	for _, item := range totals {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].IngredientName != items[j].IngredientName {
			return items[i].IngredientName < items[j].IngredientName
		}
		return items[i].Unit < items[j].Unit
	})

	var grandTotal float64
	var currency *string
	for i := range items {
		if items[i].UnitPrice == nil {
			continue
		}
		cost := items[i].Amount * *items[i].UnitPrice
		items[i].EstimatedCost = &cost
		grandTotal += cost
		if currency == nil {
			cur := items[i].PriceCurrency
			currency = &cur
		}
	}

	return &ShoppingList{
		Start:          start.Format("2006-01-02"),
		End:            end.Format("2006-01-02"),
		Items:          items,
		EstimatedTotal: grandTotal,
		Currency:       currency,
	}
}
