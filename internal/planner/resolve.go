package planner

import (
	"time"

	"mealcycle/internal/schedule"
)

// CycleIndex maps a day-of-month (1..31) to a template slot (1..28).
// The index is keyed off the day-of-month number, not an absolute day
// count, so the cycle restarts at slot 1 on the first of every month
// instead of rolling continuously across month boundaries. Documented
// product behavior, kept as-is.
func CycleIndex(dayOfMonth int) int {
	return ((dayOfMonth - 1) % schedule.CycleLength) + 1
}

// ResolveDay computes the four meal slots for a date. An override for
// the date wins verbatim, empty slots included; otherwise the template
// slot for CycleIndex applies. Dangling dish ids degrade to empty
// slots, never to an error.
func ResolveDay(date time.Time, snap Snapshot) Meals {
	refs, ok := snap.Overrides[date.Format("2006-01-02")]
	if !ok {
		refs = snap.Cycle[CycleIndex(date.Day())]
	}

	return Meals{
		Breakfast: resolveSlot(refs.BreakfastDishID, snap),
		Lunch:     resolveSlot(refs.LunchDishID, snap),
		Snack:     resolveSlot(refs.SnackDishID, snap),
		Dinner:    resolveSlot(refs.DinnerDishID, snap),
	}
}

func resolveSlot(dishID *int64, snap Snapshot) MealSlot {
	if dishID == nil {
		return MealSlot{}
	}
	d, ok := snap.Dishes[*dishID]
	if !ok {
		// Dish deleted but reference not yet nulled.
		return MealSlot{}
	}
	name := d.Name
	return MealSlot{DishID: dishID, DishName: &name}
}

// slotRefsFor returns the raw dish references applying to a date,
// override first. Shopping aggregation wants the ids without the
// display-name lookup.
func slotRefsFor(date time.Time, snap Snapshot) schedule.SlotRefs {
	if refs, ok := snap.Overrides[date.Format("2006-01-02")]; ok {
		return refs
	}
	return snap.Cycle[CycleIndex(date.Day())]
}
