package schedule

// CycleLength is the number of slots in the repeating template.
const CycleLength = 28

// SlotRefs carries the four optional dish references shared by cycle
// days and per-date overrides.
type SlotRefs struct {
	BreakfastDishID *int64 `json:"breakfast_dish_id"`
	LunchDishID     *int64 `json:"lunch_dish_id"`
	SnackDishID     *int64 `json:"snack_dish_id"`
	DinnerDishID    *int64 `json:"dinner_dish_id"`
}

// CycleDay is one slot of the repeating 28-day template.
type CycleDay struct {
	ID       int64 `json:"id"`
	DayIndex int   `json:"day_index"`
	SlotRefs
}

// DayOverride replaces the template resolution for one calendar date.
// Date is ISO YYYY-MM-DD.
type DayOverride struct {
	ID   int64  `json:"id"`
	Date string `json:"date"`
	SlotRefs
}
