package planner

import (
	"mealcycle/internal/dish"
	"mealcycle/internal/ingredient"
	"mealcycle/internal/schedule"
)

// MealSlot is one resolved meal: a dish reference plus its display name.
// Both fields are null when the slot is empty or the dish is gone.
type MealSlot struct {
	DishID   *int64  `json:"dish_id"`
	DishName *string `json:"dish_name"`
}

// Meals are the four slots of a resolved day.
type Meals struct {
	Breakfast MealSlot `json:"breakfast"`
	Lunch     MealSlot `json:"lunch"`
	Snack     MealSlot `json:"snack"`
	Dinner    MealSlot `json:"dinner"`
}

// CalendarCell is one day of the month grid. Cells outside the target
// month are not resolved and carry meals = null.
type CalendarCell struct {
	Date    string `json:"date"`
	InMonth bool   `json:"in_month"`
	Meals   *Meals `json:"meals"`
}

// Calendar is the week-major grid for one display month.
type Calendar struct {
	Year      int              `json:"year"`
	Month     int              `json:"month"`
	Weekdays  []string         `json:"weekdays"`
	Weeks     [][]CalendarCell `json:"weeks"`
	CycleMode string           `json:"cycle_mode"`
}

// ShoppingItem is one aggregated line, keyed by (ingredient, unit).
type ShoppingItem struct {
	IngredientID   int64    `json:"ingredient_id"`
	IngredientName string   `json:"ingredient_name"`
	Unit           string   `json:"unit"`
	Amount         float64  `json:"amount"`
	UnitPrice      *float64 `json:"unit_price"`
	PriceCurrency  string   `json:"price_currency"`
	EstimatedCost  *float64 `json:"estimated_cost"`
}

// ShoppingList aggregates every planned meal in [Start, End].
type ShoppingList struct {
	Start          string         `json:"start"`
	End            string         `json:"end"`
	Items          []ShoppingItem `json:"items"`
	EstimatedTotal float64        `json:"estimated_total"`
	Currency       *string        `json:"currency"`
}

// Snapshot is the read-only plan state a resolution runs against.
type Snapshot struct {
	Cycle     map[int]schedule.SlotRefs    // keyed by day_index 1..28
	Overrides map[string]schedule.SlotRefs // keyed by ISO date
	Dishes    map[int64]*dish.Dish
}

// PantrySnapshot extends Snapshot with what shopping aggregation needs.
type PantrySnapshot struct {
	Snapshot
	Lines       map[int64][]*dish.Line // keyed by dish id
	Ingredients map[int64]*ingredient.Ingredient
}
