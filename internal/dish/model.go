package dish

import "mealcycle/internal/ingredient"

// Dish is a recipe the household cooks; its composition lives in Line rows.
type Dish struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Notes    string  `json:"notes"`
	PhotoURL *string `json:"photo_url"`
}

// Line is one (ingredient, amount, unit) entry of a dish composition.
// The same ingredient may appear twice only under different units.
type Line struct {
	ID           int64                  `json:"id"`
	DishID       int64                  `json:"dish_id"`
	IngredientID int64                  `json:"ingredient_id"`
	Amount       float64                `json:"amount"`
	Unit         string                 `json:"unit"`
	Ingredient   *ingredient.Ingredient `json:"ingredient,omitempty"`
}

// LineInput is the write shape for replacing a dish composition.
// Unit defaults to the ingredient's own unit when empty.
type LineInput struct {
	IngredientID int64   `json:"ingredient_id"`
	Amount       float64 `json:"amount"`
	Unit         string  `json:"unit"`
}
