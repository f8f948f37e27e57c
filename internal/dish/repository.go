package dish

import (
	"context"

	"mealcycle/internal/ingredient"
)

// Repository defines all database operations for dishes and their
// composition lines. Service depends ONLY on this interface.
type Repository interface {
	List(ctx context.Context) ([]*Dish, error)
	GetByID(ctx context.Context, id int64) (*Dish, error)
	GetByName(ctx context.Context, name string) (*Dish, error)
	Create(ctx context.Context, d *Dish) error
	Update(ctx context.Context, d *Dish) error
	SetPhotoURL(ctx context.Context, id int64, url string) error

	// Delete removes the dish together with its lines.
	Delete(ctx context.Context, id int64) error

	GetLines(ctx context.Context, dishID int64) ([]*Line, error)
	ReplaceLines(ctx context.Context, dishID int64, lines []*Line) error
	CountLinesForIngredient(ctx context.Context, ingredientID int64) (int, error)
}

// IngredientCatalog resolves ingredient ids while validating and
// enriching composition lines. Implemented by the ingredient repository.
type IngredientCatalog interface {
	GetByID(ctx context.Context, id int64) (*ingredient.Ingredient, error)
}

// ScheduleUnlinker clears every cycle/override slot pointing at a dish
// before the dish row goes away. Implemented by the schedule repository.
type ScheduleUnlinker interface {
	UnlinkDish(ctx context.Context, dishID int64) error
}
