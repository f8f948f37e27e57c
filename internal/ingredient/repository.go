package ingredient

import "context"

// Repository defines all database operations for ingredients.
// Service depends ONLY on this interface.
type Repository interface {
	List(ctx context.Context) ([]*Ingredient, error)
	GetByID(ctx context.Context, id int64) (*Ingredient, error)
	GetByName(ctx context.Context, name string) (*Ingredient, error)
	Create(ctx context.Context, ing *Ingredient) error
	Update(ctx context.Context, ing *Ingredient) error
	Delete(ctx context.Context, id int64) error
}

// ReferenceCounter reports how many dish composition lines still point
// at an ingredient. Implemented by the dish repository.
type ReferenceCounter interface {
	CountLinesForIngredient(ctx context.Context, ingredientID int64) (int, error)
}
