package ingredient

import (
	"context"
	"sort"
)

// InMemoryRepository backs unit tests; no persistence.
type InMemoryRepository struct {
	ingredients map[int64]*Ingredient
	nextID      int64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		ingredients: make(map[int64]*Ingredient),
		nextID:      1,
	}
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*Ingredient, error) {
	out := make([]*Ingredient, 0, len(r.ingredients))
	for _, ing := range r.ingredients {
		out = append(out, ing)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id int64) (*Ingredient, error) {
	return r.ingredients[id], nil
}

func (r *InMemoryRepository) GetByName(ctx context.Context, name string) (*Ingredient, error) {
	for _, ing := range r.ingredients {
		if ing.Name == name {
			return ing, nil
		}
	}
	return nil, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, ing *Ingredient) error {
	ing.ID = r.nextID
	r.nextID++
	r.ingredients[ing.ID] = ing
	return nil
}

func (r *InMemoryRepository) Update(ctx context.Context, ing *Ingredient) error {
	r.ingredients[ing.ID] = ing
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id int64) error {
	delete(r.ingredients, id)
	return nil
}
