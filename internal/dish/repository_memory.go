package dish

import (
	"context"
	"sort"
)

// InMemoryRepository backs unit tests; no persistence.
type InMemoryRepository struct {
	dishes     map[int64]*Dish
	lines      map[int64][]*Line // keyed by dish id
	nextDishID int64
	nextLineID int64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		dishes:     make(map[int64]*Dish),
		lines:      make(map[int64][]*Line),
		nextDishID: 1,
		nextLineID: 1,
	}
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*Dish, error) {
	out := make([]*Dish, 0, len(r.dishes))
	for _, d := range r.dishes {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id int64) (*Dish, error) {
	return r.dishes[id], nil
}

func (r *InMemoryRepository) GetByName(ctx context.Context, name string) (*Dish, error) {
	for _, d := range r.dishes {
		if d.Name == name {
			return d, nil
		}
	}
	return nil, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, d *Dish) error {
	d.ID = r.nextDishID
	r.nextDishID++
	r.dishes[d.ID] = d
	return nil
}

func (r *InMemoryRepository) Update(ctx context.Context, d *Dish) error {
	r.dishes[d.ID] = d
	return nil
}

func (r *InMemoryRepository) SetPhotoURL(ctx context.Context, id int64, url string) error {
	if d, ok := r.dishes[id]; ok {
		d.PhotoURL = &url
	}
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id int64) error {
	delete(r.dishes, id)
	delete(r.lines, id)
	return nil
}

func (r *InMemoryRepository) GetLines(ctx context.Context, dishID int64) ([]*Line, error) {
	return r.lines[dishID], nil
}

func (r *InMemoryRepository) ReplaceLines(ctx context.Context, dishID int64, lines []*Line) error {
	replaced := make([]*Line, 0, len(lines))
	for _, line := range lines {
		line.ID = r.nextLineID
		r.nextLineID++
		line.DishID = dishID
		replaced = append(replaced, line)
	}
	r.lines[dishID] = replaced
	return nil
}

func (r *InMemoryRepository) CountLinesForIngredient(ctx context.Context, ingredientID int64) (int, error) {
	count := 0
	for _, lines := range r.lines {
		for _, line := range lines {
			if line.IngredientID == ingredientID {
				count++
			}
		}
	}
	return count, nil
}
