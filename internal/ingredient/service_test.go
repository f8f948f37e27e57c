package ingredient

import (
	"context"
	"errors"
	"testing"
)

// stubRefs fakes the dish-side reference count.
type stubRefs struct {
	count int
}

func (s *stubRefs) CountLinesForIngredient(ctx context.Context, ingredientID int64) (int, error) {
	return s.count, nil
}

func TestCreate_DefaultsAndDuplicate(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, &stubRefs{})
	ctx := context.Background()

	ing, err := service.Create(ctx, "  Feijão  ", "", nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ing.Name != "Feijão" {
		t.Fatalf("name not trimmed: %q", ing.Name)
	}
	if ing.Unit != "unit" || ing.PriceCurrency != "BRL" {
		t.Fatalf("defaults not applied: %+v", ing)
	}

	if _, err := service.Create(ctx, "Feijão", "g", nil, "BRL"); !errors.Is(err, ErrNameTaken) {
		t.Fatalf("expected ErrNameTaken, got %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, &stubRefs{})

	if _, err := service.Update(context.Background(), 42, "Sal", "g", nil, "BRL"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete_RejectedWhileReferenced(t *testing.T) {
	repo := NewInMemoryRepository()
	refs := &stubRefs{count: 2}
	service := NewService(repo, refs)
	ctx := context.Background()

	ing, err := service.Create(ctx, "Leite", "ml", nil, "BRL")
	if err != nil {
		t.Fatal(err)
	}

	if err := service.Delete(ctx, ing.ID); !errors.Is(err, ErrReferenced) {
		t.Fatalf("expected ErrReferenced, got %v", err)
	}
	if got, _ := repo.GetByID(ctx, ing.ID); got == nil {
		t.Fatal("rejected delete must not remove the row")
	}

	refs.count = 0
	if err := service.Delete(ctx, ing.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := repo.GetByID(ctx, ing.ID); got != nil {
		t.Fatal("ingredient should be gone")
	}
}
