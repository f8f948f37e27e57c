package ingredient

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrNotFound   = errors.New("ingredient not found")
	ErrNameTaken  = errors.New("ingredient already exists")
	ErrReferenced = errors.New("ingredient is still referenced by a dish")
)

type Service struct {
	repo Repository
	refs ReferenceCounter
}

func NewService(repo Repository, refs ReferenceCounter) *Service {
	return &Service{repo: repo, refs: refs}
}

func (s *Service) List(ctx context.Context) ([]*Ingredient, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, name, unit string, unitPrice *float64, currency string) (*Ingredient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("name is required")
	}

	existing, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrNameTaken
	}

	unit = strings.TrimSpace(unit)
	if unit == "" {
		unit = "unit"
	}
	if currency == "" {
		currency = "BRL"
	}

	ing := &Ingredient{
		Name:          name,
		Unit:          unit,
		UnitPrice:     unitPrice,
		PriceCurrency: currency,
	}

	if err := s.repo.Create(ctx, ing); err != nil {
		return nil, err
	}
	return ing, nil
}

func (s *Service) Update(ctx context.Context, id int64, name, unit string, unitPrice *float64, currency string) (*Ingredient, error) {
	ing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, ErrNotFound
	}

	ing.Name = strings.TrimSpace(name)
	ing.Unit = strings.TrimSpace(unit)
	ing.UnitPrice = unitPrice
	if currency != "" {
		ing.PriceCurrency = currency
	}

	if err := s.repo.Update(ctx, ing); err != nil {
		return nil, err
	}
	return ing, nil
}

// Delete refuses to remove an ingredient while any dish line still uses
// it. The caller has to edit the dishes first; nothing cascades.
func (s *Service) Delete(ctx context.Context, id int64) error {
	ing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if ing == nil {
		return ErrNotFound
	}

	count, err := s.refs.CountLinesForIngredient(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrReferenced
	}

	return s.repo.Delete(ctx, id)
}
