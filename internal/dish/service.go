package dish

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("dish not found")
	ErrNameTaken         = errors.New("dish already exists")
	ErrUnknownIngredient = errors.New("ingredient not found")
)

type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File, contentType string) (string, error)
}

type Service struct {
	repo        Repository
	ingredients IngredientCatalog
	schedule    ScheduleUnlinker
	storage     Storage
}

func NewService(repo Repository, ingredients IngredientCatalog, schedule ScheduleUnlinker, storage Storage) *Service {
	return &Service{
		repo:        repo,
		ingredients: ingredients,
		schedule:    schedule,
		storage:     storage,
	}
}

func (s *Service) List(ctx context.Context) ([]*Dish, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Dish, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrNotFound
	}
	return d, nil
}

func (s *Service) Create(ctx context.Context, name, notes string) (*Dish, error) {
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

	d := &Dish{Name: name, Notes: notes}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) Update(ctx context.Context, id int64, name, notes string) (*Dish, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	d.Name = strings.TrimSpace(name)
	d.Notes = notes

	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Delete removes a dish. Cycle and override slots pointing at it are
// nulled out first; the schedule keeps the day, just without a dish.
func (s *Service) Delete(ctx context.Context, id int64) error {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if d == nil {
		return ErrNotFound
	}

	if err := s.schedule.UnlinkDish(ctx, id); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}

// --------------------------------------------------
// Composition
// --------------------------------------------------
func (s *Service) GetComposition(ctx context.Context, dishID int64) ([]*Line, error) {
	if _, err := s.Get(ctx, dishID); err != nil {
		return nil, err
	}
	return s.repo.GetLines(ctx, dishID)
}

// SetComposition replaces the whole composition. Every referenced
// ingredient must exist; an empty unit falls back to the ingredient's.
func (s *Service) SetComposition(ctx context.Context, dishID int64, inputs []LineInput) ([]*Line, error) {
	if _, err := s.Get(ctx, dishID); err != nil {
		return nil, err
	}

	lines := make([]*Line, 0, len(inputs))
	for _, in := range inputs {
		ing, err := s.ingredients.GetByID(ctx, in.IngredientID)
		if err != nil {
			return nil, err
		}
		if ing == nil {
			return nil, fmt.Errorf("%w: id %d", ErrUnknownIngredient, in.IngredientID)
		}

		unit := strings.TrimSpace(in.Unit)
		if unit == "" {
			unit = ing.Unit
		}

		lines = append(lines, &Line{
			IngredientID: ing.ID,
			Amount:       in.Amount,
			Unit:         unit,
			Ingredient:   ing,
		})
	}

	if err := s.repo.ReplaceLines(ctx, dishID, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// --------------------------------------------------
// Photo upload
// --------------------------------------------------
func (s *Service) UploadPhoto(
	ctx context.Context,
	dishID int64,
	file multipart.File,
	filename string,
	contentType string,
) (string, error) {
	if _, err := s.Get(ctx, dishID); err != nil {
		return "", err
	}

	if err := ValidatePhotoExtension(filename); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	key := fmt.Sprintf("dishes/%d/%s%s", dishID, uuid.New().String(), ext)

	url, err := s.storage.Upload(ctx, key, file, contentType)
	if err != nil {
		return "", err
	}

	if err := s.repo.SetPhotoURL(ctx, dishID, url); err != nil {
		return "", err
	}

	return url, nil
}
