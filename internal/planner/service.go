package planner

import (
	"context"
	"errors"
	"time"

	"mealcycle/internal/dish"
	"mealcycle/internal/ingredient"
	"mealcycle/internal/schedule"
)

var (
	ErrInvalidDate  = errors.New("date must be YYYY-MM-DD")
	ErrInvalidMonth = errors.New("month must be 1..12")
	ErrInvalidRange = errors.New("end must be >= start")
)

// ScheduleStore is the slice of the schedule repository the planner reads.
type ScheduleStore interface {
	EnsureCycle(ctx context.Context) error
	ListCycle(ctx context.Context) ([]*schedule.CycleDay, error)
	ListOverrides(ctx context.Context, from, to string) ([]*schedule.DayOverride, error)
}

// DishStore provides dishes and their composition lines.
type DishStore interface {
	List(ctx context.Context) ([]*dish.Dish, error)
	GetLines(ctx context.Context, dishID int64) ([]*dish.Line, error)
}

// IngredientStore provides the ingredient catalog.
type IngredientStore interface {
	List(ctx context.Context) ([]*ingredient.Ingredient, error)
}

type Service struct {
	scheduleStore   ScheduleStore
	dishStore       DishStore
	ingredientStore IngredientStore
}

func NewService(scheduleStore ScheduleStore, dishStore DishStore, ingredientStore IngredientStore) *Service {
	return &Service{
		scheduleStore:   scheduleStore,
		dishStore:       dishStore,
		ingredientStore: ingredientStore,
	}
}

// snapshot loads plan state covering [from, to] (ISO dates, inclusive).
func (s *Service) snapshot(ctx context.Context, from, to string) (Snapshot, error) {
	snap := Snapshot{
		Cycle:     make(map[int]schedule.SlotRefs),
		Overrides: make(map[string]schedule.SlotRefs),
		Dishes:    make(map[int64]*dish.Dish),
	}

	if err := s.scheduleStore.EnsureCycle(ctx); err != nil {
		return snap, err
	}

	cycle, err := s.scheduleStore.ListCycle(ctx)
	if err != nil {
		return snap, err
	}
	for _, day := range cycle {
		snap.Cycle[day.DayIndex] = day.SlotRefs
	}

	overrides, err := s.scheduleStore.ListOverrides(ctx, from, to)
	if err != nil {
		return snap, err
	}
	for _, o := range overrides {
		snap.Overrides[o.Date] = o.SlotRefs
	}

	dishes, err := s.dishStore.List(ctx)
	if err != nil {
		return snap, err
	}
	for _, d := range dishes {
		snap.Dishes[d.ID] = d
	}

	return snap, nil
}

// ResolveDay answers "what do we eat on this date".
func (s *Service) ResolveDay(ctx context.Context, date string) (*Meals, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	snap, err := s.snapshot(ctx, date, date)
	if err != nil {
		return nil, err
	}

	meals := ResolveDay(day, snap)
	return &meals, nil
}

// Calendar builds the month view.
func (s *Service) Calendar(ctx context.Context, year, month int) (*Calendar, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	snap, err := s.snapshot(ctx, first.Format("2006-01-02"), last.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}

	return BuildCalendar(year, month, snap), nil
}

// Shopping aggregates the shopping list for an inclusive date range.
func (s *Service) Shopping(ctx context.Context, start, end string) (*ShoppingList, error) {
	startDay, err := time.Parse("2006-01-02", start)
	if err != nil {
		return nil, ErrInvalidDate
	}
	endDay, err := time.Parse("2006-01-02", end)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if endDay.Before(startDay) {
		return nil, ErrInvalidRange
	}

	snap, err := s.snapshot(ctx, start, end)
	if err != nil {
		return nil, err
	}

	pantry := PantrySnapshot{
		Snapshot:    snap,
		Lines:       make(map[int64][]*dish.Line),
		Ingredients: make(map[int64]*ingredient.Ingredient),
	}

	for id := range snap.Dishes {
		lines, err := s.dishStore.GetLines(ctx, id)
		if err != nil {
			return nil, err
		}
		pantry.Lines[id] = lines
	}

	ingredients, err := s.ingredientStore.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, ing := range ingredients {
		pantry.Ingredients[ing.ID] = ing
	}

	return AggregateShopping(startDay, endDay, pantry), nil
}
