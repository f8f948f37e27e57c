package schedule

import (
	"context"
	"errors"
	"time"
)

var (
	ErrBadDayIndex = errors.New("day_index must be 1..28")
	ErrInvalidDate = errors.New("date must be YYYY-MM-DD")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ParseDate validates an ISO calendar date at the API boundary.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// GetCycle returns all 28 template rows, materializing missing ones.
func (s *Service) GetCycle(ctx context.Context) ([]*CycleDay, error) {
	if err := s.repo.EnsureCycle(ctx); err != nil {
		return nil, err
	}
	return s.repo.ListCycle(ctx)
}

func (s *Service) SetCycleDay(ctx context.Context, dayIndex int, refs SlotRefs) (*CycleDay, error) {
	if dayIndex < 1 || dayIndex > CycleLength {
		return nil, ErrBadDayIndex
	}
	if err := s.repo.EnsureCycle(ctx); err != nil {
		return nil, err
	}
	return s.repo.UpdateCycleDay(ctx, dayIndex, refs)
}

// ListMonthOverrides returns the overrides falling inside a month.
func (s *Service) ListMonthOverrides(ctx context.Context, year, month int) ([]*DayOverride, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidDate
	}
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return s.repo.ListOverrides(ctx, first.Format("2006-01-02"), last.Format("2006-01-02"))
}

func (s *Service) SetOverride(ctx context.Context, date string, refs SlotRefs) (*DayOverride, error) {
	if _, err := ParseDate(date); err != nil {
		return nil, err
	}
	return s.repo.UpsertOverride(ctx, date, refs)
}

// ClearOverride removes the override for a date; clearing a date that
// has none is a no-op success.
func (s *Service) ClearOverride(ctx context.Context, date string) error {
	if _, err := ParseDate(date); err != nil {
		return err
	}
	return s.repo.DeleteOverride(ctx, date)
}
