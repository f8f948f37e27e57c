package schedule

import (
	"context"
	"sort"
)

// InMemoryRepository backs unit tests; no persistence.
type InMemoryRepository struct {
	cycle     map[int]*CycleDay       // keyed by day_index
	overrides map[string]*DayOverride // keyed by date
	nextID    int64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		cycle:     make(map[int]*CycleDay),
		overrides: make(map[string]*DayOverride),
		nextID:    1,
	}
}

func (r *InMemoryRepository) EnsureCycle(ctx context.Context) error {
	for i := 1; i <= CycleLength; i++ {
		if _, ok := r.cycle[i]; ok {
			continue
		}
		r.cycle[i] = &CycleDay{ID: r.nextID, DayIndex: i}
		r.nextID++
	}
	return nil
}

func (r *InMemoryRepository) ListCycle(ctx context.Context) ([]*CycleDay, error) {
	out := make([]*CycleDay, 0, len(r.cycle))
	for _, d := range r.cycle {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DayIndex < out[j].DayIndex })
	return out, nil
}

func (r *InMemoryRepository) UpdateCycleDay(ctx context.Context, dayIndex int, refs SlotRefs) (*CycleDay, error) {
	d, ok := r.cycle[dayIndex]
	if !ok {
		d = &CycleDay{ID: r.nextID, DayIndex: dayIndex}
		r.nextID++
		r.cycle[dayIndex] = d
	}
	d.SlotRefs = refs
	return d, nil
}

func (r *InMemoryRepository) GetOverride(ctx context.Context, date string) (*DayOverride, error) {
	return r.overrides[date], nil
}

func (r *InMemoryRepository) ListOverrides(ctx context.Context, from, to string) ([]*DayOverride, error) {
	var out []*DayOverride
	for _, o := range r.overrides {
		if o.Date >= from && o.Date <= to {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *InMemoryRepository) UpsertOverride(ctx context.Context, date string, refs SlotRefs) (*DayOverride, error) {
	o, ok := r.overrides[date]
	if !ok {
		o = &DayOverride{ID: r.nextID, Date: date}
		r.nextID++
		r.overrides[date] = o
	}
	o.SlotRefs = refs
	return o, nil
}

func (r *InMemoryRepository) DeleteOverride(ctx context.Context, date string) error {
	delete(r.overrides, date)
	return nil
}

func (r *InMemoryRepository) UnlinkDish(ctx context.Context, dishID int64) error {
	clearRefs := func(refs *SlotRefs) {
		for _, slot := range []**int64{
			&refs.BreakfastDishID,
			&refs.LunchDishID,
			&refs.SnackDishID,
			&refs.DinnerDishID,
		} {
			if *slot != nil && **slot == dishID {
				*slot = nil
			}
		}
	}

	for _, d := range r.cycle {
		clearRefs(&d.SlotRefs)
	}
	for _, o := range r.overrides {
		clearRefs(&o.SlotRefs)
	}
	return nil
}
