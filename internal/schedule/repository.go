package schedule

import "context"

// Repository defines all database operations for the cycle template and
// date overrides. Service depends ONLY on this interface.
type Repository interface {
	// EnsureCycle inserts every missing day_index in 1..28 with empty
	// slots. Concurrent callers may race; the day_index uniqueness key
	// makes the insert a no-op for rows that already exist.
	EnsureCycle(ctx context.Context) error

	ListCycle(ctx context.Context) ([]*CycleDay, error)
	UpdateCycleDay(ctx context.Context, dayIndex int, refs SlotRefs) (*CycleDay, error)

	GetOverride(ctx context.Context, date string) (*DayOverride, error)
	ListOverrides(ctx context.Context, from, to string) ([]*DayOverride, error)
	UpsertOverride(ctx context.Context, date string, refs SlotRefs) (*DayOverride, error)
	DeleteOverride(ctx context.Context, date string) error

	// UnlinkDish nulls every slot referencing the dish, in the template
	// and in all overrides.
	UnlinkDish(ctx context.Context, dishID int64) error
}
