package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Lazily materialize the 28 template rows
// --------------------------------------------------
func (r *PostgresRepository) EnsureCycle(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO cycle_days (day_index)
		SELECT i FROM generate_series(1, 28) AS i
		ON CONFLICT (day_index) DO NOTHING
	`)
	return err
}

func (r *PostgresRepository) ListCycle(ctx context.Context) ([]*CycleDay, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, day_index, breakfast_dish_id, lunch_dish_id, snack_dish_id, dinner_dish_id
		FROM cycle_days
		ORDER BY day_index ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*CycleDay
	for rows.Next() {
		var d CycleDay
		if err := rows.Scan(
			&d.ID,
			&d.DayIndex,
			&d.BreakfastDishID,
			&d.LunchDishID,
			&d.SnackDishID,
			&d.DinnerDishID,
		); err != nil {
			return nil, err
		}
		out = append(out, &d)
	}

	return out, rows.Err()
}

func (r *PostgresRepository) UpdateCycleDay(ctx context.Context, dayIndex int, refs SlotRefs) (*CycleDay, error) {
	var d CycleDay
	err := r.db.QueryRow(ctx, `
		UPDATE cycle_days
		SET breakfast_dish_id = $1,
		    lunch_dish_id = $2,
		    snack_dish_id = $3,
		    dinner_dish_id = $4
		WHERE day_index = $5
		RETURNING id, day_index, breakfast_dish_id, lunch_dish_id, snack_dish_id, dinner_dish_id
	`, refs.BreakfastDishID, refs.LunchDishID, refs.SnackDishID, refs.DinnerDishID, dayIndex).Scan(
		&d.ID,
		&d.DayIndex,
		&d.BreakfastDishID,
		&d.LunchDishID,
		&d.SnackDishID,
		&d.DinnerDishID,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// --------------------------------------------------
// Overrides
// --------------------------------------------------
func (r *PostgresRepository) GetOverride(ctx context.Context, date string) (*DayOverride, error) {
	var o DayOverride
	var d time.Time
	err := r.db.QueryRow(ctx, `
		SELECT id, date, breakfast_dish_id, lunch_dish_id, snack_dish_id, dinner_dish_id
		FROM day_overrides
		WHERE date = $1::date
	`, date).Scan(&o.ID, &d, &o.BreakfastDishID, &o.LunchDishID, &o.SnackDishID, &o.DinnerDishID)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	o.Date = d.Format("2006-01-02")
	return &o, nil
}

func (r *PostgresRepository) ListOverrides(ctx context.Context, from, to string) ([]*DayOverride, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, date, breakfast_dish_id, lunch_dish_id, snack_dish_id, dinner_dish_id
		FROM day_overrides
		WHERE date >= $1::date AND date <= $2::date
		ORDER BY date ASC
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*DayOverride
	for rows.Next() {
		var o DayOverride
		var d time.Time
		if err := rows.Scan(
			&o.ID,
			&d,
			&o.BreakfastDishID,
			&o.LunchDishID,
			&o.SnackDishID,
			&o.DinnerDishID,
		); err != nil {
			return nil, err
		}
		o.Date = d.Format("2006-01-02")
		out = append(out, &o)
	}

	return out, rows.Err()
}

func (r *PostgresRepository) UpsertOverride(ctx context.Context, date string, refs SlotRefs) (*DayOverride, error) {
	var o DayOverride
	var d time.Time
	err := r.db.QueryRow(ctx, `
		INSERT INTO day_overrides (date, breakfast_dish_id, lunch_dish_id, snack_dish_id, dinner_dish_id)
		VALUES ($1::date, $2, $3, $4, $5)
		ON CONFLICT (date) DO UPDATE
		SET breakfast_dish_id = EXCLUDED.breakfast_dish_id,
		    lunch_dish_id = EXCLUDED.lunch_dish_id,
		    snack_dish_id = EXCLUDED.snack_dish_id,
		    dinner_dish_id = EXCLUDED.dinner_dish_id
		RETURNING id, date, breakfast_dish_id, lunch_dish_id, snack_dish_id, dinner_dish_id
	`, date, refs.BreakfastDishID, refs.LunchDishID, refs.SnackDishID, refs.DinnerDishID).Scan(
		&o.ID,
		&d,
		&o.BreakfastDishID,
		&o.LunchDishID,
		&o.SnackDishID,
		&o.DinnerDishID,
	)
	if err != nil {
		return nil, err
	}

	o.Date = d.Format("2006-01-02")
	return &o, nil
}

// DeleteOverride is idempotent: clearing a date with no override succeeds.
func (r *PostgresRepository) DeleteOverride(ctx context.Context, date string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM day_overrides WHERE date = $1::date`, date)
	return err
}

// --------------------------------------------------
// Null out all slots referencing a dish
// --------------------------------------------------
func (r *PostgresRepository) UnlinkDish(ctx context.Context, dishID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, table := range []string{"cycle_days", "day_overrides"} {
		for _, col := range []string{"breakfast_dish_id", "lunch_dish_id", "snack_dish_id", "dinner_dish_id"} {
			if _, err := tx.Exec(ctx,
				`UPDATE `+table+` SET `+col+` = NULL WHERE `+col+` = $1`, dishID,
			); err != nil {
				return err
			}
		}
	}

	return tx.Commit(ctx)
}
