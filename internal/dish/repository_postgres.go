package dish

import (
	"context"
	"errors"

	"mealcycle/internal/ingredient"

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
// List all dishes, name ascending
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context) ([]*Dish, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, notes, photo_url
		FROM dishes
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Dish
	for rows.Next() {
		var d Dish
		if err := rows.Scan(&d.ID, &d.Name, &d.Notes, &d.PhotoURL); err != nil {
			return nil, err
		}
		out = append(out, &d)
	}

	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*Dish, error) {
	var d Dish
	err := r.db.QueryRow(ctx, `
		SELECT id, name, notes, photo_url
		FROM dishes
		WHERE id = $1
	`, id).Scan(&d.ID, &d.Name, &d.Notes, &d.PhotoURL)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PostgresRepository) GetByName(ctx context.Context, name string) (*Dish, error) {
	var d Dish
	err := r.db.QueryRow(ctx, `
		SELECT id, name, notes, photo_url
		FROM dishes
		WHERE name = $1
	`, name).Scan(&d.ID, &d.Name, &d.Notes, &d.PhotoURL)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PostgresRepository) Create(ctx context.Context, d *Dish) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO dishes (name, notes)
		VALUES ($1, $2)
		RETURNING id
	`, d.Name, d.Notes).Scan(&d.ID)
}

func (r *PostgresRepository) Update(ctx context.Context, d *Dish) error {
	_, err := r.db.Exec(ctx, `
		UPDATE dishes
		SET name = $1, notes = $2
		WHERE id = $3
	`, d.Name, d.Notes, d.ID)
	return err
}

func (r *PostgresRepository) SetPhotoURL(ctx context.Context, id int64, url string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE dishes
		SET photo_url = $1
		WHERE id = $2
	`, url, id)
	return err
}

// --------------------------------------------------
// Delete dish and its lines in one transaction
// --------------------------------------------------
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM dish_lines WHERE dish_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM dishes WHERE id = $1`, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// --------------------------------------------------
// Composition lines (joined with ingredients)
// --------------------------------------------------
func (r *PostgresRepository) GetLines(ctx context.Context, dishID int64) ([]*Line, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			dl.id,
			dl.dish_id,
			dl.ingredient_id,
			dl.amount,
			dl.unit,
			i.id,
			i.name,
			i.unit,
			i.unit_price,
			i.price_currency
		FROM dish_lines dl
		JOIN ingredients i ON i.id = dl.ingredient_id
		WHERE dl.dish_id = $1
		ORDER BY dl.id ASC
	`, dishID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Line
	for rows.Next() {
		var line Line
		var ing ingredient.Ingredient
		if err := rows.Scan(
			&line.ID,
			&line.DishID,
			&line.IngredientID,
			&line.Amount,
			&line.Unit,
			&ing.ID,
			&ing.Name,
			&ing.Unit,
			&ing.UnitPrice,
			&ing.PriceCurrency,
		); err != nil {
			return nil, err
		}
		line.Ingredient = &ing
		out = append(out, &line)
	}

	return out, rows.Err()
}

// ReplaceLines wipes and rewrites a dish composition atomically.
func (r *PostgresRepository) ReplaceLines(ctx context.Context, dishID int64, lines []*Line) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM dish_lines WHERE dish_id = $1`, dishID); err != nil {
		return err
	}

	for _, line := range lines {
		if err := tx.QueryRow(ctx, `
			INSERT INTO dish_lines (dish_id, ingredient_id, amount, unit)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, dishID, line.IngredientID, line.Amount, line.Unit).Scan(&line.ID); err != nil {
			return err
		}
		line.DishID = dishID
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) CountLinesForIngredient(ctx context.Context, ingredientID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM dish_lines WHERE ingredient_id = $1
	`, ingredientID).Scan(&count)
	return count, err
}
