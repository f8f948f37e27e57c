package ingredient

import (
	"context"
	"errors"

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
// List all ingredients, name ascending
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context) ([]*Ingredient, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, unit, unit_price, price_currency
		FROM ingredients
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Ingredient
	for rows.Next() {
		var ing Ingredient
		if err := rows.Scan(
			&ing.ID,
			&ing.Name,
			&ing.Unit,
			&ing.UnitPrice,
			&ing.PriceCurrency,
		); err != nil {
			return nil, err
		}
		out = append(out, &ing)
	}

	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*Ingredient, error) {
	var ing Ingredient
	err := r.db.QueryRow(ctx, `
		SELECT id, name, unit, unit_price, price_currency
		FROM ingredients
		WHERE id = $1
	`, id).Scan(&ing.ID, &ing.Name, &ing.Unit, &ing.UnitPrice, &ing.PriceCurrency)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ing, nil
}

func (r *PostgresRepository) GetByName(ctx context.Context, name string) (*Ingredient, error) {
	var ing Ingredient
	err := r.db.QueryRow(ctx, `
		SELECT id, name, unit, unit_price, price_currency
		FROM ingredients
		WHERE name = $1
	`, name).Scan(&ing.ID, &ing.Name, &ing.Unit, &ing.UnitPrice, &ing.PriceCurrency)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ing, nil
}

func (r *PostgresRepository) Create(ctx context.Context, ing *Ingredient) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO ingredients (name, unit, unit_price, price_currency)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, ing.Name, ing.Unit, ing.UnitPrice, ing.PriceCurrency).Scan(&ing.ID)
}

func (r *PostgresRepository) Update(ctx context.Context, ing *Ingredient) error {
	_, err := r.db.Exec(ctx, `
		UPDATE ingredients
		SET name = $1, unit = $2, unit_price = $3, price_currency = $4
		WHERE id = $5
	`, ing.Name, ing.Unit, ing.UnitPrice, ing.PriceCurrency, ing.ID)
	return err
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM ingredients WHERE id = $1`, id)
	return err
}
