package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// INGREDIENTS
	// -------------------------------
	ingredientsSQL := `
		CREATE TABLE IF NOT EXISTS ingredients (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(120) UNIQUE NOT NULL,
			unit VARCHAR(40) NOT NULL DEFAULT 'unit',
			unit_price DOUBLE PRECISION NULL,
			price_currency VARCHAR(8) NOT NULL DEFAULT 'BRL'
		)
	`
	if _, err := db.Exec(ctx, ingredientsSQL); err != nil {
		return err
	}

	// -------------------------------
	// DISHES
	// -------------------------------
	dishesSQL := `
		CREATE TABLE IF NOT EXISTS dishes (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(160) UNIQUE NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			photo_url VARCHAR(500) NULL
		)
	`
	if _, err := db.Exec(ctx, dishesSQL); err != nil {
		return err
	}

	addPhotoColumnSQL := `
		ALTER TABLE dishes
		ADD COLUMN IF NOT EXISTS photo_url VARCHAR(500) NULL
	`
	if _, err := db.Exec(ctx, addPhotoColumnSQL); err != nil {
		log.Println("Note: photo_url column may already exist")
	}

	// -------------------------------
	// DISH LINES (composition)
	// -------------------------------
	dishLinesSQL := `
		CREATE TABLE IF NOT EXISTS dish_lines (
			id BIGSERIAL PRIMARY KEY,
			dish_id BIGINT NOT NULL REFERENCES dishes(id),
			ingredient_id BIGINT NOT NULL REFERENCES ingredients(id),
			amount DOUBLE PRECISION NOT NULL DEFAULT 0,
			unit VARCHAR(40) NOT NULL DEFAULT 'unit',
			UNIQUE (dish_id, ingredient_id, unit)
		)
	`
	if _, err := db.Exec(ctx, dishLinesSQL); err != nil {
		return err
	}

	// -------------------------------
	// 28-DAY CYCLE TEMPLATE
	// -------------------------------
	cycleDaysSQL := `
		CREATE TABLE IF NOT EXISTS cycle_days (
			id BIGSERIAL PRIMARY KEY,
			day_index INT UNIQUE NOT NULL,
			breakfast_dish_id BIGINT NULL REFERENCES dishes(id),
			lunch_dish_id BIGINT NULL REFERENCES dishes(id),
			snack_dish_id BIGINT NULL REFERENCES dishes(id),
			dinner_dish_id BIGINT NULL REFERENCES dishes(id)
		)
	`
	if _, err := db.Exec(ctx, cycleDaysSQL); err != nil {
		return err
	}

	// -------------------------------
	// PER-DATE OVERRIDES
	// -------------------------------
	dayOverridesSQL := `
		CREATE TABLE IF NOT EXISTS day_overrides (
			id BIGSERIAL PRIMARY KEY,
			date DATE UNIQUE NOT NULL,
			breakfast_dish_id BIGINT NULL REFERENCES dishes(id),
			lunch_dish_id BIGINT NULL REFERENCES dishes(id),
			snack_dish_id BIGINT NULL REFERENCES dishes(id),
			dinner_dish_id BIGINT NULL REFERENCES dishes(id)
		)
	`
	if _, err := db.Exec(ctx, dayOverridesSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
