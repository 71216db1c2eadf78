package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"go-booking-assistant/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresCatalogRepository reads the catalog from Postgres. Pricing and seat
// classes are stored as JSONB with identical key sets; time slots and dates as
// text arrays.
type PostgresCatalogRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewPostgresCatalogRepository(pool *pgxpool.Pool) *PostgresCatalogRepositoryImpl {
	return &PostgresCatalogRepositoryImpl{pool: pool}
}

// EnsureSchema creates the catalog table and seeds it from the built-in
// catalog when empty.
func (r *PostgresCatalogRepositoryImpl) EnsureSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS catalog_items (
			id SERIAL PRIMARY KEY,
			item_id INT NOT NULL,
			category TEXT NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			destination TEXT NOT NULL DEFAULT '',
			base_price NUMERIC(10,2) NOT NULL,
			show_times TEXT[] NOT NULL DEFAULT '{}',
			dates TEXT[] NOT NULL DEFAULT '{}',
			slot_time TEXT NOT NULL DEFAULT '',
			pricing JSONB NOT NULL,
			seat_classes JSONB NOT NULL,
			UNIQUE (category, item_id)
		)
	`
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create catalog_items: %w", err)
	}

	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM catalog_items`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for category, items := range DefaultCatalog() {
		for _, item := range items {
			if err := r.insert(ctx, category, item); err != nil {
				return fmt.Errorf("seed catalog: %w", err)
			}
		}
	}
	return nil
}

func (r *PostgresCatalogRepositoryImpl) insert(ctx context.Context, category model.Category, item *model.CatalogItem) error {
	pricing, err := json.Marshal(item.Pricing)
	if err != nil {
		return err
	}
	seatClasses, err := json.Marshal(item.SeatClasses)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO catalog_items (
			item_id, category, title, destination, base_price,
			show_times, dates, slot_time, pricing, seat_classes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = r.pool.Exec(ctx, query,
		item.ID, string(category), item.Title, item.Destination, item.BasePrice,
		item.ShowTimes, item.Dates, item.Time, pricing, seatClasses,
	)
	return err
}

func (r *PostgresCatalogRepositoryImpl) ListByCategory(ctx context.Context, category model.Category) ([]*model.CatalogItem, error) {
	if err := validateCategory(category); err != nil {
		return nil, err
	}

	query := `
		SELECT item_id, category, title, destination, base_price,
			show_times, dates, slot_time, pricing, seat_classes
		FROM catalog_items
		WHERE category = $1
		ORDER BY item_id
	`

	rows, err := r.pool.Query(ctx, query, string(category))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*model.CatalogItem
	for rows.Next() {
		var item model.CatalogItem
		var pricing, seatClasses []byte

		err := rows.Scan(
			&item.ID,
			&item.Category,
			&item.Title,
			&item.Destination,
			&item.BasePrice,
			&item.ShowTimes,
			&item.Dates,
			&item.Time,
			&pricing,
			&seatClasses,
		)
		if err != nil {
			return nil, err
		}

		if err := json.Unmarshal(pricing, &item.Pricing); err != nil {
			return nil, fmt.Errorf("invalid pricing: %w", err)
		}
		if err := json.Unmarshal(seatClasses, &item.SeatClasses); err != nil {
			return nil, fmt.Errorf("invalid seat classes: %w", err)
		}

		items = append(items, &item)
	}

	return items, rows.Err()
}

func (r *PostgresCatalogRepositoryImpl) Search(ctx context.Context, category model.Category, query string) ([]*model.CatalogItem, error) {
	items, err := r.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	matched := make([]*model.CatalogItem, 0, len(items))
	for _, item := range items {
		if matchesQuery(item, query) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}
