package repository

import (
	"context"
	"fmt"
	"strings"

	"go-booking-assistant/internal/model"
	apperrors "go-booking-assistant/pkg/app_errors"
)

// CatalogRepository is the read-only catalog provider the engine consumes.
type CatalogRepository interface {
	// ListByCategory returns every bookable item in a category.
	ListByCategory(ctx context.Context, category model.Category) ([]*model.CatalogItem, error)
	// Search performs a fuzzy substring match of query against any field of
	// each item in the category, in catalog order.
	Search(ctx context.Context, category model.Category, query string) ([]*model.CatalogItem, error)
}

// matchesQuery reports whether query appears, case-insensitively, in any
// field of the item: label, seat class keys and descriptions, time slots or
// dates.
func matchesQuery(item *model.CatalogItem, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}

	fields := []string{item.Label(), item.Time, fmt.Sprintf("%d", item.ID)}
	fields = append(fields, item.ShowTimes...)
	fields = append(fields, item.Dates...)
	for key, desc := range item.SeatClasses {
		fields = append(fields, key, desc)
	}

	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func validateCategory(category model.Category) error {
	if !category.IsValid() {
		return apperrors.ErrInvalidCategory
	}
	return nil
}
