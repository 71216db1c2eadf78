package repository

import (
	"context"

	"go-booking-assistant/internal/model"
)

// StaticCatalogRepository serves the built-in catalog from memory. It backs
// tests and deployments without a database; the same data seeds the Postgres
// catalog on first start.
type StaticCatalogRepositoryImpl struct {
	items map[model.Category][]*model.CatalogItem
}

func NewStaticCatalogRepository() CatalogRepository {
	return &StaticCatalogRepositoryImpl{items: DefaultCatalog()}
}

func (r *StaticCatalogRepositoryImpl) ListByCategory(ctx context.Context, category model.Category) ([]*model.CatalogItem, error) {
	if err := validateCategory(category); err != nil {
		return nil, err
	}

	src := r.items[category]
	out := make([]*model.CatalogItem, len(src))
	for i, item := range src {
		copied := *item
		out[i] = &copied
	}
	return out, nil
}

func (r *StaticCatalogRepositoryImpl) Search(ctx context.Context, category model.Category, query string) ([]*model.CatalogItem, error) {
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

// DefaultCatalog returns the built-in bookable items per category.
func DefaultCatalog() map[model.Category][]*model.CatalogItem {
	movieSeats := map[string]string{
		"regular": "Standard Seating",
		"premium": "Premium Seating with Extra Legroom",
		"vip":     "VIP Recliner with Food Service",
	}
	travelSeats := map[string]string{
		"economy":    "Economy Class",
		"business":   "Business Class with Lounge Access",
		"firstClass": "First Class with Premium Services",
	}

	return map[model.Category][]*model.CatalogItem{
		model.CategoryMovie: {
			{
				ID: 1, Category: model.CategoryMovie, Title: "The Matrix Resurrections",
				BasePrice: 12.99,
				ShowTimes: []string{"10:00", "13:00", "16:00", "19:00"},
				Pricing:   map[string]float64{"regular": 12.99, "premium": 16.99, "vip": 24.99},
				SeatClasses: movieSeats,
			},
			{
				ID: 2, Category: model.CategoryMovie, Title: "Dune",
				BasePrice: 14.99,
				ShowTimes: []string{"11:00", "14:00", "17:00", "20:00"},
				Pricing:   map[string]float64{"regular": 14.99, "premium": 18.99, "vip": 26.99},
				SeatClasses: movieSeats,
			},
			{
				ID: 3, Category: model.CategoryMovie, Title: "Inception",
				BasePrice: 13.99,
				ShowTimes: []string{"12:00", "15:00", "18:00", "21:00"},
				Pricing:   map[string]float64{"regular": 13.99, "premium": 17.99, "vip": 25.99},
				SeatClasses: movieSeats,
			},
		},
		model.CategoryEvent: {
			{
				ID: 1, Category: model.CategoryEvent, Title: "Rock Concert",
				BasePrice: 49.99,
				Dates:     []string{"2024-02-15"}, Time: "20:00",
				Pricing: map[string]float64{"general": 49.99, "premium": 79.99, "vip": 149.99},
				SeatClasses: map[string]string{
					"general": "General Admission",
					"premium": "Premium Section with Better View",
					"vip":     "VIP Section with Meet & Greet",
				},
			},
			{
				ID: 2, Category: model.CategoryEvent, Title: "Comedy Show",
				BasePrice: 29.99,
				Dates:     []string{"2024-02-20"}, Time: "19:00",
				Pricing: map[string]float64{"general": 29.99, "premium": 49.99, "vip": 89.99},
				SeatClasses: map[string]string{
					"general": "General Seating",
					"premium": "Premium Seating - Front Section",
					"vip":     "VIP Package with Backstage Pass",
				},
			},
			{
				ID: 3, Category: model.CategoryEvent, Title: "Tech Conference",
				BasePrice: 199.99,
				Dates:     []string{"2024-03-01"}, Time: "09:00",
				Pricing: map[string]float64{"standard": 199.99, "professional": 299.99, "enterprise": 499.99},
				SeatClasses: map[string]string{
					"standard":     "Standard Access - All Sessions",
					"professional": "Pro Access - Including Workshops",
					"enterprise":   "Enterprise - Private Networking Events",
				},
			},
		},
		model.CategoryTravel: {
			{
				ID: 1, Category: model.CategoryTravel, Destination: "Paris",
				BasePrice: 299.99,
				Dates:     []string{"2024-02-15", "2024-02-20", "2024-02-25"},
				Pricing:   map[string]float64{"economy": 299.99, "business": 599.99, "firstClass": 999.99},
				SeatClasses: travelSeats,
			},
			{
				ID: 2, Category: model.CategoryTravel, Destination: "Tokyo",
				BasePrice: 499.99,
				Dates:     []string{"2024-03-01", "2024-03-05", "2024-03-10"},
				Pricing:   map[string]float64{"economy": 499.99, "business": 899.99, "firstClass": 1499.99},
				SeatClasses: travelSeats,
			},
			{
				ID: 3, Category: model.CategoryTravel, Destination: "New York",
				BasePrice: 399.99,
				Dates:     []string{"2024-02-18", "2024-02-23", "2024-02-28"},
				Pricing:   map[string]float64{"economy": 399.99, "business": 799.99, "firstClass": 1299.99},
				SeatClasses: travelSeats,
			},
		},
	}
}
