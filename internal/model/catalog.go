package model

import (
	"sort"
	"time"
)

// Category of bookable items.
type Category string

const (
	CategoryMovie  Category = "movie"
	CategoryEvent  Category = "event"
	CategoryTravel Category = "travel"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryMovie, CategoryEvent, CategoryTravel:
		return true
	}
	return false
}

// Categories in the order they are offered to the user.
func Categories() []Category {
	return []Category{CategoryMovie, CategoryEvent, CategoryTravel}
}

// CategoryProfile collects the per-category behavior of the booking pipeline
// so that movie/event/travel differences live in one table instead of being
// scattered across conditionals.
type CategoryProfile struct {
	// LabelName is how the resolved item field is called on a ticket.
	LabelName string
	// SeatPriority is the resolution order used by the synthesizer when the
	// extracted hint does not name a seat class.
	SeatPriority []string
	// DefaultSeatKey is the last-resort seat class for this category.
	DefaultSeatKey string
	// SeatVocabulary is the keyword set extraction scans for.
	SeatVocabulary []string
}

var categoryProfiles = map[Category]CategoryProfile{
	CategoryMovie: {
		LabelName:      "movie",
		SeatPriority:   []string{"vip", "premium", "regular", "standard"},
		DefaultSeatKey: "regular",
		SeatVocabulary: []string{"standard", "premium", "vip", "regular", "extra legroom", "recliner"},
	},
	CategoryEvent: {
		LabelName:      "event",
		SeatPriority:   []string{"vip", "premium", "general", "standard"},
		DefaultSeatKey: "general",
		SeatVocabulary: []string{"general", "premium", "vip", "backstage", "better view"},
	},
	CategoryTravel: {
		LabelName:      "destination",
		SeatPriority:   []string{"firstClass", "business", "economy", "standard"},
		DefaultSeatKey: "economy",
		SeatVocabulary: []string{"economy", "business", "first", "first class", "standard"},
	},
}

func (c Category) Profile() CategoryProfile {
	return categoryProfiles[c]
}

// CatalogItem is one bookable unit. Pricing and SeatClasses always share the
// same key set.
type CatalogItem struct {
	ID          int                `json:"id"`
	Category    Category           `json:"category"`
	Title       string             `json:"title,omitempty"`
	Destination string             `json:"destination,omitempty"`
	BasePrice   float64            `json:"price"`
	ShowTimes   []string           `json:"show_times,omitempty"`
	Dates       []string           `json:"dates,omitempty"`
	Time        string             `json:"time,omitempty"`
	Pricing     map[string]float64 `json:"pricing"`
	SeatClasses map[string]string  `json:"seat_classes"`
}

// Label is the display name: title for movies and events, destination for
// trips.
func (i *CatalogItem) Label() string {
	if i.Title != "" {
		return i.Title
	}
	return i.Destination
}

// SeatClassKeys returns the seat class keys in sorted order so option lists
// and matching are deterministic.
func (i *CatalogItem) SeatClassKeys() []string {
	keys := make([]string, 0, len(i.SeatClasses))
	for k := range i.SeatClasses {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DateOptions returns the candidate dates offered after item selection.
// Movies get the next 5 calendar days; events and trips use the catalog dates
// with today as a singleton fallback.
func (i *CatalogItem) DateOptions(now time.Time) []string {
	if i.Category == CategoryMovie {
		dates := make([]string, 5)
		for d := range dates {
			dates[d] = now.AddDate(0, 0, d).Format("Mon, Jan 2")
		}
		return dates
	}
	if len(i.Dates) > 0 {
		return i.Dates
	}
	return []string{now.Format("Mon, Jan 2")}
}

// TimeOptions returns the candidate times offered after date selection.
func (i *CatalogItem) TimeOptions() []string {
	if len(i.ShowTimes) > 0 {
		return i.ShowTimes
	}
	return []string{"10:00 AM", "2:00 PM", "6:00 PM", "9:00 PM"}
}
