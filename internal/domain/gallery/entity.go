package gallery

import (
	"time"

	"github.com/google/uuid"
)

// Category of a gallery image.
type Category string

const (
	CategoryWedding  Category = "wedding"
	CategoryPortrait Category = "portrait"
	CategoryEvent    Category = "event"
)

// IsValid reports whether c is a known gallery category.
func (c Category) IsValid() bool {
	switch c {
	case CategoryWedding, CategoryPortrait, CategoryEvent:
		return true
	}
	return false
}

// Image is one published gallery item.
type Image struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Category  Category  `db:"category" json:"category"`
	URL       string    `db:"url" json:"url"`
	ThumbURL  string    `db:"thumb_url" json:"thumb_url"`
	Position  int       `db:"position" json:"position"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ServiceInfo describes one offered studio service for the site.
type ServiceInfo struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ServiceCatalog is the fixed set of services shown on the site.
var ServiceCatalog = []ServiceInfo{
	{
		Key:   "wedding",
		Title: "Wedding Photography",
		Description: "Capture your special day with our professional wedding photography services. " +
			"We focus on candid moments and emotions.",
	},
	{
		Key:   "event",
		Title: "Event Videography",
		Description: "High-quality video coverage for all types of events. " +
			"We provide cinematic editing and storytelling.",
	},
	{
		Key:   "portrait",
		Title: "Portrait Sessions",
		Description: "Individual or family portrait sessions in studio or at outdoor locations " +
			"of your choice.",
	},
}
