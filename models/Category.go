package models

import "time"

// Category names are fixed by the seed migration
const (
	CategoryExtreme   = "extreme"
	CategoryCreative  = "creative"
	CategorySocial    = "social"
	CategoryAdventure = "adventure"
)

// Category represents a dare category that dares are filed under
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(50);unique;not null" json:"name"`
	Description string    `gorm:"type:varchar(255)" json:"description"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	Dares       []*Dare   `gorm:"foreignKey:CategoryID" json:"-"`
}

// Color returns the display color associated with the category name
func (c *Category) Color() string {
	switch c.Name {
	case CategoryExtreme:
		return "#dc3545"
	case CategoryCreative:
		return "#6f42c1"
	case CategorySocial:
		return "#0d6efd"
	case CategoryAdventure:
		return "#198754"
	default:
		return "#6c757d"
	}
}

// Icon returns the display icon associated with the category name
func (c *Category) Icon() string {
	switch c.Name {
	case CategoryExtreme:
		return "fire"
	case CategoryCreative:
		return "palette"
	case CategorySocial:
		return "people"
	case CategoryAdventure:
		return "compass"
	default:
		return "star"
	}
}
