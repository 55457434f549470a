package models

import "time"

// DareLike represents a single endorsement of a dare by an email address.
// The existence of the row is the liked state; toggling deletes or creates it.
type DareLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DareID    uint      `gorm:"not null;uniqueIndex:idx_like_dare_email" json:"dare_id"`
	UserEmail string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_like_dare_email" json:"user_email"`
	CreatedAt time.Time `json:"created_at"`

	Dare *Dare `gorm:"foreignKey:DareID" json:"-"`
}
