package models

import "time"

// NewsletterSubscriber is an email address that opted into announcements.
type NewsletterSubscriber struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
