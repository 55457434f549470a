package models

import "time"

// DareCompletion represents a user's claim of having completed a dare.
// A completer can submit at most one completion per dare.
type DareCompletion struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	DareID          uint      `gorm:"not null;uniqueIndex:idx_completion_dare_email" json:"dare_id"`
	CompleterName   string    `gorm:"type:varchar(100);not null" json:"completer_name"`
	CompleterEmail  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_completion_dare_email" json:"completer_email"`
	CompletionProof string    `gorm:"type:text;not null" json:"completion_proof"`
	CompletionImage string    `gorm:"type:varchar(500)" json:"completion_image"`
	IsVerified      bool      `gorm:"not null;default:false;index" json:"is_verified"`
	CompletedAt     time.Time `gorm:"autoCreateTime" json:"completed_at"`

	Dare *Dare `gorm:"foreignKey:DareID" json:"dare,omitempty"`
}
