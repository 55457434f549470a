package models

import (
	"errors"
	"regexp"
	"time"
)

// Dare moderation states
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	StatusFeatured = "featured"
)

var phonePattern = regexp.MustCompile(`^\+?\d{9,15}$`)

// Dare represents a user-submitted challenge with its moderation state and counters
type Dare struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Slug             string     `gorm:"type:varchar(120);unique;not null" json:"slug"`
	Title            string     `gorm:"type:varchar(200);not null" json:"title"`
	Name             string     `gorm:"type:varchar(100);not null" json:"name"`
	Email            string     `gorm:"type:varchar(255);not null" json:"email"`
	PhoneNumber      string     `gorm:"type:varchar(20);not null" json:"phone_number"`
	College          string     `gorm:"type:varchar(200);not null" json:"college"`
	DareText         string     `gorm:"type:text;not null" json:"dare_text"`
	RequiredItems    string     `gorm:"type:text" json:"required_items"`
	SafetyNotes      string     `gorm:"type:text" json:"safety_notes"`
	EstimatedTime    *int       `json:"estimated_time"`
	CategoryID       uint       `gorm:"not null;index" json:"category_id"`
	DifficultyID     uint       `gorm:"not null;index" json:"difficulty_id"`
	Status           string     `gorm:"type:varchar(20);not null;default:pending;index" json:"status"`
	IsApproved       bool       `gorm:"not null;default:false;index" json:"is_approved"`
	IsFeatured       bool       `gorm:"not null;default:false" json:"is_featured"`
	RejectionReason  string     `gorm:"type:text" json:"rejection_reason,omitempty"`
	ViewsCount       int        `gorm:"not null;default:0" json:"views_count"`
	LikesCount       int        `gorm:"not null;default:0" json:"likes_count"`
	CompletionsCount int        `gorm:"not null;default:0" json:"completions_count"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	ApprovedAt       *time.Time `json:"approved_at"`

	Category    *Category         `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Difficulty  *DifficultyLevel  `gorm:"foreignKey:DifficultyID" json:"difficulty,omitempty"`
	Completions []*DareCompletion `gorm:"foreignKey:DareID;constraint:OnDelete:CASCADE" json:"-"`
	Likes       []*DareLike       `gorm:"foreignKey:DareID;constraint:OnDelete:CASCADE" json:"-"`
}

// SyncStatusFlags derives IsApproved and IsFeatured from Status.
// The flags are never set independently of the status.
func (d *Dare) SyncStatusFlags() {
	switch d.Status {
	case StatusApproved:
		d.IsApproved = true
		d.IsFeatured = false
	case StatusFeatured:
		d.IsApproved = true
		d.IsFeatured = true
	default:
		d.IsApproved = false
		d.IsFeatured = false
	}
}

// ValidatePhoneNumber checks the normalized phone number against the
// accepted pattern (9 to 15 digits with an optional leading plus)
func (d *Dare) ValidatePhoneNumber() error {
	if !phonePattern.MatchString(d.PhoneNumber) {
		return errors.New("phone number must contain 9 to 15 digits")
	}
	return nil
}

// URL returns the canonical path of the dare detail endpoint
func (d *Dare) URL() string {
	return "/dare/" + d.Slug + "/"
}
