package models

import "gorm.io/gorm"

// SiteConfiguration is the single row of feature toggles and limits.
// It is lazily created with defaults on first read and always accessed
// through GetConfig rather than queried ad hoc.
type SiteConfiguration struct {
	ID                 uint   `gorm:"primaryKey" json:"id"`
	SiteName           string `gorm:"type:varchar(100);not null;default:Dare Exchange" json:"site_name"`
	AllowSubmissions   bool   `gorm:"not null;default:true" json:"allow_submissions"`
	RequireApproval    bool   `gorm:"not null;default:true" json:"require_approval"`
	EnableLikes        bool   `gorm:"not null;default:true" json:"enable_likes"`
	EnableCompletions  bool   `gorm:"not null;default:true" json:"enable_completions"`
	MaxDaresPerUser    int    `gorm:"not null;default:10" json:"max_dares_per_user"`
	FeaturedDaresCount int    `gorm:"not null;default:6" json:"featured_dares_count"`
}

// GetConfig returns the singleton configuration row, creating it with
// defaults if it does not exist yet
func GetConfig(db *gorm.DB) (*SiteConfiguration, error) {
	var config SiteConfiguration
	if err := db.First(&config).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		config = SiteConfiguration{
			SiteName:           "Dare Exchange",
			AllowSubmissions:   true,
			RequireApproval:    true,
			EnableLikes:        true,
			EnableCompletions:  true,
			MaxDaresPerUser:    10,
			FeaturedDaresCount: 6,
		}
		if err := db.Create(&config).Error; err != nil {
			return nil, err
		}
	}
	return &config, nil
}
