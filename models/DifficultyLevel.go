package models

// Difficulty level names are fixed by the seed migration
const (
	DifficultyEasy    = "easy"
	DifficultyMedium  = "medium"
	DifficultyHard    = "hard"
	DifficultyExtreme = "extreme"
)

// DifficultyLevel represents how demanding a dare is expected to be
type DifficultyLevel struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"type:varchar(50);unique;not null" json:"name"`
	Description string  `gorm:"type:varchar(255)" json:"description"`
	Color       string  `gorm:"type:varchar(20)" json:"color"`
	Dares       []*Dare `gorm:"foreignKey:DifficultyID" json:"-"`
}
