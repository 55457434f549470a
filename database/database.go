package database

import (
	"fmt"
	"log"

	"github.com/ajitashwath/dare-exchange/config"
	"github.com/ajitashwath/dare-exchange/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection and migrates the models and populates the database with default values if needed
func InitDB() {
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable TimeZone=Asia/Kolkata", config.PostgresHost, config.PostgresPort, config.PostgresUser, config.PostgresDB, config.PostgresPassword)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}

	err = DB.AutoMigrate(
		&models.Category{},
		&models.DifficultyLevel{},
		&models.Dare{},
		&models.DareCompletion{},
		&models.DareLike{},
		&models.SiteConfiguration{},
		&models.NewsletterSubscriber{},
	)
	if err != nil {
		log.Fatal("failed to migrate database: ", err)
	}

	Populate()
}

// Populate populates the database with the seed categories, difficulty levels
// and the configuration row if needed
func Populate() {
	var countCategory int64
	DB.Model(&models.Category{}).Count(&countCategory)
	if countCategory == 0 {
		categories := []models.Category{
			{Name: models.CategoryExtreme, Description: "Dares that push limits", IsActive: true},
			{Name: models.CategoryCreative, Description: "Artistic and inventive dares", IsActive: true},
			{Name: models.CategorySocial, Description: "Dares involving other people", IsActive: true},
			{Name: models.CategoryAdventure, Description: "Dares that take you places", IsActive: true},
		}
		for i := range categories {
			DB.Create(&categories[i])
		}
		log.Println("Default categories created")
	}

	var countDifficulty int64
	DB.Model(&models.DifficultyLevel{}).Count(&countDifficulty)
	if countDifficulty == 0 {
		levels := []models.DifficultyLevel{
			{Name: models.DifficultyEasy, Description: "Anyone can do it", Color: "#198754"},
			{Name: models.DifficultyMedium, Description: "Takes some nerve", Color: "#ffc107"},
			{Name: models.DifficultyHard, Description: "Not for the faint of heart", Color: "#fd7e14"},
			{Name: models.DifficultyExtreme, Description: "Only for the truly daring", Color: "#dc3545"},
		}
		for i := range levels {
			DB.Create(&levels[i])
		}
		log.Println("Default difficulty levels created")
	}

	// The configuration row is created lazily on first read
	if _, err := models.GetConfig(DB); err != nil {
		log.Println("Error while creating the site configuration: ", err)
	}
}
