package database

import (
	"github.com/vdoan98/trivia-web-application/internal/models"

	"gorm.io/gorm"
)

var DefaultCategories = []string{
	"Science",
	"Art",
	"Geography",
	"History",
	"Entertainment",
	"Sports",
}

// Seed inserts the default categories into an empty categories table and
// reports how many rows it wrote.
func Seed(db *gorm.DB) (int, error) {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	categories := make([]models.Category, 0, len(DefaultCategories))
	for _, t := range DefaultCategories {
		categories = append(categories, models.Category{Type: t})
	}
	if err := db.Create(&categories).Error; err != nil {
		return 0, err
	}
	return len(categories), nil
}
