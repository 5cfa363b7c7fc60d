package database

import (
	"fmt"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	defaultLocations  = []string{"Remote", "Almaty", "Astana", "Berlin", "London", "New York"}
	defaultCategories = []string{"Engineering", "Design", "Marketing", "Sales", "Support"}
)

// SeedReferenceData заполняет справочники локаций и категорий, если они пустые
func SeedReferenceData(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Location{}).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count locations: %w", err)
		}
		if count == 0 {
			locations := make([]models.Location, 0, len(defaultLocations))
			for _, name := range defaultLocations {
				locations = append(locations, models.Location{Name: name})
			}
			if err := tx.Create(&locations).Error; err != nil {
				return fmt.Errorf("failed to seed locations: %w", err)
			}
			logger.Info("Seeded locations", "count", len(locations))
		}

		if err := tx.Model(&models.Category{}).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count categories: %w", err)
		}
		if count == 0 {
			categories := make([]models.Category, 0, len(defaultCategories))
			for _, name := range defaultCategories {
				categories = append(categories, models.Category{Name: name})
			}
			if err := tx.Create(&categories).Error; err != nil {
				return fmt.Errorf("failed to seed categories: %w", err)
			}
			logger.Info("Seeded categories", "count", len(categories))
		}
		return nil
	})
}
