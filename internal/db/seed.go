package db

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/landinggenius/backend/internal/models"
)

func features(items ...string) datatypes.JSON {
	b, _ := json.Marshal(items)
	return datatypes.JSON(b)
}

// SeedPackages inserts the token package catalog if it is empty. The catalog
// is static config; prices are IDR per month.
func SeedPackages(gdb *gorm.DB) error {
	var count int64
	if err := gdb.Model(&models.Package{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	packages := []models.Package{
		{
			ID:     "starter",
			Name:   "Starter",
			Price:  49000,
			Tokens: 5,
			Features: features(
				"5 Landing Page",
				"50 Ide Iklan",
				"Basic Templates",
				"WhatsApp Support",
			),
		},
		{
			ID:      "pro",
			Name:    "Professional",
			Price:   99000,
			Tokens:  15,
			Popular: true,
			Features: features(
				"15 Landing Page",
				"150 Ide Iklan",
				"Premium Templates",
				"Custom Domain",
				"Analytics Dashboard",
				"Priority Support",
			),
		},
		{
			ID:     "business",
			Name:   "Business",
			Price:  199000,
			Tokens: 50,
			Features: features(
				"50 Landing Page",
				"500 Ide Iklan",
				"All Templates",
				"White Label",
				"Team Collaboration",
				"API Access",
				"24/7 Phone Support",
			),
		},
	}

	return gdb.Create(&packages).Error
}
