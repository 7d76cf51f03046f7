package main

import (
	"log"
	"os"

	"github.com/atlanteavila/trashpanda-sub000/internal/model"
	"github.com/atlanteavila/trashpanda-sub000/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	SeedServiceOfferings(db)
}

// SeedServiceOfferings loads the public catalog. Safe to re-run: rows are
// upserted by slug so rate changes land without duplicating offerings.
func SeedServiceOfferings(db *gorm.DB) {
	offerings := []model.ServiceOffering{
		{
			Slug:             "trash-bin-cleaning",
			Name:             "Trash Bin Cleaning",
			Description:      "High-pressure wash and deodorize your curbside trash bins after pickup.",
			Unit:             "per bin",
			MonthlyRate:      9.99,
			SavingsText:      "Bundle 2+ bins and save",
			DefaultFrequency: "monthly",
			IsActive:         true,
			SortOrder:        1,
		},
		{
			Slug:             "recycling-bin-cleaning",
			Name:             "Recycling Bin Cleaning",
			Description:      "Keep recycling bins free of residue and odor.",
			Unit:             "per bin",
			MonthlyRate:      7.99,
			DefaultFrequency: "monthly",
			IsActive:         true,
			SortOrder:        2,
		},
		{
			Slug:             "curbside-valet",
			Name:             "Curbside Bin Valet",
			Description:      "We roll your bins to the curb before pickup and back when they're emptied.",
			Unit:             "per home",
			MonthlyRate:      24.99,
			SavingsText:      "Most popular",
			DefaultFrequency: "weekly",
			IsActive:         true,
			SortOrder:        3,
		},
		{
			Slug:             "pressure-washing",
			Name:             "Driveway Pressure Washing",
			Description:      "Monthly pressure wash for driveways and walkways.",
			Unit:             "per visit",
			MonthlyRate:      49.99,
			DefaultFrequency: "monthly",
			IsActive:         true,
			SortOrder:        4,
		},
		{
			Slug:             "pet-waste-removal",
			Name:             "Pet Waste Removal",
			Description:      "Weekly yard sweep so you never have to think about it.",
			Unit:             "per yard",
			MonthlyRate:      39.99,
			DefaultFrequency: "weekly",
			IsActive:         true,
			SortOrder:        5,
		},
	}

	for _, offering := range offerings {
		err := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "description", "unit", "monthly_rate",
				"savings_text", "default_frequency", "is_active", "sort_order",
			}),
		}).Create(&offering).Error
		if err != nil {
			log.Printf("Warn: Failed to seed offering %s: %v", offering.Slug, err)
		}
	}

	log.Printf("✅ Seeded %d service offerings.", len(offerings))
}
