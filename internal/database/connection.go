package database

import (
	"fmt"
	"log"
	"supply_manager/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	// Configure GORM
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(databaseURL), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto migrate all models
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := seedUsers(db); err != nil {
		return nil, fmt.Errorf("failed to seed users: %w", err)
	}

	log.Println("Database connected and migrated successfully")
	return db, nil
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Snapshot{},
	)
}

// seedUsers creates the demo hotel and dealer accounts on an empty user
// table so the application is usable out of the box.
func seedUsers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := []struct {
		id       string
		name     string
		email    string
		password string
		role     models.UserRole
	}{
		{"h1", "Grand Hotel Delhi", "grand@hotel.com", "hotel123", models.RoleHotel},
		{"h2", "Taj Punjabi", "taj@hotel.com", "taj123", models.RoleHotel},
		{"h3", "Mumbai Palace", "palace@hotel.com", "palace123", models.RoleHotel},
		{"d1", "Fresh Vegetables Co.", "fresh@dealer.com", "dealer123", models.RoleDealer},
		{"d2", "Premium Produce", "premium@dealer.com", "premium123", models.RoleDealer},
	}

	for _, s := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := models.User{
			ID:           s.id,
			Name:         s.name,
			Email:        s.email,
			PasswordHash: string(hash),
			Role:         string(s.role),
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}

	log.Printf("Seeded %d demo users", len(seed))
	return nil
}
