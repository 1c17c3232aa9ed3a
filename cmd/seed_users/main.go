package main

import (
	"fmt"
	"log"
	"os"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/pantrychef/backend/internal/models"
)

// Seeds a handful of demo users so the profile routes have something to
// work with in a fresh development database.
func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}); err != nil {
		log.Fatalf("Failed to migrate users table: %v", err)
	}

	password := "demopassword123"
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	for i := 0; i < 5; i++ {
		user := models.User{
			Username:     gofakeit.Username(),
			Email:        gofakeit.Email(),
			PasswordHash: string(hashedPassword),
		}

		if err := db.Where("email = ?", user.Email).FirstOrCreate(&user).Error; err != nil {
			log.Fatalf("Failed to create user %s: %v", user.Email, err)
		}

		fmt.Printf("Seeded user %s <%s> (password: %s)\n", user.Username, user.Email, password)
	}
}
