package fakers

import (
	"log"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/raflidev/go-fixmart/app/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func UserFaker(db *gorm.DB) *models.User {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash faker password:", err)
	}

	return &models.User{
		ID:       uuid.New().String(),
		Name:     faker.Name(),
		Email:    faker.Email(),
		Phone:    faker.Phonenumber(),
		Password: string(hashed),
		Role:     models.RoleCustomer,
	}
}

// AdminFaker returns the fixed admin login used by the seeder.
func AdminFaker(db *gorm.DB) *models.User {
	hashed, err := bcrypt.GenerateFromPassword([]byte("admin12345"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash admin password:", err)
	}

	return &models.User{
		ID:       uuid.New().String(),
		Name:     "Administrator",
		Email:    "admin@fixmart.local",
		Phone:    "000-000-0000",
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}
}
