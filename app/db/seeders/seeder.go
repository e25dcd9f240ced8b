package seeders

import (
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/raflidev/go-fixmart/app/db/fakers"
	"github.com/raflidev/go-fixmart/app/models"
	"gorm.io/gorm"
)

var categoryNames = []string{"Laptops", "Phones", "Accessories", "Components"}

var serviceCategoryNames = []string{"Screen Repair", "Battery Replacement", "Diagnostics"}

func DBSeed(db *gorm.DB) error {
	admin := fakers.AdminFaker(db)
	if err := db.Debug().FirstOrCreate(admin, "email = ?", admin.Email).Error; err != nil {
		return err
	}

	for i := 0; i < 3; i++ {
		user := fakers.UserFaker(db)
		if err := db.Debug().FirstOrCreate(user, "email = ?", user.Email).Error; err != nil {
			return err
		}
	}

	for _, name := range categoryNames {
		category := &models.Category{
			ID:   uuid.New().String(),
			Name: name,
			Slug: slug.Make(name),
		}
		if err := db.Debug().FirstOrCreate(category, "slug = ?", category.Slug).Error; err != nil {
			return err
		}
		for i := 0; i < 5; i++ {
			if err := db.Debug().Create(fakers.ProductFaker(db, category)).Error; err != nil {
				return err
			}
		}
	}

	for _, name := range serviceCategoryNames {
		category := &models.ServiceCategory{
			ID:   uuid.New().String(),
			Name: name,
			Slug: slug.Make(name),
		}
		if err := db.Debug().FirstOrCreate(category, "slug = ?", category.Slug).Error; err != nil {
			return err
		}
		for i := 0; i < 3; i++ {
			if err := db.Debug().Create(fakers.ServiceFaker(db, category)).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
