package migrations

import (
	"github.com/raflidev/go-fixmart/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.ServiceCategory{},
		&models.Service{},
		&models.OrderRequest{},
		&models.OrderItem{},
		&models.RepairRequest{},
		&models.RepairImage{},
		&models.Stats{},
		&models.Banner{},
		&models.Rating{},
	)
}
