package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ProductStatusAvailable  = "available"
	ProductStatusOutOfStock = "out_of_stock"
	ProductStatusHidden     = "hidden"
)

type Product struct {
	ID            string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name          string          `gorm:"size:255;not null" json:"name"`
	Tags          string          `gorm:"size:500" json:"tags"`
	Slug          string          `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Price         decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	Quantity      int             `gorm:"not null;default:0" json:"quantity"`
	CategoryID    *string         `gorm:"size:36;index" json:"category_id"`
	Category      *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Brand         string          `gorm:"size:100" json:"brand"`
	Status        string          `gorm:"size:20;default:'available';not null" json:"status"`
	IsFeatured    bool            `gorm:"default:false" json:"is_featured"`
	ProductImages []ProductImage  `json:"images"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

type ProductImage struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	ProductID string    `gorm:"size:36;index" json:"product_id"`
	URL       string    `gorm:"size:500;not null" json:"url"`
	PublicID  string    `gorm:"size:255;not null" json:"public_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i *ProductImage) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return
}
