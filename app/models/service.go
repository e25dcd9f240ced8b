package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ServiceTypeAtHome  = "at_home"
	ServiceTypeAtStore = "at_store"
)

type Service struct {
	ID                string           `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name              string           `gorm:"size:255;not null" json:"name"`
	Tags              string           `gorm:"size:500" json:"tags"`
	Slug              string           `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Description       string           `gorm:"type:text" json:"description"`
	Price             decimal.Decimal  `gorm:"type:decimal(16,2);not null" json:"price"`
	Type              string           `gorm:"size:20;default:'at_store';not null" json:"type"`
	EstimatedTime     string           `gorm:"size:100" json:"estimated_time"`
	ServiceCategoryID *string          `gorm:"size:36;index" json:"service_category_id"`
	ServiceCategory   *ServiceCategory `gorm:"foreignKey:ServiceCategoryID" json:"service_category,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}
