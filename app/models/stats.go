package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Stats holds one business-metrics snapshot per calendar day, keyed by its
// CreatedAt falling inside the day's UTC range. Uniqueness is enforced by an
// existence check in the service, not by a database constraint.
type Stats struct {
	ID            string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Visits        int             `gorm:"not null;default:0" json:"visits"`
	TotalProfit   decimal.Decimal `gorm:"type:decimal(16,2);default:0.00" json:"total_profit"`
	TotalOrders   int             `gorm:"not null;default:0" json:"total_orders"`
	TotalRepairs  int             `gorm:"not null;default:0" json:"total_repairs"`
	TotalProducts int             `gorm:"not null;default:0" json:"total_products"`
	CreatedAt     time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"index" json:"updated_at"`
}

func (s *Stats) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}
