package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	RequestStatusNew        = "new"
	RequestStatusInProgress = "in_progress"
	RequestStatusCompleted  = "completed"
	RequestStatusCancelled  = "cancelled"
)

type OrderRequest struct {
	ID           string      `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	CustomerName string      `gorm:"size:255;not null" json:"customer_name"`
	Email        string      `gorm:"size:100" json:"email"`
	Phone        string      `gorm:"size:30" json:"phone"`
	Address      string      `gorm:"type:text" json:"address"`
	Status       string      `gorm:"size:20;default:'new';not null;index" json:"status"`
	Hidden       bool        `gorm:"default:false" json:"hidden"`
	OrderItems   []OrderItem `json:"items"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `gorm:"index" json:"updated_at"`
}

func (o *OrderRequest) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}

// OrderItem snapshots the product's unit price at intake time so profit
// totals survive later price edits.
type OrderItem struct {
	ID             string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	OrderRequestID string          `gorm:"size:36;index" json:"order_request_id"`
	ProductID      string          `gorm:"size:36;index" json:"product_id"`
	Product        *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity       int             `gorm:"not null" json:"quantity"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"unit_price"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return
}
