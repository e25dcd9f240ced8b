package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RepairRequest struct {
	ID                 string        `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	ServiceID          *string       `gorm:"size:36;index" json:"service_id"`
	Service            *Service      `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	CustomerName       string        `gorm:"size:255;not null" json:"customer_name"`
	Email              string        `gorm:"size:100" json:"email"`
	Phone              string        `gorm:"size:30" json:"phone"`
	Address            string        `gorm:"type:text" json:"address"`
	RepairType         string        `gorm:"size:20;default:'at_store';not null" json:"repair_type"`
	ProblemDescription string        `gorm:"type:text" json:"problem_description"`
	Status             string        `gorm:"size:20;default:'new';not null;index" json:"status"`
	Hidden             bool          `gorm:"default:false" json:"hidden"`
	RepairImages       []RepairImage `json:"images"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `gorm:"index" json:"updated_at"`
}

func (r *RepairRequest) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}

type RepairImage struct {
	ID              string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	RepairRequestID string    `gorm:"size:36;index" json:"repair_request_id"`
	URL             string    `gorm:"size:500;not null" json:"url"`
	PublicID        string    `gorm:"size:255;not null" json:"public_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (i *RepairImage) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return
}
