package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Rating struct {
	ID          string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	ProductID   string    `gorm:"size:36;index;not null" json:"product_id"`
	Product     *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Stars       int       `gorm:"not null" json:"stars"`
	Comment     string    `gorm:"type:text" json:"comment"`
	AuthorName  string    `gorm:"size:200" json:"author_name"`
	AuthorEmail string    `gorm:"size:100" json:"author_email"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r *Rating) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}
