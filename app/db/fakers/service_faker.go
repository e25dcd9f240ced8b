package fakers

import (
	"math/rand"
	"strings"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/raflidev/go-fixmart/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var estimatedTimes = []string{"30 minutes", "1 hour", "2 hours", "1 day", "2-3 days"}

func ServiceFaker(db *gorm.DB, category *models.ServiceCategory) *models.Service {
	name := faker.Word() + " repair"
	serviceType := models.ServiceTypeAtStore
	if rand.Intn(2) == 0 {
		serviceType = models.ServiceTypeAtHome
	}

	return &models.Service{
		ID:                uuid.New().String(),
		Name:              name,
		Tags:              strings.Join([]string{faker.Word(), category.Name}, ","),
		Slug:              slug.Make(name + "-" + uuid.NewString()[:6]),
		Description:       faker.Paragraph(),
		Price:             decimal.NewFromFloat(fakePrice()),
		Type:              serviceType,
		EstimatedTime:     estimatedTimes[rand.Intn(len(estimatedTimes))],
		ServiceCategoryID: &category.ID,
	}
}
