package fakers

import (
	"math"
	"math/rand"
	"strings"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/raflidev/go-fixmart/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var productBrands = []string{"Acme", "Voltix", "Nordtek", "Helix", "Kairo"}

func ProductFaker(db *gorm.DB, category *models.Category) *models.Product {
	name := faker.Word() + " " + faker.Word()
	productID := uuid.New().String()
	slugText := slug.Make(name + "-" + uuid.NewString()[:6])

	imagePaths := []string{
		"/uploads/products/sample.jpg",
		"/uploads/products/sample1.jpg",
		"/uploads/products/sample2.jpg",
	}

	numImages := rand.Intn(3) + 1
	productImages := make([]models.ProductImage, numImages)
	for i := 0; i < numImages; i++ {
		img := imagePaths[rand.Intn(len(imagePaths))]
		productImages[i] = models.ProductImage{
			ID:        uuid.New().String(),
			ProductID: productID,
			URL:       img,
			PublicID:  strings.TrimPrefix(img, "/uploads/"),
		}
	}

	product := &models.Product{
		ID:            productID,
		Name:          name,
		Tags:          strings.Join([]string{faker.Word(), faker.Word(), category.Name}, ","),
		Slug:          slugText,
		Price:         decimal.NewFromFloat(fakePrice()),
		Quantity:      rand.Intn(20) + 1,
		CategoryID:    &category.ID,
		Brand:         productBrands[rand.Intn(len(productBrands))],
		Status:        models.ProductStatusAvailable,
		IsFeatured:    rand.Intn(5) == 0,
		ProductImages: productImages,
	}

	return product
}

func fakePrice() float64 {
	return precision(rand.Float64()*math.Pow10(rand.Intn(4)+1), 2)
}

func precision(val float64, pre int) float64 {
	a := math.Pow10(pre)
	return float64(int(val*a)) / a
}
