package services

import (
	"context"
	"io"
	"sort"
	"sync"
	"testing"

	"github.com/raflidev/go-fixmart/app/apperrors"
	"github.com/raflidev/go-fixmart/app/models"
	"github.com/raflidev/go-fixmart/app/repositories"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// fakeStorage records deletions so cascade behavior can be asserted.
type fakeStorage struct {
	mu      sync.Mutex
	deleted []string
}

func (f *fakeStorage) Upload(ctx context.Context, filename string, r io.Reader) (*UploadResult, error) {
	return &UploadResult{URL: "/uploads/" + filename, PublicID: filename}, nil
}

func (f *fakeStorage) Delete(ctx context.Context, publicID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, publicID)
	return nil
}

func newCatalogService(t *testing.T) (*CatalogService, *gorm.DB, *fakeStorage) {
	t.Helper()

	db := newTestDB(t)
	storage := &fakeStorage{}
	s := NewCatalogService(
		repositories.NewProductRepository(db),
		repositories.NewCategoryRepository(db),
		repositories.NewServiceRepository(db),
		repositories.NewServiceCategoryRepository(db),
		storage,
	)
	return s, db, storage
}

func TestDeleteProductCascadesImages(t *testing.T) {
	s, db, storage := newCatalogService(t)
	ctx := context.Background()

	product := &models.Product{
		Name:   "Dock Station",
		Slug:   "dock-station",
		Price:  decimal.NewFromInt(80),
		Status: models.ProductStatusAvailable,
		ProductImages: []models.ProductImage{
			{URL: "/uploads/dock-1.jpg", PublicID: "dock-1"},
			{URL: "/uploads/dock-2.jpg", PublicID: "dock-2"},
		},
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}

	if err := s.DeleteProduct(ctx, product.ID); err != nil {
		t.Fatalf("DeleteProduct failed: %v", err)
	}

	var count int64
	if err := db.Model(&models.Product{}).Where("id = ?", product.ID).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Error("product row survived delete")
	}
	if err := db.Model(&models.ProductImage{}).Where("product_id = ?", product.ID).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Error("image rows survived delete")
	}

	sort.Strings(storage.deleted)
	if len(storage.deleted) != 2 || storage.deleted[0] != "dock-1" || storage.deleted[1] != "dock-2" {
		t.Errorf("storage deletions = %v, want [dock-1 dock-2]", storage.deleted)
	}
}

func TestDeleteProductMissingIsNotFound(t *testing.T) {
	s, _, _ := newCatalogService(t)

	err := s.DeleteProduct(context.Background(), "no-such-id")
	if !apperrors.IsNotFound(err) {
		t.Fatalf("DeleteProduct on missing id: got %v, want not found", err)
	}
}

func TestDeleteCategoryDetachesProducts(t *testing.T) {
	s, db, _ := newCatalogService(t)
	ctx := context.Background()

	category := &models.Category{Name: "Peripherals", Slug: "peripherals"}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	p1 := &models.Product{Name: "Keyboard", Slug: "keyboard", Price: decimal.NewFromInt(40), CategoryID: &category.ID, Status: models.ProductStatusAvailable}
	p2 := &models.Product{Name: "Webcam", Slug: "webcam", Price: decimal.NewFromInt(60), CategoryID: &category.ID, Status: models.ProductStatusAvailable}
	for _, p := range []*models.Product{p1, p2} {
		if err := db.Create(p).Error; err != nil {
			t.Fatalf("failed to seed product: %v", err)
		}
	}

	if err := s.DeleteCategory(ctx, category.ID); err != nil {
		t.Fatalf("DeleteCategory failed: %v", err)
	}

	var count int64
	if err := db.Model(&models.Category{}).Where("id = ?", category.ID).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Error("category row survived delete")
	}

	for _, id := range []string{p1.ID, p2.ID} {
		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			t.Fatalf("product %s did not survive category delete: %v", id, err)
		}
		if product.CategoryID != nil {
			t.Errorf("product %s still references category %v", id, *product.CategoryID)
		}
	}
}

func TestDeleteServiceCategoryBlockedWhileInUse(t *testing.T) {
	s, db, _ := newCatalogService(t)
	ctx := context.Background()

	category := &models.ServiceCategory{Name: "Screen Repair", Slug: "screen-repair"}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to seed service category: %v", err)
	}
	service := &models.Service{
		Name:              "iPhone screen swap",
		Slug:              "iphone-screen-swap",
		Price:             decimal.NewFromInt(99),
		Type:              models.ServiceTypeAtStore,
		ServiceCategoryID: &category.ID,
	}
	if err := db.Create(service).Error; err != nil {
		t.Fatalf("failed to seed service: %v", err)
	}

	err := s.DeleteServiceCategory(ctx, category.ID)
	if !apperrors.IsBadRequest(err) {
		t.Fatalf("DeleteServiceCategory while in use: got %v, want bad request", err)
	}

	// Once the last reference is gone the delete goes through.
	if err := db.Delete(&models.Service{}, "id = ?", service.ID).Error; err != nil {
		t.Fatalf("failed to remove service: %v", err)
	}
	if err := s.DeleteServiceCategory(ctx, category.ID); err != nil {
		t.Fatalf("DeleteServiceCategory after detach failed: %v", err)
	}
}
