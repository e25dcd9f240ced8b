package services

import (
	"context"
	"testing"

	"github.com/raflidev/go-fixmart/app/models"
	"github.com/raflidev/go-fixmart/app/repositories"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newSearchService(t *testing.T) (*SearchService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	c, _ := newTestCache(t)

	s := NewSearchService(
		c,
		repositories.NewProductRepository(db),
		repositories.NewCategoryRepository(db),
		repositories.NewServiceRepository(db),
		repositories.NewServiceCategoryRepository(db),
		repositories.NewOrderRequestRepository(db),
		repositories.NewRepairRequestRepository(db),
	)
	return s, db
}

func seedProduct(t *testing.T, db *gorm.DB, name, slug string) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:     name,
		Slug:     slug,
		Tags:     "peripherals",
		Brand:    "Voltix",
		Price:    decimal.NewFromInt(25),
		Quantity: 5,
		Status:   models.ProductStatusAvailable,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	return product
}

func TestSearchProductsCaseInsensitive(t *testing.T) {
	s, db := newSearchService(t)
	ctx := context.Background()

	seedProduct(t, db, "Wireless Mouse X200", "wireless-mouse-x200")

	for _, query := range []string{"mouse", "MOUSE"} {
		results, err := s.SearchProducts(ctx, query, 1, 10)
		if err != nil {
			t.Fatalf("SearchProducts(%q) failed: %v", query, err)
		}
		if len(results) != 1 {
			t.Fatalf("SearchProducts(%q) returned %d results, want 1", query, len(results))
		}
		if results[0].Name != "Wireless Mouse X200" {
			t.Errorf("SearchProducts(%q) returned %q", query, results[0].Name)
		}
	}
}

func TestSearchProductsNoMatchReturnsEmptySlice(t *testing.T) {
	s, _ := newSearchService(t)
	ctx := context.Background()

	results, err := s.SearchProducts(ctx, "zzz-no-match", 1, 10)
	if err != nil {
		t.Fatalf("SearchProducts failed: %v", err)
	}
	if results == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}

func TestSearchProductsServesCachedPage(t *testing.T) {
	s, db := newSearchService(t)
	ctx := context.Background()

	seedProduct(t, db, "Wireless Mouse X200", "wireless-mouse-x200")

	first, err := s.SearchProducts(ctx, "mouse", 1, 10)
	if err != nil {
		t.Fatalf("first search failed: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("first search returned %d results, want 1", len(first))
	}

	// New rows within the TTL window stay invisible to the same query.
	seedProduct(t, db, "Gaming Mouse Pro", "gaming-mouse-pro")

	second, err := s.SearchProducts(ctx, "mouse", 1, 10)
	if err != nil {
		t.Fatalf("second search failed: %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("cached search returned %d results, want 1", len(second))
	}
	if second[0].Name != "Wireless Mouse X200" {
		t.Errorf("cached search returned %q", second[0].Name)
	}
}

func TestSearchRequestsUncached(t *testing.T) {
	s, db := newSearchService(t)
	ctx := context.Background()

	order := &models.OrderRequest{CustomerName: "Dana Smith", Phone: "555-0100"}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("failed to seed order: %v", err)
	}
	repair := &models.RepairRequest{CustomerName: "Dana Jones", Phone: "555-0101", ProblemDescription: "cracked screen"}
	if err := db.Create(repair).Error; err != nil {
		t.Fatalf("failed to seed repair: %v", err)
	}

	result, err := s.SearchRequests(ctx, "dana", 1, 10)
	if err != nil {
		t.Fatalf("SearchRequests failed: %v", err)
	}
	if len(result.Orders) != 1 {
		t.Errorf("got %d orders, want 1", len(result.Orders))
	}
	if len(result.Repairs) != 1 {
		t.Errorf("got %d repairs, want 1", len(result.Repairs))
	}

	// Results reflect the store immediately on repeat queries.
	if err := db.Create(&models.OrderRequest{CustomerName: "Dana Lee", Phone: "555-0102"}).Error; err != nil {
		t.Fatalf("failed to seed second order: %v", err)
	}
	result, err = s.SearchRequests(ctx, "dana", 1, 10)
	if err != nil {
		t.Fatalf("SearchRequests failed: %v", err)
	}
	if len(result.Orders) != 2 {
		t.Errorf("got %d orders after insert, want 2", len(result.Orders))
	}
}

func TestNormalizePage(t *testing.T) {
	page, limit := NormalizePage(0, -5)
	if page != DefaultSearchPage || limit != DefaultSearchLimit {
		t.Errorf("NormalizePage(0, -5) = (%d, %d)", page, limit)
	}
	page, limit = NormalizePage(3, 20)
	if page != 3 || limit != 20 {
		t.Errorf("NormalizePage(3, 20) = (%d, %d)", page, limit)
	}
}
