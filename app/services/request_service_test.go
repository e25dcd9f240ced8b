package services

import (
	"context"
	"testing"

	"github.com/raflidev/go-fixmart/app/apperrors"
	"github.com/raflidev/go-fixmart/app/models"
	"github.com/raflidev/go-fixmart/app/repositories"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newRequestService(t *testing.T) (*RequestService, *gorm.DB, *fakeStorage) {
	t.Helper()

	db := newTestDB(t)
	storage := &fakeStorage{}
	s := NewRequestService(
		repositories.NewOrderRequestRepository(db),
		repositories.NewRepairRequestRepository(db),
		repositories.NewProductRepository(db),
		repositories.NewServiceRepository(db),
		storage,
	)
	return s, db, storage
}

func TestCreateOrderSnapshotsUnitPrice(t *testing.T) {
	s, db, _ := newRequestService(t)
	ctx := context.Background()

	product := seedProduct(t, db, "Wireless Mouse X200", "wireless-mouse-x200")

	order, err := s.CreateOrder(ctx, &models.OrderRequest{
		CustomerName: "Buyer One",
		Phone:        "555-0100",
	}, []OrderItemInput{{ProductID: product.ID, Quantity: 3}})
	if err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}
	if order.Status != models.RequestStatusNew {
		t.Errorf("Status = %q, want %q", order.Status, models.RequestStatusNew)
	}
	if len(order.OrderItems) != 1 {
		t.Fatalf("got %d items, want 1", len(order.OrderItems))
	}
	if !order.OrderItems[0].UnitPrice.Equal(product.Price) {
		t.Errorf("UnitPrice = %s, want %s", order.OrderItems[0].UnitPrice, product.Price)
	}

	// Later price edits must not rewrite the snapshot.
	product.Price = decimal.NewFromInt(99)
	if err := db.Save(product).Error; err != nil {
		t.Fatalf("failed to reprice product: %v", err)
	}
	stored, err := repositories.NewOrderRequestRepository(db).GetByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if !stored.OrderItems[0].UnitPrice.Equal(decimal.NewFromInt(25)) {
		t.Errorf("stored UnitPrice = %s, want 25", stored.OrderItems[0].UnitPrice)
	}
}

func TestCreateOrderRejectsEmptyAndUnknown(t *testing.T) {
	s, _, _ := newRequestService(t)
	ctx := context.Background()

	_, err := s.CreateOrder(ctx, &models.OrderRequest{CustomerName: "Buyer"}, nil)
	if !apperrors.IsBadRequest(err) {
		t.Fatalf("empty order: got %v, want bad request", err)
	}

	_, err = s.CreateOrder(ctx, &models.OrderRequest{CustomerName: "Buyer"},
		[]OrderItemInput{{ProductID: "no-such-product", Quantity: 1}})
	if !apperrors.IsBadRequest(err) {
		t.Fatalf("unknown product: got %v, want bad request", err)
	}
}

func TestUpdateRepairStatusValidation(t *testing.T) {
	s, db, _ := newRequestService(t)
	ctx := context.Background()

	repair, err := s.CreateRepair(ctx, &models.RepairRequest{
		CustomerName:       "Fix One",
		Phone:              "555-0101",
		ProblemDescription: "no power",
	})
	if err != nil {
		t.Fatalf("CreateRepair failed: %v", err)
	}

	if err := s.UpdateRepairStatus(ctx, repair.ID, "shipped"); !apperrors.IsBadRequest(err) {
		t.Fatalf("invalid status: got %v, want bad request", err)
	}
	if err := s.UpdateRepairStatus(ctx, repair.ID, models.RequestStatusInProgress); err != nil {
		t.Fatalf("UpdateRepairStatus failed: %v", err)
	}

	var stored models.RepairRequest
	if err := db.First(&stored, "id = ?", repair.ID).Error; err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if stored.Status != models.RequestStatusInProgress {
		t.Errorf("Status = %q, want %q", stored.Status, models.RequestStatusInProgress)
	}
}

func TestDeleteRepairCascadesImages(t *testing.T) {
	s, db, storage := newRequestService(t)
	ctx := context.Background()

	repair, err := s.CreateRepair(ctx, &models.RepairRequest{
		CustomerName:       "Fix One",
		Phone:              "555-0101",
		ProblemDescription: "cracked screen",
		RepairImages: []models.RepairImage{
			{URL: "/uploads/crack-1.jpg", PublicID: "crack-1"},
		},
	})
	if err != nil {
		t.Fatalf("CreateRepair failed: %v", err)
	}

	if err := s.DeleteRepair(ctx, repair.ID); err != nil {
		t.Fatalf("DeleteRepair failed: %v", err)
	}

	var count int64
	if err := db.Model(&models.RepairRequest{}).Where("id = ?", repair.ID).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Error("repair row survived delete")
	}
	if err := db.Model(&models.RepairImage{}).Where("repair_request_id = ?", repair.ID).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Error("image rows survived delete")
	}
	if len(storage.deleted) != 1 || storage.deleted[0] != "crack-1" {
		t.Errorf("storage deletions = %v, want [crack-1]", storage.deleted)
	}
}
