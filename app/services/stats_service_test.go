package services

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/raflidev/go-fixmart/app/apperrors"
	"github.com/raflidev/go-fixmart/app/models"
	"github.com/raflidev/go-fixmart/app/repositories"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newStatsService(t *testing.T) (*StatsService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	s := NewStatsService(
		repositories.NewStatsRepository(db),
		repositories.NewOrderRequestRepository(db),
		repositories.NewRepairRequestRepository(db),
	)
	return s, db
}

func TestCreateStatsConflictOnSameDay(t *testing.T) {
	s, _ := newStatsService(t)
	ctx := context.Background()
	now := time.Now()

	if _, err := s.CreateStats(ctx, now); err != nil {
		t.Fatalf("first CreateStats failed: %v", err)
	}
	_, err := s.CreateStats(ctx, now)
	if !apperrors.IsConflict(err) {
		t.Fatalf("second CreateStats: got %v, want conflict", err)
	}
}

func TestUpdateStatsRequiresExistingRecord(t *testing.T) {
	s, _ := newStatsService(t)
	ctx := context.Background()

	day := time.Date(2020, 1, 5, 12, 0, 0, 0, time.UTC)
	orders := 5
	_, err := s.UpdateStats(ctx, StatsPatch{TotalOrders: &orders}, day)
	if !apperrors.IsNotFound(err) {
		t.Fatalf("UpdateStats on missing day: got %v, want not found", err)
	}
}

func TestGetStatsByDateAutoCreates(t *testing.T) {
	s, _ := newStatsService(t)
	ctx := context.Background()

	day := time.Date(2020, 1, 5, 12, 0, 0, 0, time.UTC)
	stats, err := s.GetStatsByDate(ctx, day)
	if err != nil {
		t.Fatalf("GetStatsByDate failed: %v", err)
	}
	if stats.Visits != 0 || stats.TotalOrders != 0 {
		t.Errorf("auto-created record is not zeroed: %+v", stats)
	}
	wantStart := time.Date(2020, 1, 5, 0, 0, 0, 0, time.UTC)
	if !stats.CreatedAt.UTC().Equal(wantStart) {
		t.Errorf("CreatedAt = %v, want %v", stats.CreatedAt, wantStart)
	}

	// The same day now updates instead of erroring.
	orders := 5
	updated, err := s.UpdateStats(ctx, StatsPatch{TotalOrders: &orders}, day)
	if err != nil {
		t.Fatalf("UpdateStats failed: %v", err)
	}
	if updated.TotalOrders != 5 {
		t.Errorf("TotalOrders = %d, want 5", updated.TotalOrders)
	}
}

func TestUpdateStatsOverwritesNotAccumulates(t *testing.T) {
	s, _ := newStatsService(t)
	ctx := context.Background()

	day := time.Date(2021, 6, 10, 8, 0, 0, 0, time.UTC)
	if _, err := s.GetStatsByDate(ctx, day); err != nil {
		t.Fatalf("GetStatsByDate failed: %v", err)
	}

	five, nine := 5, 9
	if _, err := s.UpdateStats(ctx, StatsPatch{TotalOrders: &five}, day); err != nil {
		t.Fatalf("first UpdateStats failed: %v", err)
	}
	updated, err := s.UpdateStats(ctx, StatsPatch{TotalOrders: &nine}, day)
	if err != nil {
		t.Fatalf("second UpdateStats failed: %v", err)
	}
	if updated.TotalOrders != 9 {
		t.Errorf("TotalOrders = %d, want 9 (overwrite, not 14)", updated.TotalOrders)
	}
}

func TestUpdateStatsKeepsUnsetFields(t *testing.T) {
	s, _ := newStatsService(t)
	ctx := context.Background()

	day := time.Date(2021, 6, 11, 8, 0, 0, 0, time.UTC)
	if _, err := s.GetStatsByDate(ctx, day); err != nil {
		t.Fatalf("GetStatsByDate failed: %v", err)
	}

	orders, repairs := 4, 7
	if _, err := s.UpdateStats(ctx, StatsPatch{TotalOrders: &orders, TotalRepairs: &repairs}, day); err != nil {
		t.Fatalf("UpdateStats failed: %v", err)
	}

	profit := decimal.NewFromFloat(123.45)
	updated, err := s.UpdateStats(ctx, StatsPatch{TotalProfit: &profit}, day)
	if err != nil {
		t.Fatalf("UpdateStats failed: %v", err)
	}
	if updated.TotalOrders != 4 || updated.TotalRepairs != 7 {
		t.Errorf("unset fields changed: orders=%d repairs=%d", updated.TotalOrders, updated.TotalRepairs)
	}
	if !updated.TotalProfit.Equal(profit) {
		t.Errorf("TotalProfit = %s, want %s", updated.TotalProfit, profit)
	}
}

func TestCountVisit(t *testing.T) {
	s, _ := newStatsService(t)
	ctx := context.Background()
	now := time.Now()

	if _, err := s.CreateStats(ctx, now); err != nil {
		t.Fatalf("CreateStats failed: %v", err)
	}
	if err := s.CountVisit(ctx, now); err != nil {
		t.Fatalf("CountVisit failed: %v", err)
	}
	if err := s.CountVisit(ctx, now); err != nil {
		t.Fatalf("CountVisit failed: %v", err)
	}

	stats, err := s.GetStatsByDate(ctx, now)
	if err != nil {
		t.Fatalf("GetStatsByDate failed: %v", err)
	}
	if stats.Visits != 2 {
		t.Errorf("Visits = %d, want 2", stats.Visits)
	}
}

func TestCountVisitMissingDayIsNotFound(t *testing.T) {
	s, _ := newStatsService(t)

	day := time.Date(2019, 3, 3, 0, 0, 0, 0, time.UTC)
	err := s.CountVisit(context.Background(), day)
	if !apperrors.IsNotFound(err) {
		t.Fatalf("CountVisit on missing day: got %v, want not found", err)
	}
}

func TestGetAllStatsEmptyIsNotFound(t *testing.T) {
	s, _ := newStatsService(t)

	_, err := s.GetAllStats(context.Background(), "")
	if !apperrors.IsNotFound(err) {
		t.Fatalf("GetAllStats on empty table: got %v, want not found", err)
	}
}

func TestGetAllStatsMalformedFilterIgnored(t *testing.T) {
	s, _ := newStatsService(t)
	ctx := context.Background()

	if _, err := s.CreateStats(ctx, time.Now()); err != nil {
		t.Fatalf("CreateStats failed: %v", err)
	}

	records, err := s.GetAllStats(ctx, "{not json")
	if err != nil {
		t.Fatalf("GetAllStats with malformed filter failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("got %d records, want 1", len(records))
	}
}

func TestGetCurrentStats(t *testing.T) {
	s, db := newStatsService(t)
	ctx := context.Background()

	// Completed order today: 2 x $10.
	completed := &models.OrderRequest{
		CustomerName: "Buyer One",
		Status:       models.RequestStatusCompleted,
		OrderItems: []models.OrderItem{
			{ProductID: "p1", Quantity: 2, UnitPrice: decimal.NewFromInt(10)},
		},
	}
	if err := db.Create(completed).Error; err != nil {
		t.Fatalf("failed to seed completed order: %v", err)
	}

	pending := &models.OrderRequest{CustomerName: "Buyer Two", Status: models.RequestStatusNew}
	if err := db.Create(pending).Error; err != nil {
		t.Fatalf("failed to seed pending order: %v", err)
	}

	// Hidden pending orders are excluded entirely.
	hidden := &models.OrderRequest{CustomerName: "Buyer Three", Status: models.RequestStatusNew, Hidden: true}
	if err := db.Create(hidden).Error; err != nil {
		t.Fatalf("failed to seed hidden order: %v", err)
	}

	service := &models.Service{
		Name:  "Screen swap",
		Slug:  "screen-swap",
		Price: decimal.NewFromInt(25),
		Type:  models.ServiceTypeAtStore,
	}
	if err := db.Create(service).Error; err != nil {
		t.Fatalf("failed to seed service: %v", err)
	}
	completedRepair := &models.RepairRequest{
		ServiceID:    &service.ID,
		CustomerName: "Fix One",
		Status:       models.RequestStatusCompleted,
	}
	if err := db.Create(completedRepair).Error; err != nil {
		t.Fatalf("failed to seed completed repair: %v", err)
	}

	// Backlog repair from last week still counts as pending.
	oldRepair := &models.RepairRequest{CustomerName: "Fix Two", Status: models.RequestStatusNew}
	if err := db.Create(oldRepair).Error; err != nil {
		t.Fatalf("failed to seed backlog repair: %v", err)
	}
	lastWeek := time.Now().AddDate(0, 0, -7)
	if err := db.Model(&models.RepairRequest{}).
		Where("id = ?", oldRepair.ID).
		UpdateColumn("updated_at", lastWeek).Error; err != nil {
		t.Fatalf("failed to backdate repair: %v", err)
	}

	current, err := s.GetCurrentStats(ctx)
	if err != nil {
		t.Fatalf("GetCurrentStats failed: %v", err)
	}

	if current.CompletedOrders != 1 {
		t.Errorf("CompletedOrders = %d, want 1", current.CompletedOrders)
	}
	if current.PendingOrders != 1 {
		t.Errorf("PendingOrders = %d, want 1", current.PendingOrders)
	}
	if current.TotalOrders != 2 {
		t.Errorf("TotalOrders = %d, want 2", current.TotalOrders)
	}
	if current.TotalProducts != 2 {
		t.Errorf("TotalProducts = %d, want 2", current.TotalProducts)
	}
	if current.CompletedRepairs != 1 {
		t.Errorf("CompletedRepairs = %d, want 1", current.CompletedRepairs)
	}
	if current.PendingRepairs != 1 {
		t.Errorf("PendingRepairs = %d, want 1", current.PendingRepairs)
	}
	if current.TotalRepairs != 2 {
		t.Errorf("TotalRepairs = %d, want 2", current.TotalRepairs)
	}
	if math.Abs(current.TotalProfit-45.0) > 1e-9 {
		t.Errorf("TotalProfit = %v, want 45", current.TotalProfit)
	}
}
