package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/raflidev/go-fixmart/app/apperrors"
	"github.com/raflidev/go-fixmart/app/models"
	"github.com/raflidev/go-fixmart/app/repositories"
	"github.com/shopspring/decimal"
)

// StatsService maintains one persisted metrics snapshot per calendar day and
// computes a live snapshot on demand. It knows nothing about scheduling; the
// snapshot job drives it through this public API.
type StatsService struct {
	statsRepo  repositories.StatsRepository
	orderRepo  repositories.OrderRequestRepository
	repairRepo repositories.RepairRequestRepository
}

func NewStatsService(
	statsRepo repositories.StatsRepository,
	orderRepo repositories.OrderRequestRepository,
	repairRepo repositories.RepairRequestRepository,
) *StatsService {
	return &StatsService{
		statsRepo:  statsRepo,
		orderRepo:  orderRepo,
		repairRepo: repairRepo,
	}
}

// StatsPatch names every updatable field. A nil field keeps the stored
// value; a set field overwrites it ("set latest known total", not an
// accumulator).
type StatsPatch struct {
	TotalProfit   *decimal.Decimal `json:"total_profit"`
	TotalOrders   *int             `json:"total_orders"`
	TotalRepairs  *int             `json:"total_repairs"`
	TotalProducts *int             `json:"total_products"`
}

// CurrentStats is the live computation over "today"; it is never persisted
// directly.
type CurrentStats struct {
	TotalProfit      float64 `json:"total_profit"`
	TotalOrders      int     `json:"total_orders"`
	CompletedOrders  int     `json:"completed_orders"`
	PendingOrders    int     `json:"pending_orders"`
	TotalRepairs     int     `json:"total_repairs"`
	CompletedRepairs int     `json:"completed_repairs"`
	// PendingRepairs counts the whole non-hidden backlog, not just today's.
	PendingRepairs int `json:"pending_repairs"`
	TotalProducts  int `json:"total_products"`
}

// StatsFilter narrows GetAllStats by creation date. It arrives from the
// HTTP layer as a JSON query parameter.
type StatsFilter struct {
	From *time.Time `json:"from"`
	To   *time.Time `json:"to"`
}

// utcDayRange returns [00:00:00.000, 23:59:59.999] UTC for the given date.
func utcDayRange(date time.Time) (time.Time, time.Time) {
	d := date.UTC()
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end
}

// localDayRange buckets "today" for the live computation, which runs in the
// business's wall-clock day rather than UTC.
func localDayRange(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end
}

// CreateStats inserts a zeroed record for the date's UTC day. Conflict if a
// record already touches that day. Uniqueness is this existence check only;
// concurrent creates for the same day can still race.
func (s *StatsService) CreateStats(ctx context.Context, date time.Time) (*models.Stats, error) {
	start, end := utcDayRange(date)

	existing, err := s.statsRepo.FindByDayRange(ctx, start, end)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	if existing != nil {
		return nil, apperrors.NewConflict("stats record already exists for this day")
	}

	stats := &models.Stats{
		TotalProfit: decimal.Zero,
		CreatedAt:   start,
		UpdatedAt:   start,
	}
	if err := s.statsRepo.Create(ctx, stats); err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return stats, nil
}

// GetStatsByDate returns the day's record, creating a zeroed one when the
// day has none (read-repair).
func (s *StatsService) GetStatsByDate(ctx context.Context, date time.Time) (*models.Stats, error) {
	start, end := utcDayRange(date)

	stats, err := s.statsRepo.FindByDayRange(ctx, start, end)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	if stats != nil {
		return stats, nil
	}

	stats = &models.Stats{
		TotalProfit: decimal.Zero,
		CreatedAt:   start,
		UpdatedAt:   start,
	}
	if err := s.statsRepo.Create(ctx, stats); err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return stats, nil
}

// GetAllStats returns up to the 31 most recent records, newest first. A
// malformed filter string is treated as no filter.
func (s *StatsService) GetAllStats(ctx context.Context, filterJSON string) ([]models.Stats, error) {
	var filter StatsFilter
	if filterJSON != "" {
		if err := json.Unmarshal([]byte(filterJSON), &filter); err != nil {
			filter = StatsFilter{}
		}
	}

	records, err := s.statsRepo.FindLatest(ctx, filter.From, filter.To, 31)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	if len(records) == 0 {
		return nil, apperrors.NewNotFound("no stats records found")
	}
	return records, nil
}

func (s *StatsService) GetStatsByMonth(ctx context.Context, month time.Month, year int) ([]models.Stats, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)

	records, err := s.statsRepo.FindByRange(ctx, start, end)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	if len(records) == 0 {
		return nil, apperrors.NewNotFound("no stats records found for this month")
	}
	return records, nil
}

// UpdateStats overwrites the day's totals from the patch. The record must
// already exist; there is no auto-create here.
func (s *StatsService) UpdateStats(ctx context.Context, patch StatsPatch, date time.Time) (*models.Stats, error) {
	start, end := utcDayRange(date)

	stats, err := s.statsRepo.FindByDayRange(ctx, start, end)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	if stats == nil {
		return nil, apperrors.NewNotFound("no stats record exists for this day")
	}

	if patch.TotalProfit != nil {
		stats.TotalProfit = *patch.TotalProfit
	}
	if patch.TotalOrders != nil {
		stats.TotalOrders = *patch.TotalOrders
	}
	if patch.TotalRepairs != nil {
		stats.TotalRepairs = *patch.TotalRepairs
	}
	if patch.TotalProducts != nil {
		stats.TotalProducts = *patch.TotalProducts
	}

	if err := s.statsRepo.Save(ctx, stats); err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return stats, nil
}

// CountVisit increments the day's visit counter by exactly 1. Unlike
// GetStatsByDate it does not create a missing record.
func (s *StatsService) CountVisit(ctx context.Context, date time.Time) error {
	start, end := utcDayRange(date)

	stats, err := s.statsRepo.FindByDayRange(ctx, start, end)
	if err != nil {
		return apperrors.NewInternal(err)
	}
	if stats == nil {
		return apperrors.NewNotFound("no stats record exists for this day")
	}

	if err := s.statsRepo.IncrementVisits(ctx, stats.ID); err != nil {
		return apperrors.NewInternal(err)
	}
	return nil
}

// GetCurrentStats computes today's metrics without persisting anything.
// Profit sums unit price x quantity over completed orders' line items plus
// the service price of each repair completed today; it is rounded to two
// decimals only at this boundary.
func (s *StatsService) GetCurrentStats(ctx context.Context) (*CurrentStats, error) {
	start, end := localDayRange(time.Now())

	orders, err := s.orderRepo.FindUpdatedBetween(ctx, start, end)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	profit := decimal.Zero
	result := &CurrentStats{}

	for _, order := range orders {
		switch {
		case order.Status == models.RequestStatusCompleted:
			result.CompletedOrders++
			for _, item := range order.OrderItems {
				profit = profit.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
				result.TotalProducts += item.Quantity
			}
		case !order.Hidden:
			result.PendingOrders++
		}
	}
	result.TotalOrders = result.CompletedOrders + result.PendingOrders

	completedRepairs, err := s.repairRepo.FindCompletedBetween(ctx, start, end)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	for _, repair := range completedRepairs {
		if repair.Service != nil {
			profit = profit.Add(repair.Service.Price)
		}
	}
	result.CompletedRepairs = len(completedRepairs)

	pendingRepairs, err := s.repairRepo.FindPending(ctx)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	result.PendingRepairs = len(pendingRepairs)
	result.TotalRepairs = result.CompletedRepairs + result.PendingRepairs

	result.TotalProfit = profit.Round(2).InexactFloat64()
	return result, nil
}
