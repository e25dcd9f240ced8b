package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/raflidev/go-fixmart/app/models"
	"gorm.io/gorm"
)

type StatsRepository interface {
	Create(ctx context.Context, stats *models.Stats) error
	Save(ctx context.Context, stats *models.Stats) error
	FindByDayRange(ctx context.Context, start, end time.Time) (*models.Stats, error)
	FindLatest(ctx context.Context, from, to *time.Time, limit int) ([]models.Stats, error)
	FindByRange(ctx context.Context, start, end time.Time) ([]models.Stats, error)
	IncrementVisits(ctx context.Context, id string) error
}

type gormStatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &gormStatsRepository{db: db}
}

func (r *gormStatsRepository) Create(ctx context.Context, stats *models.Stats) error {
	return r.db.WithContext(ctx).Create(stats).Error
}

func (r *gormStatsRepository) Save(ctx context.Context, stats *models.Stats) error {
	stats.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(stats).Error
}

// FindByDayRange returns the most recently touched record whose createdAt or
// updatedAt falls inside the range, or nil when the day has none.
func (r *gormStatsRepository) FindByDayRange(ctx context.Context, start, end time.Time) (*models.Stats, error) {
	var stats models.Stats
	err := r.db.WithContext(ctx).
		Where("(created_at BETWEEN ? AND ?) OR (updated_at BETWEEN ? AND ?)", start, end, start, end).
		Order("updated_at DESC").
		First(&stats).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stats, nil
}

func (r *gormStatsRepository) FindLatest(ctx context.Context, from, to *time.Time, limit int) ([]models.Stats, error) {
	var records []models.Stats

	query := r.db.WithContext(ctx).Model(&models.Stats{})
	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("created_at <= ?", *to)
	}

	err := query.Order("created_at DESC").Limit(limit).Find(&records).Error
	return records, err
}

func (r *gormStatsRepository) FindByRange(ctx context.Context, start, end time.Time) ([]models.Stats, error) {
	var records []models.Stats
	err := r.db.WithContext(ctx).
		Where("created_at BETWEEN ? AND ?", start, end).
		Order("created_at ASC").
		Find(&records).Error
	return records, err
}

func (r *gormStatsRepository) IncrementVisits(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&models.Stats{}).
		Where("id = ?", id).
		Update("visits", gorm.Expr("visits + 1")).Error
}
