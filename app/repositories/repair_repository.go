package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/raflidev/go-fixmart/app/models"
	"gorm.io/gorm"
)

type RepairRequestRepository interface {
	Create(ctx context.Context, repair *models.RepairRequest) error
	GetByID(ctx context.Context, id string) (*models.RepairRequest, error)
	GetPaginated(ctx context.Context, limit, offset int, includeHidden bool) ([]models.RepairRequest, int64, error)
	UpdateStatus(ctx context.Context, id, status string) error
	SetHidden(ctx context.Context, id string, hidden bool) error
	Delete(ctx context.Context, id string) error
	SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.RepairRequest, error)
	FindCompletedBetween(ctx context.Context, start, end time.Time) ([]models.RepairRequest, error)
	FindPending(ctx context.Context) ([]models.RepairRequest, error)
}

type gormRepairRequestRepository struct {
	db *gorm.DB
}

func NewRepairRequestRepository(db *gorm.DB) RepairRequestRepository {
	return &gormRepairRequestRepository{db: db}
}

func (r *gormRepairRequestRepository) Create(ctx context.Context, repair *models.RepairRequest) error {
	return r.db.WithContext(ctx).Create(repair).Error
}

func (r *gormRepairRequestRepository) GetByID(ctx context.Context, id string) (*models.RepairRequest, error) {
	var repair models.RepairRequest
	err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("RepairImages").
		First(&repair, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &repair, nil
}

func (r *gormRepairRequestRepository) GetPaginated(ctx context.Context, limit, offset int, includeHidden bool) ([]models.RepairRequest, int64, error) {
	var repairs []models.RepairRequest
	var total int64

	query := r.db.WithContext(ctx).Model(&models.RepairRequest{})
	if !includeHidden {
		query = query.Where("hidden = ?", false)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Service").
		Preload("RepairImages").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&repairs).Error

	return repairs, total, err
}

func (r *gormRepairRequestRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.RepairRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}

func (r *gormRepairRequestRepository) SetHidden(ctx context.Context, id string, hidden bool) error {
	return r.db.WithContext(ctx).
		Model(&models.RepairRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"hidden":     hidden,
			"updated_at": time.Now(),
		}).Error
}

func (r *gormRepairRequestRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("repair_request_id = ?", id).Delete(&models.RepairImage{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&models.RepairRequest{}, "id = ?", id).Error
}

func (r *gormRepairRequestRepository) SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.RepairRequest, error) {
	var repairs []models.RepairRequest
	searchKeyword := "%" + strings.ToLower(keyword) + "%"

	err := r.db.WithContext(ctx).
		Preload("Service").
		Where("LOWER(customer_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(phone) LIKE ? OR LOWER(address) LIKE ? OR LOWER(problem_description) LIKE ?",
			searchKeyword, searchKeyword, searchKeyword, searchKeyword, searchKeyword).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&repairs).Error

	return repairs, err
}

func (r *gormRepairRequestRepository) FindCompletedBetween(ctx context.Context, start, end time.Time) ([]models.RepairRequest, error) {
	var repairs []models.RepairRequest
	err := r.db.WithContext(ctx).
		Preload("Service").
		Where("status = ? AND updated_at BETWEEN ? AND ?", models.RequestStatusCompleted, start, end).
		Find(&repairs).Error
	return repairs, err
}

// FindPending returns every non-hidden new/in-progress repair regardless of
// date. The live stats computation counts the whole backlog, not just
// today's.
func (r *gormRepairRequestRepository) FindPending(ctx context.Context) ([]models.RepairRequest, error) {
	var repairs []models.RepairRequest
	err := r.db.WithContext(ctx).
		Where("status IN ? AND hidden = ?", []string{models.RequestStatusNew, models.RequestStatusInProgress}, false).
		Find(&repairs).Error
	return repairs, err
}
