package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/raflidev/go-fixmart/app/models"
	"gorm.io/gorm"
)

type OrderRequestRepository interface {
	Create(ctx context.Context, order *models.OrderRequest) error
	GetByID(ctx context.Context, id string) (*models.OrderRequest, error)
	GetPaginated(ctx context.Context, limit, offset int, includeHidden bool) ([]models.OrderRequest, int64, error)
	UpdateStatus(ctx context.Context, id, status string) error
	SetHidden(ctx context.Context, id string, hidden bool) error
	SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.OrderRequest, error)
	FindUpdatedBetween(ctx context.Context, start, end time.Time) ([]models.OrderRequest, error)
}

type gormOrderRequestRepository struct {
	db *gorm.DB
}

func NewOrderRequestRepository(db *gorm.DB) OrderRequestRepository {
	return &gormOrderRequestRepository{db: db}
}

func (r *gormOrderRequestRepository) Create(ctx context.Context, order *models.OrderRequest) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *gormOrderRequestRepository) GetByID(ctx context.Context, id string) (*models.OrderRequest, error) {
	var order models.OrderRequest
	err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Preload("OrderItems.Product").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *gormOrderRequestRepository) GetPaginated(ctx context.Context, limit, offset int, includeHidden bool) ([]models.OrderRequest, int64, error) {
	var orders []models.OrderRequest
	var total int64

	query := r.db.WithContext(ctx).Model(&models.OrderRequest{})
	if !includeHidden {
		query = query.Where("hidden = ?", false)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("OrderItems").
		Preload("OrderItems.Product").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error

	return orders, total, err
}

func (r *gormOrderRequestRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.OrderRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}

func (r *gormOrderRequestRepository) SetHidden(ctx context.Context, id string, hidden bool) error {
	return r.db.WithContext(ctx).
		Model(&models.OrderRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"hidden":     hidden,
			"updated_at": time.Now(),
		}).Error
}

func (r *gormOrderRequestRepository) SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.OrderRequest, error) {
	var orders []models.OrderRequest
	searchKeyword := "%" + strings.ToLower(keyword) + "%"

	err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Where("LOWER(customer_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(phone) LIKE ? OR LOWER(address) LIKE ?",
			searchKeyword, searchKeyword, searchKeyword, searchKeyword).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error

	return orders, err
}

func (r *gormOrderRequestRepository) FindUpdatedBetween(ctx context.Context, start, end time.Time) ([]models.OrderRequest, error) {
	var orders []models.OrderRequest
	err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Where("updated_at BETWEEN ? AND ?", start, end).
		Find(&orders).Error
	return orders, err
}
