package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/raflidev/go-fixmart/app/models"
	"gorm.io/gorm"
)

type ServiceRepository interface {
	Create(ctx context.Context, service *models.Service) error
	GetByID(ctx context.Context, id string) (*models.Service, error)
	GetBySlug(ctx context.Context, slug string) (*models.Service, error)
	GetPaginated(ctx context.Context, limit, offset int) ([]models.Service, int64, error)
	SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.Service, error)
	Update(ctx context.Context, service *models.Service) error
	Delete(ctx context.Context, id string) error
	CountByCategory(ctx context.Context, serviceCategoryID string) (int64, error)
}

type gormServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &gormServiceRepository{db: db}
}

func (r *gormServiceRepository) Create(ctx context.Context, service *models.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *gormServiceRepository) GetByID(ctx context.Context, id string) (*models.Service, error) {
	var service models.Service
	err := r.db.WithContext(ctx).
		Preload("ServiceCategory").
		First(&service, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

func (r *gormServiceRepository) GetBySlug(ctx context.Context, slug string) (*models.Service, error) {
	var service models.Service
	err := r.db.WithContext(ctx).
		Preload("ServiceCategory").
		First(&service, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

func (r *gormServiceRepository) GetPaginated(ctx context.Context, limit, offset int) ([]models.Service, int64, error) {
	var services []models.Service
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Service{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("ServiceCategory").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&services).Error

	return services, total, err
}

func (r *gormServiceRepository) SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.Service, error) {
	var services []models.Service
	searchKeyword := "%" + strings.ToLower(keyword) + "%"

	err := r.db.WithContext(ctx).
		Preload("ServiceCategory").
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", searchKeyword, searchKeyword).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&services).Error

	return services, err
}

func (r *gormServiceRepository) Update(ctx context.Context, service *models.Service) error {
	return r.db.WithContext(ctx).Save(service).Error
}

func (r *gormServiceRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Service{}, "id = ?", id).Error
}

func (r *gormServiceRepository) CountByCategory(ctx context.Context, serviceCategoryID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("service_category_id = ?", serviceCategoryID).
		Count(&total).Error
	return total, err
}
