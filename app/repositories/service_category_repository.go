package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/raflidev/go-fixmart/app/models"
	"gorm.io/gorm"
)

type ServiceCategoryRepository interface {
	Create(ctx context.Context, category *models.ServiceCategory) error
	GetByID(ctx context.Context, id string) (*models.ServiceCategory, error)
	GetBySlug(ctx context.Context, slug string) (*models.ServiceCategory, error)
	GetAll(ctx context.Context) ([]models.ServiceCategory, error)
	SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.ServiceCategory, error)
	Update(ctx context.Context, category *models.ServiceCategory) error
	Delete(ctx context.Context, id string) error
}

type gormServiceCategoryRepository struct {
	db *gorm.DB
}

func NewServiceCategoryRepository(db *gorm.DB) ServiceCategoryRepository {
	return &gormServiceCategoryRepository{db: db}
}

func (r *gormServiceCategoryRepository) Create(ctx context.Context, category *models.ServiceCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *gormServiceCategoryRepository) GetByID(ctx context.Context, id string) (*models.ServiceCategory, error) {
	var category models.ServiceCategory
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *gormServiceCategoryRepository) GetBySlug(ctx context.Context, slug string) (*models.ServiceCategory, error) {
	var category models.ServiceCategory
	err := r.db.WithContext(ctx).First(&category, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *gormServiceCategoryRepository) GetAll(ctx context.Context) ([]models.ServiceCategory, error) {
	var categories []models.ServiceCategory
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *gormServiceCategoryRepository) SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.ServiceCategory, error) {
	var categories []models.ServiceCategory
	searchKeyword := "%" + strings.ToLower(keyword) + "%"

	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", searchKeyword, searchKeyword).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&categories).Error

	return categories, err
}

func (r *gormServiceCategoryRepository) Update(ctx context.Context, category *models.ServiceCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *gormServiceCategoryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.ServiceCategory{}, "id = ?", id).Error
}
