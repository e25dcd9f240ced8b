package repositories

import (
	"context"
	"errors"

	"github.com/raflidev/go-fixmart/app/models"
	"gorm.io/gorm"
)

type BannerRepository interface {
	Create(ctx context.Context, banner *models.Banner) error
	GetByID(ctx context.Context, id string) (*models.Banner, error)
	GetAll(ctx context.Context, activeOnly bool) ([]models.Banner, error)
	Update(ctx context.Context, banner *models.Banner) error
	Delete(ctx context.Context, id string) error
}

type gormBannerRepository struct {
	db *gorm.DB
}

func NewBannerRepository(db *gorm.DB) BannerRepository {
	return &gormBannerRepository{db: db}
}

func (r *gormBannerRepository) Create(ctx context.Context, banner *models.Banner) error {
	return r.db.WithContext(ctx).Create(banner).Error
}

func (r *gormBannerRepository) GetByID(ctx context.Context, id string) (*models.Banner, error) {
	var banner models.Banner
	err := r.db.WithContext(ctx).First(&banner, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &banner, nil
}

func (r *gormBannerRepository) GetAll(ctx context.Context, activeOnly bool) ([]models.Banner, error) {
	var banners []models.Banner
	query := r.db.WithContext(ctx).Order("position ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&banners).Error
	return banners, err
}

func (r *gormBannerRepository) Update(ctx context.Context, banner *models.Banner) error {
	return r.db.WithContext(ctx).Save(banner).Error
}

func (r *gormBannerRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Banner{}, "id = ?", id).Error
}
