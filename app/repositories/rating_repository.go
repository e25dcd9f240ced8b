package repositories

import (
	"context"
	"errors"

	"github.com/raflidev/go-fixmart/app/models"
	"gorm.io/gorm"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	GetByID(ctx context.Context, id string) (*models.Rating, error)
	GetByProduct(ctx context.Context, productID string, limit, offset int) ([]models.Rating, int64, error)
	AverageForProduct(ctx context.Context, productID string) (float64, int64, error)
	Delete(ctx context.Context, id string) error
}

type gormRatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &gormRatingRepository{db: db}
}

func (r *gormRatingRepository) Create(ctx context.Context, rating *models.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *gormRatingRepository) GetByID(ctx context.Context, id string) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).First(&rating, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rating, nil
}

func (r *gormRatingRepository) GetByProduct(ctx context.Context, productID string, limit, offset int) ([]models.Rating, int64, error) {
	var ratings []models.Rating
	var total int64

	if err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Where("product_id = ?", productID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&ratings).Error

	return ratings, total, err
}

func (r *gormRatingRepository) AverageForProduct(ctx context.Context, productID string) (float64, int64, error) {
	var result struct {
		Avg   float64
		Count int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("COALESCE(AVG(stars), 0) AS avg, COUNT(*) AS count").
		Where("product_id = ?", productID).
		Scan(&result).Error
	return result.Avg, result.Count, err
}

func (r *gormRatingRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Rating{}, "id = ?", id).Error
}
