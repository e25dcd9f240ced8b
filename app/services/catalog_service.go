package services

import (
	"context"
	"log"
	"sync"

	"github.com/raflidev/go-fixmart/app/apperrors"
	"github.com/raflidev/go-fixmart/app/repositories"
)

// CatalogService owns the catalog mutations with cross-entity rules:
// image cascades, category detachment and the in-use guard on service
// categories.
type CatalogService struct {
	productRepo         repositories.ProductRepositoryImpl
	categoryRepo        repositories.CategoryRepository
	serviceRepo         repositories.ServiceRepository
	serviceCategoryRepo repositories.ServiceCategoryRepository
	storage             StorageClient
}

func NewCatalogService(
	productRepo repositories.ProductRepositoryImpl,
	categoryRepo repositories.CategoryRepository,
	serviceRepo repositories.ServiceRepository,
	serviceCategoryRepo repositories.ServiceCategoryRepository,
	storage StorageClient,
) *CatalogService {
	return &CatalogService{
		productRepo:         productRepo,
		categoryRepo:        categoryRepo,
		serviceRepo:         serviceRepo,
		serviceCategoryRepo: serviceCategoryRepo,
		storage:             storage,
	}
}

// DeleteProduct removes the product and deletes each of its images from the
// storage collaborator in parallel. A failed image deletion is logged but
// does not abort the primary delete.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return apperrors.NewInternal(err)
	}
	if product == nil {
		return apperrors.NewNotFound("product not found")
	}

	var wg sync.WaitGroup
	for _, image := range product.ProductImages {
		wg.Add(1)
		go func(publicID string) {
			defer wg.Done()
			if err := s.storage.Delete(ctx, publicID); err != nil {
				log.Printf("Failed to delete product image %s: %v", publicID, err)
			}
		}(image.PublicID)
	}
	wg.Wait()

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return apperrors.NewInternal(err)
	}
	return nil
}

// DeleteCategory detaches the category's products (nulls category_id) and
// then deletes the category. The two steps are independent writes; a crash
// in between leaves detached products and a surviving category, which is
// self-consistent.
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return apperrors.NewInternal(err)
	}
	if category == nil {
		return apperrors.NewNotFound("category not found")
	}

	if err := s.productRepo.DetachCategory(ctx, id); err != nil {
		return apperrors.NewInternal(err)
	}
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return apperrors.NewInternal(err)
	}
	return nil
}

// DeleteServiceCategory is blocked while any service still references it.
func (s *CatalogService) DeleteServiceCategory(ctx context.Context, id string) error {
	category, err := s.serviceCategoryRepo.GetByID(ctx, id)
	if err != nil {
		return apperrors.NewInternal(err)
	}
	if category == nil {
		return apperrors.NewNotFound("service category not found")
	}

	inUse, err := s.serviceRepo.CountByCategory(ctx, id)
	if err != nil {
		return apperrors.NewInternal(err)
	}
	if inUse > 0 {
		return apperrors.NewBadRequest("service category is still referenced by services")
	}

	return s.serviceCategoryRepo.Delete(ctx, id)
}
