package services

import (
	"context"

	"github.com/raflidev/go-fixmart/app/apperrors"
	"github.com/raflidev/go-fixmart/app/models"
	"github.com/raflidev/go-fixmart/app/repositories"
	"github.com/raflidev/go-fixmart/app/utils/cache"
)

const (
	DefaultSearchPage  = 1
	DefaultSearchLimit = 10
)

// RequestsResult pairs the two halves of a combined intake search. Kept as
// two typed lists rather than one heterogeneous payload.
type RequestsResult struct {
	Repairs []models.RepairRequest `json:"repairs"`
	Orders  []models.OrderRequest  `json:"orders"`
}

type SearchService struct {
	cache               *cache.Cache
	productRepo         repositories.ProductRepositoryImpl
	categoryRepo        repositories.CategoryRepository
	serviceRepo         repositories.ServiceRepository
	serviceCategoryRepo repositories.ServiceCategoryRepository
	orderRepo           repositories.OrderRequestRepository
	repairRepo          repositories.RepairRequestRepository
}

func NewSearchService(
	c *cache.Cache,
	productRepo repositories.ProductRepositoryImpl,
	categoryRepo repositories.CategoryRepository,
	serviceRepo repositories.ServiceRepository,
	serviceCategoryRepo repositories.ServiceCategoryRepository,
	orderRepo repositories.OrderRequestRepository,
	repairRepo repositories.RepairRequestRepository,
) *SearchService {
	return &SearchService{
		cache:               c,
		productRepo:         productRepo,
		categoryRepo:        categoryRepo,
		serviceRepo:         serviceRepo,
		serviceCategoryRepo: serviceCategoryRepo,
		orderRepo:           orderRepo,
		repairRepo:          repairRepo,
	}
}

func searchKey(entityType, query string) string {
	return "search:" + entityType + ":" + query
}

// NormalizePage coerces out-of-range paging values to the defaults.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultSearchPage
	}
	if limit < 1 {
		limit = DefaultSearchLimit
	}
	return page, limit
}

// SearchProducts is cache-first: a hit returns the cached payload verbatim,
// including whatever pagination it was written with. A miss queries the
// store and writes the page back with the search TTL.
func (s *SearchService) SearchProducts(ctx context.Context, query string, page, limit int) ([]models.Product, error) {
	page, limit = NormalizePage(page, limit)
	key := searchKey("products", query)

	var cached []models.Product
	hit, err := s.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	if hit {
		return cached, nil
	}

	products, err := s.productRepo.SearchPaginated(ctx, query, limit, (page-1)*limit)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	if products == nil {
		products = []models.Product{}
	}

	if err := s.cache.SetJSON(ctx, key, products, searchTTL); err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return products, nil
}

func (s *SearchService) SearchCategories(ctx context.Context, query string, page, limit int) ([]models.Category, error) {
	page, limit = NormalizePage(page, limit)
	key := searchKey("categories", query)

	var cached []models.Category
	hit, err := s.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	if hit {
		return cached, nil
	}

	categories, err := s.categoryRepo.SearchPaginated(ctx, query, limit, (page-1)*limit)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	if categories == nil {
		categories = []models.Category{}
	}

	if err := s.cache.SetJSON(ctx, key, categories, searchTTL); err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return categories, nil
}

func (s *SearchService) SearchServices(ctx context.Context, query string, page, limit int) ([]models.Service, error) {
	page, limit = NormalizePage(page, limit)
	key := searchKey("services", query)

	var cached []models.Service
	hit, err := s.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	if hit {
		return cached, nil
	}

	services, err := s.serviceRepo.SearchPaginated(ctx, query, limit, (page-1)*limit)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	if services == nil {
		services = []models.Service{}
	}

	if err := s.cache.SetJSON(ctx, key, services, searchTTL); err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return services, nil
}

func (s *SearchService) SearchServiceCategories(ctx context.Context, query string, page, limit int) ([]models.ServiceCategory, error) {
	page, limit = NormalizePage(page, limit)
	key := searchKey("service_categories", query)

	var cached []models.ServiceCategory
	hit, err := s.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	if hit {
		return cached, nil
	}

	categories, err := s.serviceCategoryRepo.SearchPaginated(ctx, query, limit, (page-1)*limit)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	if categories == nil {
		categories = []models.ServiceCategory{}
	}

	if err := s.cache.SetJSON(ctx, key, categories, searchTTL); err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return categories, nil
}

// SearchRequests queries repairs and orders independently with the same
// keyword and pagination. This path is never cached.
func (s *SearchService) SearchRequests(ctx context.Context, query string, page, limit int) (*RequestsResult, error) {
	page, limit = NormalizePage(page, limit)
	offset := (page - 1) * limit

	repairs, err := s.repairRepo.SearchPaginated(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	orders, err := s.orderRepo.SearchPaginated(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	if repairs == nil {
		repairs = []models.RepairRequest{}
	}
	if orders == nil {
		orders = []models.OrderRequest{}
	}

	return &RequestsResult{Repairs: repairs, Orders: orders}, nil
}
