package services

import (
	"context"
	"log"
	"sync"

	"github.com/raflidev/go-fixmart/app/apperrors"
	"github.com/raflidev/go-fixmart/app/models"
	"github.com/raflidev/go-fixmart/app/repositories"
)

// RequestService handles order and repair intake plus the admin mutations
// on them.
type RequestService struct {
	orderRepo   repositories.OrderRequestRepository
	repairRepo  repositories.RepairRequestRepository
	productRepo repositories.ProductRepositoryImpl
	serviceRepo repositories.ServiceRepository
	storage     StorageClient
}

func NewRequestService(
	orderRepo repositories.OrderRequestRepository,
	repairRepo repositories.RepairRequestRepository,
	productRepo repositories.ProductRepositoryImpl,
	serviceRepo repositories.ServiceRepository,
	storage StorageClient,
) *RequestService {
	return &RequestService{
		orderRepo:   orderRepo,
		repairRepo:  repairRepo,
		productRepo: productRepo,
		serviceRepo: serviceRepo,
		storage:     storage,
	}
}

type OrderItemInput struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CreateOrder records a customer order request, snapshotting each product's
// current price onto the line item.
func (s *RequestService) CreateOrder(ctx context.Context, order *models.OrderRequest, items []OrderItemInput) (*models.OrderRequest, error) {
	if len(items) == 0 {
		return nil, apperrors.NewBadRequest("order must contain at least one item")
	}

	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, apperrors.NewInternal(err)
		}
		if product == nil {
			return nil, apperrors.NewBadRequest("unknown product: " + item.ProductID)
		}
		orderItems = append(orderItems, models.OrderItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
		})
	}

	order.Status = models.RequestStatusNew
	order.OrderItems = orderItems
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return order, nil
}

func (s *RequestService) UpdateOrderStatus(ctx context.Context, id, status string) error {
	if !validRequestStatus(status) {
		return apperrors.NewBadRequest("invalid status: " + status)
	}
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return apperrors.NewInternal(err)
	}
	if order == nil {
		return apperrors.NewNotFound("order request not found")
	}
	return s.orderRepo.UpdateStatus(ctx, id, status)
}

func (s *RequestService) HideOrder(ctx context.Context, id string, hidden bool) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return apperrors.NewInternal(err)
	}
	if order == nil {
		return apperrors.NewNotFound("order request not found")
	}
	return s.orderRepo.SetHidden(ctx, id, hidden)
}

// CreateRepair records a customer repair request against a service.
func (s *RequestService) CreateRepair(ctx context.Context, repair *models.RepairRequest) (*models.RepairRequest, error) {
	if repair.ServiceID != nil {
		service, err := s.serviceRepo.GetByID(ctx, *repair.ServiceID)
		if err != nil {
			return nil, apperrors.NewInternal(err)
		}
		if service == nil {
			return nil, apperrors.NewBadRequest("unknown service: " + *repair.ServiceID)
		}
	}

	repair.Status = models.RequestStatusNew
	if err := s.repairRepo.Create(ctx, repair); err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return repair, nil
}

func (s *RequestService) UpdateRepairStatus(ctx context.Context, id, status string) error {
	if !validRequestStatus(status) {
		return apperrors.NewBadRequest("invalid status: " + status)
	}
	repair, err := s.repairRepo.GetByID(ctx, id)
	if err != nil {
		return apperrors.NewInternal(err)
	}
	if repair == nil {
		return apperrors.NewNotFound("repair request not found")
	}
	return s.repairRepo.UpdateStatus(ctx, id, status)
}

func (s *RequestService) HideRepair(ctx context.Context, id string, hidden bool) error {
	repair, err := s.repairRepo.GetByID(ctx, id)
	if err != nil {
		return apperrors.NewInternal(err)
	}
	if repair == nil {
		return apperrors.NewNotFound("repair request not found")
	}
	return s.repairRepo.SetHidden(ctx, id, hidden)
}

// DeleteRepair hard-deletes the request and its images. Image deletions run
// in parallel; failures are logged without aborting the primary delete.
func (s *RequestService) DeleteRepair(ctx context.Context, id string) error {
	repair, err := s.repairRepo.GetByID(ctx, id)
	if err != nil {
		return apperrors.NewInternal(err)
	}
	if repair == nil {
		return apperrors.NewNotFound("repair request not found")
	}

	var wg sync.WaitGroup
	for _, image := range repair.RepairImages {
		wg.Add(1)
		go func(publicID string) {
			defer wg.Done()
			if err := s.storage.Delete(ctx, publicID); err != nil {
				log.Printf("Failed to delete repair image %s: %v", publicID, err)
			}
		}(image.PublicID)
	}
	wg.Wait()

	if err := s.repairRepo.Delete(ctx, id); err != nil {
		return apperrors.NewInternal(err)
	}
	return nil
}

func validRequestStatus(status string) bool {
	switch status {
	case models.RequestStatusNew, models.RequestStatusInProgress,
		models.RequestStatusCompleted, models.RequestStatusCancelled:
		return true
	}
	return false
}
