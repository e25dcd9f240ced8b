package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/gosimple/slug"
	"github.com/raflidev/go-fixmart/app/models"
	"github.com/raflidev/go-fixmart/app/repositories"
	"github.com/raflidev/go-fixmart/app/services"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

// ServiceHandler covers repair-service offerings and their categories.
type ServiceHandler struct {
	repo         repositories.ServiceRepository
	categoryRepo repositories.ServiceCategoryRepository
	catalog      *services.CatalogService
	views        *services.ViewService
	render       *render.Render
}

func NewServiceHandler(
	repo repositories.ServiceRepository,
	categoryRepo repositories.ServiceCategoryRepository,
	catalog *services.CatalogService,
	views *services.ViewService,
	r *render.Render,
) *ServiceHandler {
	return &ServiceHandler{repo: repo, categoryRepo: categoryRepo, catalog: catalog, views: views, render: r}
}

type serviceRequest struct {
	Name              string  `json:"name" validate:"required"`
	Tags              string  `json:"tags"`
	Description       string  `json:"description"`
	Price             string  `json:"price" validate:"required"`
	Type              string  `json:"type" validate:"omitempty,oneof=at_home at_store"`
	EstimatedTime     string  `json:"estimated_time"`
	ServiceCategoryID *string `json:"service_category_id"`
}

func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req serviceRequest
	if err := decodeJSON(r, &req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid price"})
		return
	}

	serviceType := req.Type
	if serviceType == "" {
		serviceType = models.ServiceTypeAtStore
	}

	service := &models.Service{
		Name:              req.Name,
		Tags:              req.Tags,
		Slug:              slug.Make(req.Name),
		Description:       req.Description,
		Price:             price,
		Type:              serviceType,
		EstimatedTime:     req.EstimatedTime,
		ServiceCategoryID: req.ServiceCategoryID,
	}
	if err := h.repo.Create(r.Context(), service); err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, service)
}

func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)

	items, total, err := h.repo.GetPaginated(r.Context(), limit, (page-1)*limit)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, paginatedResponse(items, total, page, limit))
}

func (h *ServiceHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	serviceSlug := mux.Vars(r)["slug"]

	service, err := h.repo.GetBySlug(r.Context(), serviceSlug)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if service == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"message": "service not found"})
		return
	}

	views, err := h.views.CountView(r.Context(), services.ViewEntityService, service.ID)
	if err != nil {
		views = 0
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"service": service,
		"views":   views,
	})
}

func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	service, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if service == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"message": "service not found"})
		return
	}

	var req serviceRequest
	if err := decodeJSON(r, &req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid price"})
		return
	}

	service.Name = req.Name
	service.Tags = req.Tags
	service.Description = req.Description
	service.Price = price
	if req.Type != "" {
		service.Type = req.Type
	}
	service.EstimatedTime = req.EstimatedTime
	service.ServiceCategoryID = req.ServiceCategoryID

	if err := h.repo.Update(r.Context(), service); err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, service)
}

func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.repo.Delete(r.Context(), id); err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "service deleted"})
}

func (h *ServiceHandler) Featured(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.views.GetFeatured(r.Context(), services.ViewEntityService, limit)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, entries)
}

type serviceCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Tags        string `json:"tags"`
	Description string `json:"description"`
}

func (h *ServiceHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req serviceCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	category := &models.ServiceCategory{
		Name:        req.Name,
		Tags:        req.Tags,
		Slug:        slug.Make(req.Name),
		Description: req.Description,
	}
	if err := h.categoryRepo.Create(r.Context(), category); err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, category)
}

func (h *ServiceHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, categories)
}

func (h *ServiceHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	category, err := h.categoryRepo.GetByID(r.Context(), id)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if category == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"message": "service category not found"})
		return
	}

	var req serviceCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	category.Name = req.Name
	category.Tags = req.Tags
	category.Description = req.Description

	if err := h.categoryRepo.Update(r.Context(), category); err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, category)
}

// DeleteCategory is rejected while services still reference the category.
func (h *ServiceHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.catalog.DeleteServiceCategory(r.Context(), id); err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "service category deleted"})
}
