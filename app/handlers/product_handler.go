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

type ProductHandler struct {
	repo    repositories.ProductRepositoryImpl
	catalog *services.CatalogService
	views   *services.ViewService
	render  *render.Render
}

func NewProductHandler(
	repo repositories.ProductRepositoryImpl,
	catalog *services.CatalogService,
	views *services.ViewService,
	r *render.Render,
) *ProductHandler {
	return &ProductHandler{repo: repo, catalog: catalog, views: views, render: r}
}

type productRequest struct {
	Name       string   `json:"name" validate:"required"`
	Tags       string   `json:"tags"`
	Price      string   `json:"price" validate:"required"`
	Quantity   int      `json:"quantity" validate:"min=0"`
	CategoryID *string  `json:"category_id"`
	Brand      string   `json:"brand"`
	Status     string   `json:"status" validate:"omitempty,oneof=available out_of_stock hidden"`
	IsFeatured bool     `json:"is_featured"`
	ImageURLs  []string `json:"image_urls"`
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req productRequest
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

	status := req.Status
	if status == "" {
		status = models.ProductStatusAvailable
	}

	product := &models.Product{
		Name:       req.Name,
		Tags:       req.Tags,
		Slug:       slug.Make(req.Name),
		Price:      price,
		Quantity:   req.Quantity,
		CategoryID: req.CategoryID,
		Brand:      req.Brand,
		Status:     status,
		IsFeatured: req.IsFeatured,
	}
	for _, url := range req.ImageURLs {
		product.ProductImages = append(product.ProductImages, models.ProductImage{URL: url, PublicID: url})
	}

	if err := h.repo.Create(r.Context(), product); err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)

	products, total, err := h.repo.GetPaginated(r.Context(), limit, (page-1)*limit)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, paginatedResponse(products, total, page, limit))
}

// GetBySlug also counts a product view so the featured ranking tracks
// detail-page traffic.
func (h *ProductHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	productSlug := mux.Vars(r)["slug"]

	product, err := h.repo.GetBySlug(r.Context(), productSlug)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if product == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"message": "product not found"})
		return
	}

	views, err := h.views.CountView(r.Context(), services.ViewEntityProduct, product.ID)
	if err != nil {
		// Counting failures degrade ranking only; serve the product anyway.
		views = 0
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"product": product,
		"views":   views,
	})
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if product == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"message": "product not found"})
		return
	}

	var req productRequest
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

	product.Name = req.Name
	product.Tags = req.Tags
	product.Price = price
	product.Quantity = req.Quantity
	product.CategoryID = req.CategoryID
	product.Brand = req.Brand
	if req.Status != "" {
		product.Status = req.Status
	}
	product.IsFeatured = req.IsFeatured

	if err := h.repo.Update(r.Context(), product); err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req struct {
		Quantity int `json:"quantity" validate:"min=0"`
	}
	if err := decodeJSON(r, &req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}

	if err := h.repo.UpdateQuantity(r.Context(), id, req.Quantity); err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "quantity updated"})
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.catalog.DeleteProduct(r.Context(), id); err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "product deleted"})
}

// Featured returns the most viewed products per the cache counters.
func (h *ProductHandler) Featured(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.views.GetFeatured(r.Context(), services.ViewEntityProduct, limit)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, entries)
}
