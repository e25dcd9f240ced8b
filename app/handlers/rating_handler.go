package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/raflidev/go-fixmart/app/models"
	"github.com/raflidev/go-fixmart/app/repositories"
	"github.com/unrolled/render"
)

type RatingHandler struct {
	repo        repositories.RatingRepository
	productRepo repositories.ProductRepositoryImpl
	render      *render.Render
}

func NewRatingHandler(repo repositories.RatingRepository, productRepo repositories.ProductRepositoryImpl, r *render.Render) *RatingHandler {
	return &RatingHandler{repo: repo, productRepo: productRepo, render: r}
}

type ratingRequest struct {
	ProductID   string `json:"product_id" validate:"required"`
	Stars       int    `json:"stars" validate:"required,min=1,max=5"`
	Comment     string `json:"comment"`
	AuthorName  string `json:"author_name" validate:"required"`
	AuthorEmail string `json:"author_email" validate:"omitempty,email"`
}

func (h *RatingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ratingRequest
	if err := decodeJSON(r, &req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	product, err := h.productRepo.GetByID(r.Context(), req.ProductID)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if product == nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"message": "unknown product"})
		return
	}

	rating := &models.Rating{
		ProductID:   req.ProductID,
		Stars:       req.Stars,
		Comment:     req.Comment,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
	}
	if err := h.repo.Create(r.Context(), rating); err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, rating)
}

// ListForProduct returns the product's ratings plus its running average.
func (h *RatingHandler) ListForProduct(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]
	page, limit := pagination(r)

	ratings, total, err := h.repo.GetByProduct(r.Context(), productID, limit, (page-1)*limit)
	if err != nil {
		writeError(h.render, w, err)
		return
	}

	average, count, err := h.repo.AverageForProduct(r.Context(), productID)
	if err != nil {
		writeError(h.render, w, err)
		return
	}

	response := paginatedResponse(ratings, total, page, limit)
	response["average"] = average
	response["count"] = count
	_ = h.render.JSON(w, http.StatusOK, response)
}

func (h *RatingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.repo.Delete(r.Context(), id); err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "rating deleted"})
}
