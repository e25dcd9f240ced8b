package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gosimple/slug"
	"github.com/raflidev/go-fixmart/app/models"
	"github.com/raflidev/go-fixmart/app/repositories"
	"github.com/raflidev/go-fixmart/app/services"
	"github.com/unrolled/render"
)

type CategoryHandler struct {
	repo    repositories.CategoryRepository
	catalog *services.CatalogService
	render  *render.Render
}

func NewCategoryHandler(repo repositories.CategoryRepository, catalog *services.CatalogService, r *render.Render) *CategoryHandler {
	return &CategoryHandler{repo: repo, catalog: catalog, render: r}
}

type categoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Tags        string `json:"tags"`
	Description string `json:"description"`
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	category := &models.Category{
		Name:        req.Name,
		Tags:        req.Tags,
		Slug:        slug.Make(req.Name),
		Description: req.Description,
	}
	if err := h.repo.Create(r.Context(), category); err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, category)
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.GetAll(r.Context())
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	categorySlug := mux.Vars(r)["slug"]

	category, err := h.repo.GetBySlug(r.Context(), categorySlug)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if category == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"message": "category not found"})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	category, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if category == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"message": "category not found"})
		return
	}

	var req categoryRequest
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

	if err := h.repo.Update(r.Context(), category); err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, category)
}

// Delete detaches the category's products instead of deleting them.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.catalog.DeleteCategory(r.Context(), id); err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "category deleted"})
}
