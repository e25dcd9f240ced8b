package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/raflidev/go-fixmart/app/models"
	"github.com/raflidev/go-fixmart/app/repositories"
	"github.com/unrolled/render"
)

type BannerHandler struct {
	repo   repositories.BannerRepository
	render *render.Render
}

func NewBannerHandler(repo repositories.BannerRepository, r *render.Render) *BannerHandler {
	return &BannerHandler{repo: repo, render: r}
}

type bannerRequest struct {
	Title    string `json:"title" validate:"required"`
	ImageURL string `json:"image_url" validate:"required"`
	PublicID string `json:"public_id"`
	Link     string `json:"link"`
	IsActive *bool  `json:"is_active"`
	Position int    `json:"position"`
}

func (h *BannerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req bannerRequest
	if err := decodeJSON(r, &req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	banner := &models.Banner{
		Title:    req.Title,
		ImageURL: req.ImageURL,
		PublicID: req.PublicID,
		Link:     req.Link,
		IsActive: true,
		Position: req.Position,
	}
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}

	if err := h.repo.Create(r.Context(), banner); err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, banner)
}

func (h *BannerHandler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("all") != "true"

	banners, err := h.repo.GetAll(r.Context(), activeOnly)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, banners)
}

func (h *BannerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	banner, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if banner == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"message": "banner not found"})
		return
	}

	var req bannerRequest
	if err := decodeJSON(r, &req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	banner.Title = req.Title
	banner.ImageURL = req.ImageURL
	banner.PublicID = req.PublicID
	banner.Link = req.Link
	banner.Position = req.Position
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}

	if err := h.repo.Update(r.Context(), banner); err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, banner)
}

func (h *BannerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.repo.Delete(r.Context(), id); err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "banner deleted"})
}
