package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/raflidev/go-fixmart/app/models"
	"github.com/raflidev/go-fixmart/app/repositories"
	"github.com/raflidev/go-fixmart/app/services"
	"github.com/unrolled/render"
)

type RepairHandler struct {
	repo     repositories.RepairRequestRepository
	requests *services.RequestService
	render   *render.Render
}

func NewRepairHandler(repo repositories.RepairRequestRepository, requests *services.RequestService, r *render.Render) *RepairHandler {
	return &RepairHandler{repo: repo, requests: requests, render: r}
}

type repairRequestPayload struct {
	ServiceID          *string  `json:"service_id"`
	CustomerName       string   `json:"customer_name" validate:"required"`
	Email              string   `json:"email" validate:"omitempty,email"`
	Phone              string   `json:"phone" validate:"required"`
	Address            string   `json:"address"`
	RepairType         string   `json:"repair_type" validate:"omitempty,oneof=at_home at_store"`
	ProblemDescription string   `json:"problem_description" validate:"required"`
	ImageURLs          []string `json:"image_urls"`
}

// Create is the customer-facing intake endpoint.
func (h *RepairHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req repairRequestPayload
	if err := decodeJSON(r, &req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	repairType := req.RepairType
	if repairType == "" {
		repairType = models.ServiceTypeAtStore
	}

	repair := &models.RepairRequest{
		ServiceID:          req.ServiceID,
		CustomerName:       req.CustomerName,
		Email:              req.Email,
		Phone:              req.Phone,
		Address:            req.Address,
		RepairType:         repairType,
		ProblemDescription: req.ProblemDescription,
	}
	for _, url := range req.ImageURLs {
		repair.RepairImages = append(repair.RepairImages, models.RepairImage{URL: url, PublicID: url})
	}

	created, err := h.requests.CreateRepair(r.Context(), repair)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, created)
}

func (h *RepairHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)
	includeHidden := r.URL.Query().Get("include_hidden") == "true"

	repairs, total, err := h.repo.GetPaginated(r.Context(), limit, (page-1)*limit, includeHidden)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, paginatedResponse(repairs, total, page, limit))
}

func (h *RepairHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	repair, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if repair == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"message": "repair request not found"})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, repair)
}

func (h *RepairHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req struct {
		Status string `json:"status" validate:"required"`
	}
	if err := decodeJSON(r, &req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}

	if err := h.requests.UpdateRepairStatus(r.Context(), id, req.Status); err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "status updated"})
}

func (h *RepairHandler) Hide(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req struct {
		Hidden bool `json:"hidden"`
	}
	if err := decodeJSON(r, &req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}

	if err := h.requests.HideRepair(r.Context(), id, req.Hidden); err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "repair updated"})
}

// Delete hard-deletes the request along with its stored images.
func (h *RepairHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.requests.DeleteRepair(r.Context(), id); err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "repair request deleted"})
}
