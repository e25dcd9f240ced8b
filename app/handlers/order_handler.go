package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/raflidev/go-fixmart/app/models"
	"github.com/raflidev/go-fixmart/app/repositories"
	"github.com/raflidev/go-fixmart/app/services"
	"github.com/unrolled/render"
)

type OrderHandler struct {
	repo     repositories.OrderRequestRepository
	requests *services.RequestService
	render   *render.Render
}

func NewOrderHandler(repo repositories.OrderRequestRepository, requests *services.RequestService, r *render.Render) *OrderHandler {
	return &OrderHandler{repo: repo, requests: requests, render: r}
}

type orderRequestPayload struct {
	CustomerName string                    `json:"customer_name" validate:"required"`
	Email        string                    `json:"email" validate:"omitempty,email"`
	Phone        string                    `json:"phone" validate:"required"`
	Address      string                    `json:"address"`
	Items        []services.OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// Create is the customer-facing intake endpoint.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req orderRequestPayload
	if err := decodeJSON(r, &req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	order := &models.OrderRequest{
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
	}

	created, err := h.requests.CreateOrder(r.Context(), order, req.Items)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, created)
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)
	includeHidden := r.URL.Query().Get("include_hidden") == "true"

	orders, total, err := h.repo.GetPaginated(r.Context(), limit, (page-1)*limit, includeHidden)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, paginatedResponse(orders, total, page, limit))
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	order, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if order == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"message": "order request not found"})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, order)
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req struct {
		Status string `json:"status" validate:"required"`
	}
	if err := decodeJSON(r, &req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}

	if err := h.requests.UpdateOrderStatus(r.Context(), id, req.Status); err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "status updated"})
}

func (h *OrderHandler) Hide(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req struct {
		Hidden bool `json:"hidden"`
	}
	if err := decodeJSON(r, &req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}

	if err := h.requests.HideOrder(r.Context(), id, req.Hidden); err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "order updated"})
}
