package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/raflidev/go-fixmart/app/services"
	"github.com/unrolled/render"
)

type ViewHandler struct {
	views  *services.ViewService
	render *render.Render
}

func NewViewHandler(views *services.ViewService, r *render.Render) *ViewHandler {
	return &ViewHandler{views: views, render: r}
}

// Get returns the live view counter for a product or service. Expired or
// never-viewed entities read as zero.
func (h *ViewHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	entityType := vars["type"]
	if entityType != services.ViewEntityProduct && entityType != services.ViewEntityService {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"message": "unknown entity type: " + entityType})
		return
	}

	views, err := h.views.GetViews(r.Context(), entityType, vars["id"])
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"id":    vars["id"],
		"type":  entityType,
		"views": views,
	})
}
