package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/raflidev/go-fixmart/app/services"
	"github.com/unrolled/render"
)

type SearchHandler struct {
	search *services.SearchService
	render *render.Render
}

func NewSearchHandler(search *services.SearchService, r *render.Render) *SearchHandler {
	return &SearchHandler{search: search, render: r}
}

// Search dispatches /search/{type}?q=&page=&limit= to the per-entity
// search. An empty query is rejected here so the engine never sees one.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	entityType := mux.Vars(r)["type"]
	query := r.URL.Query().Get("q")
	if query == "" {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"message": "query parameter q is required"})
		return
	}
	page, limit := pagination(r)

	var (
		result interface{}
		err    error
	)
	switch entityType {
	case "products":
		result, err = h.search.SearchProducts(r.Context(), query, page, limit)
	case "categories":
		result, err = h.search.SearchCategories(r.Context(), query, page, limit)
	case "services":
		result, err = h.search.SearchServices(r.Context(), query, page, limit)
	case "service_categories":
		result, err = h.search.SearchServiceCategories(r.Context(), query, page, limit)
	case "requests":
		result, err = h.search.SearchRequests(r.Context(), query, page, limit)
	default:
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"message": "unknown search type: " + entityType})
		return
	}

	if err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, result)
}
