package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/raflidev/go-fixmart/app/services"
	"github.com/raflidev/go-fixmart/app/utils/format"
	"github.com/unrolled/render"
)

type StatsHandler struct {
	stats  *services.StatsService
	render *render.Render
}

func NewStatsHandler(stats *services.StatsService, r *render.Render) *StatsHandler {
	return &StatsHandler{stats: stats, render: r}
}

// dateParam parses ?date=2006-01-02, defaulting to now.
func dateParam(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01-02", raw)
}

func (h *StatsHandler) Create(w http.ResponseWriter, r *http.Request) {
	date, err := dateParam(r)
	if err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid date, expected YYYY-MM-DD"})
		return
	}

	stats, err := h.stats.CreateStats(r.Context(), date)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, stats)
}

func (h *StatsHandler) GetByDate(w http.ResponseWriter, r *http.Request) {
	date, err := dateParam(r)
	if err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid date, expected YYYY-MM-DD"})
		return
	}

	stats, err := h.stats.GetStatsByDate(r.Context(), date)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, stats)
}

func (h *StatsHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	records, err := h.stats.GetAllStats(r.Context(), r.URL.Query().Get("filter"))
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, records)
}

func (h *StatsHandler) GetByMonth(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid month"})
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid year"})
		return
	}

	records, err := h.stats.GetStatsByMonth(r.Context(), time.Month(month), year)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, records)
}

func (h *StatsHandler) Update(w http.ResponseWriter, r *http.Request) {
	date, err := dateParam(r)
	if err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid date, expected YYYY-MM-DD"})
		return
	}

	var patch services.StatsPatch
	if err := decodeJSON(r, &patch); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}

	stats, err := h.stats.UpdateStats(r.Context(), patch, date)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, stats)
}

func (h *StatsHandler) CountVisit(w http.ResponseWriter, r *http.Request) {
	if err := h.stats.CountVisit(r.Context(), time.Now()); err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "visit counted"})
}

// GetCurrent renders the live computation with a display-formatted profit
// for the admin dashboard.
func (h *StatsHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	current, err := h.stats.GetCurrentStats(r.Context())
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"stats":            current,
		"formatted_profit": format.Money(current.TotalProfit),
	})
}
