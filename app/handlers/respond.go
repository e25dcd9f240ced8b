package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/raflidev/go-fixmart/app/apperrors"
	"github.com/raflidev/go-fixmart/app/services"
	"github.com/unrolled/render"
)

var validate = validator.New()

func decodeJSON(r *http.Request, dest interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dest)
}

// writeError maps an application error to its status and a JSON body with
// the message. Anything unrecognized renders a generic 500.
func writeError(rnd *render.Render, w http.ResponseWriter, err error) {
	code := apperrors.StatusCode(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		log.Printf("Request failed: %v", err)
		message = "internal server error"
	}
	_ = rnd.JSON(w, code, map[string]string{"message": message})
}

func writeValidationError(rnd *render.Render, w http.ResponseWriter, err error) {
	_ = rnd.JSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
}

// pagination reads page/limit query params, coercing bad values to the
// defaults.
func pagination(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	return services.NormalizePage(page, limit)
}

func paginatedResponse(items interface{}, total int64, page, limit int) map[string]interface{} {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return map[string]interface{}{
		"items":       items,
		"total":       total,
		"page":        page,
		"limit":       limit,
		"total_pages": totalPages,
	}
}
