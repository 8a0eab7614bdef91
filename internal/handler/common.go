package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Tiri0n/abkhazia-tax-service/internal/repository"
	"github.com/Tiri0n/abkhazia-tax-service/internal/service"
	"github.com/Tiri0n/abkhazia-tax-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindErrorMessage renders the first schema violation of a bind failure in a
// human-readable form
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		if first.Param() != "" {
			return fmt.Sprintf("field '%s' failed on the '%s=%s' rule", first.Field(), first.Tag(), first.Param())
		}
		return fmt.Sprintf("field '%s' failed on the '%s' rule", first.Field(), first.Tag())
	}
	return "Invalid request payload: " + err.Error()
}

// abortServiceError maps service-layer errors onto HTTP status codes:
// unknown id -> 404, foreign row -> 403, bad payload -> 400, anything else a
// generic 500 with no internal detail.
func abortServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "Not found"))
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Forbidden"))
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Internal server error"))
	}
}

// pathID parses the :id route parameter. A non-numeric id behaves like an
// unknown one.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "Not found"))
		return 0, false
	}
	return id, true
}

// callerID returns the authenticated user id or aborts with 401
func callerID(c *gin.Context) (int64, bool) {
	v, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Unauthorized"))
		return 0, false
	}
	id, ok := v.(int64)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Unauthorized"))
		return 0, false
	}
	return id, true
}
