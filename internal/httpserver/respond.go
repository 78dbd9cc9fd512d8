package httpserver

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

// respondError maps domain errors onto the uniform failure envelope. Expected
// failures surface their own short message; anything else is logged and hidden
// behind a generic one.
func respondError(c *gin.Context, logger *log.Logger, err error, notFoundMsg, internalMsg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: notFoundMsg})
	case errors.Is(err, domain.ErrInvalid):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		logger.Printf("%s: %v", internalMsg, err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: internalMsg})
	}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return 0, false
	}
	return id, true
}
