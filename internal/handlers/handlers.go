package handlers

import (
	"net/http"

	"marquee/internal/cache"
	apperrors "marquee/internal/errors"
	"marquee/internal/service"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	services    *service.Services
	cacheClient *cache.Client
}

func NewHandlers(services *service.Services, cacheClient *cache.Client) *Handlers {
	return &Handlers{
		services:    services,
		cacheClient: cacheClient,
	}
}

// respondError maps domain error kinds onto HTTP statuses. Validation
// failures are 422, sale conflicts 409, unknown errors stay 500 with a
// generic message.
func respondError(c *gin.Context, err error, fallback string) {
	kind := apperrors.KindOf(err)

	status := http.StatusInternalServerError
	switch kind {
	case apperrors.KindMissingField, apperrors.KindInvalidCustomerID, apperrors.KindInvalidSeat:
		status = http.StatusUnprocessableEntity
	case apperrors.KindSeatTaken, apperrors.KindCapacityExceeded, apperrors.KindConflict:
		status = http.StatusConflict
	case apperrors.KindNotFound:
		status = http.StatusNotFound
	case apperrors.KindUpstreamFailure:
		status = http.StatusBadGateway
	}

	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": fallback})
		return
	}

	body := gin.H{"error": err.Error(), "kind": string(kind)}
	if fields := apperrors.FieldsOf(err); len(fields) > 0 {
		body["fields"] = fields
	}
	c.JSON(status, body)
}
