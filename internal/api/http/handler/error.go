package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/userhub/user-service/internal/model"
)

const fallbackErrorMessage = "operation failed."

// respondError maps the service error taxonomy to HTTP statuses.
// Not-found and no-data outcomes are 404, validation and storage
// rejections on create/update are 406, structurally invalid ids are
// 400; anything else is surfaced generically as 500.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound), errors.Is(err, model.ErrNoData):
		respondMessage(c, http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrIDSupplied), errors.Is(err, model.ErrRejected):
		respondMessage(c, http.StatusNotAcceptable, err.Error())
	case errors.Is(err, model.ErrInvalidID):
		respondMessage(c, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("request failed", "error", err)
		respondMessage(c, http.StatusInternalServerError, fallbackErrorMessage)
	}
}

func respondMessage(c *gin.Context, status int, message string) {
	if message == "" {
		message = fallbackErrorMessage
	}

	c.JSON(status, gin.H{
		"timestamp": time.Now().Format(time.RFC3339),
		"message":   message,
	})
}
