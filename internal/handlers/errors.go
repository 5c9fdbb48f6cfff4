package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio_api/internal/database"
	"portfolio_api/internal/responses"
)

// respondError maps store errors to status codes.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	if errors.Is(err, database.ErrUnavailable) {
		responses.Fail(c, http.StatusInternalServerError, "Database not available")
		return
	}

	logger.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	responses.Fail(c, http.StatusInternalServerError, "Internal Server Error")
}

// respondLookupError is respondError for single-document reads, where a
// missing document answers 404 with the given detail.
func respondLookupError(c *gin.Context, logger *zap.Logger, err error, notFound string) {
	if errors.Is(err, database.ErrNotFound) {
		responses.Fail(c, http.StatusNotFound, notFound)
		return
	}
	respondError(c, logger, err)
}
