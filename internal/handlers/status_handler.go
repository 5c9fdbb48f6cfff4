package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_api/internal/responses"
	"portfolio_api/internal/services"
)

type StatusHandler struct {
	statusService *services.StatusService
}

func NewStatusHandler(statusService *services.StatusService) *StatusHandler {
	return &StatusHandler{
		statusService: statusService,
	}
}

// Root handles GET /
func (h *StatusHandler) Root(c *gin.Context) {
	responses.Message(c, http.StatusOK, "Hello from the portfolio backend!")
}

// Hello handles GET /api/hello
func (h *StatusHandler) Hello(c *gin.Context) {
	responses.Message(c, http.StatusOK, "Hello from the backend API!")
}

// TestDatabase handles GET /test. It always answers 200.
func (h *StatusHandler) TestDatabase(c *gin.Context) {
	responses.JSON(c, http.StatusOK, h.statusService.Report(c.Request.Context()))
}

// NotFound answers unknown routes.
func (h *StatusHandler) NotFound(c *gin.Context) {
	responses.Fail(c, http.StatusNotFound, "Not Found")
}
