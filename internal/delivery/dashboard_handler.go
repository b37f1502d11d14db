package delivery

import (
	"net/http"

	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type DashboardHandler struct {
	useCase usecase.DashboardUseCase
	log     *logrus.Logger
}

func NewDashboardHandler(uc usecase.DashboardUseCase, logger *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *DashboardHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/dashboard", h.Summary)
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.useCase.Summary(c.Request.Context())
	if err != nil {
		h.log.Errorf("Failed to build dashboard: %v", err)
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, summary)
}
