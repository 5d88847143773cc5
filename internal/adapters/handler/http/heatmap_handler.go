package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hardlevel/hardlevel-core/internal/core/domain"
	"github.com/hardlevel/hardlevel-core/internal/core/services"
)

type HeatmapHandler struct {
	svc    *services.HeatmapService
	logger *zap.Logger
	now    func() time.Time
}

func NewHeatmapHandler(svc *services.HeatmapService, log *zap.Logger) *HeatmapHandler {
	return &HeatmapHandler{
		svc:    svc,
		logger: orNop(log),
		now:    time.Now,
	}
}

func (h *HeatmapHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/heatmap", h.GetHeatmap)
}

// GetHeatmap godoc
// @Summary  Completion heatmap ending at a date
// @Tags     heatmap
// @Produce  json
// @Param    end   query string false "Last date (YYYY-MM-DD), defaults to today"
// @Param    weeks query int    false "Number of columns, defaults to 11"
// @Success  200 {object} domain.Heatmap
// @Failure  400 {object} errorResponse
// @Security BearerAuth
// @Router   /heatmap [get]
func (h *HeatmapHandler) GetHeatmap(c *gin.Context) {
	end := h.now()
	if raw := c.Query("end"); raw != "" {
		parsed, err := domain.ParseDate(raw)
		if err != nil {
			handleError(c, h.logger, err)
			return
		}
		end = parsed
	}

	weeks := domain.DefaultHeatmapWeeks
	if raw := c.Query("weeks"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: domain.ErrInvalidWeeks.Error()})
			return
		}
		if err := domain.ValidateHeatmapWeeks(n); err != nil {
			handleError(c, h.logger, err)
			return
		}
		weeks = n
	}

	heatmap, err := h.svc.Build(c.Request.Context(), domain.HeatmapInput{EndDate: end, Weeks: weeks})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, heatmap)
}
