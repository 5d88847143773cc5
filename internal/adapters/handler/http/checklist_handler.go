package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hardlevel/hardlevel-core/internal/core/domain"
	"github.com/hardlevel/hardlevel-core/internal/core/services"
	"github.com/hardlevel/hardlevel-core/pkg/logger"
)

type ChecklistHandler struct {
	svc    *services.ChecklistService
	logger *zap.Logger
}

func NewChecklistHandler(svc *services.ChecklistService, log *zap.Logger) *ChecklistHandler {
	return &ChecklistHandler{
		svc:    svc,
		logger: orNop(log),
	}
}

type setMetricsRequest struct {
	Weight       *float64 `json:"weight"`
	Unit         string   `json:"unit"`
	FastingHours *float64 `json:"fasting_hours"`
}

func (h *ChecklistHandler) RegisterRoutes(router *gin.RouterGroup) {
	logs := router.Group("/logs")
	{
		logs.GET("/:date", h.GetDay)
		logs.POST("/:date/tasks/:task/toggle", h.ToggleTask)
		logs.PUT("/:date/metrics", h.SetMetrics)
	}
}

// GetDay godoc
// @Summary  Day log
// @Tags     logs
// @Produce  json
// @Param    date path string true "Date (YYYY-MM-DD)"
// @Success  200 {object} services.DayResult
// @Failure  400 {object} errorResponse
// @Security BearerAuth
// @Router   /logs/{date} [get]
func (h *ChecklistHandler) GetDay(c *gin.Context) {
	res, err := h.svc.GetDay(c.Request.Context(), c.Param("date"))
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// ToggleTask godoc
// @Summary  Toggle one checklist task
// @Tags     logs
// @Produce  json
// @Param    date path string true "Date (YYYY-MM-DD)"
// @Param    task path string true "Task" Enums(workout1, workout2, diet, water, reading, photo)
// @Success  200 {object} services.DayResult
// @Failure  400 {object} errorResponse
// @Security BearerAuth
// @Router   /logs/{date}/tasks/{task}/toggle [post]
func (h *ChecklistHandler) ToggleTask(c *gin.Context) {
	task, err := domain.ParseTaskID(c.Param("task"))
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	res, err := h.svc.ToggleTask(c.Request.Context(), c.Param("date"), task)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	logger.WithRequestID(c.Request.Context(), h.logger).Info("task toggled",
		zap.String("date", res.Log.Date),
		zap.Stringer("task", task),
		zap.Bool("done", res.Log.Tasks.Done(task)),
		zap.Int("completion", res.Completion),
	)

	c.JSON(http.StatusOK, res)
}

// SetMetrics godoc
// @Summary  Record weight and fasting hours
// @Tags     logs
// @Accept   json
// @Produce  json
// @Param    date    path string            true "Date (YYYY-MM-DD)"
// @Param    request body setMetricsRequest true "Metrics"
// @Success  200 {object} services.DayResult
// @Failure  400 {object} errorResponse
// @Security BearerAuth
// @Router   /logs/{date}/metrics [put]
func (h *ChecklistHandler) SetMetrics(c *gin.Context) {
	var req setMetricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	unit, err := domain.ParseWeightUnit(req.Unit)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	res, err := h.svc.SetMetrics(c.Request.Context(), services.MetricsInput{
		Date:         c.Param("date"),
		Weight:       req.Weight,
		WeightUnit:   unit,
		FastingHours: req.FastingHours,
	})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
