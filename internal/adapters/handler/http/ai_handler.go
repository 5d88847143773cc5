package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hardlevel/hardlevel-core/internal/core/domain"
	"github.com/hardlevel/hardlevel-core/internal/core/services"
	"github.com/hardlevel/hardlevel-core/pkg/logger"
)

type AIHandler struct {
	avatars *services.AvatarService
	journal *services.JournalService
	logger  *zap.Logger
}

func NewAIHandler(avatars *services.AvatarService, journal *services.JournalService, log *zap.Logger) *AIHandler {
	return &AIHandler{
		avatars: avatars,
		journal: journal,
		logger:  orNop(log),
	}
}

type generateAvatarRequest struct {
	Style string `json:"style" binding:"required"`
	Mood  string `json:"mood" binding:"required"`
}

type summarizeRequest struct {
	Text string `json:"text" binding:"required"`
}

func (h *AIHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/avatar", h.GenerateAvatar)
	router.POST("/journal/summarize", h.Summarize)
}

// GenerateAvatar godoc
// @Summary  Generate a stylized avatar
// @Tags     ai
// @Accept   json
// @Produce  json
// @Param    request body generateAvatarRequest true "Style (ghibli or pixar) and mood"
// @Success  200 {object} services.GenerateAvatarOutput
// @Failure  400 {object} errorResponse
// @Failure  502 {object} errorResponse
// @Security BearerAuth
// @Router   /avatar [post]
func (h *AIHandler) GenerateAvatar(c *gin.Context) {
	var req generateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	out, err := h.avatars.GenerateAvatar(c.Request.Context(), domain.GenerateAvatarInput{
		Style: domain.AvatarStyle(req.Style),
		Mood:  req.Mood,
	})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	logger.WithRequestID(c.Request.Context(), h.logger).Info("avatar generated", zap.String("style", req.Style))
	c.JSON(http.StatusOK, out)
}

// Summarize godoc
// @Summary  Summarize a journal entry
// @Tags     ai
// @Accept   json
// @Produce  json
// @Param    request body summarizeRequest true "Journal text"
// @Success  200 {object} domain.JournalAIResult
// @Failure  400 {object} errorResponse
// @Failure  502 {object} errorResponse
// @Security BearerAuth
// @Router   /journal/summarize [post]
func (h *AIHandler) Summarize(c *gin.Context) {
	var req summarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	res, err := h.journal.Summarize(c.Request.Context(), domain.JournalAIInput{Text: req.Text})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
