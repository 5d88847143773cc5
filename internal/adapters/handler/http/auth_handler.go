package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hardlevel/hardlevel-core/internal/core/services"
	"github.com/hardlevel/hardlevel-core/pkg/logger"
)

type AuthHandler struct {
	service *services.AuthService
	logger  *zap.Logger
}

func NewAuthHandler(service *services.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  orNop(log),
	}
}

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}

// Login godoc
// @Summary  Exchange the owner password for a bearer token
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    request body loginRequest true "Owner password"
// @Success  200 {object} tokenResponse
// @Failure  400 {object} errorResponse
// @Failure  401 {object} errorResponse
// @Router   /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Password)
	if err != nil {
		logger.WithRequestID(c.Request.Context(), h.logger).Warn("login rejected", zap.String("client_ip", c.ClientIP()))
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{Token: token, TokenType: "Bearer"})
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
	}
}
