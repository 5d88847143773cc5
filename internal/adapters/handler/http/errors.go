package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hardlevel/hardlevel-core/internal/core/domain"
	"github.com/hardlevel/hardlevel-core/pkg/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func isInvalidInput(err error) bool {
	for _, target := range []error{
		domain.ErrInvalidDate,
		domain.ErrUnknownTask,
		domain.ErrInvalidMetric,
		domain.ErrInvalidWeeks,
		domain.ErrInvalidWeightUnit,
		domain.ErrInvalidAvatarStyle,
		domain.ErrEmptyMood,
		domain.ErrEmptyJournalText,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func handleError(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case isInvalidInput(err):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})

	case errors.Is(err, domain.ErrUpstream):
		logger.WithRequestID(c.Request.Context(), log).Warn("upstream provider failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusBadGateway, errorResponse{Error: "ai provider unavailable"})

	default:
		logger.WithRequestID(c.Request.Context(), log).Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func orNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
