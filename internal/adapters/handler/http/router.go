package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/hardlevel/hardlevel-core/internal/adapters/handler/http/middleware"
	"github.com/hardlevel/hardlevel-core/internal/core/services"
	_ "github.com/hardlevel/hardlevel-core/internal/docs"
)

type RateLimit struct {
	Requests int
	Window   time.Duration
}

type RouterDependencies struct {
	AuthHandler      *AuthHandler
	ChecklistHandler *ChecklistHandler
	HeatmapHandler   *HeatmapHandler
	AIHandler        *AIHandler
	TokenService     *services.TokenService
	DB               *sqlx.DB
	Redis            *redis.Client
	RateLimit        RateLimit
	CORSOrigin       string
	Logger           *zap.Logger
	StartTime        time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	log := orNop(deps.Logger)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.AccessLog(log), gin.Recovery())

	origin := deps.CORSOrigin
	if origin == "" {
		origin = "*"
	}
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID, X-RateLimit-Limit, X-RateLimit-Remaining, X-RateLimit-Reset")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	if deps.Redis != nil && deps.RateLimit.Requests > 0 {
		router.Use(middleware.RateLimiterMiddleware(deps.Redis, deps.RateLimit.Requests, deps.RateLimit.Window, log))
	}

	router.GET("/health", healthHandler(deps))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := router.Group("/api/v1")

	deps.AuthHandler.RegisterRoutes(apiV1)

	protected := apiV1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.TokenService))
	{
		deps.ChecklistHandler.RegisterRoutes(protected)
		deps.HeatmapHandler.RegisterRoutes(protected)
		deps.AIHandler.RegisterRoutes(protected)
	}

	return router
}

// healthHandler reports 503 when the database is down. Redis is optional and
// only degrades the status when it was configured.
func healthHandler(deps RouterDependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := "ok"
		code := http.StatusOK

		dbStatus := "connected"
		if deps.DB == nil || deps.DB.PingContext(ctx) != nil {
			dbStatus = "unreachable"
			status = "error"
			code = http.StatusServiceUnavailable
		}

		redisStatus := "disabled"
		if deps.Redis != nil {
			redisStatus = "connected"
			if deps.Redis.Ping(ctx).Err() != nil {
				redisStatus = "unreachable"
				if code == http.StatusOK {
					status = "degraded"
				}
			}
		}

		c.JSON(code, gin.H{
			"status":   status,
			"database": dbStatus,
			"redis":    redisStatus,
			"uptime":   time.Since(deps.StartTime).Round(time.Second).String(),
		})
	}
}
