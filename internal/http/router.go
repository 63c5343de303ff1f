package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jar-rating/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	jwtSvc *service.JWTService,
	authH *AuthHandler,
	comparisonH *ComparisonHandler,
	practitionerH *PractitionerHandler,
	configH *ConfigHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.Refresh)

	r.POST("/score", comparisonH.Score)
	r.POST("/compare", comparisonH.Compare)
	r.POST("/compare/saved", comparisonH.CompareSaved)
	r.POST("/comparisons/share", comparisonH.ShareReport)

	practitioners := r.Group("/practitioners")
	practitioners.POST("", practitionerH.Create)
	practitioners.GET("", practitionerH.List)
	practitioners.GET("/:id", practitionerH.Get)
	practitioners.DELETE("/:id", practitionerH.Delete)
	practitioners.GET("/:id/similar", practitionerH.Similar)

	r.GET("/config", configH.Get)
	r.PUT("/config", JWTAuthMiddleware(jwtSvc), configH.Update)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
