package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/news-aggregator-api/internal/config"
	"github.com/news-aggregator-api/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// HealthChecker reports whether the store is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// NewRouter creates and configures the Gin router.
//
// Middleware runs outermost first: tracing, request id, metrics, logging,
// CORS, compression, the 500 fallback, panic recovery, body limit, rate
// limiting and finally the error normalizer closest to the handlers.
func NewRouter(services *service.Services, health HealthChecker, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	router.Use(requestIDMiddleware())
	router.Use(metricsMiddleware())
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware(cfg.CORS))
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	router.Use(fallbackMiddleware(log))
	router.Use(recoveryMiddleware(log))
	router.Use(bodyLimitMiddleware(cfg.API.MaxBodyBytes))
	if cfg.RateLimit.Enabled {
		router.Use(newRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst).handler())
	}
	router.Use(errorMiddleware())

	router.NoRoute(notFoundHandler)

	// Health check
	router.GET("/health", healthCheck(health))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Handlers
	topicHandler := NewTopicHandler(services, log)
	articleHandler := NewArticleHandler(services, log)
	commentHandler := NewCommentHandler(services, log)

	api := router.Group(cfg.API.BasePath)
	{
		api.GET("/topics", topicHandler.ListTopics)
		api.GET("/users", topicHandler.ListUsers)

		articles := api.Group("/articles")
		{
			articles.GET("", articleHandler.ListArticles)
			articles.GET("/:article_id", articleHandler.GetArticle)
			articles.PATCH("/:article_id", articleHandler.UpdateVotes)
			articles.GET("/:article_id/comments", commentHandler.ListComments)
			articles.POST("/:article_id/comments", commentHandler.AddComment)
		}

		api.DELETE("/comments/:comment_id", commentHandler.DeleteComment)
	}

	return router
}

// healthCheck returns the health status, 503 when the store is unreachable
func healthCheck(health HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status, code := "healthy", http.StatusOK
		if err := health.HealthCheck(ctx); err != nil {
			status, code = "unhealthy", http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "news-aggregator-api",
		})
	}
}

// corsMiddleware allows every origin unless an allow-list is configured
func corsMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader, "Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	return cors.New(corsCfg)
}
