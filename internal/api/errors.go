package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-aggregator-api/internal/apperror"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// errorsTotal counts error responses by how they were classified
var errorsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "news_api_errors_total",
		Help: "Error responses by classification.",
	},
	[]string{"kind"},
)

func init() {
	prometheus.MustRegister(errorsTotal)
}

// errorResponse is the body of every error reply
type errorResponse struct {
	Message string `json:"message"`
}

// errorMiddleware turns the last error a handler attached into a response.
// Application errors carry their own status; store-classified malformed input
// is a 400. Anything else is left unwritten for fallbackMiddleware.
func errorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		// Application errors are checked first so an error never matches both
		if appErr, ok := apperror.As(err); ok {
			errorsTotal.WithLabelValues("application").Inc()
			c.AbortWithStatusJSON(appErr.Status, errorResponse{Message: appErr.Message})
			return
		}
		if apperror.IsMalformedInput(err) {
			errorsTotal.WithLabelValues("malformed_input").Inc()
			c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Message: apperror.MalformedInputMessage})
		}
	}
}

// fallbackMiddleware reports any error nothing else handled as a 500
func fallbackMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		errorsTotal.WithLabelValues("internal").Inc()
		log.Error().
			Str("request_id", c.GetString(requestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("errors", c.Errors.String()).
			Msg("Unhandled error")

		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Message: "Internal server error"})
	}
}

// notFoundHandler answers any path no route matched
func notFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, errorResponse{Message: "Path not found"})
}
