package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-aggregator-api/internal/apperror"
	"github.com/news-aggregator-api/internal/models"
	"github.com/news-aggregator-api/internal/service"
	"github.com/rs/zerolog"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// ListComments handles GET /api/articles/:article_id/comments
func (h *CommentHandler) ListComments(c *gin.Context) {
	comments, err := h.services.Comment.ListComments(c.Request.Context(), c.Param("article_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// AddComment handles POST /api/articles/:article_id/comments with {"username", "body"}
func (h *CommentHandler) AddComment(c *gin.Context) {
	var req models.NewComment
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(fmt.Errorf("decode comment: %w: %v", apperror.ErrMalformedInput, err))
		return
	}

	comment, err := h.services.Comment.AddComment(c.Request.Context(), c.Param("article_id"), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// DeleteComment handles DELETE /api/comments/:comment_id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.services.Comment.DeleteComment(c.Request.Context(), c.Param("comment_id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
