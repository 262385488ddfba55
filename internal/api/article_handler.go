package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-aggregator-api/internal/models"
	"github.com/news-aggregator-api/internal/service"
	"github.com/rs/zerolog"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// ListArticles handles GET /api/articles?sort_by=...&order=...&topic=...
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	filter := service.ArticleFilter{
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
	}
	// A present but empty topic is still a filter
	if topic, ok := c.GetQuery("topic"); ok {
		filter.Topic = &topic
	}

	articles, err := h.services.Article.ListArticles(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// GetArticle handles GET /api/articles/:article_id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	article, err := h.services.Article.GetArticle(c.Request.Context(), c.Param("article_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

// UpdateVotes handles PATCH /api/articles/:article_id with {"inc_votes": n}.
// An undecodable body is passed on as a missing increment so the article's
// existence is still checked first.
func (h *ArticleHandler) UpdateVotes(c *gin.Context) {
	var patch models.VotePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.log.Debug().Err(err).Msg("Undecodable vote patch")
		patch.IncVotes = nil
	}

	article, err := h.services.Article.UpdateVotes(c.Request.Context(), c.Param("article_id"), patch.IncVotes)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}
