package service

import (
	"context"

	"github.com/news-aggregator-api/internal/config"
	"github.com/news-aggregator-api/internal/models"
	"github.com/news-aggregator-api/internal/repository"
	"github.com/rs/zerolog"
)

// ArticleFilter carries the raw article list parameters. A nil Topic means no
// topic filter was supplied; a non-nil Topic is checked even when empty.
type ArticleFilter struct {
	SortBy string
	Order  string
	Topic  *string
}

// TopicService defines the interface for topic operations
type TopicService interface {
	ListTopics(ctx context.Context) ([]models.Topic, error)
}

// UserService defines the interface for user operations
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// ArticleService defines the interface for article operations
type ArticleService interface {
	ListArticles(ctx context.Context, filter ArticleFilter) ([]models.ArticleSummary, error)
	GetArticle(ctx context.Context, id string) (*models.Article, error)
	UpdateVotes(ctx context.Context, id string, delta *int) (*models.Article, error)
}

// CommentService defines the interface for comment operations
type CommentService interface {
	ListComments(ctx context.Context, articleID string) ([]models.Comment, error)
	AddComment(ctx context.Context, articleID string, req *models.NewComment) (*models.Comment, error)
	DeleteComment(ctx context.Context, id string) error
}

// Services holds all service interfaces
type Services struct {
	Topic   TopicService
	User    UserService
	Article ArticleService
	Comment CommentService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	checker := newExistenceChecker(repos.Article, repos.Topic)

	return &Services{
		Topic:   newTopicService(repos.Topic, log),
		User:    newUserService(repos.User, log),
		Article: newArticleService(repos.Article, checker, log),
		Comment: newCommentService(repos.Comment, checker, cfg.API.EmptyCommentsNotFound, log),
	}
}
