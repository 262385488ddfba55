package repository

import (
	"context"

	"github.com/news-aggregator-api/internal/database"
	"github.com/news-aggregator-api/internal/models"
	"github.com/news-aggregator-api/internal/validation"
)

// Identifiers arrive as raw path segments and are passed to the store
// unparsed. A value the store cannot read as a number surfaces as
// apperror.ErrMalformedInput.

// TopicRepository defines the interface for topic data operations
type TopicRepository interface {
	List(ctx context.Context) ([]models.Topic, error)
	Exists(ctx context.Context, slug string) (bool, error)
	BatchInsert(ctx context.Context, topics []*models.Topic) (int, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	BatchInsert(ctx context.Context, users []*models.User) (int, error)
}

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	List(ctx context.Context, query validation.ArticleQuery) ([]models.ArticleSummary, error)
	GetByID(ctx context.Context, id string) (*models.Article, error)
	Exists(ctx context.Context, id string) (bool, error)
	IncrementVotes(ctx context.Context, id string, delta int) (*models.Article, error)
	BatchInsert(ctx context.Context, articles []*models.Article) (int, error)
	Count(ctx context.Context) (int, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	ListByArticle(ctx context.Context, articleID string) ([]models.Comment, error)
	Create(ctx context.Context, articleID, author, body string) (*models.Comment, error)
	Delete(ctx context.Context, id string) error
	BatchInsert(ctx context.Context, comments []*models.Comment) (int, error)
	Count(ctx context.Context) (int, error)
}

// AdminRepository defines whole-database maintenance used by the seeder
type AdminRepository interface {
	Reset(ctx context.Context) error
	SyncSequences(ctx context.Context) error
}

// Repositories holds all repository interfaces
type Repositories struct {
	Topic   TopicRepository
	User    UserRepository
	Article ArticleRepository
	Comment CommentRepository
	Admin   AdminRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Topic:   NewTopicRepo(db),
		User:    NewUserRepo(db),
		Article: NewArticleRepo(db),
		Comment: NewCommentRepo(db),
		Admin:   NewAdminRepo(db),
	}
}
