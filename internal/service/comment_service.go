package service

import (
	"context"

	"github.com/news-aggregator-api/internal/apperror"
	"github.com/news-aggregator-api/internal/models"
	"github.com/news-aggregator-api/internal/repository"
	"github.com/rs/zerolog"
)

// commentService is the concrete implementation of CommentService
type commentService struct {
	repo    repository.CommentRepository
	checker *existenceChecker
	// emptyNotFound reports an empty comment list as ErrNotFound. When false
	// the article is checked first and an empty list is a valid result.
	emptyNotFound bool
	log           zerolog.Logger
}

func newCommentService(repo repository.CommentRepository, checker *existenceChecker, emptyNotFound bool, log zerolog.Logger) *commentService {
	return &commentService{
		repo:          repo,
		checker:       checker,
		emptyNotFound: emptyNotFound,
		log:           log.With().Str("service", "comment").Logger(),
	}
}

// ListComments returns an article's comments, newest first
func (s *commentService) ListComments(ctx context.Context, articleID string) ([]models.Comment, error) {
	if !s.emptyNotFound {
		if err := s.checker.CheckArticleExists(ctx, articleID); err != nil {
			return nil, err
		}
	}

	comments, err := s.repo.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}

	if s.emptyNotFound && len(comments) == 0 {
		return nil, apperror.ErrNotFound
	}
	return comments, nil
}

// AddComment posts a comment on an existing article. Author and body are
// passed through; the store enforces their presence and the author reference.
func (s *commentService) AddComment(ctx context.Context, articleID string, req *models.NewComment) (*models.Comment, error) {
	if err := s.checker.CheckArticleExists(ctx, articleID); err != nil {
		return nil, err
	}

	comment, err := s.repo.Create(ctx, articleID, req.Username, req.Body)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int("comment_id", comment.CommentID).
		Int("article_id", comment.ArticleID).
		Str("author", comment.Author).
		Msg("Comment created")

	return comment, nil
}

// DeleteComment removes a comment permanently
func (s *commentService) DeleteComment(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("comment_id", id).Msg("Comment deleted")
	return nil
}
