package service

import (
	"context"
	"fmt"

	"github.com/news-aggregator-api/internal/apperror"
	"github.com/news-aggregator-api/internal/models"
	"github.com/news-aggregator-api/internal/repository"
	"github.com/news-aggregator-api/internal/validation"
	"github.com/rs/zerolog"
)

// articleService is the concrete implementation of ArticleService
type articleService struct {
	repo    repository.ArticleRepository
	checker *existenceChecker
	log     zerolog.Logger
}

func newArticleService(repo repository.ArticleRepository, checker *existenceChecker, log zerolog.Logger) *articleService {
	return &articleService{
		repo:    repo,
		checker: checker,
		log:     log.With().Str("service", "article").Logger(),
	}
}

// ListArticles validates the sort pair, checks the topic filter when one was
// supplied, then lists. Each step returns early on failure.
func (s *articleService) ListArticles(ctx context.Context, filter ArticleFilter) ([]models.ArticleSummary, error) {
	query, err := validation.ValidateArticleQuery(filter.SortBy, filter.Order)
	if err != nil {
		return nil, err
	}

	if filter.Topic != nil {
		if err := s.checker.CheckTopicExists(ctx, *filter.Topic); err != nil {
			return nil, err
		}
		query.Topic = *filter.Topic
	}

	return s.repo.List(ctx, query)
}

// GetArticle returns a single article including its body
func (s *articleService) GetArticle(ctx context.Context, id string) (*models.Article, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateVotes adds delta to the article's votes after confirming it exists.
// A nil delta is malformed input, reported only once the article is found.
func (s *articleService) UpdateVotes(ctx context.Context, id string, delta *int) (*models.Article, error) {
	if err := s.checker.CheckArticleExists(ctx, id); err != nil {
		return nil, err
	}
	if delta == nil {
		return nil, fmt.Errorf("update votes: %w: inc_votes must be an integer", apperror.ErrMalformedInput)
	}

	article, err := s.repo.IncrementVotes(ctx, id, *delta)
	if err != nil {
		return nil, err
	}

	s.log.Debug().
		Int("article_id", article.ArticleID).
		Int("inc_votes", *delta).
		Int("votes", article.Votes).
		Msg("Article votes updated")

	return article, nil
}
