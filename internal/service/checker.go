package service

import (
	"context"

	"github.com/news-aggregator-api/internal/apperror"
	"github.com/news-aggregator-api/internal/repository"
)

// existenceChecker confirms a referenced entity exists before a dependent
// operation runs. Absence becomes apperror.ErrNotFound; a malformed id is
// left for the store to reject.
type existenceChecker struct {
	articles repository.ArticleRepository
	topics   repository.TopicRepository
}

func newExistenceChecker(articles repository.ArticleRepository, topics repository.TopicRepository) *existenceChecker {
	return &existenceChecker{articles: articles, topics: topics}
}

// CheckArticleExists returns ErrNotFound when no article has the given id
func (c *existenceChecker) CheckArticleExists(ctx context.Context, id string) error {
	exists, err := c.articles.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.ErrNotFound
	}
	return nil
}

// CheckTopicExists returns ErrNotFound when no topic has the given slug
func (c *existenceChecker) CheckTopicExists(ctx context.Context, slug string) error {
	exists, err := c.topics.Exists(ctx, slug)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.ErrNotFound
	}
	return nil
}
