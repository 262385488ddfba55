package mocks

import (
	"context"

	"github.com/news-aggregator-api/internal/models"
	"github.com/news-aggregator-api/internal/service"
)

// MockTopicService is a mock implementation of TopicService
type MockTopicService struct {
	ListFunc func(ctx context.Context) ([]models.Topic, error)
}

// Verify interface compliance
var _ service.TopicService = (*MockTopicService)(nil)

func (m *MockTopicService) ListTopics(ctx context.Context) ([]models.Topic, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.Topic{}, nil
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	ListFunc func(ctx context.Context) ([]models.User, error)
}

// Verify interface compliance
var _ service.UserService = (*MockUserService)(nil)

func (m *MockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.User{}, nil
}

// MockArticleService is a mock implementation of ArticleService
type MockArticleService struct {
	ListFunc       func(ctx context.Context, filter service.ArticleFilter) ([]models.ArticleSummary, error)
	GetFunc        func(ctx context.Context, id string) (*models.Article, error)
	UpdateFunc     func(ctx context.Context, id string, delta *int) (*models.Article, error)
	LastFilter     service.ArticleFilter
	UpdateVoteArgs []*int
}

// Verify interface compliance
var _ service.ArticleService = (*MockArticleService)(nil)

func (m *MockArticleService) ListArticles(ctx context.Context, filter service.ArticleFilter) ([]models.ArticleSummary, error) {
	m.LastFilter = filter
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return []models.ArticleSummary{}, nil
}

func (m *MockArticleService) GetArticle(ctx context.Context, id string) (*models.Article, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return &models.Article{}, nil
}

func (m *MockArticleService) UpdateVotes(ctx context.Context, id string, delta *int) (*models.Article, error) {
	m.UpdateVoteArgs = append(m.UpdateVoteArgs, delta)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, delta)
	}
	if delta == nil {
		return &models.Article{}, nil
	}
	return &models.Article{Votes: *delta}, nil
}

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	ListFunc   func(ctx context.Context, articleID string) ([]models.Comment, error)
	AddFunc    func(ctx context.Context, articleID string, req *models.NewComment) (*models.Comment, error)
	DeleteFunc func(ctx context.Context, id string) error
}

// Verify interface compliance
var _ service.CommentService = (*MockCommentService)(nil)

func (m *MockCommentService) ListComments(ctx context.Context, articleID string) ([]models.Comment, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, articleID)
	}
	return []models.Comment{}, nil
}

func (m *MockCommentService) AddComment(ctx context.Context, articleID string, req *models.NewComment) (*models.Comment, error) {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, articleID, req)
	}
	return &models.Comment{Author: req.Username, Body: req.Body}, nil
}

func (m *MockCommentService) DeleteComment(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// NewMockServices returns a Services value backed entirely by mocks
func NewMockServices() (*service.Services, *MockTopicService, *MockUserService, *MockArticleService, *MockCommentService) {
	topics := &MockTopicService{}
	users := &MockUserService{}
	articles := &MockArticleService{}
	comments := &MockCommentService{}
	return &service.Services{
		Topic:   topics,
		User:    users,
		Article: articles,
		Comment: comments,
	}, topics, users, articles, comments
}
