package service

import (
	"context"

	"github.com/news-aggregator-api/internal/models"
	"github.com/news-aggregator-api/internal/repository"
	"github.com/rs/zerolog"
)

// topicService is the concrete implementation of TopicService
type topicService struct {
	repo repository.TopicRepository
	log  zerolog.Logger
}

func newTopicService(repo repository.TopicRepository, log zerolog.Logger) *topicService {
	return &topicService{
		repo: repo,
		log:  log.With().Str("service", "topic").Logger(),
	}
}

// ListTopics returns every topic
func (s *topicService) ListTopics(ctx context.Context) ([]models.Topic, error) {
	return s.repo.List(ctx)
}

// userService is the concrete implementation of UserService
type userService struct {
	repo repository.UserRepository
	log  zerolog.Logger
}

func newUserService(repo repository.UserRepository, log zerolog.Logger) *userService {
	return &userService{
		repo: repo,
		log:  log.With().Str("service", "user").Logger(),
	}
}

// ListUsers returns every user
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.repo.List(ctx)
}
