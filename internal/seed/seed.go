package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/news-aggregator-api/internal/models"
	"github.com/news-aggregator-api/internal/repository"
	"github.com/news-aggregator-api/internal/validation"
	"github.com/rs/zerolog"
)

// Fixtures is one complete data set
type Fixtures struct {
	Topics   []models.TopicFixture
	Users    []models.UserFixture
	Articles []models.ArticleFixture
	Comments []models.CommentFixture
}

// LoadFixtures reads topics.json, users.json, articles.json and comments.json
// from dir. Every file must exist and hold a JSON array.
func LoadFixtures(dir string) (*Fixtures, error) {
	f := &Fixtures{}
	files := []struct {
		name string
		dest any
	}{
		{"topics.json", &f.Topics},
		{"users.json", &f.Users},
		{"articles.json", &f.Articles},
		{"comments.json", &f.Comments},
	}

	for _, file := range files {
		data, err := os.ReadFile(filepath.Join(dir, file.name))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file.name, err)
		}
		if err := json.Unmarshal(data, file.dest); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", file.name, err)
		}
	}

	return f, nil
}

// Seeder replaces the database contents with a fixture set
type Seeder struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// New creates a Seeder writing through the given repositories
func New(repos *repository.Repositories, log zerolog.Logger) *Seeder {
	return &Seeder{
		repos: repos,
		log:   log.With().Str("component", "seed").Logger(),
	}
}

// Run empties the tables and inserts the fixtures in dependency order.
// Records failing validation are skipped and reported; insert failures abort.
func (s *Seeder) Run(ctx context.Context, f *Fixtures) (*models.SeedReport, error) {
	startTime := time.Now()
	report := &models.SeedReport{StartedAt: startTime}
	validator := validation.NewValidator()

	if err := s.repos.Admin.Reset(ctx); err != nil {
		return nil, fmt.Errorf("failed to reset tables: %w", err)
	}

	// Topics
	var topics []*models.Topic
	for i := range f.Topics {
		t := &f.Topics[i]
		if s.reject(report, "topics", i, validator.ValidateTopic(t)) {
			continue
		}
		validator.AddTopic(t.Slug)
		topics = append(topics, &models.Topic{Slug: t.Slug, Description: t.Description, ImgURL: t.ImgURL})
	}
	n, err := s.repos.Topic.BatchInsert(ctx, topics)
	if err != nil {
		return nil, fmt.Errorf("failed to insert topics: %w", err)
	}
	report.Topics = n

	// Users
	var users []*models.User
	for i := range f.Users {
		u := &f.Users[i]
		if s.reject(report, "users", i, validator.ValidateUser(u)) {
			continue
		}
		validator.AddUser(u.Username)
		users = append(users, &models.User{Username: u.Username, Name: u.Name, AvatarURL: u.AvatarURL})
	}
	if n, err = s.repos.User.BatchInsert(ctx, users); err != nil {
		return nil, fmt.Errorf("failed to insert users: %w", err)
	}
	report.Users = n

	// Articles get sequential ids in file order; comments find them by title
	var articles []*models.Article
	articleIDs := make(map[string]int)
	for i := range f.Articles {
		a := &f.Articles[i]
		if s.reject(report, "articles", i, validator.ValidateArticle(a)) {
			continue
		}
		validator.AddArticleTitle(a.Title)
		id := len(articles) + 1
		articleIDs[a.Title] = id
		articles = append(articles, &models.Article{
			ArticleID:     id,
			Title:         a.Title,
			Topic:         a.Topic,
			Author:        a.Author,
			Body:          a.Body,
			CreatedAt:     fromMillis(a.CreatedAt),
			Votes:         a.Votes,
			ArticleImgURL: a.ArticleImgURL,
		})
	}
	if n, err = s.repos.Article.BatchInsert(ctx, articles); err != nil {
		return nil, fmt.Errorf("failed to insert articles: %w", err)
	}
	report.Articles = n

	// Comments
	var comments []*models.Comment
	for i := range f.Comments {
		c := &f.Comments[i]
		if s.reject(report, "comments", i, validator.ValidateComment(c)) {
			continue
		}
		comments = append(comments, &models.Comment{
			ArticleID: articleIDs[c.ArticleTitle],
			Body:      c.Body,
			Votes:     c.Votes,
			Author:    c.Author,
			CreatedAt: fromMillis(c.CreatedAt),
		})
	}
	if n, err = s.repos.Comment.BatchInsert(ctx, comments); err != nil {
		return nil, fmt.Errorf("failed to insert comments: %w", err)
	}
	report.Comments = n

	if err := s.repos.Admin.SyncSequences(ctx); err != nil {
		return nil, fmt.Errorf("failed to sync sequences: %w", err)
	}

	if err := s.verifyCounts(ctx, report); err != nil {
		return nil, err
	}

	report.DurationMs = time.Since(startTime).Milliseconds()

	s.log.Info().
		Int("topics", report.Topics).
		Int("users", report.Users).
		Int("articles", report.Articles).
		Int("comments", report.Comments).
		Int("failed", report.Failed).
		Int64("duration_ms", report.DurationMs).
		Msg("Seeding completed")

	return report, nil
}

// verifyCounts compares the stored row counts with what was inserted
func (s *Seeder) verifyCounts(ctx context.Context, report *models.SeedReport) error {
	articles, err := s.repos.Article.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count articles: %w", err)
	}
	if articles != report.Articles {
		return fmt.Errorf("stored %d articles, inserted %d", articles, report.Articles)
	}

	comments, err := s.repos.Comment.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count comments: %w", err)
	}
	if comments != report.Comments {
		return fmt.Errorf("stored %d comments, inserted %d", comments, report.Comments)
	}
	return nil
}

// reject records validation errors for one fixture and reports whether it
// should be skipped
func (s *Seeder) reject(report *models.SeedReport, resource string, index int, errs []validation.ValidationError) bool {
	if len(errs) == 0 {
		return false
	}

	report.Failed++
	for _, e := range errs {
		report.Errors = append(report.Errors, models.ValidationError{
			Resource: resource,
			Index:    index,
			Field:    e.Field,
			Message:  e.Message,
			Value:    e.Value,
		})
		s.log.Warn().
			Str("resource", resource).
			Int("index", index).
			Str("field", e.Field).
			Msg(e.Message)
	}
	return true
}

// fromMillis converts an epoch millisecond timestamp; zero means now
func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Now().UTC()
	}
	return time.UnixMilli(ms).UTC()
}
