package mocks

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/news-aggregator-api/internal/apperror"
	"github.com/news-aggregator-api/internal/models"
	"github.com/news-aggregator-api/internal/repository"
	"github.com/news-aggregator-api/internal/validation"
)

// Verify interface compliance
var (
	_ repository.TopicRepository   = (*MockTopicRepository)(nil)
	_ repository.UserRepository    = (*MockUserRepository)(nil)
	_ repository.ArticleRepository = (*MockArticleRepository)(nil)
	_ repository.CommentRepository = (*MockCommentRepository)(nil)
	_ repository.AdminRepository   = (*MockAdminRepository)(nil)
)

// parseID mirrors the store rejecting a non-integer id
func parseID(id string) (int, error) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return 0, fmt.Errorf("mock: %w: invalid input syntax for type integer: %q", apperror.ErrMalformedInput, id)
	}
	return n, nil
}

// MockTopicRepository is a mock implementation of TopicRepository
type MockTopicRepository struct {
	Topics      []models.Topic
	ListError   error
	InsertError error
	ExistsCalls int
}

func NewMockTopicRepository() *MockTopicRepository {
	return &MockTopicRepository{Topics: make([]models.Topic, 0)}
}

func (m *MockTopicRepository) List(ctx context.Context) ([]models.Topic, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	return append(make([]models.Topic, 0, len(m.Topics)), m.Topics...), nil
}

func (m *MockTopicRepository) Exists(ctx context.Context, slug string) (bool, error) {
	m.ExistsCalls++
	for _, t := range m.Topics {
		if t.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockTopicRepository) BatchInsert(ctx context.Context, topics []*models.Topic) (int, error) {
	if m.InsertError != nil {
		return 0, m.InsertError
	}
	for _, t := range topics {
		m.Topics = append(m.Topics, *t)
	}
	return len(topics), nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users       []models.User
	ListError   error
	InsertError error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{Users: make([]models.User, 0)}
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	return append(make([]models.User, 0, len(m.Users)), m.Users...), nil
}

func (m *MockUserRepository) BatchInsert(ctx context.Context, users []*models.User) (int, error) {
	if m.InsertError != nil {
		return 0, m.InsertError
	}
	for _, u := range users {
		m.Users = append(m.Users, *u)
	}
	return len(users), nil
}

// MockArticleRepository is a mock implementation of ArticleRepository.
// CommentCounts supplies the derived comment_count per article id.
type MockArticleRepository struct {
	mu               sync.Mutex
	Articles         map[int]*models.Article
	CommentCounts    map[int]int
	ListError        error
	InsertError      error
	LastQuery        validation.ArticleQuery
	ExistsCalls      int
	IncrementCalls   int
	BatchInsertCalls int
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Articles:      make(map[int]*models.Article),
		CommentCounts: make(map[int]int),
	}
}

// List returns summaries filtered by topic; ordering is by article id only
func (m *MockArticleRepository) List(ctx context.Context, q validation.ArticleQuery) ([]models.ArticleSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LastQuery = q
	if m.ListError != nil {
		return nil, m.ListError
	}

	summaries := make([]models.ArticleSummary, 0, len(m.Articles))
	for _, a := range m.Articles {
		if q.Topic != "" && a.Topic != q.Topic {
			continue
		}
		summaries = append(summaries, models.ArticleSummary{
			ArticleID:     a.ArticleID,
			Title:         a.Title,
			Topic:         a.Topic,
			Author:        a.Author,
			CreatedAt:     a.CreatedAt,
			Votes:         a.Votes,
			ArticleImgURL: a.ArticleImgURL,
			CommentCount:  m.CommentCounts[a.ArticleID],
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].ArticleID < summaries[j].ArticleID })
	return summaries, nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	n, err := parseID(id)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.Articles[n]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	copied := *a
	return &copied, nil
}

func (m *MockArticleRepository) Exists(ctx context.Context, id string) (bool, error) {
	n, err := parseID(id)
	if err != nil {
		return false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.ExistsCalls++
	_, ok := m.Articles[n]
	return ok, nil
}

func (m *MockArticleRepository) IncrementVotes(ctx context.Context, id string, delta int) (*models.Article, error) {
	n, err := parseID(id)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.IncrementCalls++
	a, ok := m.Articles[n]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	a.Votes += delta
	copied := *a
	return &copied, nil
}

func (m *MockArticleRepository) BatchInsert(ctx context.Context, articles []*models.Article) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.BatchInsertCalls++
	if m.InsertError != nil {
		return 0, m.InsertError
	}
	for _, a := range articles {
		m.Articles[a.ArticleID] = a
	}
	return len(articles), nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Articles), nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	mu          sync.Mutex
	Comments    map[int]*models.Comment
	NextID      int
	CreateError error
	ListError   error
	InsertError error
	ListCalls   int
	CreateCalls int
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments: make(map[int]*models.Comment),
		NextID:   1,
	}
}

func (m *MockCommentRepository) ListByArticle(ctx context.Context, articleID string) ([]models.Comment, error) {
	n, err := parseID(articleID)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.ListCalls++
	if m.ListError != nil {
		return nil, m.ListError
	}

	comments := make([]models.Comment, 0)
	for _, c := range m.Comments {
		if c.ArticleID == n {
			comments = append(comments, *c)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].CreatedAt.After(comments[j].CreatedAt) })
	return comments, nil
}

func (m *MockCommentRepository) Create(ctx context.Context, articleID, author, body string) (*models.Comment, error) {
	n, err := parseID(articleID)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.CreateCalls++
	if m.CreateError != nil {
		return nil, m.CreateError
	}

	comment := &models.Comment{
		CommentID: m.NextID,
		ArticleID: n,
		Body:      body,
		Votes:     0,
		Author:    author,
		CreatedAt: time.Now(),
	}
	m.Comments[comment.CommentID] = comment
	m.NextID++

	copied := *comment
	return &copied, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id string) error {
	n, err := parseID(id)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.Comments[n]; !ok {
		return apperror.ErrNotFound
	}
	delete(m.Comments, n)
	return nil
}

func (m *MockCommentRepository) BatchInsert(ctx context.Context, comments []*models.Comment) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.InsertError != nil {
		return 0, m.InsertError
	}
	for _, c := range comments {
		c.CommentID = m.NextID
		m.Comments[c.CommentID] = c
		m.NextID++
	}
	return len(comments), nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Comments), nil
}

// MockAdminRepository is a mock implementation of AdminRepository
type MockAdminRepository struct {
	ResetCalls int
	SyncCalls  int
	ResetError error
}

func (m *MockAdminRepository) Reset(ctx context.Context) error {
	m.ResetCalls++
	return m.ResetError
}

func (m *MockAdminRepository) SyncSequences(ctx context.Context) error {
	m.SyncCalls++
	return nil
}

// NewMockRepositories wires a fresh set of mock repositories
func NewMockRepositories() (*repository.Repositories, *MockSet) {
	set := &MockSet{
		Topics:   NewMockTopicRepository(),
		Users:    NewMockUserRepository(),
		Articles: NewMockArticleRepository(),
		Comments: NewMockCommentRepository(),
		Admin:    &MockAdminRepository{},
	}
	return &repository.Repositories{
		Topic:   set.Topics,
		User:    set.Users,
		Article: set.Articles,
		Comment: set.Comments,
		Admin:   set.Admin,
	}, set
}

// MockSet exposes the concrete mocks behind a Repositories value
type MockSet struct {
	Topics   *MockTopicRepository
	Users    *MockUserRepository
	Articles *MockArticleRepository
	Comments *MockCommentRepository
	Admin    *MockAdminRepository
}
