package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/news-aggregator-api/internal/models"
)

var (
	slugRegex     = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
)

const (
	maxSlugLen     = 20
	maxUsernameLen = 30
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Validator validates seed fixtures. It remembers accepted topics, users and
// article titles so later records can be checked against them.
type Validator struct {
	topicCache   map[string]bool
	userCache    map[string]bool
	articleCache map[string]bool
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		topicCache:   make(map[string]bool),
		userCache:    make(map[string]bool),
		articleCache: make(map[string]bool),
	}
}

// AddTopic adds a topic slug to the FK cache
func (v *Validator) AddTopic(slug string) {
	v.topicCache[slug] = true
}

// AddUser adds a username to the FK cache
func (v *Validator) AddUser(username string) {
	v.userCache[username] = true
}

// AddArticleTitle adds an article title to the FK cache
func (v *Validator) AddArticleTitle(title string) {
	v.articleCache[title] = true
}

// ValidateTopic validates a topic record
func (v *Validator) ValidateTopic(topic *models.TopicFixture) []ValidationError {
	var errors []ValidationError

	if topic.Slug == "" {
		errors = append(errors, ValidationError{Field: "slug", Message: "slug is required"})
	} else if len(topic.Slug) > maxSlugLen || !slugRegex.MatchString(topic.Slug) {
		errors = append(errors, ValidationError{
			Field:   "slug",
			Message: fmt.Sprintf("slug must be kebab-case and at most %d characters", maxSlugLen),
			Value:   topic.Slug,
		})
	} else if v.topicCache[topic.Slug] {
		errors = append(errors, ValidationError{Field: "slug", Message: "duplicate slug", Value: topic.Slug})
	}

	return errors
}

// ValidateUser validates a user record
func (v *Validator) ValidateUser(user *models.UserFixture) []ValidationError {
	var errors []ValidationError

	if user.Username == "" {
		errors = append(errors, ValidationError{Field: "username", Message: "username is required"})
	} else if len(user.Username) > maxUsernameLen || !usernameRegex.MatchString(user.Username) {
		errors = append(errors, ValidationError{Field: "username", Message: "invalid username", Value: user.Username})
	} else if v.userCache[user.Username] {
		errors = append(errors, ValidationError{Field: "username", Message: "duplicate username", Value: user.Username})
	}

	if strings.TrimSpace(user.Name) == "" {
		errors = append(errors, ValidationError{Field: "name", Message: "name is required"})
	}

	return errors
}

// ValidateArticle validates an article record
func (v *Validator) ValidateArticle(article *models.ArticleFixture) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(article.Title) == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	} else if v.articleCache[article.Title] {
		// comments reference articles by title, so titles must be unique
		errors = append(errors, ValidationError{Field: "title", Message: "duplicate title", Value: article.Title})
	}

	if article.Topic == "" {
		errors = append(errors, ValidationError{Field: "topic", Message: "topic is required"})
	} else if !v.topicCache[article.Topic] {
		errors = append(errors, ValidationError{Field: "topic", Message: "referenced topic does not exist", Value: article.Topic})
	}

	if article.Author == "" {
		errors = append(errors, ValidationError{Field: "author", Message: "author is required"})
	} else if !v.userCache[article.Author] {
		errors = append(errors, ValidationError{Field: "author", Message: "referenced user does not exist", Value: article.Author})
	}

	if article.CreatedAt < 0 {
		errors = append(errors, ValidationError{Field: "created_at", Message: "created_at must not be negative", Value: article.CreatedAt})
	}

	return errors
}

// ValidateComment validates a comment record
func (v *Validator) ValidateComment(comment *models.CommentFixture) []ValidationError {
	var errors []ValidationError

	if comment.ArticleTitle == "" {
		errors = append(errors, ValidationError{Field: "article_title", Message: "article_title is required"})
	} else if !v.articleCache[comment.ArticleTitle] {
		errors = append(errors, ValidationError{Field: "article_title", Message: "referenced article does not exist", Value: comment.ArticleTitle})
	}

	if comment.Author == "" {
		errors = append(errors, ValidationError{Field: "author", Message: "author is required"})
	} else if !v.userCache[comment.Author] {
		errors = append(errors, ValidationError{Field: "author", Message: "referenced user does not exist", Value: comment.Author})
	}

	if strings.TrimSpace(comment.Body) == "" {
		errors = append(errors, ValidationError{Field: "body", Message: "body is required"})
	}

	if comment.CreatedAt < 0 {
		errors = append(errors, ValidationError{Field: "created_at", Message: "created_at must not be negative", Value: comment.CreatedAt})
	}

	return errors
}
