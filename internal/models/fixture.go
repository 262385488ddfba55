package models

import (
	"time"
)

// TopicFixture is a topic record from a seed data file
type TopicFixture struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImgURL      string `json:"img_url"`
}

// UserFixture is a user record from a seed data file
type UserFixture struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// ArticleFixture is an article record from a seed data file.
// CreatedAt is epoch milliseconds.
type ArticleFixture struct {
	Title         string `json:"title"`
	Topic         string `json:"topic"`
	Author        string `json:"author"`
	Body          string `json:"body"`
	CreatedAt     int64  `json:"created_at"`
	Votes         int    `json:"votes"`
	ArticleImgURL string `json:"article_img_url"`
}

// CommentFixture is a comment record from a seed data file. The article is
// referenced by title and resolved to an id while seeding.
type CommentFixture struct {
	ArticleTitle string `json:"article_title"`
	Body         string `json:"body"`
	Votes        int    `json:"votes"`
	Author       string `json:"author"`
	CreatedAt    int64  `json:"created_at"`
}

// ValidationError represents a single rejected fixture record
type ValidationError struct {
	Resource string      `json:"resource"`
	Index    int         `json:"index"`
	Field    string      `json:"field"`
	Message  string      `json:"message"`
	Value    interface{} `json:"value,omitempty"`
}

// SeedReport summarises a seeding run
type SeedReport struct {
	Topics     int               `json:"topics"`
	Users      int               `json:"users"`
	Articles   int               `json:"articles"`
	Comments   int               `json:"comments"`
	Failed     int               `json:"failed"`
	Errors     []ValidationError `json:"errors,omitempty"`
	DurationMs int64             `json:"duration_ms"`
	StartedAt  time.Time         `json:"started_at"`
}
