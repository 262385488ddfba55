package repository

import (
	"context"

	"github.com/lib/pq"
	"github.com/news-aggregator-api/internal/database"
	"github.com/news-aggregator-api/internal/models"
)

// topicRepo is the concrete implementation of TopicRepository
type topicRepo struct {
	db *database.DB
}

// NewTopicRepo creates a new topic repository
func NewTopicRepo(db *database.DB) TopicRepository {
	return &topicRepo{db: db}
}

// List returns every topic
func (r *topicRepo) List(ctx context.Context) ([]models.Topic, error) {
	query := `SELECT slug, COALESCE(description, ''), COALESCE(img_url, '') FROM topics`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, translateError("list topics", err)
	}
	defer rows.Close()

	topics := make([]models.Topic, 0)
	for rows.Next() {
		var topic models.Topic
		if err := rows.Scan(&topic.Slug, &topic.Description, &topic.ImgURL); err != nil {
			return nil, translateError("scan topic", err)
		}
		topics = append(topics, topic)
	}
	return topics, translateError("list topics", rows.Err())
}

// Exists checks if a topic with the given slug exists
func (r *topicRepo) Exists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM topics WHERE slug = $1)", slug).Scan(&exists)
	return exists, translateError("check topic", err)
}

// BatchInsert inserts multiple topics using PostgreSQL COPY
func (r *topicRepo) BatchInsert(ctx context.Context, topics []*models.Topic) (int, error) {
	if len(topics) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("topics", "slug", "description", "img_url"))
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, topic := range topics {
		if _, err := stmt.ExecContext(ctx, topic.Slug, topic.Description, topic.ImgURL); err != nil {
			return 0, translateError("copy topic", err)
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		return 0, translateError("copy topics", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return len(topics), nil
}
