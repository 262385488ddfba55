package repository

import (
	"context"

	"github.com/lib/pq"
	"github.com/news-aggregator-api/internal/apperror"
	"github.com/news-aggregator-api/internal/database"
	"github.com/news-aggregator-api/internal/models"
)

const commentColumns = `comment_id, article_id, COALESCE(body, ''), votes, author, created_at`

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

func scanComment(row rowScanner) (*models.Comment, error) {
	var comment models.Comment
	err := row.Scan(
		&comment.CommentID, &comment.ArticleID, &comment.Body, &comment.Votes,
		&comment.Author, &comment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByArticle returns an article's comments, newest first. An empty result
// does not distinguish a missing article from one without comments.
func (r *commentRepo) ListByArticle(ctx context.Context, articleID string) ([]models.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE article_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, translateError("list comments", err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, translateError("scan comment", err)
		}
		comments = append(comments, *comment)
	}
	return comments, translateError("list comments", rows.Err())
}

// Create inserts a new comment; votes and created_at take the column defaults
func (r *commentRepo) Create(ctx context.Context, articleID, author, body string) (*models.Comment, error) {
	query := `
		INSERT INTO comments (article_id, body, author)
		VALUES ($1, $2, $3)
		RETURNING ` + commentColumns

	comment, err := scanComment(r.db.QueryRowContext(ctx, query, articleID, body, author))
	if err != nil {
		return nil, translateError("create comment", err)
	}
	return comment, nil
}

// Delete removes a comment by ID, failing with ErrNotFound when nothing was deleted
func (r *commentRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE comment_id = $1", id)
	if err != nil {
		return translateError("delete comment", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return translateError("delete comment", err)
	}
	if affected == 0 {
		return apperror.ErrNotFound
	}
	return nil
}

// BatchInsert inserts multiple comments using PostgreSQL COPY
func (r *commentRepo) BatchInsert(ctx context.Context, comments []*models.Comment) (int, error) {
	if len(comments) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("comments",
		"article_id", "body", "votes", "author", "created_at",
	))
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, c := range comments {
		if _, err := stmt.ExecContext(ctx, c.ArticleID, c.Body, c.Votes, c.Author, c.CreatedAt); err != nil {
			return 0, translateError("copy comment", err)
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		return 0, translateError("copy comments", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return len(comments), nil
}

// Count returns the total number of comments
func (r *commentRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM comments").Scan(&count)
	return count, translateError("count comments", err)
}
