package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/news-aggregator-api/internal/apperror"
	"github.com/news-aggregator-api/internal/database"
	"github.com/news-aggregator-api/internal/models"
	"github.com/news-aggregator-api/internal/validation"
)

const articleColumns = `article_id, title, topic, author, COALESCE(body, ''), created_at, votes, COALESCE(article_img_url, '')`

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row rowScanner) (*models.Article, error) {
	var article models.Article
	err := row.Scan(
		&article.ArticleID, &article.Title, &article.Topic, &article.Author, &article.Body,
		&article.CreatedAt, &article.Votes, &article.ArticleImgURL,
	)
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// List returns article summaries with a computed comment_count, ordered by the
// validated sort pair and optionally restricted to one topic
func (r *articleRepo) List(ctx context.Context, q validation.ArticleQuery) ([]models.ArticleSummary, error) {
	var args []any
	where := ""
	if q.Topic != "" {
		where = "WHERE articles.topic = $1"
		args = append(args, q.Topic)
	}

	// Column and order come from the validator's allow-lists, never from raw input
	query := fmt.Sprintf(`
		SELECT
			articles.author,
			articles.title,
			articles.article_id,
			articles.topic,
			articles.created_at,
			articles.votes,
			COALESCE(articles.article_img_url, ''),
			COUNT(comments.article_id)::INT AS comment_count
		FROM articles
		LEFT JOIN comments ON articles.article_id = comments.article_id
		%s
		GROUP BY articles.article_id
		ORDER BY %s %s
	`, where, q.Column(), q.Order)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError("list articles", err)
	}
	defer rows.Close()

	articles := make([]models.ArticleSummary, 0)
	for rows.Next() {
		var a models.ArticleSummary
		err := rows.Scan(
			&a.Author, &a.Title, &a.ArticleID, &a.Topic, &a.CreatedAt,
			&a.Votes, &a.ArticleImgURL, &a.CommentCount,
		)
		if err != nil {
			return nil, translateError("scan article summary", err)
		}
		articles = append(articles, a)
	}
	return articles, translateError("list articles", rows.Err())
}

// GetByID retrieves an article by ID, failing with ErrNotFound when absent
func (r *articleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE article_id = $1`

	article, err := scanArticle(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, translateError("get article", err)
	}
	return article, nil
}

// Exists checks if an article with the given ID exists
func (r *articleRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM articles WHERE article_id = $1)", id).Scan(&exists)
	return exists, translateError("check article", err)
}

// IncrementVotes adds delta to the stored vote count in a single statement and
// returns the updated row. Callers check existence first; a missing row is
// still reported as ErrNotFound rather than a nil article.
func (r *articleRepo) IncrementVotes(ctx context.Context, id string, delta int) (*models.Article, error) {
	query := `UPDATE articles SET votes = votes + $1 WHERE article_id = $2 RETURNING ` + articleColumns

	article, err := scanArticle(r.db.QueryRowContext(ctx, query, delta, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, translateError("increment votes", err)
	}
	return article, nil
}

// BatchInsert inserts multiple articles using PostgreSQL COPY. Article IDs
// are written as given; call AdminRepository.SyncSequences afterwards.
func (r *articleRepo) BatchInsert(ctx context.Context, articles []*models.Article) (int, error) {
	if len(articles) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("articles",
		"article_id", "title", "topic", "author", "body", "created_at", "votes", "article_img_url",
	))
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, a := range articles {
		_, err := stmt.ExecContext(ctx,
			a.ArticleID, a.Title, a.Topic, a.Author, a.Body, a.CreatedAt, a.Votes, a.ArticleImgURL,
		)
		if err != nil {
			return 0, translateError("copy article", err)
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		return 0, translateError("copy articles", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return len(articles), nil
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&count)
	return count, translateError("count articles", err)
}
