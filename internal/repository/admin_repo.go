package repository

import (
	"context"

	"github.com/news-aggregator-api/internal/database"
)

// adminRepo is the concrete implementation of AdminRepository
type adminRepo struct {
	db *database.DB
}

// NewAdminRepo creates a new admin repository
func NewAdminRepo(db *database.DB) AdminRepository {
	return &adminRepo{db: db}
}

// Reset empties every table and restarts the id sequences
func (r *adminRepo) Reset(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `TRUNCATE comments, articles, users, topics RESTART IDENTITY CASCADE`)
	return translateError("reset tables", err)
}

// SyncSequences moves the serial sequences past explicitly inserted ids
func (r *adminRepo) SyncSequences(ctx context.Context) error {
	for _, table := range []struct{ name, column string }{
		{"articles", "article_id"},
		{"comments", "comment_id"},
	} {
		query := `SELECT setval(pg_get_serial_sequence($1, $2), COALESCE(MAX(` + table.column + `), 0) + 1, false) FROM ` + table.name
		if _, err := r.db.ExecContext(ctx, query, table.name, table.column); err != nil {
			return translateError("sync "+table.name+" sequence", err)
		}
	}
	return nil
}
