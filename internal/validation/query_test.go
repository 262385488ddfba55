package validation

import (
	"errors"
	"testing"

	"github.com/news-aggregator-api/internal/apperror"
)

func TestValidateArticleQuery_Defaults(t *testing.T) {
	q, err := ValidateArticleQuery("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.SortBy != "created_at" || q.Order != "DESC" {
		t.Errorf("Expected created_at DESC, got %s %s", q.SortBy, q.Order)
	}
	if q.Column() != "articles.created_at" {
		t.Errorf("Expected qualified column, got %q", q.Column())
	}
}

func TestValidateArticleQuery_AllowList(t *testing.T) {
	columns := []string{
		"author", "title", "article_id", "topic",
		"created_at", "votes", "article_img_url", "comment_count",
	}
	for _, col := range columns {
		for _, order := range []string{"ASC", "DESC"} {
			q, err := ValidateArticleQuery(col, order)
			if err != nil {
				t.Errorf("%s %s: unexpected error %v", col, order, err)
				continue
			}
			if q.Column() == "" {
				t.Errorf("%s: no column mapping", col)
			}
		}
	}
	if len(sortColumns) != len(columns) {
		t.Errorf("Expected %d sortable columns, got %d", len(columns), len(sortColumns))
	}
}

func TestValidateArticleQuery_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		sortBy string
		order  string
	}{
		{"unknown column", "body", "DESC"},
		{"sql injection attempt", "votes; DROP TABLE articles", "ASC"},
		{"lowercase order", "votes", "asc"},
		{"unknown order", "votes", "SIDEWAYS"},
		{"both invalid", "nope", "nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateArticleQuery(tt.sortBy, tt.order)
			if !errors.Is(err, apperror.ErrInvalidSortQuery) {
				t.Errorf("Expected ErrInvalidSortQuery, got %v", err)
			}
		})
	}
}
