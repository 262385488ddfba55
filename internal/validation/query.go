package validation

import (
	"github.com/news-aggregator-api/internal/apperror"
)

const (
	// DefaultSortBy is used when no sort_by parameter is supplied
	DefaultSortBy = "created_at"
	// DefaultOrder is used when no order parameter is supplied
	DefaultOrder = "DESC"
)

// sortColumns is the sort_by allow-list, mapped to the qualified column or
// alias the article list query orders by
var sortColumns = map[string]string{
	"author":          "articles.author",
	"title":           "articles.title",
	"article_id":      "articles.article_id",
	"topic":           "articles.topic",
	"created_at":      "articles.created_at",
	"votes":           "articles.votes",
	"article_img_url": "articles.article_img_url",
	"comment_count":   "comment_count",
}

var sortOrders = map[string]bool{
	"ASC":  true,
	"DESC": true,
}

// ArticleQuery is a validated sort/order pair for the article list
type ArticleQuery struct {
	SortBy string
	Order  string
	Topic  string // empty means no topic filter
}

// Column returns the SQL expression to order by. Only valid after ValidateArticleQuery.
func (q ArticleQuery) Column() string {
	return sortColumns[q.SortBy]
}

// ValidateArticleQuery applies defaults and checks sort_by and order against
// their allow-lists. Empty values take the defaults. Order matching is
// case-sensitive. Both kinds of violation yield ErrInvalidSortQuery.
func ValidateArticleQuery(sortBy, order string) (ArticleQuery, error) {
	if sortBy == "" {
		sortBy = DefaultSortBy
	}
	if order == "" {
		order = DefaultOrder
	}

	if !sortOrders[order] {
		return ArticleQuery{}, apperror.ErrInvalidSortQuery
	}
	if _, ok := sortColumns[sortBy]; !ok {
		return ArticleQuery{}, apperror.ErrInvalidSortQuery
	}

	return ArticleQuery{SortBy: sortBy, Order: order}, nil
}
