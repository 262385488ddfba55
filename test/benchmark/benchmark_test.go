package benchmark

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/news-aggregator-api/internal/api"
	"github.com/news-aggregator-api/internal/config"
	"github.com/news-aggregator-api/internal/mocks"
	"github.com/news-aggregator-api/internal/models"
	"github.com/news-aggregator-api/internal/seed"
	"github.com/news-aggregator-api/internal/service"
	"github.com/news-aggregator-api/internal/validation"
	"github.com/rs/zerolog"
)

type okHealth struct{}

func (okHealth) HealthCheck(ctx context.Context) error { return nil }

// BenchmarkValidateArticleQuery benchmarks the sort/order allow-list check
func BenchmarkValidateArticleQuery(b *testing.B) {
	pairs := [][2]string{
		{"", ""},
		{"votes", "ASC"},
		{"comment_count", "DESC"},
		{"body", "ASC"},
		{"title", "sideways"},
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p := pairs[i%len(pairs)]
		_, _ = validation.ValidateArticleQuery(p[0], p[1])
	}
}

// BenchmarkListArticlesHandler benchmarks GET /api/articles end to end over
// mock repositories holding 1000 articles
func BenchmarkListArticlesHandler(b *testing.B) {
	gin.SetMode(gin.TestMode)

	repos, set := mocks.NewMockRepositories()
	set.Topics.Topics = []models.Topic{{Slug: "mitch"}, {Slug: "cats"}}
	for i := 1; i <= 1000; i++ {
		topic := "mitch"
		if i%2 == 0 {
			topic = "cats"
		}
		set.Articles.Articles[i] = &models.Article{
			ArticleID: i,
			Title:     fmt.Sprintf("Article %04d", i),
			Topic:     topic,
			Author:    "butter_bridge",
			CreatedAt: time.Now(),
		}
	}

	cfg := &config.Config{API: config.APIConfig{BasePath: "/api", MaxBodyBytes: 1 << 20, EmptyCommentsNotFound: true}}
	router := api.NewRouter(service.NewServices(repos, cfg, zerolog.Nop()), okHealth{}, cfg, zerolog.Nop())

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest("GET", "/api/articles?topic=cats&sort_by=votes&order=ASC", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			b.Fatalf("Expected status 200, got %d", w.Code)
		}
	}
}

// BenchmarkSeederRun benchmarks fixture validation and batching for 1000
// articles with two comments each
func BenchmarkSeederRun(b *testing.B) {
	fixtures := &seed.Fixtures{
		Topics: []models.TopicFixture{{Slug: "mitch", Description: "The man, the Mitch, the legend"}},
		Users:  []models.UserFixture{{Username: "butter_bridge", Name: "jonny"}},
	}
	for i := 0; i < 1000; i++ {
		title := fmt.Sprintf("Article %04d", i)
		fixtures.Articles = append(fixtures.Articles, models.ArticleFixture{
			Title:     title,
			Topic:     "mitch",
			Author:    "butter_bridge",
			Body:      "body",
			CreatedAt: 1594329060000,
		})
		for j := 0; j < 2; j++ {
			fixtures.Comments = append(fixtures.Comments, models.CommentFixture{
				ArticleTitle: title,
				Body:         "comment",
				Author:       "butter_bridge",
				CreatedAt:    1594329060000,
			})
		}
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		repos, _ := mocks.NewMockRepositories()
		report, err := seed.New(repos, zerolog.Nop()).Run(context.Background(), fixtures)
		if err != nil {
			b.Fatalf("Run failed: %v", err)
		}
		if report.Comments != 2000 {
			b.Fatalf("Expected 2000 comments, got %d", report.Comments)
		}
	}

	b.ReportMetric(float64(3000*b.N)/b.Elapsed().Seconds(), "rows/sec")
}
