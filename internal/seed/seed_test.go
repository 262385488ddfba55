package seed_test

import (
	"context"
	"errors"
	"testing"

	"github.com/news-aggregator-api/internal/mocks"
	"github.com/news-aggregator-api/internal/models"
	"github.com/news-aggregator-api/internal/seed"
	"github.com/rs/zerolog"
)

func TestLoadFixtures(t *testing.T) {
	f, err := seed.LoadFixtures("testdata")
	if err != nil {
		t.Fatalf("LoadFixtures failed: %v", err)
	}

	if len(f.Topics) != 3 || len(f.Users) != 3 || len(f.Articles) != 3 || len(f.Comments) != 3 {
		t.Errorf("Unexpected fixture sizes: %d topics, %d users, %d articles, %d comments",
			len(f.Topics), len(f.Users), len(f.Articles), len(f.Comments))
	}
	if f.Articles[0].CreatedAt != 1594329060000 {
		t.Errorf("Expected epoch millis to be preserved, got %d", f.Articles[0].CreatedAt)
	}
}

func TestLoadFixtures_MissingDir(t *testing.T) {
	if _, err := seed.LoadFixtures("testdata/nope"); err == nil {
		t.Error("Expected error for missing directory")
	}
}

func TestLoadFixtures_DevData(t *testing.T) {
	f, err := seed.LoadFixtures("../../data/dev")
	if err != nil {
		t.Fatalf("LoadFixtures failed: %v", err)
	}

	repos, _ := mocks.NewMockRepositories()
	report, err := seed.New(repos, zerolog.Nop()).Run(context.Background(), f)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.Failed != 0 {
		t.Errorf("Expected dev data to be valid, got %+v", report.Errors)
	}
}

func TestSeeder_Run(t *testing.T) {
	f, err := seed.LoadFixtures("testdata")
	if err != nil {
		t.Fatalf("LoadFixtures failed: %v", err)
	}

	repos, set := mocks.NewMockRepositories()
	report, err := seed.New(repos, zerolog.Nop()).Run(context.Background(), f)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if report.Topics != 2 {
		t.Errorf("Expected 2 topics, got %d", report.Topics)
	}
	if report.Users != 2 {
		t.Errorf("Expected 2 users, got %d", report.Users)
	}
	if report.Articles != 2 {
		t.Errorf("Expected 2 articles, got %d", report.Articles)
	}
	if report.Comments != 2 {
		t.Errorf("Expected 2 comments, got %d", report.Comments)
	}
	// bad slug, duplicate user, unknown topic, comment on a rejected article
	if report.Failed != 4 {
		t.Errorf("Expected 4 failed records, got %d: %+v", report.Failed, report.Errors)
	}

	if set.Admin.ResetCalls != 1 || set.Admin.SyncCalls != 1 {
		t.Errorf("Expected one reset and one sequence sync, got %d and %d", set.Admin.ResetCalls, set.Admin.SyncCalls)
	}

	// Ids follow accepted file order
	if a := set.Articles.Articles[2]; a == nil || a.Title != "UNCOVERED: catspiracy to bring down democracy" {
		t.Errorf("Expected article 2 to be the cats article, got %+v", a)
	}
	if a := set.Articles.Articles[1]; a == nil || a.CreatedAt.UnixMilli() != 1594329060000 {
		t.Errorf("Expected article 1 created_at from epoch millis, got %+v", a)
	}

	// Comments resolve their article by title
	byBody := make(map[string]*models.Comment)
	for _, c := range set.Comments.Comments {
		byBody[c.Body] = c
	}
	if c := byBody["Lobster pot"]; c == nil || c.ArticleID != 1 {
		t.Errorf("Expected 'Lobster pot' on article 1, got %+v", c)
	}
	if c := byBody["Oh, I've got compassion running out of my nose, pal!"]; c == nil || c.ArticleID != 2 {
		t.Errorf("Expected comment on article 2, got %+v", c)
	}
}

func TestSeeder_RunReportsErrors(t *testing.T) {
	f := &seed.Fixtures{
		Topics: []models.TopicFixture{{Slug: "mitch", Description: "x"}},
		Users:  []models.UserFixture{{Username: "lurker"}},
	}

	repos, _ := mocks.NewMockRepositories()
	report, err := seed.New(repos, zerolog.Nop()).Run(context.Background(), f)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if report.Failed != 1 || len(report.Errors) != 1 {
		t.Fatalf("Expected one rejected user, got %+v", report)
	}
	e := report.Errors[0]
	if e.Resource != "users" || e.Index != 0 || e.Field != "name" {
		t.Errorf("Unexpected validation error: %+v", e)
	}
}

func TestSeeder_RunInsertFailure(t *testing.T) {
	f, err := seed.LoadFixtures("testdata")
	if err != nil {
		t.Fatalf("LoadFixtures failed: %v", err)
	}

	repos, set := mocks.NewMockRepositories()
	set.Articles.InsertError = errors.New("copy failed")

	if _, err := seed.New(repos, zerolog.Nop()).Run(context.Background(), f); err == nil {
		t.Fatal("Expected insert failure to abort seeding")
	}
	if set.Admin.SyncCalls != 0 {
		t.Error("Expected no sequence sync after a failed insert")
	}
}

func TestSeeder_RunVerifiesStoredCounts(t *testing.T) {
	f, err := seed.LoadFixtures("testdata")
	if err != nil {
		t.Fatalf("LoadFixtures failed: %v", err)
	}

	repos, set := mocks.NewMockRepositories()
	// left behind by a reset that did not clear the table
	set.Articles.Articles[99] = &models.Article{ArticleID: 99, Title: "stale"}

	if _, err := seed.New(repos, zerolog.Nop()).Run(context.Background(), f); err == nil {
		t.Fatal("Expected a stored count mismatch to fail seeding")
	}
}

func TestSeeder_RunResetFailure(t *testing.T) {
	repos, set := mocks.NewMockRepositories()
	set.Admin.ResetError = errors.New("permission denied")

	if _, err := seed.New(repos, zerolog.Nop()).Run(context.Background(), &seed.Fixtures{}); err == nil {
		t.Fatal("Expected reset failure")
	}
}
