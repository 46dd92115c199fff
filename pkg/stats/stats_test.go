package stats

import (
	"testing"
	"time"

	"github.com/webtonotion/webtonotion/pkg/db"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *db.DB {
	t.Helper()

	database, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func seedBookmark(t *testing.T, store *db.DB, title, mainTag string, created time.Time, tags ...string) {
	t.Helper()

	mainTagID, err := store.UpsertMainTag(mainTag)
	if err != nil {
		t.Fatalf("UpsertMainTag() failed: %v", err)
	}

	b := &db.Bookmark{
		Title:     title,
		URL:       "https://example.com/" + title,
		MainTagID: mainTagID,
		CreatedAt: created,
	}
	if err := store.InsertBookmark(b); err != nil {
		t.Fatalf("InsertBookmark() failed: %v", err)
	}

	for _, tag := range tags {
		tagID, err := store.UpsertTag(tag)
		if err != nil {
			t.Fatalf("UpsertTag() failed: %v", err)
		}
		if err := store.InsertBookmarkTag(b.ID, tagID); err != nil {
			t.Fatalf("InsertBookmarkTag() failed: %v", err)
		}
	}
}

func TestBuild(t *testing.T) {
	store := setupTestDB(t)

	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	seedBookmark(t, store, "a", "Engineering", jan, "go", "db")
	seedBookmark(t, store, "b", "Engineering", jan, "go")
	seedBookmark(t, store, "c", "Design", mar, "color")

	report, err := Build(store, 10)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	if report.TotalBookmarks != 3 {
		t.Errorf("TotalBookmarks = %d, want 3", report.TotalBookmarks)
	}
	if report.UniqueTags != 3 {
		t.Errorf("UniqueTags = %d, want 3", report.UniqueTags)
	}
	if len(report.Topics) != 2 || report.Topics[0].Name != "Engineering" || report.Topics[0].Count != 2 {
		t.Errorf("Topics = %+v, want Engineering:2 ranked first", report.Topics)
	}
	if len(report.Activity) != 2 || report.Activity[0].Month != "2024-01" {
		t.Errorf("Activity = %+v, want 2024-01 first", report.Activity)
	}
}

func TestBuild_TopNCapsTopics(t *testing.T) {
	store := setupTestDB(t)

	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	seedBookmark(t, store, "a", "Engineering", now)
	seedBookmark(t, store, "b", "Design", now)
	seedBookmark(t, store, "c", "Business", now)

	report, err := Build(store, 2)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if len(report.Topics) != 2 {
		t.Errorf("len(Topics) = %d with cap 2", len(report.Topics))
	}

	report, err = Build(store, 0)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if len(report.Topics) != 3 {
		t.Errorf("len(Topics) = %d with no cap, want 3", len(report.Topics))
	}
}

func TestBuild_EmptyMirror(t *testing.T) {
	store := setupTestDB(t)

	report, err := Build(store, 10)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if report.TotalBookmarks != 0 || report.UniqueTags != 0 {
		t.Errorf("empty mirror report = %+v", report)
	}
	if len(report.Topics) != 0 || len(report.Activity) != 0 {
		t.Errorf("empty mirror has topics or activity: %+v", report)
	}
}
