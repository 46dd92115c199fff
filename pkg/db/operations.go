package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const timeLayout = "2006-01-02 15:04:05"

// Bookmark is one mirrored record.
type Bookmark struct {
	ID             string
	Title          string
	URL            string
	MainTagID      string
	Type           string
	SummarizedText string
	CreatedAt      time.Time
}

// Pair identifies a mirrored bookmark by its natural keys.
type Pair struct {
	URL   string
	Title string
}

// ExistingPairs loads every mirrored (url, title) pair.
func (db *DB) ExistingPairs() ([]Pair, error) {
	rows, err := db.Query("SELECT url, title FROM bookmarks")
	if err != nil {
		return nil, fmt.Errorf("failed to query existing bookmarks: %w", err)
	}
	defer rows.Close()

	var pairs []Pair
	for rows.Next() {
		var p Pair
		if err := rows.Scan(&p.URL, &p.Title); err != nil {
			return nil, fmt.Errorf("failed to scan bookmark pair: %w", err)
		}
		pairs = append(pairs, p)
	}
	return pairs, rows.Err()
}

// UpsertMainTag returns the id for the named category, inserting it if new.
// The upsert is keyed on name, so repeated syncs are idempotent here.
func (db *DB) UpsertMainTag(name string) (string, error) {
	return db.upsertNamed("main_tags", name)
}

// UpsertTag returns the id for the named tag, inserting it if new.
func (db *DB) UpsertTag(name string) (string, error) {
	return db.upsertNamed("tags", name)
}

func (db *DB) upsertNamed(table, name string) (string, error) {
	var id string
	err := db.QueryRow("SELECT id FROM "+table+" WHERE name = ?", name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("failed to check %s: %w", table, err)
	}

	id = uuid.NewString()
	if _, err := db.Exec("INSERT INTO "+table+" (id, name) VALUES (?, ?)", id, name); err != nil {
		return "", fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return id, nil
}

// InsertBookmark inserts a new bookmark row. An empty ID gets a fresh uuid;
// an empty Type defaults to article.
func (db *DB) InsertBookmark(b *Bookmark) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Type == "" {
		b.Type = "article"
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}

	var mainTagID any
	if b.MainTagID != "" {
		mainTagID = b.MainTagID
	}

	_, err := db.Exec(`
		INSERT INTO bookmarks (id, title, url, main_tag_id, type, summarized_text, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, b.ID, b.Title, b.URL, mainTagID, b.Type, b.SummarizedText, b.CreatedAt.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("failed to insert bookmark: %w", err)
	}
	return nil
}

// InsertBookmarkTag links a bookmark to a tag. Duplicate links are ignored.
func (db *DB) InsertBookmarkTag(bookmarkID, tagID string) error {
	_, err := db.Exec(`
		INSERT OR IGNORE INTO bookmark_tags (bookmark_id, tag_id)
		VALUES (?, ?)
	`, bookmarkID, tagID)
	if err != nil {
		return fmt.Errorf("failed to insert bookmark tag: %w", err)
	}
	return nil
}

// CountBookmarks returns the total number of mirrored bookmarks.
func (db *DB) CountBookmarks() (int, error) {
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM bookmarks").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count bookmarks: %w", err)
	}
	return n, nil
}

// CountUniqueTags returns the number of distinct tags in use.
func (db *DB) CountUniqueTags() (int, error) {
	var n int
	if err := db.QueryRow("SELECT COUNT(DISTINCT tag_id) FROM bookmark_tags").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count unique tags: %w", err)
	}
	return n, nil
}

// TagCount is one row of a frequency ranking.
type TagCount struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// MainTagFrequency ranks main-tag categories by bookmark count, descending.
func (db *DB) MainTagFrequency() ([]TagCount, error) {
	rows, err := db.Query(`
		SELECT mt.name, COUNT(*) AS n
		FROM bookmarks b
		JOIN main_tags mt ON mt.id = b.main_tag_id
		GROUP BY mt.name
		ORDER BY n DESC, mt.name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query main tag frequency: %w", err)
	}
	defer rows.Close()

	var counts []TagCount
	for rows.Next() {
		var tc TagCount
		if err := rows.Scan(&tc.Name, &tc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan tag count: %w", err)
		}
		counts = append(counts, tc)
	}
	return counts, rows.Err()
}

// MonthCount is one month of save activity.
type MonthCount struct {
	Month string `yaml:"month"`
	Count int    `yaml:"count"`
}

// MonthlyActivity buckets bookmarks by creation month, oldest first.
func (db *DB) MonthlyActivity() ([]MonthCount, error) {
	rows, err := db.Query(`
		SELECT strftime('%Y-%m', created_at) AS month, COUNT(*)
		FROM bookmarks
		GROUP BY month
		ORDER BY month ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly activity: %w", err)
	}
	defer rows.Close()

	var months []MonthCount
	for rows.Next() {
		var mc MonthCount
		if err := rows.Scan(&mc.Month, &mc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan month count: %w", err)
		}
		months = append(months, mc)
	}
	return months, rows.Err()
}
