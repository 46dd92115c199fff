package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/webtonotion/webtonotion/models"
)

const latestInsightID = "latest"

// Insight is the stored learning profile.
type Insight struct {
	Content     string
	GeneratedAt string
}

// BookmarkHistory returns every mirrored bookmark as a history entry, oldest
// first. Each entry's tag list carries the free tags plus the main tag.
func (db *DB) BookmarkHistory() ([]models.HistoryEntry, error) {
	rows, err := db.Query(`
		SELECT b.title, b.created_at,
		       COALESCE(mt.name, ''),
		       COALESCE(GROUP_CONCAT(t.name ORDER BY t.name), '')
		FROM bookmarks b
		LEFT JOIN main_tags mt ON mt.id = b.main_tag_id
		LEFT JOIN bookmark_tags bt ON bt.bookmark_id = b.id
		LEFT JOIN tags t ON t.id = bt.tag_id
		GROUP BY b.id
		ORDER BY b.created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookmark history: %w", err)
	}
	defer rows.Close()

	var history []models.HistoryEntry
	for rows.Next() {
		var entry models.HistoryEntry
		var mainTag, tagList string
		if err := rows.Scan(&entry.Title, &entry.Date, &mainTag, &tagList); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		if tagList != "" {
			entry.Tags = strings.Split(tagList, ",")
		}
		if mainTag != "" {
			entry.Tags = append(entry.Tags, mainTag)
		}
		history = append(history, entry)
	}
	return history, rows.Err()
}

// SaveInsight stores the generated profile, replacing any previous one.
func (db *DB) SaveInsight(content string) error {
	_, err := db.Exec(`
		INSERT INTO learning_insights (id, content, generated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			content = excluded.content,
			generated_at = excluded.generated_at
	`, latestInsightID, content, time.Now().UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("failed to save insight: %w", err)
	}
	return nil
}

// LatestInsight returns the stored profile, or nil when none has been
// generated yet.
func (db *DB) LatestInsight() (*Insight, error) {
	var ins Insight
	err := db.QueryRow(
		"SELECT content, generated_at FROM learning_insights WHERE id = ?",
		latestInsightID,
	).Scan(&ins.Content, &ins.GeneratedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read insight: %w", err)
	}
	return &ins, nil
}
