// Package stats summarizes the local mirror for reporting.
package stats

import (
	"fmt"

	"github.com/webtonotion/webtonotion/pkg/db"
)

// Report aggregates the mirror into the shape the stats command prints.
type Report struct {
	TotalBookmarks int             `yaml:"total_bookmarks"`
	UniqueTags     int             `yaml:"unique_tags"`
	Topics         []db.TagCount   `yaml:"topics"`
	Activity       []db.MonthCount `yaml:"activity"`
}

// Build assembles a report from the mirror. Topics is capped at topN
// categories; topN <= 0 means no cap.
func Build(store *db.DB, topN int) (*Report, error) {
	report := &Report{}

	var err error
	if report.TotalBookmarks, err = store.CountBookmarks(); err != nil {
		return nil, fmt.Errorf("failed to count bookmarks: %w", err)
	}
	if report.UniqueTags, err = store.CountUniqueTags(); err != nil {
		return nil, fmt.Errorf("failed to count tags: %w", err)
	}
	if report.Topics, err = store.MainTagFrequency(); err != nil {
		return nil, fmt.Errorf("failed to rank topics: %w", err)
	}
	if topN > 0 && len(report.Topics) > topN {
		report.Topics = report.Topics[:topN]
	}
	if report.Activity, err = store.MonthlyActivity(); err != nil {
		return nil, fmt.Errorf("failed to bucket activity: %w", err)
	}

	return report, nil
}
