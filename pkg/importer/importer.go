// Package importer reconciles the destination store's authoritative bookmark
// listing into the local relational mirror. Sync is monotonic append-only
// with duplicate suppression: records whose URL or title is already mirrored
// are skipped, never updated.
package importer

import (
	"context"
	"fmt"
	"log"

	"github.com/webtonotion/webtonotion/pkg/db"
	"github.com/webtonotion/webtonotion/pkg/notion"
)

// FallbackMainTag is assigned when a record's category is missing or does not
// match any known main tag.
const FallbackMainTag = "Miscellaneous"

// Source is the slice of the destination store the importer reads. Satisfied
// by *notion.Client.
type Source interface {
	MainTagNames(ctx context.Context, databaseID string) ([]string, error)
	ListBookmarks(ctx context.Context, databaseID string) ([]notion.SourceBookmark, error)
}

type Importer struct {
	store      *db.DB
	source     Source
	databaseID string
}

func New(store *db.DB, source Source, databaseID string) *Importer {
	return &Importer{
		store:      store,
		source:     source,
		databaseID: databaseID,
	}
}

// Result reports one sync run.
type Result struct {
	New       int
	Skipped   int
	Processed int
}

// Sync runs one import pass. Records are processed sequentially, each one
// fully inserted (tag links included) before the next begins; a single
// record's failure is logged and counted as skipped, not fatal to the run.
// Concurrent Sync calls are not safe against each other; both would read
// the same existing-pairs snapshot.
func (im *Importer) Sync(ctx context.Context) (Result, error) {
	var res Result

	pairs, err := im.store.ExistingPairs()
	if err != nil {
		return res, fmt.Errorf("failed to load existing bookmarks: %w", err)
	}
	seenURLs := make(map[string]bool, len(pairs))
	seenTitles := make(map[string]bool, len(pairs))
	for _, p := range pairs {
		if p.URL != "" {
			seenURLs[p.URL] = true
		}
		if p.Title != "" {
			seenTitles[p.Title] = true
		}
	}

	mainTags, err := im.source.MainTagNames(ctx, im.databaseID)
	if err != nil {
		return res, fmt.Errorf("failed to fetch main tag categories: %w", err)
	}
	mainTagIDs := make(map[string]string, len(mainTags))
	for _, name := range mainTags {
		id, err := im.store.UpsertMainTag(name)
		if err != nil {
			return res, fmt.Errorf("failed to upsert main tag %q: %w", name, err)
		}
		mainTagIDs[name] = id
	}

	records, err := im.source.ListBookmarks(ctx, im.databaseID)
	if err != nil {
		return res, fmt.Errorf("failed to list source bookmarks: %w", err)
	}

	for _, rec := range records {
		res.Processed++

		// A record with neither key can never be deduplicated, so it must
		// not be imported; it would come back as a fresh row on every run.
		if rec.URL == "" && rec.Title == "" {
			log.Printf("skipping record with no url and no title")
			res.Skipped++
			continue
		}

		// A match on either key is enough to skip: upstream URL
		// normalization varies, and a re-import under a fresh id would
		// show the bookmark twice in every dashboard query.
		if (rec.URL != "" && seenURLs[rec.URL]) || (rec.Title != "" && seenTitles[rec.Title]) {
			res.Skipped++
			continue
		}

		if err := im.importRecord(rec, mainTagIDs); err != nil {
			log.Printf("skipping record %q: %v", rec.Title, err)
			res.Skipped++
			continue
		}

		if rec.URL != "" {
			seenURLs[rec.URL] = true
		}
		if rec.Title != "" {
			seenTitles[rec.Title] = true
		}
		res.New++
	}

	return res, nil
}

func (im *Importer) importRecord(rec notion.SourceBookmark, mainTagIDs map[string]string) error {
	mainTagID, ok := mainTagIDs[rec.MainTag]
	if !ok {
		// Unknown or missing category: file the record under the fallback
		// rather than dropping it.
		id, err := im.store.UpsertMainTag(FallbackMainTag)
		if err != nil {
			return fmt.Errorf("failed to resolve fallback main tag: %w", err)
		}
		mainTagIDs[FallbackMainTag] = id
		mainTagID = id
	}

	bookmark := &db.Bookmark{
		Title:          rec.Title,
		URL:            rec.URL,
		MainTagID:      mainTagID,
		SummarizedText: rec.Summary,
		CreatedAt:      rec.Created,
	}
	if err := im.store.InsertBookmark(bookmark); err != nil {
		return err
	}

	for _, tagName := range rec.Tags {
		tagID, err := im.store.UpsertTag(tagName)
		if err != nil {
			return fmt.Errorf("failed to upsert tag %q: %w", tagName, err)
		}
		if err := im.store.InsertBookmarkTag(bookmark.ID, tagID); err != nil {
			return fmt.Errorf("failed to link tag %q: %w", tagName, err)
		}
	}

	return nil
}
