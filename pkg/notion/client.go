// Package notion is the destination-store client: tag vocabulary reads,
// bookmark page creation, and the listing the sync importer consumes.
package notion

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jomei/notionapi"

	"github.com/webtonotion/webtonotion/models"
)

// BookmarkType is the Type property value marking records that belong to the
// bookmark collection.
const BookmarkType = "Bookmarks"

type Client struct {
	api *notionapi.Client
}

func NewClient(token string) *Client {
	return &Client{api: notionapi.NewClient(notionapi.Token(token))}
}

// WriteError reports a failed page creation. The API's message is preserved
// verbatim for the caller.
type WriteError struct {
	Status  int
	Message string
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("notion write failed (status %d): %s", e.Status, e.Message)
}

// TagVocabulary returns the tag names defined on the database's Tags
// multi-select property. It never fails the caller: retrieval and shape
// problems are logged and yield an empty vocabulary, which only weakens tag
// suggestions, never the save itself.
func (c *Client) TagVocabulary(ctx context.Context, databaseID string) []string {
	db, err := c.api.Database.Get(ctx, notionapi.DatabaseID(databaseID))
	if err != nil {
		log.Printf("failed to fetch tag vocabulary: %v", err)
		return nil
	}

	prop, ok := db.Properties["Tags"].(*notionapi.MultiSelectPropertyConfig)
	if !ok {
		log.Printf("database %s has no Tags multi-select property", databaseID)
		return nil
	}

	names := make([]string, 0, len(prop.MultiSelect.Options))
	for _, opt := range prop.MultiSelect.Options {
		names = append(names, opt.Name)
	}
	return names
}

// MainTagNames returns the category names defined on the database's MainTag
// select property. The importer uses this as the controlling vocabulary for
// its main_tags table.
func (c *Client) MainTagNames(ctx context.Context, databaseID string) ([]string, error) {
	db, err := c.api.Database.Get(ctx, notionapi.DatabaseID(databaseID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch database schema: %w", err)
	}

	prop, ok := db.Properties["MainTag"].(*notionapi.SelectPropertyConfig)
	if !ok {
		return nil, nil
	}

	names := make([]string, 0, len(prop.Select.Options))
	for _, opt := range prop.Select.Options {
		names = append(names, opt.Name)
	}
	return names, nil
}

// CreateBookmark creates one new page under the database and returns its id.
// Repeated calls with the same inputs create duplicate pages; deduplication
// is the sync importer's concern, not the writer's.
func (c *Client) CreateBookmark(ctx context.Context, databaseID string, rec *models.BookmarkRecord) (string, error) {
	req := &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: notionapi.DatabaseID(databaseID),
		},
		Properties: buildProperties(rec),
		Children:   toNotionBlocks(rec.Blocks),
	}

	page, err := c.api.Page.Create(ctx, req)
	if err != nil {
		var apiErr *notionapi.Error
		if errors.As(err, &apiErr) {
			return "", &WriteError{Status: apiErr.Status, Message: apiErr.Message}
		}
		return "", fmt.Errorf("failed to create page: %w", err)
	}
	return string(page.ID), nil
}

func buildProperties(rec *models.BookmarkRecord) notionapi.Properties {
	title := rec.Title
	if title == "" {
		title = "Untitled"
	}

	recordType := rec.Type
	if recordType == "" {
		recordType = BookmarkType
	}

	now := notionapi.Date(time.Now())

	return notionapi.Properties{
		"Name": notionapi.TitleProperty{
			Title: []notionapi.RichText{textRun(title, false)},
		},
		"URL": notionapi.URLProperty{
			URL: rec.URL,
		},
		"Tags": notionapi.MultiSelectProperty{
			MultiSelect: tagOptions(rec.Tags),
		},
		"Created": notionapi.DateProperty{
			Date: &notionapi.DateObject{Start: &now},
		},
		"Type": notionapi.RichTextProperty{
			RichText: []notionapi.RichText{textRun(recordType, false)},
		},
	}
}

func tagOptions(tags []string) []notionapi.Option {
	opts := make([]notionapi.Option, 0, len(tags))
	for _, tag := range tags {
		opts = append(opts, notionapi.Option{Name: tag})
	}
	return opts
}
